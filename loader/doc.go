// Package loader adapts external zone and neighbour records into a
// graph.Graph. It performs no geometry: callers are expected to have
// already resolved which zones touch which, and whether a zone touches
// the exterior. Loader itself never mutates a graph after Load returns;
// all further mutation belongs to package regionalize.
package loader
