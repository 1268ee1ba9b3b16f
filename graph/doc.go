// Package graph defines the Zone/Region substrate shared by the loader and
// the regionaliser: an adjacency graph of zones with a distinguished
// exterior sentinel, plus regions as dynamic subsets of zones with
// O(1) incrementally-maintained aggregates (mass, area, density) and the
// topological queries region growth depends on — neighbour zones/regions,
// articulation-point (cut) analysis, enclave search, and connected
// components.
//
// Zones and regions live in append-only arenas addressed by integer
// handles (ZoneID, RegionID): a zone's region membership is a plain
// RegionID field, not a pointer cycle, so cache invalidation and region
// bookkeeping stay simple and allocation-light.
//
// The graph is mutated by exactly one goroutine for the lifetime of a run
// (see package regionalize); no method here is safe for concurrent use,
// and none needs to be — there is no suspension point anywhere in this
// package.
package graph
