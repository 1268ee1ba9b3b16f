// Package regionalize implements the top-level region-growing algorithm:
// seed, grow, merge adjacent regions to a fixpoint, erase undersized
// regions, and relabel survivors. It mutates a graph.Graph in place and
// is the only package permitted to do so once loading has finished.
package regionalize
