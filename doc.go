// Package densarea delimits contiguous "density areals" over a zone
// adjacency graph: maximal connected groups of zones whose aggregate
// density (mass per unit area) meets a threshold, while keeping a minimum
// aggregate mass per region.
//
// Under the hood, everything is organized under task-focused subpackages:
//
//	graph/        — Zone/Region substrate: adjacency, cut points, enclaves
//	loader/       — turns zone records + a neighbour table into a *graph.Graph
//	regionalize/  — the top-level seed/grow/merge/erase/relabel algorithm
//	cmd/densarea/ — CLI harness wiring loader → regionalize → CSV output
//
// Quick ASCII example: a chain of five zones accretes into one areal while
// its density stays at or above the threshold, then stops.
//
//	A(100)──B(60)──C(40)──D(10)──E(5)
//	└──────────┬──────────┘
//	      one areal, labelled A
//
//	go get github.com/density-regions/densarea
package densarea
