package regionalize

import "github.com/density-regions/densarea/graph"

// Assignment is one zone's outcome. Assigned is false when the zone never
// joined a surviving region (it either never met the threshold during
// growth or belonged to a region erased in phase 4); Region is only
// meaningful when Assigned is true.
//
// A plain map[graph.ZoneID]graph.ZoneID with a reserved "unassigned" id
// cannot represent this: real-world zone ids may legitimately be 0, the
// natural sentinel choice, so unassigned gets its own boolean instead of a
// value that could collide with a real id.
type Assignment struct {
	Region   graph.ZoneID
	Assigned bool
}

// Result is the outcome of one Run, one Assignment per zone that entered
// the graph (ExteriorID is never a key).
type Result map[graph.ZoneID]Assignment

func newResult(g *graph.Graph) Result {
	out := make(Result, g.ZoneCount())
	for _, id := range g.SortedZoneIDs() {
		z, _ := g.Zone(id)
		if z.IsAssigned() {
			r := g.Region(z.RegionID())
			out[id] = Assignment{Region: r.ID(), Assigned: true}
		} else {
			out[id] = Assignment{Assigned: false}
		}
	}
	return out
}
