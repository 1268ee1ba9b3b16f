package loader

import (
	"fmt"

	"github.com/density-regions/densarea/graph"
)

// ZoneRecord is one row of the external zone table: an id with its raw
// mass and area. Density is derived once, inside graph.AddZone.
type ZoneRecord struct {
	ID   graph.ZoneID
	Mass float64
	Area float64
}

// NeighbourPair is one row of the external neighbour table. To equal
// graph.ExteriorID marks contact with the exterior sentinel.
type NeighbourPair struct {
	From ZoneID
	To   ZoneID
}

// ZoneID is an alias kept local to the loader's external contract, so
// callers building records don't need to import graph just to spell the
// id type.
type ZoneID = graph.ZoneID

// Load materialises a graph.Graph from records and pairs. allowExterior
// gates whether any pair may reference graph.ExteriorID; when false, any
// such pair is rejected with ErrExteriorNotAllowed, matching datasets that
// have no notion of an outside (e.g. a torus or a pre-clipped subdivision).
//
// Validation is otherwise delegated to graph.Graph: non-positive area,
// negative mass, duplicate zone ids, self-pairs, and pairs referencing an
// unregistered zone id are all rejected by AddZone/AddNeighbourPair and
// surfaced here with loader-level context.
func Load(records []ZoneRecord, pairs []NeighbourPair, allowExterior bool) (*graph.Graph, error) {
	if len(records) == 0 {
		return nil, ErrNoZones
	}

	g := graph.NewGraph()
	for _, rec := range records {
		if _, err := g.AddZone(rec.ID, rec.Mass, rec.Area); err != nil {
			return nil, fmt.Errorf("loader: zone record: %w", err)
		}
	}

	for _, p := range pairs {
		if !allowExterior && (p.From == graph.ExteriorID || p.To == graph.ExteriorID) {
			return nil, fmt.Errorf("loader: pair (%d,%d): %w", p.From, p.To, ErrExteriorNotAllowed)
		}
		if err := g.AddNeighbourPair(p.From, p.To); err != nil {
			return nil, fmt.Errorf("loader: pair (%d,%d): %w", p.From, p.To, err)
		}
	}

	return g, nil
}
