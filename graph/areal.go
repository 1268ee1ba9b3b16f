package graph

// This file holds the density-domain growth rules layered directly onto
// Region. A generic-region-plus-subclass split would need virtual dispatch
// for a single concrete cache shape; since density is the only attribute
// family this graph ever aggregates, the predicates live straight on
// Region instead.

// IsAccepted reports whether this region, with zone id hypothetically
// added, would still meet density threshold thr.
func (r *Region) IsAccepted(id ZoneID, thr float64) bool {
	z := r.graph.mustZone(id)
	return (r.mass+z.Mass)/(r.area+z.Area)*DensityCoef >= thr
}

// NextZone picks the next accretion candidate among the region's current
// neighbour zones (exterior excluded).
//
//   - No neighbours: returns (0, false).
//   - Exactly one neighbour: returns it unconditionally.
//   - Otherwise, the densest neighbour (ties broken by lowest id) is the
//     default answer. When mergeEnclaves is true and claiming that zone
//     would trap a pocket of unassigned zones behind it, the group density
//     of {densest} ∪ potentialEnclaves is compared against the next
//     candidate's density; the densest zone is still returned if the
//     group density holds up (ties favour accretion), otherwise growth
//     stops here ((0, false)).
func (r *Region) NextZone(mergeEnclaves bool) (ZoneID, bool) {
	neighbours := r.NeighZones(false)
	if len(neighbours) == 0 {
		return 0, false
	}
	if len(neighbours) == 1 {
		return neighbours[0], true
	}

	densest := densestZone(r.graph, neighbours)
	if !mergeEnclaves {
		return densest, true
	}

	trapped := r.PotentialEnclaves([]ZoneID{densest})
	if len(trapped) == 0 {
		return densest, true
	}

	group := make([]ZoneID, 0, len(trapped)+1)
	group = append(group, densest)
	group = append(group, trapped...)
	groupDensity := densityOf(r.graph, group)

	rest := removeZoneID(neighbours, densest)
	nextDensest := r.graph.mustZone(densestZone(r.graph, rest))
	if groupDensity >= nextDensest.Density {
		return densest, true
	}

	return 0, false
}

// Relabel sets the region's id to the id of the member zone with the
// largest mass (ties broken by lowest id, since members are scanned in
// ascending order and only a strictly larger mass replaces the leader).
func (r *Region) Relabel() {
	if r.count == 0 {
		return
	}
	ids := r.sortedZoneIDs()
	best := ids[0]
	bestMass := r.graph.mustZone(best).Mass
	for _, id := range ids[1:] {
		m := r.graph.mustZone(id).Mass
		if m > bestMass {
			best = id
			bestMass = m
		}
	}
	r.label = best
}

// densestZone returns the id with the highest Density among ids (which
// must be sorted ascending and non-empty); ties favour the lowest id.
func densestZone(g *Graph, ids []ZoneID) ZoneID {
	best := ids[0]
	bestDensity := g.mustZone(best).Density
	for _, id := range ids[1:] {
		d := g.mustZone(id).Density
		if d > bestDensity {
			best = id
			bestDensity = d
		}
	}
	return best
}

// densityOf returns the group density (sum mass / sum area, scaled) of
// the given zones.
func densityOf(g *Graph, ids []ZoneID) float64 {
	var mass, area float64
	for _, id := range ids {
		z := g.mustZone(id)
		mass += z.Mass
		area += z.Area
	}
	if area == 0 {
		return 0
	}
	return mass / area * DensityCoef
}

func removeZoneID(ids []ZoneID, target ZoneID) []ZoneID {
	out := make([]ZoneID, 0, len(ids)-1)
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}
