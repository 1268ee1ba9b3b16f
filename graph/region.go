package graph

import (
	"fmt"
	"sort"
)

// Region is an aggregator owning a dynamic subset of a Graph's zones, with
// cached sums kept in sync on every Bind/Unbind so density queries never
// need to walk the membership set. A Region with Count()==0 is logically
// dead (created by Erase or never-grown-past-seed-then-erased); its slot
// stays in the graph's arena for the life of the run.
type Region struct {
	idx   RegionID
	graph *Graph

	// label is the region's public id: the seed zone's id until Relabel
	// sets it to the most massive member's id.
	label ZoneID

	zones map[ZoneID]struct{}

	mass, area float64
	count      int
	density    float64

	cuts *cutAnalysis
}

// Index returns this region's stable arena handle.
func (r *Region) Index() RegionID { return r.idx }

// ID returns the region's current public label.
func (r *Region) ID() ZoneID { return r.label }

// Mass returns the cached total mass of the region's members.
func (r *Region) Mass() float64 { return r.mass }

// Area returns the cached total area of the region's members.
func (r *Region) Area() float64 { return r.area }

// Count returns the number of member zones.
func (r *Region) Count() int { return r.count }

// Density returns mass/area scaled by DensityCoef, or 0 when empty.
func (r *Region) Density() float64 { return r.density }

// IsEmpty reports whether the region currently has no members.
func (r *Region) IsEmpty() bool { return r.count == 0 }

// Has reports whether zone id is currently bound to this region.
func (r *Region) Has(id ZoneID) bool {
	_, ok := r.zones[id]
	return ok
}

func (r *Region) String() string {
	return fmt.Sprintf("<Region %d (count=%d mass=%g area=%g dens=%g)>", r.label, r.count, r.mass, r.area, r.density)
}

// Bind adds zone id to the region. The zone must exist and be currently
// unassigned. Cached aggregates and the articulation-point memo are
// updated/invalidated synchronously.
func (r *Region) Bind(id ZoneID) error {
	z, ok := r.graph.zones[id]
	if !ok {
		return fmt.Errorf("graph: region %d: bind zone %d: %w", r.idx, id, ErrUnknownZone)
	}
	if z.IsAssigned() {
		return fmt.Errorf("graph: region %d: bind zone %d: %w", r.idx, id, ErrZoneAlreadyAssigned)
	}

	z.region = r.idx
	r.zones[id] = struct{}{}
	r.mass += z.Mass
	r.area += z.Area
	r.count++
	r.refreshDensity()
	r.cuts = nil

	return nil
}

// Unbind removes zone id from the region. The zone must currently belong
// to this region.
func (r *Region) Unbind(id ZoneID) error {
	z, ok := r.graph.zones[id]
	if !ok {
		return fmt.Errorf("graph: region %d: unbind zone %d: %w", r.idx, id, ErrUnknownZone)
	}
	if _, member := r.zones[id]; !member || z.region != r.idx {
		return fmt.Errorf("graph: region %d: unbind zone %d: %w", r.idx, id, ErrZoneNotBound)
	}

	z.region = NoRegion
	delete(r.zones, id)
	r.mass -= z.Mass
	r.area -= z.Area
	r.count--
	r.refreshDensity()
	r.cuts = nil

	return nil
}

// Erase unbinds every member, leaving the region empty and inert.
func (r *Region) Erase() {
	for _, id := range r.sortedZoneIDs() {
		_ = r.Unbind(id)
	}
}

// Merge moves every zone of other into r; other ends empty. The final
// region id is decided later by Relabel, not by Merge.
func (r *Region) Merge(other *Region) error {
	if other == r {
		return fmt.Errorf("graph: region %d: %w", r.idx, ErrSelfMerge)
	}
	for _, id := range other.sortedZoneIDs() {
		if err := other.Unbind(id); err != nil {
			return err
		}
		if err := r.Bind(id); err != nil {
			return err
		}
	}
	return nil
}

// sortedZoneIDs returns the region's members in ascending id order, the
// reference order for any operation whose outcome depends on iteration
// (Erase, Merge, cut analysis, connected-component enumeration).
func (r *Region) sortedZoneIDs() []ZoneID {
	out := make([]ZoneID, 0, len(r.zones))
	for id := range r.zones {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (r *Region) refreshDensity() {
	if r.count > 0 {
		r.density = r.mass / r.area * DensityCoef
	} else {
		r.density = 0
	}
}

// NeighZones returns the union of all members' neighbours, minus the
// members themselves, sorted ascending. When includeExterior is false the
// exterior sentinel is dropped from the result.
func (r *Region) NeighZones(includeExterior bool) []ZoneID {
	seen := make(map[ZoneID]struct{})
	for id := range r.zones {
		z := r.graph.mustZone(id)
		for _, n := range z.neighbours {
			if _, member := r.zones[n]; member {
				continue
			}
			if n == ExteriorID && !includeExterior {
				continue
			}
			seen[n] = struct{}{}
		}
	}

	out := make([]ZoneID, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// NeighRegions returns the distinct regions (excluding self and the
// "unassigned" case) adjacent to this region through a shared zone pair.
func (r *Region) NeighRegions() []RegionID {
	seen := make(map[RegionID]struct{})
	for _, id := range r.NeighZones(false) {
		z := r.graph.mustZone(id)
		if z.region != NoRegion && z.region != r.idx {
			seen[z.region] = struct{}{}
		}
	}

	out := make([]RegionID, 0, len(seen))
	for rid := range seen {
		out = append(out, rid)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
