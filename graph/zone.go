package graph

import "fmt"

// Zone is a leaf graph node: an indivisible areal unit with mass and area.
// Mass, Area and Density are fixed at construction; neighbours and region
// membership are the only mutable state, and both are managed exclusively
// by Graph and Region.
type Zone struct {
	ID   ZoneID
	Mass float64
	Area float64

	// Density is mass/area scaled by DensityCoef, computed once at
	// construction and constant for the lifetime of the zone. Zero for
	// the exterior sentinel.
	Density float64

	// neighbours is kept sorted ascending so every traversal that fans out
	// over it is deterministic without a separate sort step.
	neighbours []ZoneID

	// region is NoRegion when the zone is unassigned. The exterior
	// sentinel is always NoRegion and is never bound by any Region.
	region RegionID

	exterior bool
}

// IsExterior reports whether this zone is the graph's exterior sentinel.
func (z *Zone) IsExterior() bool { return z.exterior }

// IsAssigned reports whether the zone currently belongs to a region.
func (z *Zone) IsAssigned() bool { return z.region != NoRegion }

// RegionID returns the handle of the region this zone belongs to, or
// NoRegion if unassigned.
func (z *Zone) RegionID() RegionID { return z.region }

// Neighbours returns a defensive copy of the zone's sorted neighbour list,
// possibly including ExteriorID.
func (z *Zone) Neighbours() []ZoneID {
	out := make([]ZoneID, len(z.neighbours))
	copy(out, z.neighbours)
	return out
}

func (z *Zone) String() string {
	if z.exterior {
		return "<Exterior>"
	}
	return fmt.Sprintf("<Zone %d mass=%g area=%g dens=%g>", z.ID, z.Mass, z.Area, z.Density)
}

func addNeighbour(z *Zone, n ZoneID) {
	idx := searchZoneID(z.neighbours, n)
	if idx < len(z.neighbours) && z.neighbours[idx] == n {
		return
	}
	z.neighbours = append(z.neighbours, 0)
	copy(z.neighbours[idx+1:], z.neighbours[idx:])
	z.neighbours[idx] = n
}

// searchZoneID returns the index of the first element >= n in a sorted
// slice (like sort.Search, inlined to avoid a closure allocation on a hot
// path called once per neighbour pair).
func searchZoneID(ids []ZoneID, n ZoneID) int {
	lo, hi := 0, len(ids)
	for lo < hi {
		mid := (lo + hi) / 2
		if ids[mid] < n {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
