package graph

import (
	"fmt"
)

// Graph is the in-memory zone/region arena. Zones are created once and
// never removed; regions are appended to an arena and may later be
// emptied (erase) but keep their slot (and RegionID) for the life of a
// run. There is no locking: a Graph is mutated by exactly one goroutine.
type Graph struct {
	zones   map[ZoneID]*Zone
	order   []ZoneID // sorted, non-exterior zone ids
	regions []*Region
}

// NewGraph returns an empty Graph with its exterior sentinel already
// wired in.
func NewGraph() *Graph {
	g := &Graph{zones: make(map[ZoneID]*Zone)}
	g.zones[ExteriorID] = &Zone{ID: ExteriorID, region: NoRegion, exterior: true}
	return g
}

// AddZone registers a new zone. area must be strictly positive and mass
// non-negative; the zone id must not collide with an existing zone or
// with ExteriorID.
func (g *Graph) AddZone(id ZoneID, mass, area float64) (*Zone, error) {
	if id == ExteriorID {
		return nil, ErrReservedZoneID
	}
	if area <= 0 {
		return nil, fmt.Errorf("graph: zone %d: %w", id, ErrInvalidArea)
	}
	if mass < 0 {
		return nil, fmt.Errorf("graph: zone %d: %w", id, ErrInvalidMass)
	}
	if _, exists := g.zones[id]; exists {
		return nil, fmt.Errorf("graph: zone %d: %w", id, ErrDuplicateZone)
	}

	z := &Zone{
		ID:      id,
		Mass:    mass,
		Area:    area,
		Density: mass / area * DensityCoef,
		region:  NoRegion,
	}
	g.zones[id] = z

	idx := searchZoneID(g.order, id)
	g.order = append(g.order, 0)
	copy(g.order[idx+1:], g.order[idx:])
	g.order[idx] = id

	return z, nil
}

// AddNeighbourPair records an undirected adjacency between a and b. One of
// the two (never both) may be ExteriorID to record contact with the
// exterior. The exterior sentinel never gains neighbours of its own — only
// the real zone's neighbour list is updated. Calling this more than once
// for the same pair is a no-op.
func (g *Graph) AddNeighbourPair(a, b ZoneID) error {
	if a == b {
		return fmt.Errorf("graph: %d: %w", a, ErrSelfNeighbour)
	}
	za, aok := g.zones[a]
	if !aok {
		return fmt.Errorf("graph: neighbour pair references unknown zone %d: %w", a, ErrUnknownZone)
	}
	zb, bok := g.zones[b]
	if !bok {
		return fmt.Errorf("graph: neighbour pair references unknown zone %d: %w", b, ErrUnknownZone)
	}

	if a != ExteriorID {
		addNeighbour(za, b)
	}
	if b != ExteriorID {
		addNeighbour(zb, a)
	}

	return nil
}

// Zone returns the zone registered under id (ExteriorID included) and
// whether it exists.
func (g *Graph) Zone(id ZoneID) (*Zone, bool) {
	z, ok := g.zones[id]
	return z, ok
}

// mustZone is used internally once an id is already known to be valid
// (e.g. it came out of a neighbour list or a region's own membership set).
// A miss here means the graph's own invariants broke, not caller misuse.
func (g *Graph) mustZone(id ZoneID) *Zone {
	z, ok := g.zones[id]
	if !ok {
		panic(fmt.Sprintf("graph: invariant violated: zone %d vanished from the arena", id))
	}
	return z
}

// SortedZoneIDs returns every non-exterior zone id in ascending order.
// The reference iteration order for seeding and other decision points
// whose outcome must be reproducible.
func (g *Graph) SortedZoneIDs() []ZoneID {
	out := make([]ZoneID, len(g.order))
	copy(out, g.order)
	return out
}

// ZoneCount returns the number of non-exterior zones.
func (g *Graph) ZoneCount() int { return len(g.order) }

// NewRegion allocates a new region seeded with zone seed, which must be
// registered and currently unassigned.
func (g *Graph) NewRegion(seed ZoneID) (*Region, error) {
	z, ok := g.zones[seed]
	if !ok {
		return nil, fmt.Errorf("graph: seed zone %d: %w", seed, ErrUnknownZone)
	}
	if z.IsAssigned() {
		return nil, fmt.Errorf("graph: seed zone %d: %w", seed, ErrZoneAlreadyAssigned)
	}

	r := &Region{
		idx:   RegionID(len(g.regions)),
		graph: g,
		label: seed,
		zones: make(map[ZoneID]struct{}),
	}
	g.regions = append(g.regions, r)
	if err := r.Bind(seed); err != nil {
		return nil, err
	}

	return r, nil
}

// Region returns the region at handle idx.
func (g *Graph) Region(idx RegionID) *Region {
	if idx < 0 || int(idx) >= len(g.regions) {
		return nil
	}
	return g.regions[idx]
}

// Regions returns every region in the arena, in creation order, including
// ones emptied by Erase. Callers filter on Region.IsEmpty as needed.
func (g *Graph) Regions() []*Region {
	out := make([]*Region, len(g.regions))
	copy(out, g.regions)
	return out
}

// VerifyInvariants checks the universal invariants that must hold at any
// quiescent point: zone/region back-pointer agreement, cached-aggregate
// correctness, and region connectedness. It never panics — a violation
// indicates a bug in this package and is reported as an error for the
// caller (typically a test or an internal consistency pass) to surface.
func (g *Graph) VerifyInvariants() error {
	for _, id := range g.order {
		z := g.zones[id]
		if z.region == NoRegion {
			continue
		}
		r := g.Region(z.region)
		if r == nil {
			return fmt.Errorf("graph: zone %d points at missing region %d", id, z.region)
		}
		if _, ok := r.zones[id]; !ok {
			return fmt.Errorf("graph: zone %d claims region %d but is not a member", id, z.region)
		}
	}

	for _, r := range g.regions {
		var mass, area float64
		for id := range r.zones {
			z := g.mustZone(id)
			if z.region != r.idx {
				return fmt.Errorf("graph: region %d member zone %d disagrees on region", r.idx, id)
			}
			mass += z.Mass
			area += z.Area
		}
		if r.count != len(r.zones) {
			return fmt.Errorf("graph: region %d count %d != len(zones) %d", r.idx, r.count, len(r.zones))
		}
		if !floatsClose(mass, r.mass) {
			return fmt.Errorf("graph: region %d cached mass %g != recomputed %g", r.idx, r.mass, mass)
		}
		if !floatsClose(area, r.area) {
			return fmt.Errorf("graph: region %d cached area %g != recomputed %g", r.idx, r.area, area)
		}
		if !r.IsEmpty() && !r.checkConnected() {
			return fmt.Errorf("graph: region %d is not connected", r.idx)
		}
	}

	return nil
}

func floatsClose(a, b float64) bool {
	const eps = 1e-6
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps*(1+absFloat(a)+absFloat(b))
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
