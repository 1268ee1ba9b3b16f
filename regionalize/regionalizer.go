package regionalize

import (
	"fmt"

	"github.com/density-regions/densarea/graph"
)

// Run executes the five-phase algorithm over g and returns the final
// per-zone assignment. g is mutated in place; on any error the caller
// must discard it rather than trust partial assignments, since the
// algorithm gives no partial-failure guarantee — it either produces a
// complete labelling or reports the input defect that stopped it.
func Run(g *graph.Graph, opts Options, logger Logger) (Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = noopLogger{}
	}

	regions, err := seed(g, opts.ThresholdDensity)
	if err != nil {
		return nil, fmt.Errorf("regionalize: seed: %w", err)
	}

	for _, r := range regions {
		if r.IsEmpty() {
			continue // already absorbed by an earlier region's growth
		}
		if err := grow(g, r, opts.ThresholdDensity, opts.MergeEnclaves); err != nil {
			return nil, fmt.Errorf("regionalize: grow region %d: %w", r.ID(), err)
		}
	}

	if err := mergeAdjacent(g, regions); err != nil {
		return nil, fmt.Errorf("regionalize: merge adjacent: %w", err)
	}

	eraseSmall(regions, opts.MinPopulation)

	warnUnderdense(regions, opts.ThresholdDensity, logger)

	for _, r := range regions {
		if !r.IsEmpty() {
			r.Relabel()
		}
	}

	assertInvariants(g)

	return newResult(g), nil
}

// seed creates one singleton region per zone whose own density already
// meets the threshold, in ascending zone-id order. Growth outcomes depend
// on traversal order, so every decision point in this package iterates in
// the same ascending-id order for reproducibility.
func seed(g *graph.Graph, thr float64) ([]*graph.Region, error) {
	var regions []*graph.Region
	for _, id := range g.SortedZoneIDs() {
		z, _ := g.Zone(id)
		if z.IsAssigned() || z.Density < thr {
			continue
		}
		r, err := g.NewRegion(id)
		if err != nil {
			return nil, err
		}
		regions = append(regions, r)
	}
	return regions, nil
}

// grow repeatedly advances r until NextZone reports no more candidates.
// A candidate already claimed by another region causes that region to be
// absorbed in full (r.Merge); otherwise r binds it if doing so keeps the
// region's density at or above thr.
func grow(g *graph.Graph, r *graph.Region, thr float64, mergeEnclaves bool) error {
	for {
		candidate, ok := r.NextZone(mergeEnclaves)
		if !ok {
			return nil
		}

		zone, exists := g.Zone(candidate)
		if !exists {
			panic(fmt.Sprintf("regionalize: internal invariant violation: region %d: NextZone returned unregistered zone %d", r.ID(), candidate))
		}

		if zone.IsAssigned() {
			other := g.Region(zone.RegionID())
			if other == r {
				panic(fmt.Sprintf("regionalize: internal invariant violation: region %d: NextZone returned a zone already bound to itself", r.ID()))
			}
			if err := r.Merge(other); err != nil {
				return err
			}
			continue
		}

		if !r.IsAccepted(candidate, thr) {
			return nil
		}
		if err := r.Bind(candidate); err != nil {
			return err
		}
		if mergeEnclaves {
			if err := r.IncludeEnclaves(); err != nil {
				return err
			}
		}
	}
}

// mergeAdjacent coalesces regions that became neighbours purely through
// growth, iterating to a fixpoint: a single adjacency pass can miss
// newly-adjacent pairs created by an earlier merge within that same pass,
// so this keeps scanning until no surviving region reports any neighbour
// region.
func mergeAdjacent(g *graph.Graph, regions []*graph.Region) error {
	for {
		changed := false
		for _, r := range regions {
			if r.IsEmpty() {
				continue
			}
			for {
				neighbours := r.NeighRegions()
				if len(neighbours) == 0 {
					break
				}
				other := g.Region(neighbours[0])
				if err := r.Merge(other); err != nil {
					return err
				}
				changed = true
			}
		}
		if !changed {
			return nil
		}
	}
}

// eraseSmall empties every surviving region whose mass falls short of
// minPop, returning its zones to unassigned.
func eraseSmall(regions []*graph.Region, minPop float64) {
	for _, r := range regions {
		if !r.IsEmpty() && r.Mass() < minPop {
			r.Erase()
		}
	}
}

// warnUnderdense reports, without failing the run, any surviving region
// whose density fell below thr — a region reaches this state only via
// enclave absorption, which binds a trapped zone unconditionally with no
// density check.
func warnUnderdense(regions []*graph.Region, thr float64, logger Logger) {
	for _, r := range regions {
		if !r.IsEmpty() && r.Density() < thr {
			logger.Warnf("region %d: density %g below threshold %g after merge/prune", r.ID(), r.Density(), thr)
		}
	}
}

// assertInvariants panics if g's universal invariants no longer hold.
// A violation here is a bug in this package, never a caller input error,
// so it is never returned as a normal error.
func assertInvariants(g *graph.Graph) {
	if err := g.VerifyInvariants(); err != nil {
		panic(fmt.Sprintf("regionalize: internal invariant violation: %v", err))
	}
}
