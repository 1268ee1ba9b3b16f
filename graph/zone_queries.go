package graph

import "sort"

// ZoneNeighRegions returns the distinct regions of z's non-exterior
// neighbours, dropping unassigned neighbours.
func (g *Graph) ZoneNeighRegions(z *Zone) []RegionID {
	seen := make(map[RegionID]struct{})
	for _, n := range z.neighbours {
		if n == ExteriorID {
			continue
		}
		nz := g.mustZone(n)
		if nz.region != NoRegion {
			seen[nz.region] = struct{}{}
		}
	}

	out := make([]RegionID, 0, len(seen))
	for rid := range seen {
		out = append(out, rid)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// IsOnRegionEdge reports whether z has any neighbour that is the exterior
// sentinel or belongs to a different region than z (including "no
// region" as different).
func (g *Graph) IsOnRegionEdge(z *Zone) bool {
	for _, n := range z.neighbours {
		if n == ExteriorID {
			return true
		}
		nz := g.mustZone(n)
		if nz.region != z.region {
			return true
		}
	}
	return false
}
