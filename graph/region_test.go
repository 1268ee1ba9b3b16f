package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/density-regions/densarea/graph"
)

// chain builds a 5-zone chain A-B-C-D-E (ids 1..5) with the given masses
// and unit areas.
func chain(t *testing.T, masses [5]float64) *graph.Graph {
	t.Helper()
	g := graph.NewGraph()
	for i, m := range masses {
		_, err := g.AddZone(graph.ZoneID(i+1), m, 1)
		assert.NoError(t, err)
	}
	for i := 1; i < 5; i++ {
		assert.NoError(t, g.AddNeighbourPair(graph.ZoneID(i), graph.ZoneID(i+1)))
	}
	return g
}

func TestRegion_BindUpdatesAggregatesIncrementally(t *testing.T) {
	g := chain(t, [5]float64{100, 60, 40, 10, 5})
	r, err := g.NewRegion(1)
	assert.NoError(t, err)
	assert.Equal(t, 100.0, r.Mass())
	assert.Equal(t, 1.0, r.Area())
	assert.Equal(t, 1, r.Count())
	assert.Equal(t, 100.0*graph.DensityCoef, r.Density())

	assert.NoError(t, r.Bind(2))
	assert.Equal(t, 160.0, r.Mass())
	assert.Equal(t, 2.0, r.Area())
	assert.Equal(t, 80.0*graph.DensityCoef, r.Density())
}

func TestRegion_BindRejectsAlreadyAssigned(t *testing.T) {
	g := chain(t, [5]float64{100, 60, 40, 10, 5})
	r1, _ := g.NewRegion(1)
	r2, err := g.NewRegion(3)
	assert.NoError(t, err)

	assert.NoError(t, r1.Bind(2))
	err = r2.Bind(2)
	assert.ErrorIs(t, err, graph.ErrZoneAlreadyAssigned)
}

func TestRegion_UnbindRestoresBitIdenticalAggregates(t *testing.T) {
	g := chain(t, [5]float64{100, 60, 40, 10, 5})
	r, _ := g.NewRegion(1)

	massBefore, areaBefore, densBefore := r.Mass(), r.Area(), r.Density()

	assert.NoError(t, r.Bind(2))
	assert.NoError(t, r.Unbind(2))

	assert.Equal(t, massBefore, r.Mass())
	assert.Equal(t, areaBefore, r.Area())
	assert.Equal(t, densBefore, r.Density())
}

func TestRegion_UnbindRejectsForeignZone(t *testing.T) {
	g := chain(t, [5]float64{100, 60, 40, 10, 5})
	r, _ := g.NewRegion(1)
	err := r.Unbind(2)
	assert.ErrorIs(t, err, graph.ErrZoneNotBound)
}

func TestRegion_EraseClearsAllMembers(t *testing.T) {
	g := chain(t, [5]float64{100, 60, 40, 10, 5})
	r, _ := g.NewRegion(1)
	assert.NoError(t, r.Bind(2))
	assert.NoError(t, r.Bind(3))

	r.Erase()

	assert.True(t, r.IsEmpty())
	assert.Equal(t, 0.0, r.Mass())
	z1, _ := g.Zone(1)
	assert.False(t, z1.IsAssigned())
}

func TestRegion_MergeMovesZonesAndEmptiesOther(t *testing.T) {
	g := chain(t, [5]float64{100, 60, 40, 10, 5})
	r1, _ := g.NewRegion(1)
	r2, _ := g.NewRegion(3)
	assert.NoError(t, r2.Bind(4))

	assert.NoError(t, r1.Merge(r2))

	assert.True(t, r2.IsEmpty())
	assert.Equal(t, 150.0, r1.Mass()) // 100 + 40 + 10
	assert.Equal(t, 3, r1.Count())
	z3, _ := g.Zone(3)
	assert.Equal(t, r1.Index(), z3.RegionID())
}

func TestRegion_MergeRejectsSelf(t *testing.T) {
	g := chain(t, [5]float64{100, 60, 40, 10, 5})
	r1, _ := g.NewRegion(1)
	assert.ErrorIs(t, r1.Merge(r1), graph.ErrSelfMerge)
}

func TestRegion_NeighZonesExcludesMembersAndOptionallyExterior(t *testing.T) {
	g := chain(t, [5]float64{100, 60, 40, 10, 5})
	assert.NoError(t, g.AddNeighbourPair(1, graph.ExteriorID))
	r, _ := g.NewRegion(1)
	assert.NoError(t, r.Bind(2))

	assert.Equal(t, []graph.ZoneID{3}, r.NeighZones(false))
	assert.Equal(t, []graph.ZoneID{graph.ExteriorID, 3}, r.NeighZones(true))
}

func TestRegion_NeighRegionsExcludesSelfAndUnassigned(t *testing.T) {
	g := chain(t, [5]float64{100, 60, 40, 10, 5})
	r1, _ := g.NewRegion(1)
	r2, _ := g.NewRegion(5)
	assert.NoError(t, r1.Bind(2))

	// r1's neighbour zone 3 is unassigned: no region contributed yet.
	assert.Empty(t, r1.NeighRegions())

	assert.NoError(t, r2.Bind(4))
	assert.NoError(t, r1.Bind(3))
	// now r1 touches r2 through zone 4.
	assert.Equal(t, []graph.RegionID{r2.Index()}, r1.NeighRegions())
}

func TestZone_IsOnRegionEdgeAndNeighRegions(t *testing.T) {
	g := chain(t, [5]float64{100, 60, 40, 10, 5})
	assert.NoError(t, g.AddNeighbourPair(1, graph.ExteriorID))
	r1, _ := g.NewRegion(1)
	r2, _ := g.NewRegion(3)

	z1, _ := g.Zone(1)
	assert.True(t, g.IsOnRegionEdge(z1)) // touches exterior

	z2, _ := g.Zone(2)
	assert.True(t, g.IsOnRegionEdge(z2)) // neighbour 3 belongs to a different region
	assert.Equal(t, []graph.RegionID{r1.Index(), r2.Index()}, g.ZoneNeighRegions(z2))
}
