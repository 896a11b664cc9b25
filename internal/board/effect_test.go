package board

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cellState struct {
	Hazard   HazardKind
	Adjacent Adjacency
	Sprite   SpriteKey
}

func snapshot(g *Grid) []cellState {
	out := make([]cellState, 0, g.Rows*g.Cols)
	for _, c := range g.Cells() {
		out = append(out, cellState{c.Hazard, c.Adjacent, c.Sprite})
	}
	return out
}

func covered(g *Grid, pred CellPredicate) []int {
	var out []int
	for _, c := range g.Filter(pred) {
		if c.Hazard != HazardNone {
			out = append(out, c.Row*10+c.Col)
		}
	}
	return out
}

func TestResolve_NoHazardsClearsBoard(t *testing.T) {
	g := NewGrid(9, 9, DefaultGeometry)
	Resolve(g, []Hazard{{Axis: AxisRow, Coord: 5, Kind: HazardLava, Level: 2}})
	require.NotEmpty(t, g.Filter(Affected()))

	res := Resolve(g, nil)
	assert.Zero(t, res.Applied)
	assert.Zero(t, res.Covered)
	for _, c := range g.Cells() {
		assert.Equal(t, HazardNone, c.Hazard, "cell (%d,%d)", c.Row, c.Col)
		assert.False(t, c.Adjacent.Any(), "cell (%d,%d)", c.Row, c.Col)
	}
}

func TestResolve_LevelOneRowCoversMiddleBand(t *testing.T) {
	g := NewGrid(9, 9, DefaultGeometry)
	res := Resolve(g, []Hazard{{Axis: AxisRow, Coord: 3, Kind: HazardCliff, Level: 1}})
	assert.Equal(t, 1, res.Applied)
	assert.Equal(t, 3, res.Covered)
	assert.Equal(t, []int{34, 35, 36}, covered(g, InRow(3)))
	assert.Len(t, g.Filter(Affected()), 3)
}

func TestResolve_LevelTwoColumnSkipsTransitionBands(t *testing.T) {
	g := NewGrid(9, 9, DefaultGeometry)
	Resolve(g, []Hazard{{Axis: AxisCol, Coord: 6, Kind: HazardLava, Level: 2}})

	var rows []int
	for _, c := range g.Filter(InCol(6)) {
		if c.Hazard == HazardLava {
			rows = append(rows, c.Row)
		}
	}
	assert.Equal(t, []int{1, 2, 4, 5, 6, 8, 9}, rows)
	assert.Equal(t, HazardNone, g.At(3, 6).Hazard)
	assert.Equal(t, HazardNone, g.At(7, 6).Hazard)
}

func TestResolve_UnknownLevelSkipped(t *testing.T) {
	g := NewGrid(9, 9, DefaultGeometry)
	bad := Hazard{Axis: AxisRow, Coord: 5, Kind: HazardWall, Level: 3}
	res := Resolve(g, []Hazard{bad, {Axis: AxisRow, Coord: 1, Kind: HazardWall, Level: 0}})
	assert.Zero(t, res.Applied)
	assert.Len(t, res.Skipped, 2)
	assert.Empty(t, g.Filter(Affected()))
}

func TestResolve_AdjacencyIsSymmetric(t *testing.T) {
	g := NewGrid(9, 9, DefaultGeometry)
	Resolve(g, []Hazard{
		{Axis: AxisRow, Coord: 5, Kind: HazardWall, Level: 2},
		{Axis: AxisCol, Coord: 5, Kind: HazardWall, Level: 1},
		{Axis: AxisRow, Coord: 4, Kind: HazardLava, Level: 1},
		{Axis: AxisCol, Coord: 2, Kind: HazardCliff, Level: 2},
	})
	for _, c := range g.Cells() {
		for _, d := range Directions {
			if !c.Adjacent.Get(d) {
				continue
			}
			n := g.Neighbor(c, d)
			require.NotNil(t, n, "cell (%d,%d) flags %s at an edge", c.Row, c.Col, d)
			assert.True(t, n.Adjacent.Get(d.Opposite()),
				"cell (%d,%d) %s set but (%d,%d) %s not", c.Row, c.Col, d, n.Row, n.Col, d.Opposite())
		}
	}
}

func TestResolve_FlagsMatchFinalKinds(t *testing.T) {
	hazards := []Hazard{
		{Axis: AxisRow, Coord: 5, Kind: HazardLava, Level: 1},
		{Axis: AxisCol, Coord: 5, Kind: HazardWall, Level: 2},
		{Axis: AxisRow, Coord: 6, Kind: HazardLava, Level: 2},
		{Axis: AxisCol, Coord: 4, Kind: HazardCliff, Level: 1},
		{Axis: AxisRow, Coord: 2, Kind: HazardWall, Level: 2},
	}
	g := NewGrid(9, 9, DefaultGeometry)
	Resolve(g, hazards)

	for _, c := range g.Cells() {
		for _, d := range Directions {
			n := g.Neighbor(c, d)
			want := c.Hazard != HazardNone && n != nil && n.Hazard == c.Hazard
			assert.Equal(t, want, c.Adjacent.Get(d), "cell (%d,%d) dir %s", c.Row, c.Col, d)
		}
	}
}

func TestResolve_OrderIndependent(t *testing.T) {
	hazards := []Hazard{
		{Axis: AxisRow, Coord: 5, Kind: HazardLava, Level: 1},
		{Axis: AxisCol, Coord: 5, Kind: HazardWall, Level: 2},
		{Axis: AxisRow, Coord: 6, Kind: HazardLava, Level: 2},
		{Axis: AxisCol, Coord: 4, Kind: HazardCliff, Level: 1},
		{Axis: AxisRow, Coord: 4, Kind: HazardWall, Level: 1},
		{Axis: AxisCol, Coord: 6, Kind: HazardWall, Level: 1},
	}
	g := NewGrid(9, 9, DefaultGeometry)
	Resolve(g, hazards)
	want := snapshot(g)

	rng := rand.New(rand.NewSource(7)) // #nosec G404 -- test shuffle
	for i := 0; i < 20; i++ {
		shuffled := append([]Hazard(nil), hazards...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		g2 := NewGrid(9, 9, DefaultGeometry)
		Resolve(g2, shuffled)
		require.Equal(t, want, snapshot(g2), "shuffle %d: %v", i, shuffled)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	hazards := []Hazard{
		{Axis: AxisRow, Coord: 5, Kind: HazardWall, Level: 1},
		{Axis: AxisCol, Coord: 5, Kind: HazardLava, Level: 2},
	}
	g := NewGrid(9, 9, DefaultGeometry)
	Resolve(g, hazards)
	first := snapshot(g)
	Resolve(g, hazards)
	assert.Equal(t, first, snapshot(g))
}

func TestResolve_DoesNotReorderCallerSlice(t *testing.T) {
	hazards := []Hazard{
		{Axis: AxisRow, Coord: 9, Kind: HazardCliff, Level: 1},
		{Axis: AxisRow, Coord: 1, Kind: HazardLava, Level: 1},
	}
	Resolve(NewGrid(9, 9, DefaultGeometry), hazards)
	assert.Equal(t, HazardCliff, hazards[0].Kind)
}

func TestSortedHazards_KindThenCoord(t *testing.T) {
	in := []Hazard{
		{Axis: AxisRow, Coord: 7, Kind: HazardWall, Level: 1},
		{Axis: AxisCol, Coord: 2, Kind: HazardCliff, Level: 1},
		{Axis: AxisCol, Coord: 3, Kind: HazardWall, Level: 1},
		{Axis: AxisRow, Coord: 8, Kind: HazardLava, Level: 1},
	}
	out := sortedHazards(in)
	got := make([]HazardKind, len(out))
	coords := make([]int, len(out))
	for i, h := range out {
		got[i] = h.Kind
		coords[i] = h.Coord
	}
	assert.Equal(t, []HazardKind{HazardLava, HazardWall, HazardWall, HazardCliff}, got)
	assert.Equal(t, []int{8, 3, 7, 2}, coords)
}

func TestFootprint(t *testing.T) {
	g := NewGrid(9, 9, DefaultGeometry)
	fp := Footprint(g, Hazard{Axis: AxisCol, Coord: 2, Kind: HazardLava, Level: 1})
	require.Len(t, fp, 3)
	for i, c := range fp {
		assert.Equal(t, 2, c.Col)
		assert.Equal(t, 4+i, c.Row)
	}
	assert.Nil(t, Footprint(g, Hazard{Axis: AxisCol, Coord: 2, Kind: HazardLava, Level: 5}))
}
