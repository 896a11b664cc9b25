package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid_PixelOrigins(t *testing.T) {
	g := NewGrid(9, 9, DefaultGeometry)
	require.Equal(t, 9, g.Rows)
	require.Equal(t, 9, g.Cols)
	require.Len(t, g.Cells(), 81)

	c := g.At(1, 1)
	require.NotNil(t, c)
	assert.Equal(t, 64+128, c.X)
	assert.Equal(t, 64, c.Y)

	c = g.At(3, 5)
	require.NotNil(t, c)
	assert.Equal(t, 4*32+64+128, c.X)
	assert.Equal(t, 2*32+64, c.Y)
}

func TestGrid_OutOfBounds(t *testing.T) {
	g := NewGrid(3, 3, DefaultGeometry)
	assert.Nil(t, g.At(0, 1))
	assert.Nil(t, g.At(1, 0))
	assert.Nil(t, g.At(4, 1))
	assert.Nil(t, g.At(1, 4))
	assert.Nil(t, g.Neighbor(nil, DirLeft))
}

func TestGrid_NeighborAtEdges(t *testing.T) {
	g := NewGrid(3, 3, DefaultGeometry)
	corner := g.At(1, 1)
	assert.Nil(t, g.Neighbor(corner, DirLeft))
	assert.Nil(t, g.Neighbor(corner, DirTop))
	assert.Equal(t, g.At(1, 2), g.Neighbor(corner, DirRight))
	assert.Equal(t, g.At(2, 1), g.Neighbor(corner, DirBottom))

	mid := g.At(2, 2)
	for _, d := range Directions {
		n := g.Neighbor(mid, d)
		require.NotNil(t, n, "direction %s", d)
		assert.Equal(t, mid, g.Neighbor(n, d.Opposite()), "direction %s", d)
	}
}

func TestGrid_CellAtPixel(t *testing.T) {
	g := NewGrid(9, 9, DefaultGeometry)
	c := g.At(2, 3)
	got := g.CellAtPixel(c.X+5, c.Y+31)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.Row)
	assert.Equal(t, 3, got.Col)

	// Right and bottom edges belong to the next cell.
	got = g.CellAtPixel(c.X+32, c.Y)
	require.NotNil(t, got)
	assert.Equal(t, 4, got.Col)

	assert.Nil(t, g.CellAtPixel(0, 0))
}

func TestGrid_TypedFilters(t *testing.T) {
	g := NewGrid(4, 5, DefaultGeometry)
	assert.Len(t, g.Filter(InRow(2)), 5)
	assert.Len(t, g.Filter(InCol(2)), 4)
	assert.Len(t, g.Filter(nil), 20)
	assert.Empty(t, g.Filter(InRow(99)))
	assert.Len(t, g.Filter(HasHazard(HazardNone)), 20)
	assert.Empty(t, g.Filter(Affected()))
}
