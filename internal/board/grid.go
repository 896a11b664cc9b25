package board

// Geometry describes how grid coordinates map onto screen pixels.
type Geometry struct {
	CellSize  int // square edge in pixels
	Margin    int // space above and left of the grid
	LeftSpace int // extra space left of the grid (side panel)
}

// DefaultGeometry matches the stock 9x9 board layout.
var DefaultGeometry = Geometry{CellSize: 32, Margin: 64, LeftSpace: 128}

// Direction identifies one of the four orthogonal neighbours.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirTop
	DirBottom
	dirCount // sentinel
)

// Directions lists all orthogonal directions in a fixed order.
var Directions = [dirCount]Direction{DirLeft, DirRight, DirTop, DirBottom}

// Opposite returns the direction pointing back at the caller.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirTop:
		return DirBottom
	default:
		return DirTop
	}
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirTop:
		return "top"
	case DirBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// delta returns the (row, col) step for a direction.
func (d Direction) delta() (dr, dc int) {
	switch d {
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	case DirTop:
		return -1, 0
	default:
		return 1, 0
	}
}

// Adjacency marks which neighbours carry the same hazard kind.
type Adjacency struct {
	Left, Right, Top, Bottom bool
}

// Get reports the flag for one direction.
func (a Adjacency) Get(d Direction) bool {
	switch d {
	case DirLeft:
		return a.Left
	case DirRight:
		return a.Right
	case DirTop:
		return a.Top
	default:
		return a.Bottom
	}
}

// Set writes the flag for one direction.
func (a *Adjacency) Set(d Direction, v bool) {
	switch d {
	case DirLeft:
		a.Left = v
	case DirRight:
		a.Right = v
	case DirTop:
		a.Top = v
	default:
		a.Bottom = v
	}
}

// Any reports whether at least one flag is set.
func (a Adjacency) Any() bool {
	return a.Left || a.Right || a.Top || a.Bottom
}

// Cell is one board square. Row and Col are 1-based.
type Cell struct {
	Row, Col int
	X, Y     int // pixel origin

	Hovered  bool
	Hazard   HazardKind // HazardNone when clear
	Adjacent Adjacency
	Sprite   SpriteKey
}

// clearEffect drops every hazard-derived field.
func (c *Cell) clearEffect() {
	c.Hazard = HazardNone
	c.Adjacent = Adjacency{}
	c.Sprite = SpriteNone
}

// Contains reports whether pixel (x, y) lies inside the cell.
func (c *Cell) Contains(x, y, cellSize int) bool {
	return x >= c.X && x < c.X+cellSize && y >= c.Y && y < c.Y+cellSize
}

// Grid is a fixed rows x cols array of cells, row-major.
type Grid struct {
	Rows, Cols int
	Geom       Geometry
	cells      []Cell
}

// NewGrid builds every cell once with its pixel origin.
func NewGrid(rows, cols int, geom Geometry) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	g := &Grid{Rows: rows, Cols: cols, Geom: geom, cells: make([]Cell, rows*cols)}
	for r := 1; r <= rows; r++ {
		for c := 1; c <= cols; c++ {
			cell := &g.cells[(r-1)*cols+(c-1)]
			cell.Row = r
			cell.Col = c
			cell.X = (c-1)*geom.CellSize + geom.Margin + geom.LeftSpace
			cell.Y = (r-1)*geom.CellSize + geom.Margin
			cell.Sprite = SelectSprite(cell)
		}
	}
	return g
}

// InBounds reports whether (row, col) names a cell.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 1 && row <= g.Rows && col >= 1 && col <= g.Cols
}

// At returns the cell at (row, col), or nil if out of bounds.
func (g *Grid) At(row, col int) *Cell {
	if !g.InBounds(row, col) {
		return nil
	}
	return &g.cells[(row-1)*g.Cols+(col-1)]
}

// Neighbor returns the adjacent cell in direction d, or nil at an edge.
func (g *Grid) Neighbor(c *Cell, d Direction) *Cell {
	if c == nil {
		return nil
	}
	dr, dc := d.delta()
	return g.At(c.Row+dr, c.Col+dc)
}

// Cells returns every cell in row-major order. The slice aliases the grid.
func (g *Grid) Cells() []*Cell {
	out := make([]*Cell, len(g.cells))
	for i := range g.cells {
		out[i] = &g.cells[i]
	}
	return out
}

// Filter returns the cells matching pred, in row-major order.
func (g *Grid) Filter(pred CellPredicate) []*Cell {
	var out []*Cell
	for i := range g.cells {
		if pred == nil || pred(&g.cells[i]) {
			out = append(out, &g.cells[i])
		}
	}
	return out
}

// CellAtPixel returns the cell under pixel (x, y), or nil.
func (g *Grid) CellAtPixel(x, y int) *Cell {
	for i := range g.cells {
		if g.cells[i].Contains(x, y, g.Geom.CellSize) {
			return &g.cells[i]
		}
	}
	return nil
}

// TopLeft returns the pixel origin of cell (1,1).
func (g *Grid) TopLeft() (x, y int) {
	return g.Geom.Margin + g.Geom.LeftSpace, g.Geom.Margin
}

// PixelSize returns the grid's width and height in pixels.
func (g *Grid) PixelSize() (w, h int) {
	return g.Cols * g.Geom.CellSize, g.Rows * g.Geom.CellSize
}

// CellPredicate selects cells in typed queries.
type CellPredicate func(*Cell) bool

// InRow matches cells on the given row.
func InRow(row int) CellPredicate {
	return func(c *Cell) bool { return c.Row == row }
}

// InCol matches cells on the given column.
func InCol(col int) CellPredicate {
	return func(c *Cell) bool { return c.Col == col }
}

// HasHazard matches cells carrying kind k (HazardNone matches clear cells).
func HasHazard(k HazardKind) CellPredicate {
	return func(c *Cell) bool { return c.Hazard == k }
}

// Affected matches cells carrying any hazard.
func Affected() CellPredicate {
	return func(c *Cell) bool { return c.Hazard != HazardNone }
}

// IsHovered matches the hovered cell.
func IsHovered() CellPredicate {
	return func(c *Cell) bool { return c.Hovered }
}
