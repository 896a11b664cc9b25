package board

import "math"

// Band is an inclusive coordinate range along a hazard's orthogonal axis.
type Band struct {
	Lo, Hi int
}

// Contains reports whether n lies inside the band.
func (b Band) Contains(n int) bool {
	return n >= b.Lo && n <= b.Hi
}

// LevelBands maps an intensity level to the bands it covers.
// Levels missing from the table cover nothing.
var LevelBands = map[int][]Band{
	1: {{Lo: 4, Hi: 6}},
	2: {{Lo: math.MinInt, Hi: 2}, {Lo: 4, Hi: 6}, {Lo: 8, Hi: math.MaxInt}},
}

// LevelSupported reports whether level has a coverage band.
func LevelSupported(level int) bool {
	_, ok := LevelBands[level]
	return ok
}

// covers reports whether orthogonal coordinate n is inside any band of level.
func covers(level, n int) bool {
	for _, b := range LevelBands[level] {
		if b.Contains(n) {
			return true
		}
	}
	return false
}

// Resolution summarises one resolver pass.
type Resolution struct {
	Applied int      // hazards that were applied
	Skipped []Hazard // hazards whose level has no band
	Covered int      // cells carrying a hazard after the pass
}

// Footprint returns the cells a hazard covers on g, in row-major order.
func Footprint(g *Grid, h Hazard) []*Cell {
	if !LevelSupported(h.Level) {
		return nil
	}
	var line []*Cell
	if h.Axis == AxisRow {
		line = g.Filter(InRow(h.Coord))
	} else {
		line = g.Filter(InCol(h.Coord))
	}
	out := line[:0]
	for _, c := range line {
		ortho := c.Col
		if h.Axis == AxisCol {
			ortho = c.Row
		}
		if covers(h.Level, ortho) {
			out = append(out, c)
		}
	}
	return out
}

// Resolve recomputes every cell's hazard kind, adjacency flags and sprite
// from scratch. Hazards are applied in kind, coordinate, axis order.
func Resolve(g *Grid, hazards []Hazard) Resolution {
	var res Resolution
	for i := range g.cells {
		g.cells[i].clearEffect()
	}

	for _, h := range sortedHazards(hazards) {
		if !LevelSupported(h.Level) {
			res.Skipped = append(res.Skipped, h)
			continue
		}
		res.Applied++
		for _, c := range Footprint(g, h) {
			applyToCell(g, c, h.Kind)
		}
	}

	for i := range g.cells {
		c := &g.cells[i]
		c.Sprite = SelectSprite(c)
		if c.Hazard != HazardNone {
			res.Covered++
		}
	}
	return res
}

// applyToCell sets kind on c and links it with same-kind neighbours.
// A cell switching kind first drops its links so flags never point at a
// neighbour of a different kind.
func applyToCell(g *Grid, c *Cell, kind HazardKind) {
	if c.Hazard != HazardNone && c.Hazard != kind {
		for _, d := range Directions {
			if !c.Adjacent.Get(d) {
				continue
			}
			if n := g.Neighbor(c, d); n != nil {
				n.Adjacent.Set(d.Opposite(), false)
			}
		}
		c.Adjacent = Adjacency{}
	}
	c.Hazard = kind

	for _, d := range Directions {
		n := g.Neighbor(c, d)
		if n == nil || n.Hazard != kind {
			continue
		}
		c.Adjacent.Set(d, true)
		n.Adjacent.Set(d.Opposite(), true)
	}
}
