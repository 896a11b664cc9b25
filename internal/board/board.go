package board

import (
	"fmt"
	"slices"
	"strings"
)

// DefaultRows and DefaultCols size the stock board.
const (
	DefaultRows = 9
	DefaultCols = 9
)

// ClickHandler is invoked with the cell under the pointer on click.
type ClickHandler func(c *Cell)

// Board owns the grid and the ordered unit and hazard collections.
// It is not safe for concurrent use; all mutation happens on the UI goroutine.
type Board struct {
	Grid *Grid

	rows, cols int
	geom       Geometry
	sizer      SpriteSizer
	onClick    ClickHandler

	units      []*Unit
	hazards    []Hazard
	resolution Resolution
	initErrs   []error
}

// optionKind controls the pass in which an option is applied.
type optionKind int

const (
	optInfra  optionKind = iota // size, geometry, sprite sizes, handlers
	optUnit                     // units, after the grid exists
	optHazard                   // hazards, after units
)

// Option configures a Board during construction.
type Option struct {
	kind optionKind
	fn   func(*Board)
}

// WithSize sets the grid dimensions.
func WithSize(rows, cols int) Option {
	return Option{optInfra, func(b *Board) {
		b.rows = rows
		b.cols = cols
	}}
}

// WithGeometry sets cell size and margins.
func WithGeometry(g Geometry) Option {
	return Option{optInfra, func(b *Board) { b.geom = g }}
}

// WithSpriteSizer provides unit sprite dimensions for offset calculation.
func WithSpriteSizer(s SpriteSizer) Option {
	return Option{optInfra, func(b *Board) { b.sizer = s }}
}

// WithClickHandler sets the per-cell click handler.
func WithClickHandler(h ClickHandler) Option {
	return Option{optInfra, func(b *Board) { b.onClick = h }}
}

// WithUnit places a unit. Invalid placements are collected in InitErrors.
func WithUnit(side Side, kind UnitKind, row, col int) Option {
	return Option{optUnit, func(b *Board) {
		if err := b.AddUnit(side, kind, row, col); err != nil {
			b.initErrs = append(b.initErrs, err)
		}
	}}
}

// WithHazard adds a hazard. Invalid hazards are collected in InitErrors.
func WithHazard(h Hazard) Option {
	return Option{optHazard, func(b *Board) {
		if err := b.validateHazard(h); err != nil {
			b.initErrs = append(b.initErrs, err)
			return
		}
		b.hazards = append(b.hazards, h)
	}}
}

// New builds a board in ordered passes: infrastructure, grid, units, hazards.
// Hazards are resolved once at the end.
func New(opts ...Option) *Board {
	b := &Board{rows: DefaultRows, cols: DefaultCols, geom: DefaultGeometry}
	for _, kind := range []optionKind{optInfra, optUnit, optHazard} {
		if kind == optUnit {
			b.Grid = NewGrid(b.rows, b.cols, b.geom)
		}
		for _, o := range opts {
			if o.kind == kind {
				o.fn(b)
			}
		}
	}
	b.Refresh()
	return b
}

// InitErrors returns placement errors collected by WithUnit/WithHazard.
func (b *Board) InitErrors() []error {
	return b.initErrs
}

// AddUnit places a unit and keeps units in draw order.
func (b *Board) AddUnit(side Side, kind UnitKind, row, col int) error {
	if side >= sideCount || kind >= unitKindCount {
		return fmt.Errorf("add unit %s/%s: %w", side, kind, ErrUnknownKind)
	}
	if !b.Grid.InBounds(row, col) {
		return fmt.Errorf("add unit at (%d,%d): %w", row, col, ErrOutOfBounds)
	}
	b.units = append(b.units, newUnit(side, kind, row, col, b.geom, b.sizer))
	sortUnits(b.units)
	return nil
}

func (b *Board) validateHazard(h Hazard) error {
	if h.Kind == HazardNone || h.Kind >= hazardKindCount {
		return fmt.Errorf("hazard %s: %w", h, ErrUnknownKind)
	}
	limit := b.Grid.Rows
	if h.Axis == AxisCol {
		limit = b.Grid.Cols
	} else if h.Axis != AxisRow {
		return fmt.Errorf("hazard %s: %w", h, ErrUnknownKind)
	}
	if h.Coord < 1 || h.Coord > limit {
		return fmt.Errorf("hazard %s: %w", h, ErrOutOfBounds)
	}
	if !LevelSupported(h.Level) {
		return fmt.Errorf("hazard %s: %w", h, ErrUnknownLevel)
	}
	return nil
}

// AddHazard appends a hazard and re-applies the whole hazard list.
func (b *Board) AddHazard(h Hazard) (Resolution, error) {
	if err := b.validateHazard(h); err != nil {
		return b.resolution, err
	}
	b.hazards = append(b.hazards, h)
	return b.Refresh(), nil
}

// ReplaceHazards swaps the hazard list wholesale, e.g. on scenario reload.
// Nothing changes if any hazard is invalid.
func (b *Board) ReplaceHazards(hs []Hazard) (Resolution, error) {
	for _, h := range hs {
		if err := b.validateHazard(h); err != nil {
			return b.resolution, err
		}
	}
	b.hazards = slices.Clone(hs)
	return b.Refresh(), nil
}

// ReplaceUnits swaps every unit. Nothing changes if any placement is invalid.
func (b *Board) ReplaceUnits(us []Unit) error {
	prev := b.units
	b.units = nil
	for _, u := range us {
		if err := b.AddUnit(u.Side, u.Kind, u.Row, u.Col); err != nil {
			b.units = prev
			return err
		}
	}
	return nil
}

// Reset replaces units and hazards together. Nothing changes if any entry is invalid.
func (b *Board) Reset(us []Unit, hs []Hazard) (Resolution, error) {
	for _, h := range hs {
		if err := b.validateHazard(h); err != nil {
			return b.resolution, err
		}
	}
	if err := b.ReplaceUnits(us); err != nil {
		return b.resolution, err
	}
	b.hazards = slices.Clone(hs)
	return b.Refresh(), nil
}

// Refresh recomputes all hazard-derived cell state.
func (b *Board) Refresh() Resolution {
	b.resolution = Resolve(b.Grid, b.hazards)
	return b.resolution
}

// LastResolution returns the result of the most recent Refresh.
func (b *Board) LastResolution() Resolution {
	return b.resolution
}

// Units returns units matching pred (all when nil) in draw order.
func (b *Board) Units(pred UnitPredicate) []*Unit {
	var out []*Unit
	for _, u := range b.units {
		if pred == nil || pred(u) {
			out = append(out, u)
		}
	}
	return out
}

// Hazards returns hazards matching pred (all when nil) in insertion order.
func (b *Board) Hazards(pred HazardPredicate) []Hazard {
	var out []Hazard
	for _, h := range b.hazards {
		if pred == nil || pred(h) {
			out = append(out, h)
		}
	}
	return out
}

// UpdateHover sets the hover flag from a pointer position and reports
// whether any cell's flag changed.
func (b *Board) UpdateHover(x, y int) bool {
	changed := false
	cs := b.geom.CellSize
	for _, c := range b.Grid.Cells() {
		was := c.Hovered
		c.Hovered = c.Contains(x, y, cs)
		if c.Hovered != was {
			changed = true
		}
	}
	return changed
}

// Hovered returns the hovered cell, or nil.
func (b *Board) Hovered() *Cell {
	if hs := b.Grid.Filter(IsHovered()); len(hs) > 0 {
		return hs[0]
	}
	return nil
}

// Click resolves the hovered cell and invokes the click handler.
// It returns the clicked cell, or nil when nothing is hovered.
func (b *Board) Click() *Cell {
	c := b.Hovered()
	if c != nil && b.onClick != nil {
		b.onClick(c)
	}
	return c
}

// Geometry returns the board's pixel layout.
func (b *Board) Geometry() Geometry {
	return b.geom
}

// unitGlyph is the one-letter unit marker in text dumps; black is lower case.
func unitGlyph(u *Unit) rune {
	var r rune
	switch u.Kind {
	case UnitLeader:
		r = 'K'
	case UnitRanged:
		r = 'A'
	default:
		r = 'P'
	}
	if u.Side == SideBlack {
		r += 'a' - 'A'
	}
	return r
}

// Dump renders the board as text: one glyph per cell, units over sprites.
func (b *Board) Dump() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for c := 1; c <= b.Grid.Cols; c++ {
		fmt.Fprintf(&sb, "%d", c%10)
	}
	sb.WriteByte('\n')
	for r := 1; r <= b.Grid.Rows; r++ {
		fmt.Fprintf(&sb, "%2d ", r)
		for c := 1; c <= b.Grid.Cols; c++ {
			g := b.Grid.At(r, c).Sprite.Glyph()
			if us := b.Units(UnitAt(r, c)); len(us) > 0 {
				g = unitGlyph(us[len(us)-1])
			}
			sb.WriteRune(g)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// DescribeCell returns a short human-readable summary of a cell.
func (b *Board) DescribeCell(c *Cell) []string {
	if c == nil {
		return nil
	}
	lines := []string{
		fmt.Sprintf("cell (%d,%d)", c.Row, c.Col),
		fmt.Sprintf("hazard: %s", c.Hazard),
		fmt.Sprintf("sprite: %s", c.Sprite),
	}
	if c.Adjacent.Any() {
		var dirs []string
		for _, d := range Directions {
			if c.Adjacent.Get(d) {
				dirs = append(dirs, d.String())
			}
		}
		lines = append(lines, "linked: "+strings.Join(dirs, ","))
	}
	for _, u := range b.Units(UnitAt(c.Row, c.Col)) {
		lines = append(lines, fmt.Sprintf("unit: %s %s (%s)", u.Side, u.Kind, u.Label()))
	}
	for _, h := range b.Hazards(nil) {
		if (h.Axis == AxisRow && h.Coord == c.Row) || (h.Axis == AxisCol && h.Coord == c.Col) {
			lines = append(lines, "line: "+h.String())
		}
	}
	return lines
}
