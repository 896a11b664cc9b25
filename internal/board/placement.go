package board

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Side is the army a unit belongs to.
type Side uint8

const (
	SideWhite Side = iota // side A
	SideBlack             // side B
	sideCount             // sentinel
)

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "white"
	case SideBlack:
		return "black"
	default:
		return "unknown"
	}
}

// UnitKind is the role of a unit token.
type UnitKind uint8

const (
	UnitLeader UnitKind = iota // king
	UnitRanged                 // archer
	UnitBasic                  // pawn
	unitKindCount              // sentinel
)

func (k UnitKind) String() string {
	switch k {
	case UnitLeader:
		return "leader"
	case UnitRanged:
		return "ranged"
	case UnitBasic:
		return "basic"
	default:
		return "unknown"
	}
}

// HazardKind is the environmental effect on a cell.
type HazardKind uint8

const (
	HazardNone  HazardKind = iota // clear floor
	HazardLava                    // molten floor
	HazardWall                    // wall segment
	HazardCliff                   // drop-off
	hazardKindCount               // sentinel
)

func (k HazardKind) String() string {
	switch k {
	case HazardNone:
		return "none"
	case HazardLava:
		return "lava"
	case HazardWall:
		return "wall"
	case HazardCliff:
		return "cliff"
	default:
		return "unknown"
	}
}

// Axis says whether a hazard spans a row or a column.
type Axis uint8

const (
	AxisRow Axis = iota
	AxisCol
)

func (a Axis) String() string {
	if a == AxisCol {
		return "col"
	}
	return "row"
}

// ParseSide maps a scenario name onto a Side. "a" and "b" are accepted aliases.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "a":
		return SideWhite, nil
	case "black", "b":
		return SideBlack, nil
	}
	return 0, fmt.Errorf("side %q: %w", s, ErrUnknownKind)
}

// ParseUnitKind maps a scenario name onto a UnitKind.
func ParseUnitKind(s string) (UnitKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "leader", "king":
		return UnitLeader, nil
	case "ranged", "archer":
		return UnitRanged, nil
	case "basic", "pawn":
		return UnitBasic, nil
	}
	return 0, fmt.Errorf("unit kind %q: %w", s, ErrUnknownKind)
}

// ParseHazardKind maps a scenario name onto a HazardKind. "none" is rejected.
func ParseHazardKind(s string) (HazardKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lava":
		return HazardLava, nil
	case "wall":
		return HazardWall, nil
	case "cliff":
		return HazardCliff, nil
	}
	return 0, fmt.Errorf("hazard kind %q: %w", s, ErrUnknownKind)
}

// ParseAxis maps "row"/"col"/"column" onto an Axis.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "row":
		return AxisRow, nil
	case "col", "column":
		return AxisCol, nil
	}
	return 0, fmt.Errorf("axis %q: %w", s, ErrUnknownKind)
}

// unitLift raises unit sprites so their feet sit above the cell's lower edge.
const unitLift = -6

// Unit is a token placed on the board.
type Unit struct {
	Side     Side
	Kind     UnitKind
	Row, Col int

	// Pixel offset of the sprite inside its cell, and its absolute origin.
	OffsetX, OffsetY int
	X, Y             int
}

// Label returns a short tag such as "W-leader".
func (u *Unit) Label() string {
	return fmt.Sprintf("%c-%s", strings.ToUpper(u.Side.String())[0], u.Kind)
}

// SpriteSizer reports the pixel dimensions of a unit sprite.
type SpriteSizer interface {
	UnitSize(side Side, kind UnitKind) (w, h int)
}

// newUnit derives the sprite offset and origin from sprite dimensions.
func newUnit(side Side, kind UnitKind, row, col int, geom Geometry, sizer SpriteSizer) *Unit {
	w, h := geom.CellSize, geom.CellSize
	if sizer != nil {
		w, h = sizer.UnitSize(side, kind)
	}
	u := &Unit{Side: side, Kind: kind, Row: row, Col: col}
	u.OffsetX = (geom.CellSize - w) / 2
	u.OffsetY = (geom.CellSize - h) + unitLift
	u.X = (col-1)*geom.CellSize + geom.Margin + geom.LeftSpace + u.OffsetX
	u.Y = (row-1)*geom.CellSize + geom.Margin + u.OffsetY
	return u
}

// Hazard is a row- or column-spanning effect.
type Hazard struct {
	Axis  Axis
	Coord int // row number for AxisRow, column number for AxisCol
	Kind  HazardKind
	Level int
}

func (h Hazard) String() string {
	return fmt.Sprintf("%s %s %d level %d", h.Kind, h.Axis, h.Coord, h.Level)
}

// compareHazards orders by kind, then coordinate, then axis.
func compareHazards(a, b Hazard) int {
	if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Coord, b.Coord); c != 0 {
		return c
	}
	return cmp.Compare(a.Axis, b.Axis)
}

// sortedHazards returns a stably sorted copy.
func sortedHazards(hs []Hazard) []Hazard {
	out := slices.Clone(hs)
	slices.SortStableFunc(out, compareHazards)
	return out
}

// UnitPredicate selects units in typed queries.
type UnitPredicate func(*Unit) bool

// UnitsOnSide matches units of one side.
func UnitsOnSide(s Side) UnitPredicate {
	return func(u *Unit) bool { return u.Side == s }
}

// UnitAt matches the unit standing on (row, col).
func UnitAt(row, col int) UnitPredicate {
	return func(u *Unit) bool { return u.Row == row && u.Col == col }
}

// HazardPredicate selects hazards in typed queries.
type HazardPredicate func(Hazard) bool

// HazardsOfKind matches hazards of kind k.
func HazardsOfKind(k HazardKind) HazardPredicate {
	return func(h Hazard) bool { return h.Kind == k }
}

// HazardsOn matches hazards spanning the given axis line.
func HazardsOn(axis Axis, coord int) HazardPredicate {
	return func(h Hazard) bool { return h.Axis == axis && h.Coord == coord }
}

// sortUnits keeps draw order: row ascending, then column.
func sortUnits(us []*Unit) {
	slices.SortStableFunc(us, func(a, b *Unit) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Col, b.Col)
	})
}
