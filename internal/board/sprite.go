package board

// SpriteKey names one piece of cell artwork.
type SpriteKey uint8

const (
	SpriteNone       SpriteKey = iota // not resolved yet
	SpriteFloorLight                  // clear floor, odd parity
	SpriteFloorDark                   // clear floor, even parity
	SpriteLava                        // lava surface
	SpriteLavaBottom                  // lava with lava directly above
	SpriteWallSolo                    // isolated wall
	SpriteWallLeft                    // left end cap of a wall run
	SpriteWallRight                   // right end cap of a wall run
	SpriteWall                        // middle wall segment
	SpriteCliff                       // cliff edge
	spriteKeyCount                    // sentinel
)

// spriteNames is the asset name for each key.
var spriteNames = [spriteKeyCount]string{
	SpriteNone:       "",
	SpriteFloorLight: "floorLight",
	SpriteFloorDark:  "floorDark",
	SpriteLava:       "floorLava",
	SpriteLavaBottom: "floorLavaBottom",
	SpriteWallSolo:   "floorWallSolo",
	SpriteWallLeft:   "floorWallLeft",
	SpriteWallRight:  "floorWallRight",
	SpriteWall:       "floorWall",
	SpriteCliff:      "floorCliff",
}

// Name returns the asset name for k.
func (k SpriteKey) Name() string {
	if k >= spriteKeyCount {
		return ""
	}
	return spriteNames[k]
}

func (k SpriteKey) String() string {
	if n := k.Name(); n != "" {
		return n
	}
	return "none"
}

// CellSprites lists every cell sprite key that has artwork.
func CellSprites() []SpriteKey {
	out := make([]SpriteKey, 0, spriteKeyCount-1)
	for k := SpriteFloorLight; k < spriteKeyCount; k++ {
		out = append(out, k)
	}
	return out
}

// SelectSprite picks a cell's artwork from its hazard kind and adjacency flags.
func SelectSprite(c *Cell) SpriteKey {
	switch c.Hazard {
	case HazardLava:
		if c.Adjacent.Top {
			return SpriteLavaBottom
		}
		return SpriteLava
	case HazardWall:
		switch {
		case !c.Adjacent.Left && !c.Adjacent.Right:
			return SpriteWallSolo
		case c.Adjacent.Left && !c.Adjacent.Right:
			return SpriteWallRight
		case !c.Adjacent.Left && c.Adjacent.Right:
			return SpriteWallLeft
		default:
			return SpriteWall
		}
	case HazardCliff:
		return SpriteCliff
	default:
		if c.Row%2 != c.Col%2 {
			return SpriteFloorLight
		}
		return SpriteFloorDark
	}
}

// unitSpriteNames is the asset name for each side/kind pair.
var unitSpriteNames = [sideCount][unitKindCount]string{
	SideWhite: {UnitLeader: "unitWhiteKing", UnitRanged: "unitWhiteArcher", UnitBasic: "unitWhitePawn"},
	SideBlack: {UnitLeader: "unitBlackKing", UnitRanged: "unitBlackArcher", UnitBasic: "unitBlackPawn"},
}

// UnitSpriteName returns the asset name for a unit token.
func UnitSpriteName(side Side, kind UnitKind) string {
	if side >= sideCount || kind >= unitKindCount {
		return ""
	}
	return unitSpriteNames[side][kind]
}

// UnitSpriteNames lists every unit asset name.
func UnitSpriteNames() []string {
	var out []string
	for s := Side(0); s < sideCount; s++ {
		for k := UnitKind(0); k < unitKindCount; k++ {
			out = append(out, unitSpriteNames[s][k])
		}
	}
	return out
}

// AllSpriteNames lists every asset the board needs loaded before start.
func AllSpriteNames() []string {
	var out []string
	for _, k := range CellSprites() {
		out = append(out, k.Name())
	}
	return append(out, UnitSpriteNames()...)
}

// Glyph is a one-rune stand-in for a sprite key, used in text dumps.
func (k SpriteKey) Glyph() rune {
	switch k {
	case SpriteFloorLight:
		return '.'
	case SpriteFloorDark:
		return ','
	case SpriteLava:
		return '~'
	case SpriteLavaBottom:
		return '='
	case SpriteWallSolo:
		return '#'
	case SpriteWallLeft:
		return '['
	case SpriteWallRight:
		return ']'
	case SpriteWall:
		return '-'
	case SpriteCliff:
		return 'v'
	default:
		return '?'
	}
}
