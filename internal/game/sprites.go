package game

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Hazard-Board/internal/assets"
	"github.com/Garsondee/Hazard-Board/internal/board"
)

// spriteCache holds GPU images for every board sprite, converted once from
// the decoded atlas.
type spriteCache struct {
	cells map[board.SpriteKey]*ebiten.Image
	units map[string]*ebiten.Image
}

// boardSprites picks every cell and unit sprite the board draws out of the
// atlas, failing on the first one that is missing.
func boardSprites(a *assets.Atlas) (map[board.SpriteKey]image.Image, map[string]image.Image, error) {
	cells := make(map[board.SpriteKey]image.Image)
	for _, k := range board.CellSprites() {
		img, ok := a.Image(k.Name())
		if !ok {
			return nil, nil, fmt.Errorf("sprite %s not loaded", k.Name())
		}
		cells[k] = img
	}
	units := make(map[string]image.Image)
	for _, name := range board.UnitSpriteNames() {
		img, ok := a.Image(name)
		if !ok {
			return nil, nil, fmt.Errorf("sprite %s not loaded", name)
		}
		units[name] = img
	}
	return cells, units, nil
}

func newSpriteCache(a *assets.Atlas) (*spriteCache, error) {
	cells, units, err := boardSprites(a)
	if err != nil {
		return nil, err
	}
	sc := &spriteCache{
		cells: make(map[board.SpriteKey]*ebiten.Image, len(cells)),
		units: make(map[string]*ebiten.Image, len(units)),
	}
	for k, img := range cells {
		sc.cells[k] = ebiten.NewImageFromImage(img)
	}
	for name, img := range units {
		sc.units[name] = ebiten.NewImageFromImage(img)
	}
	return sc, nil
}

func (sc *spriteCache) cell(k board.SpriteKey) *ebiten.Image {
	return sc.cells[k]
}

func (sc *spriteCache) unit(u *board.Unit) *ebiten.Image {
	return sc.units[board.UnitSpriteName(u.Side, u.Kind)]
}
