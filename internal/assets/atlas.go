package assets

import (
	"context"
	"fmt"
	"image"

	"golang.org/x/sync/errgroup"

	"github.com/Garsondee/Hazard-Board/internal/board"
)

// loadConcurrency bounds how many sprites decode at once.
const loadConcurrency = 4

// Atlas holds decoded sprites by asset name. It is read-only after Load.
type Atlas struct {
	images map[string]image.Image
}

// Load decodes every named sprite concurrently and returns once all of them
// are ready, or with the first error. Callers build cells and units only
// after Load returns, since unit offsets depend on sprite dimensions.
func Load(ctx context.Context, names []string) (*Atlas, error) {
	imgs := make([]image.Image, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(loadConcurrency)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := LoadImage(name)
			if err != nil {
				return err
			}
			imgs[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	a := &Atlas{images: make(map[string]image.Image, len(names))}
	for i, name := range names {
		a.images[name] = imgs[i]
	}
	return a, nil
}

// LoadBoard loads every sprite the board renders.
func LoadBoard(ctx context.Context) (*Atlas, error) {
	return Load(ctx, board.AllSpriteNames())
}

// Image returns a sprite by asset name.
func (a *Atlas) Image(name string) (image.Image, bool) {
	img, ok := a.images[name]
	return img, ok
}

// MustImage returns a sprite or panics. A missing sprite is a programming error.
func (a *Atlas) MustImage(name string) image.Image {
	img, ok := a.images[name]
	if !ok {
		panic(fmt.Sprintf("assets: sprite %q not loaded", name))
	}
	return img
}

// Cell returns the artwork for a cell sprite key.
func (a *Atlas) Cell(k board.SpriteKey) image.Image {
	return a.MustImage(k.Name())
}

// Unit returns the artwork for a unit token.
func (a *Atlas) Unit(side board.Side, kind board.UnitKind) image.Image {
	return a.MustImage(board.UnitSpriteName(side, kind))
}

// UnitSize implements board.SpriteSizer.
func (a *Atlas) UnitSize(side board.Side, kind board.UnitKind) (w, h int) {
	b := a.Unit(side, kind).Bounds()
	return b.Dx(), b.Dy()
}

// Len returns the number of loaded sprites.
func (a *Atlas) Len() int {
	return len(a.images)
}
