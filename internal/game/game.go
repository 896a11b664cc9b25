// Package game runs the interactive board window.
package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/Garsondee/Hazard-Board/internal/assets"
	"github.com/Garsondee/Hazard-Board/internal/board"
)

const (
	hudLineH     = 14
	shadowAlpha  = 0.3
	ellipseSteps = 24
)

var (
	hoverWash   = color.NRGBA{R: 0, G: 255, B: 0, A: 51}
	borderColor = color.RGBA{R: 65, G: 90, B: 65, A: 255}
	windowColor = color.RGBA{R: 12, G: 14, B: 12, A: 255}
)

// hazardKeys maps hazard hotkeys to kinds. Shift places on the column.
var hazardKeys = []struct {
	key  ebiten.Key
	kind board.HazardKind
}{
	{ebiten.KeyL, board.HazardLava},
	{ebiten.KeyW, board.HazardWall},
	{ebiten.KeyK, board.HazardCliff},
}

// Game implements ebiten.Game for the hazard board.
type Game struct {
	ctrl    *controller
	sprites *spriteCache
	face    ebtext.Face

	width, height int
	boardRight    int

	// Cached board background, rebuilt only when ctrl.state is dirty.
	bg *ebiten.Image

	inspector     Inspector
	prevMouseLeft bool // for edge-triggered click detection
}

// New builds the board from opts and converts the loaded atlas to GPU
// images. The atlas must be fully loaded before New is called.
func New(atlas *assets.Atlas, opts Options) (*Game, error) {
	if opts.Sizer == nil {
		opts.Sizer = atlas
	}
	sprites, err := newSpriteCache(atlas)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	ctrl := newController(opts)

	geom := ctrl.board.Geometry()
	left, top := ctrl.board.Grid.TopLeft()
	gw, gh := ctrl.board.Grid.PixelSize()
	g := &Game{
		ctrl:       ctrl,
		sprites:    sprites,
		face:       newFace(),
		boardRight: left + gw + geom.Margin,
	}
	g.width = g.boardRight + logPanelWidth
	g.height = top + gh + geom.Margin
	g.bg = ebiten.NewImage(g.width, g.height)
	return g, nil
}

// Update handles input once per tick. All board mutation happens here.
func (g *Game) Update() error {
	c := g.ctrl
	c.tick++

	mx, my := ebiten.CursorPosition()
	c.hover(mx, my)

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if !g.prevMouseLeft {
			c.click()
		}
	}
	g.prevMouseLeft = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	g.handleKeys()
	c.drainWatcher()
	return nil
}

func (g *Game) handleKeys() {
	c := g.ctrl
	axis := board.AxisRow
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		axis = board.AxisCol
	}
	for _, hk := range hazardKeys {
		if inpututil.IsKeyJustPressed(hk.key) {
			c.addHazard(hk.kind, axis)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		c.setLevel(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		c.setLevel(2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		_ = c.copyDump()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		_ = c.reload()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.inspector.rawView = !g.inspector.rawView
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.ctrl.state.needsRedraw() {
		g.redrawBoard()
		g.ctrl.state.redrawn()
	}
	screen.DrawImage(g.bg, nil)

	g.drawBorder(screen)
	g.drawUnits(screen)
	g.ctrl.events.Draw(screen, g.face, g.boardRight, g.height)
	g.drawHUD(screen)
	g.drawInspector(screen)
}

// redrawBoard paints every cell sprite and the hover wash into the cache.
func (g *Game) redrawBoard() {
	g.bg.Fill(windowColor)
	cs := float32(g.ctrl.board.Geometry().CellSize)
	for _, c := range g.ctrl.board.Grid.Cells() {
		if img := g.sprites.cell(c.Sprite); img != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(c.X), float64(c.Y))
			g.bg.DrawImage(img, op)
		}
		if c.Hovered {
			vector.FillRect(g.bg, float32(c.X), float32(c.Y), cs, cs, hoverWash, false)
		}
	}
}

func (g *Game) drawBorder(screen *ebiten.Image) {
	left, top := g.ctrl.board.Grid.TopLeft()
	gw, gh := g.ctrl.board.Grid.PixelSize()
	ox, oy := float32(left), float32(top)
	w, h := float32(gw), float32(gh)
	vector.StrokeRect(screen, ox-1, oy-1, w+2, h+2, 2.0, borderColor, false)
	vector.StrokeRect(screen, ox-5, oy-5, w+10, h+10, 2.0, borderColor, false)
}

// drawUnits draws a ground shadow under each unit's cell, then the sprite.
func (g *Game) drawUnits(screen *ebiten.Image) {
	cs := float64(g.ctrl.board.Geometry().CellSize)
	for _, u := range g.ctrl.board.Units(nil) {
		cell := g.ctrl.board.Grid.At(u.Row, u.Col)
		if cell == nil {
			continue
		}
		cx := float64(cell.X) + cs/2
		cy := float64(cell.Y) + cs*0.75
		fillEllipse(screen, cx, cy, cs/2.25, cs/5, color.Black, shadowAlpha)

		img := g.sprites.unit(u)
		if img == nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(u.X), float64(u.Y))
		screen.DrawImage(img, op)
	}
}

func fillEllipse(dst *ebiten.Image, cx, cy, rx, ry float64, c color.Color, alpha float32) {
	var path vector.Path
	path.MoveTo(float32(cx+rx), float32(cy))
	for i := 1; i < ellipseSteps; i++ {
		a := 2 * math.Pi * float64(i) / ellipseSteps
		path.LineTo(float32(cx+rx*math.Cos(a)), float32(cy+ry*math.Sin(a)))
	}
	path.Close()

	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(alpha)
	vector.FillPath(dst, &path, &vector.FillOptions{}, op)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	c := g.ctrl
	lines := []string{
		fmt.Sprintf("level: %d  [1/2]", c.level),
		"L lava  W wall",
		"K cliff",
		"shift: column",
		"C copy  R reload",
	}
	if h := c.board.Hovered(); h != nil {
		lines = append(lines, fmt.Sprintf("hover: (%d,%d)", h.Row, h.Col))
	}
	for i, l := range lines {
		drawText(screen, g.face, l, 6, 6+i*hudLineH, colornames.Gainsboro)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Size returns the logical screen size.
func (g *Game) Size() (int, int) {
	return g.width, g.height
}
