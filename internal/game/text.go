package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// newFace returns the fixed 7x13 face used for every panel.
func newFace() ebtext.Face {
	return ebtext.NewGoXFace(basicfont.Face7x13)
}

func drawText(dst *ebiten.Image, face ebtext.Face, s string, x, y int, c color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	ebtext.Draw(dst, s, face, op)
}
