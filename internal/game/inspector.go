package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/Garsondee/Hazard-Board/internal/board"
)

const (
	inspPad   = 4
	inspLineH = 14
	inspWidth = 180
)

// Inspector holds the view toggle for the selected-cell panel.
type Inspector struct {
	rawView bool // false = summary, true = raw cell fields
}

// inspectorLines returns the panel text for the selected cell.
func (g *Game) inspectorLines(c *board.Cell) []string {
	if g.inspector.rawView {
		return []string{
			fmt.Sprintf("row=%d col=%d", c.Row, c.Col),
			fmt.Sprintf("x=%d y=%d", c.X, c.Y),
			fmt.Sprintf("hazard=%d sprite=%d", c.Hazard, c.Sprite),
			fmt.Sprintf("adj=%+v", c.Adjacent),
		}
	}
	return g.ctrl.board.DescribeCell(c)
}

// drawInspector renders the selected cell panel in the bottom-left corner.
func (g *Game) drawInspector(screen *ebiten.Image) {
	c := g.ctrl.selected
	if c == nil {
		return
	}
	lines := g.inspectorLines(c)
	lines = append(lines, "[I] toggle view")

	w := float32(inspWidth)
	h := float32(len(lines)*inspLineH + inspPad*2)
	x := float32(4)
	y := float32(g.height) - h - 4

	vector.FillRect(screen, x, y, w, h, color.RGBA{R: 14, G: 16, B: 14, A: 230}, false)
	vector.StrokeRect(screen, x, y, w, h, 1.0, color.RGBA{R: 55, G: 80, B: 55, A: 255}, false)
	vector.StrokeLine(screen, x+1, y+1, x+w-1, y+1, 1.0, color.RGBA{R: 70, G: 110, B: 70, A: 60}, false)

	for i, l := range lines {
		col := colornames.Gainsboro
		if i == 0 {
			col = colornames.White
		}
		drawText(screen, g.face, l, int(x)+inspPad, int(y)+inspPad+i*inspLineH, col)
	}
}
