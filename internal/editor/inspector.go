package editor

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const inspLineH = 14

// inspectorLines describes the hovered cell and the active drag.
func inspectorLines(s *Session) []string {
	lines := []string{fmt.Sprintf("paint: %s", s.Paint())}

	if hc := s.Hovered(); hc != nil {
		lines = append(lines,
			fmt.Sprintf("cell:  %s", hc.Pos),
			fmt.Sprintf("ground: %s", hc.Ground),
		)
		if hc.HasEntity() {
			lines = append(lines, fmt.Sprintf("entity: %s", hc.Entity))
		} else {
			lines = append(lines, "entity: -")
		}
	} else {
		lines = append(lines, "cell:  -")
	}

	e := s.Engine()
	if e.Active() {
		sel := e.Selection()
		tl, br := sel.Rect()
		lines = append(lines,
			fmt.Sprintf("drag:  %s-%s", tl, br),
			fmt.Sprintf("       %dx%d, %d cells", br.X-tl.X+1, br.Y-tl.Y+1, len(sel.Covered)),
		)
	} else {
		lines = append(lines, fmt.Sprintf("state: %s", e.State()))
	}
	return lines
}

// drawInspector renders the readout in a box at (x, y) of width w and
// returns the box height.
func drawInspector(screen *ebiten.Image, s *Session, x, y, w int) int {
	lines := inspectorLines(s)
	h := len(lines)*inspLineH + 8

	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), color.RGBA{R: 18, G: 20, B: 24, A: 255}, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, color.RGBA{R: 55, G: 62, B: 80, A: 255}, false)

	ly := y + 4
	for _, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, x+6, ly)
		ly += inspLineH
	}
	return h
}
