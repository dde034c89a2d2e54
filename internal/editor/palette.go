package editor

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/grid-painter/internal/grid"
)

// Palette layout, in window pixels.
const (
	paletteHeaderH = 20
	paletteButtonH = 26
	paletteGap     = 4
	paletteCols    = 2
)

// paletteButton is one selectable paint.
type paletteButton struct {
	rect  image.Rectangle
	paint grid.Paint
	label string
	fill  color.RGBA // zero for EMPTY
}

// paletteHeader is a section title.
type paletteHeader struct {
	label string
	at    image.Point
}

// Palette is the side-panel list of ground and entity buttons.
type Palette struct {
	buttons []paletteButton
	headers []paletteHeader
	bounds  image.Rectangle
}

// NewPalette lays out one button per ground kind, then one per entity kind,
// in a column of the given width starting at origin.
func NewPalette(origin image.Point, width int) *Palette {
	p := &Palette{}
	bw := (width - paletteGap*(paletteCols-1)) / paletteCols
	y := origin.Y

	section := func(title string, paints []grid.Paint) {
		p.headers = append(p.headers, paletteHeader{label: title, at: image.Pt(origin.X, y)})
		y += paletteHeaderH
		for i, pt := range paints {
			col, row := i%paletteCols, i/paletteCols
			x0 := origin.X + col*(bw+paletteGap)
			y0 := y + row*(paletteButtonH+paletteGap)
			p.buttons = append(p.buttons, paletteButton{
				rect:  image.Rect(x0, y0, x0+bw, y0+paletteButtonH),
				paint: pt,
				label: paintLabel(pt),
				fill:  paintColor(pt),
			})
		}
		rows := (len(paints) + paletteCols - 1) / paletteCols
		y += rows*(paletteButtonH+paletteGap) + paletteGap
	}

	grounds := make([]grid.Paint, 0, len(grid.GroundKinds()))
	for _, g := range grid.GroundKinds() {
		grounds = append(grounds, grid.GroundPaint(g))
	}
	entities := make([]grid.Paint, 0, len(grid.EntityKinds()))
	for _, e := range grid.EntityKinds() {
		entities = append(entities, grid.EntityPaint(e))
	}
	section("GROUND", grounds)
	section("ENTITIES", entities)

	p.bounds = image.Rect(origin.X, origin.Y, origin.X+width, y)
	return p
}

// Bounds returns the area occupied by the palette.
func (p *Palette) Bounds() image.Rectangle { return p.bounds }

// Hit returns the paint of the button under pt.
func (p *Palette) Hit(pt image.Point) (grid.Paint, bool) {
	for _, b := range p.buttons {
		if pt.In(b.rect) {
			return b.paint, true
		}
	}
	return grid.Paint{}, false
}

// Draw renders the buttons; the one matching selected is outlined.
func (p *Palette) Draw(screen *ebiten.Image, face text.Face, selected grid.Paint) {
	for _, h := range p.headers {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(h.at.X), float64(h.at.Y))
		op.ColorScale.ScaleWithColor(color.RGBA{R: 170, G: 180, B: 200, A: 255})
		text.Draw(screen, h.label, face, op)
	}

	for _, b := range p.buttons {
		x, y := float32(b.rect.Min.X), float32(b.rect.Min.Y)
		w, h := float32(b.rect.Dx()), float32(b.rect.Dy())

		bg := b.fill
		if bg.A == 0 {
			bg = color.RGBA{R: 60, G: 60, B: 66, A: 255}
		}
		vector.FillRect(screen, x, y, w, h, bg, false)
		if b.paint == selected {
			vector.StrokeRect(screen, x+1, y+1, w-2, h-2, 3, color.RGBA{R: 255, G: 255, B: 255, A: 255}, false)
		} else {
			vector.StrokeRect(screen, x, y, w, h, 1, outlineColor, false)
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(x)+6, float64(y)+5)
		op.ColorScale.ScaleWithColor(labelColor(bg))
		text.Draw(screen, b.label, face, op)
	}
}

func paintLabel(p grid.Paint) string {
	if g, ok := p.Ground(); ok {
		return g.Name()
	}
	if e, ok := p.Entity(); ok {
		return e.Name()
	}
	return "?"
}

// labelColor picks black or white text for contrast against bg.
func labelColor(bg color.RGBA) color.Color {
	lum := 299*int(bg.R) + 587*int(bg.G) + 114*int(bg.B)
	if lum > 140_000 {
		return color.Black
	}
	return color.White
}
