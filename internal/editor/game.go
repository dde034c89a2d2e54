// Package editor is the ebiten front end: an editor session plus the
// renderer, palette and side panel that drive it.
package editor

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"

	"github.com/Garsondee/grid-painter/internal/config"
	"github.com/Garsondee/grid-painter/internal/grid"
	"github.com/Garsondee/grid-painter/internal/input"
)

// borderWidth is the pixel gap between the window edge and the canvas.
const borderWidth = 24

// CanvasOrigin is where the board canvas sits in the window.
var CanvasOrigin = image.Pt(borderWidth, borderWidth)

// panelWidth is the width of the palette / inspector column.
const panelWidth = 260

// activityHeight is the height of the activity log box.
const activityHeight = 220

// quickKeys select ground kinds by position.
var quickKeys = [...]ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// Game implements ebiten.Game for one editor session.
type Game struct {
	width  int
	height int
	panelX int

	session  *Session
	tracker  *input.Tracker
	palette  *Palette
	renderer *Renderer
	log      logrus.FieldLogger

	showHelp bool
}

// New creates the session and window layout described by cfg.
func New(cfg config.Config, log logrus.FieldLogger) (*Game, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	session, err := NewSession(cfg, CanvasOrigin, log)
	if err != nil {
		return nil, err
	}
	renderer, err := NewRenderer(session.Board(), cfg.CellSize)
	if err != nil {
		return nil, err
	}

	canvas := session.Mapper().Canvas
	panelX := canvas.Max.X + borderWidth
	palette := NewPalette(image.Pt(panelX, borderWidth), panelWidth)

	panelBottom := palette.Bounds().Max.Y + 200 + activityHeight
	g := &Game{
		width:    panelX + panelWidth + borderWidth,
		height:   max(canvas.Max.Y, panelBottom) + borderWidth,
		panelX:   panelX,
		session:  session,
		tracker:  input.NewTracker(canvas),
		palette:  palette,
		renderer: renderer,
		log:      log,
		showHelp: true,
	}
	return g, nil
}

// Session returns the editor session.
func (g *Game) Session() *Session { return g.session }

// Size returns the window size in pixels.
func (g *Game) Size() (int, int) { return g.width, g.height }

func (g *Game) Update() error {
	g.session.Tick()
	g.handleKeys()

	for _, ev := range g.tracker.Poll() {
		if err := g.dispatch(ev); err != nil {
			g.log.WithError(err).Error("editor stopped")
			return err
		}
	}
	return nil
}

// dispatch routes presses off the canvas to the palette and everything else
// to the session.
func (g *Game) dispatch(ev input.Event) error {
	if ev.Kind == input.Down && !g.session.Mapper().Inside(ev.Pos) {
		if p, ok := g.palette.Hit(image.Pt(int(ev.Pos.X), int(ev.Pos.Y))); ok {
			return g.session.SetPaint(p)
		}
		return nil
	}
	return g.session.HandleEvent(ev)
}

// handleKeys processes edge-triggered shortcuts.
func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.session.Cancel()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := g.session.CopyReport(); err != nil {
			g.log.WithError(err).Warn("clipboard unavailable")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHelp = !g.showHelp
	}
	grounds := grid.GroundKinds()
	for i, k := range quickKeys {
		if i >= len(grounds) {
			break
		}
		if inpututil.IsKeyJustPressed(k) {
			_ = g.session.SetPaint(grid.GroundPaint(grounds[i]))
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 13, B: 16, A: 255})

	g.renderer.Draw(screen, g.session)

	canvas := g.session.Mapper().Canvas
	borderCol := color.RGBA{R: 70, G: 80, B: 100, A: 255}
	vector.StrokeRect(screen, float32(canvas.Min.X-1), float32(canvas.Min.Y-1),
		float32(canvas.Dx()+2), float32(canvas.Dy()+2), 2, borderCol, false)

	g.palette.Draw(screen, g.renderer.Face(), g.session.Paint())

	y := g.palette.Bounds().Max.Y + 8
	y += drawInspector(screen, g.session, g.panelX, y, panelWidth) + 8

	if g.showHelp {
		help := "drag: paint   esc: cancel\n1-6: ground   c: copy report\nh: hide help"
		ebitenutil.DebugPrintAt(screen, help, g.panelX, y)
		y += 3*16 + 8
	}

	g.session.Activity().Draw(screen, g.panelX, y, panelWidth, activityHeight)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
