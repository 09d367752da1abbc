// Package render draws the node tree with ebitenui. Layout is delegated to
// ebitenui containers; borders and rotating rings are stroked over the
// widget rectangles with vector.
package render

import (
	"bytes"
	"image"
	"image/color"
	"math"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/loadscreen/internal/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	arcSweep    = 1.5 * math.Pi // visible part of a rotating ring
	arcSegments = 36
)

// colorTrack is drawn under a rotating ring
var colorTrack = color.RGBA{255, 255, 255, 40}

// Renderer keeps an ebitenui tree in sync with the world and draws it
type Renderer struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.Face

	ui         *ebitenui.UI
	generation uint64
	widgets    map[ecs.EntityID]widget.PreferredSizeLocateableWidget
	decorated  []ecs.EntityID
}

// NewRenderer creates a renderer that sets text in Go Regular
func NewRenderer() *Renderer {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}
	return &Renderer{
		source: s,
		faces:  make(map[float64]*text.Face),
	}
}

// Update rebuilds the widget tree when nodes were spawned or removed since
// the last build, then updates it.
func (r *Renderer) Update(w *ecs.World) {
	r.sync(w)
	r.ui.Update()
}

func (r *Renderer) sync(w *ecs.World) bool {
	if r.ui != nil && r.generation == w.Generation() {
		return false
	}
	r.ui = r.buildUI(w)
	r.generation = w.Generation()
	return true
}

// Draw lays out and draws the widget tree against the screen, then strokes
// borders and rings on top.
func (r *Renderer) Draw(screen *ebiten.Image, w *ecs.World) {
	if r.sync(w) {
		r.ui.Update()
	}
	r.ui.Draw(screen)

	for _, id := range r.decorated {
		r.drawDecoration(screen, w, id)
	}
}

// Rect returns the on-screen rectangle of a node from the last Draw
func (r *Renderer) Rect(id ecs.EntityID) (image.Rectangle, bool) {
	wd, ok := r.widgets[id]
	if !ok {
		return image.Rectangle{}, false
	}
	return wd.GetWidget().Rect, true
}

func (r *Renderer) drawDecoration(screen *ebiten.Image, w *ecs.World, id ecs.EntityID) {
	rect, ok := r.Rect(id)
	if !ok || rect.Empty() {
		return
	}
	node := w.Node[id]
	style := w.Style[id]
	round := isRound(style, rect)
	x, y := float32(rect.Min.X), float32(rect.Min.Y)
	rw, rh := float32(rect.Dx()), float32(rect.Dy())

	if round && style.Background != nil {
		cx, cy, radius := ringGeometry(rect, 0)
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(radius), style.Background, true)
	}
	if style.BorderColor == nil || node.Border <= 0 {
		return
	}
	if !round {
		vector.StrokeRect(screen, x, y, rw, rh, float32(node.Border), style.BorderColor, false)
		return
	}

	tr, rotates := w.Transform[id]
	drawRing(screen, rect, node.Border, tr.Rotation, rotates, style.BorderColor)
}

// drawRing strokes a circular border. A rotating ring is drawn as an open arc
// so the rotation is visible; a static one is a full circle.
func drawRing(screen *ebiten.Image, rect image.Rectangle, width, rotation float64, open bool, clr color.Color) {
	cx, cy, radius := ringGeometry(rect, width)
	if radius <= 0 {
		return
	}
	if !open {
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(radius), float32(width), clr, true)
		return
	}

	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(radius), float32(width), colorTrack, true)

	pts := arcPoints(cx, cy, radius, arcStart(rotation), arcSweep, arcSegments)
	for i := 1; i < len(pts); i++ {
		vector.StrokeLine(screen,
			float32(pts[i-1][0]), float32(pts[i-1][1]),
			float32(pts[i][0]), float32(pts[i][1]),
			float32(width), clr, true)
	}
}

// ringGeometry returns the centre of rect and the radius of a stroke of the
// given width that stays inside it
func ringGeometry(rect image.Rectangle, width float64) (cx, cy, radius float64) {
	cx = float64(rect.Min.X) + float64(rect.Dx())/2
	cy = float64(rect.Min.Y) + float64(rect.Dy())/2
	radius = math.Min(float64(rect.Dx()), float64(rect.Dy()))/2 - width/2
	return cx, cy, radius
}

// arcStart returns the screen angle where the visible arc of a ring with the
// given rotation begins. y points down on screen, so a negative (clockwise)
// rotation is a positive screen angle.
func arcStart(rotation float64) float64 {
	return ecs.NormalizeAngle(-rotation)
}

// arcPoints returns segments+1 points along a circle from start, sweeping
// clockwise on screen
func arcPoints(cx, cy, radius, start, sweep float64, segments int) [][2]float64 {
	pts := make([][2]float64, segments+1)
	step := sweep / float64(segments)
	for i := range pts {
		a := start + float64(i)*step
		pts[i] = [2]float64{cx + radius*math.Cos(a), cy + radius*math.Sin(a)}
	}
	return pts
}

// isRound reports whether the corner radius turns the node into a circle
func isRound(s ecs.Style, rect image.Rectangle) bool {
	side := math.Min(float64(rect.Dx()), float64(rect.Dy()))
	return side > 0 && s.CornerRadius.Resolve(side, 0) >= side/2
}
