package render

import (
	"image"
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/loadscreen/internal/ecs"
	"golang.org/x/image/colornames"
)

type loadingTree struct {
	root, label, box, spinner ecs.EntityID
}

func newLoadingTree(w *ecs.World) loadingTree {
	var t loadingTree
	t.root = w.CreateNode(ecs.NoEntity, ecs.Node{
		Width:          ecs.Percent(100),
		Height:         ecs.Percent(100),
		Direction:      ecs.DirectionColumn,
		AlignItems:     ecs.AlignCenter,
		JustifyContent: ecs.AlignCenter,
	}, ecs.Style{Background: colornames.Black})
	t.label = w.CreateText(t.root, ecs.Node{}, ecs.Text{Content: "Loading...", FontSize: 60, Color: colornames.White})
	t.box = w.CreateNode(t.root, ecs.Node{Width: ecs.Px(50), Height: ecs.Px(50), MarginTop: 30}, ecs.Style{})
	t.spinner = w.CreateSpinner(t.box, ecs.Node{Width: ecs.Percent(100), Height: ecs.Percent(100), Border: 5},
		ecs.Style{BorderColor: colornames.White, CornerRadius: ecs.Percent(50)})
	return t
}

func drawFrame(r *Renderer, w *ecs.World, screen *ebiten.Image) {
	r.Update(w)
	r.Draw(screen, w)
}

func rectOf(t *testing.T, r *Renderer, id ecs.EntityID) image.Rectangle {
	t.Helper()
	rect, ok := r.Rect(id)
	require.True(t, ok, "no widget for %d", id)
	return rect
}

func TestRenderer_CenteredColumn(t *testing.T) {
	w := ecs.NewWorld()
	tree := newLoadingTree(w)
	r := NewRenderer()

	drawFrame(r, w, ebiten.NewImage(800, 600))

	assert.Equal(t, image.Rect(0, 0, 800, 600), rectOf(t, r, tree.root))

	box := rectOf(t, r, tree.box)
	assert.Equal(t, 50, box.Dx())
	assert.Equal(t, 50, box.Dy())
	assert.InDelta(t, 375, box.Min.X, 1)
	assert.Equal(t, box, rectOf(t, r, tree.spinner), "spinner fills its box")

	label := rectOf(t, r, tree.label)
	assert.Greater(t, label.Dx(), 50)
	assert.InDelta(t, 400, (label.Min.X+label.Max.X)/2, 1)
	assert.Equal(t, 30, box.Min.Y-label.Max.Y, "margin between label and spinner")
	// column is centred vertically
	assert.InDelta(t, label.Min.Y, 600-box.Max.Y, 1)
}

func TestRenderer_AbsoluteRoot(t *testing.T) {
	w := ecs.NewWorld()
	label := w.CreateText(ecs.NoEntity, ecs.Node{
		PositionType: ecs.PositionAbsolute,
		Top:          ecs.Px(50),
		Left:         ecs.Px(50),
	}, ecs.Text{Content: "Game Started!", FontSize: 40})
	r := NewRenderer()

	drawFrame(r, w, ebiten.NewImage(800, 600))

	rect := rectOf(t, r, label)
	assert.Equal(t, image.Pt(50, 50), rect.Min)
	assert.Greater(t, rect.Dx(), 0)
}

func TestRenderer_RebuildsWhenNodesChange(t *testing.T) {
	w := ecs.NewWorld()
	tree := newLoadingTree(w)
	r := NewRenderer()
	screen := ebiten.NewImage(800, 600)

	drawFrame(r, w, screen)
	first := r.ui
	assert.Equal(t, []ecs.EntityID{tree.spinner}, r.decorated)

	// rotation alone keeps the tree
	w.RotateZ(tree.spinner, -1)
	drawFrame(r, w, screen)
	assert.Same(t, first, r.ui)

	w.DespawnRecursive(tree.root)
	label := w.CreateText(ecs.NoEntity, ecs.Node{}, ecs.Text{Content: "Game Started!"})
	drawFrame(r, w, screen)
	assert.NotSame(t, first, r.ui)

	_, ok := r.Rect(tree.spinner)
	assert.False(t, ok)
	_, ok = r.Rect(label)
	assert.True(t, ok)
	assert.Empty(t, r.decorated)
}

func TestRenderer_DrawWithoutUpdate(t *testing.T) {
	w := ecs.NewWorld()
	tree := newLoadingTree(w)
	w.CreateNode(tree.root, ecs.Node{Width: ecs.Px(20), Height: ecs.Px(20), Border: 2},
		ecs.Style{BorderColor: colornames.Red})
	r := NewRenderer()

	assert.NotPanics(t, func() { r.Draw(ebiten.NewImage(320, 240), w) })
	assert.Len(t, r.decorated, 2)
}

func TestArcStart(t *testing.T) {
	tests := []struct {
		rotation, want float64
	}{
		{0, 0},
		{-math.Pi / 2, math.Pi / 2},
		{math.Pi / 2, 3 * math.Pi / 2},
		{-2 * math.Pi, 0},
		{-5.8, 5.8},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, arcStart(tt.rotation), 1e-9, "rotation=%v", tt.rotation)
	}
}

func TestArcPoints_FollowRotation(t *testing.T) {
	const cx, cy, radius = 400.0, 300.0, 20.0

	pts := arcPoints(cx, cy, radius, arcStart(0), arcSweep, arcSegments)
	require.Len(t, pts, arcSegments+1)
	assert.InDelta(t, cx+radius, pts[0][0], 1e-9)
	assert.InDelta(t, cy, pts[0][1], 1e-9)
	// three quarters clockwise on screen ends at the top
	assert.InDelta(t, cx, pts[arcSegments][0], 1e-9)
	assert.InDelta(t, cy-radius, pts[arcSegments][1], 1e-9)

	// a clockwise quarter turn starts the arc below the centre
	pts = arcPoints(cx, cy, radius, arcStart(-math.Pi/2), arcSweep, arcSegments)
	assert.InDelta(t, cx, pts[0][0], 1e-9)
	assert.InDelta(t, cy+radius, pts[0][1], 1e-9)
}

func TestRingGeometry(t *testing.T) {
	cx, cy, radius := ringGeometry(image.Rect(375, 300, 425, 350), 5)

	assert.Equal(t, 400.0, cx)
	assert.Equal(t, 325.0, cy)
	assert.Equal(t, 22.5, radius)
}

func TestIsRound(t *testing.T) {
	square := image.Rect(0, 0, 50, 50)

	assert.True(t, isRound(ecs.Style{CornerRadius: ecs.Percent(50)}, square))
	assert.True(t, isRound(ecs.Style{CornerRadius: ecs.Px(25)}, square))
	assert.False(t, isRound(ecs.Style{CornerRadius: ecs.Px(10)}, square))
	assert.False(t, isRound(ecs.Style{}, square))
	assert.False(t, isRound(ecs.Style{CornerRadius: ecs.Percent(50)}, image.Rectangle{}))
}
