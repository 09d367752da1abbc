package render

import (
	"image/color"
	"math"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/loadscreen/internal/ecs"
)

const defaultFontSize = 13

var colorTextDefault = color.NRGBA{0xff, 0xff, 0xff, 0xff}

// buildUI mirrors the node tree as an ebitenui widget tree. Every top-level
// node is placed in a full-screen anchor root.
func (r *Renderer) buildUI(w *ecs.World) *ebitenui.UI {
	r.widgets = make(map[ecs.EntityID]widget.PreferredSizeLocateableWidget, w.Count())
	r.decorated = r.decorated[:0]

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	for _, id := range w.Roots() {
		r.placeInAnchor(root, w, id)
	}
	return &ebitenui.UI{Container: root}
}

// placeInAnchor adds a node to an anchor-layout parent. Absolute nodes are
// offset by Top/Left; 100% dimensions stretch to the parent.
func (r *Renderer) placeInAnchor(parent *widget.Container, w *ecs.World, id ecs.EntityID) {
	node := w.Node[id]
	wd := r.build(w, id)

	if node.PositionType == ecs.PositionAbsolute {
		wd.GetWidget().LayoutData = widget.RowLayoutData{Position: widget.RowLayoutPositionStart}
		offset := widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Padding(&widget.Insets{
					Top:  pixels(node.Top),
					Left: pixels(node.Left),
				}),
			)),
			widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			})),
		)
		offset.AddChild(wd)
		parent.AddChild(offset)
		return
	}

	wd.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
		StretchHorizontal:  isFull(node.Width),
		StretchVertical:    isFull(node.Height),
	}
	parent.AddChild(wd)
}

// build creates the widget for one node and its subtree
func (r *Renderer) build(w *ecs.World, id ecs.EntityID) widget.PreferredSizeLocateableWidget {
	node := w.Node[id]
	style, hasStyle := w.Style[id]

	if txt, ok := w.Text[id]; ok {
		t := widget.NewText(
			widget.TextOpts.Text(txt.Content, r.face(txt.FontSize), textColor(txt)),
		)
		r.widgets[id] = t
		return t
	}

	opts := []widget.ContainerOpt{
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(pixels(node.Width), pixels(node.Height))),
	}
	if hasStyle && style.Background != nil && style.CornerRadius.Unit == ecs.UnitAuto {
		opts = append(opts, widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(style.Background)))
	}
	box := widget.NewContainer(opts...)
	r.widgets[id] = box
	if hasStyle && needsDecoration(node, style) {
		r.decorated = append(r.decorated, id)
	}

	var flow *widget.Container
	for _, child := range w.Children[id] {
		cn := w.Node[child]
		if cn.PositionType == ecs.PositionAbsolute || (isFull(cn.Width) && isFull(cn.Height)) {
			r.placeInAnchor(box, w, child)
			continue
		}

		if flow == nil {
			flow = newFlow(node)
			box.AddChild(flow)
		}
		// MarginTop only spaces column flows
		if node.Direction == ecs.DirectionColumn && cn.MarginTop > 0 {
			flow.AddChild(widget.NewContainer(
				widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(0, int(math.Round(cn.MarginTop)))),
			))
		}
		cw := r.build(w, child)
		cw.GetWidget().LayoutData = widget.RowLayoutData{
			Position: rowPosition(node.AlignItems),
			Stretch:  stretchesCross(node.Direction, cn),
		}
		flow.AddChild(cw)
	}
	return box
}

// newFlow creates the row layout that stacks a node's in-flow children,
// anchored inside the node by its alignment.
func newFlow(node ecs.Node) *widget.Container {
	direction := widget.DirectionHorizontal
	h, v := anchorPosition(node.JustifyContent), anchorPosition(node.AlignItems)
	if node.Direction == ecs.DirectionColumn {
		direction = widget.DirectionVertical
		h, v = anchorPosition(node.AlignItems), anchorPosition(node.JustifyContent)
	}

	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(direction),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: h,
			VerticalPosition:   v,
		})),
	)
}

func (r *Renderer) face(size float64) *text.Face {
	if size <= 0 {
		size = defaultFontSize
	}
	if f, ok := r.faces[size]; ok {
		return f
	}
	var f text.Face = &text.GoTextFace{Source: r.source, Size: size}
	r.faces[size] = &f
	return &f
}

func textColor(t ecs.Text) color.Color {
	if t.Color == nil {
		return colorTextDefault
	}
	return t.Color
}

// needsDecoration reports whether a node has parts the widget tree does not
// draw: borders and round backgrounds
func needsDecoration(node ecs.Node, s ecs.Style) bool {
	if s.BorderColor != nil && node.Border > 0 {
		return true
	}
	return s.Background != nil && s.CornerRadius.Unit != ecs.UnitAuto
}

func pixels(v ecs.Val) int {
	if v.Unit != ecs.UnitPx {
		return 0
	}
	return int(math.Round(v.Value))
}

func isFull(v ecs.Val) bool {
	return v.Unit == ecs.UnitPercent && v.Value >= 100
}

func stretchesCross(d ecs.Direction, n ecs.Node) bool {
	if d == ecs.DirectionColumn {
		return isFull(n.Width)
	}
	return isFull(n.Height)
}

func anchorPosition(a ecs.Align) widget.AnchorLayoutPosition {
	switch a {
	case ecs.AlignCenter:
		return widget.AnchorLayoutPositionCenter
	case ecs.AlignEnd:
		return widget.AnchorLayoutPositionEnd
	default:
		return widget.AnchorLayoutPositionStart
	}
}

func rowPosition(a ecs.Align) widget.RowLayoutPosition {
	switch a {
	case ecs.AlignCenter:
		return widget.RowLayoutPositionCenter
	case ecs.AlignEnd:
		return widget.RowLayoutPositionEnd
	default:
		return widget.RowLayoutPositionStart
	}
}
