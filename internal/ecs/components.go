package ecs

import (
	"image/color"
	"math"
)

// Unit is the unit of a Val
type Unit int

const (
	UnitAuto Unit = iota
	UnitPx
	UnitPercent
)

// Val is a layout length: auto, pixels, or percent of the parent
type Val struct {
	Unit  Unit
	Value float64
}

// Auto is the zero Val
var Auto = Val{}

// Px returns a pixel length
func Px(v float64) Val { return Val{Unit: UnitPx, Value: v} }

// Percent returns a length relative to the parent (0-100)
func Percent(v float64) Val { return Val{Unit: UnitPercent, Value: v} }

// Resolve converts the value to pixels against the parent length.
// Auto resolves to fallback.
func (v Val) Resolve(parent, fallback float64) float64 {
	switch v.Unit {
	case UnitPx:
		return v.Value
	case UnitPercent:
		return parent * v.Value / 100
	default:
		return fallback
	}
}

// Direction is the main axis of a container
type Direction int

const (
	DirectionRow Direction = iota
	DirectionColumn
)

// Align positions children along an axis
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// PositionType selects flow or absolute placement
type PositionType int

const (
	PositionRelative PositionType = iota
	PositionAbsolute
)

// Node is a layout box
type Node struct {
	Width, Height  Val
	Direction      Direction
	AlignItems     Align // cross axis
	JustifyContent Align // main axis
	MarginTop      float64
	Border         float64 // border width in pixels (all sides)

	PositionType PositionType
	Top, Left    Val // used when PositionType == PositionAbsolute
}

// Style holds the visual properties of a node
type Style struct {
	Background   color.Color // nil = transparent
	BorderColor  color.Color // nil = no border drawn
	CornerRadius Val         // Percent(50) on a square node draws a circle
}

// Text is a label
type Text struct {
	Content  string
	FontSize float64
	Color    color.Color
}

// Transform is a node's rotation about the depth axis, in radians.
// Negative is clockwise on screen.
type Transform struct {
	Rotation float64
}

// RotateZ adds angle radians to the rotation
func (t *Transform) RotateZ(angle float64) {
	t.Rotation += angle
}

// Angle returns the rotation normalized to [0, 2π)
func (t Transform) Angle() float64 {
	return NormalizeAngle(t.Rotation)
}

// NormalizeAngle maps a into [0, 2π)
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	// tiny negatives round up to 2π when shifted
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}
