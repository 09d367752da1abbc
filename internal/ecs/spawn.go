package ecs

// CreateNode creates a container node under parent
func (w *World) CreateNode(parent EntityID, node Node, style Style) EntityID {
	id := w.NewEntity(parent)
	w.Node[id] = node
	w.Style[id] = style
	return id
}

// CreateText creates a text label under parent
func (w *World) CreateText(parent EntityID, node Node, text Text) EntityID {
	id := w.NewEntity(parent)
	w.Node[id] = node
	w.Text[id] = text
	return id
}

// CreateSpinner creates a rotatable bordered node under parent.
// The rotation starts at 0.
func (w *World) CreateSpinner(parent EntityID, node Node, style Style) EntityID {
	id := w.CreateNode(parent, node, style)
	w.Transform[id] = Transform{}
	return id
}

// RotateZ rotates the entity's transform by angle radians.
// Entities without a Transform are ignored.
func (w *World) RotateZ(id EntityID, angle float64) bool {
	t, ok := w.Transform[id]
	if !ok {
		return false
	}
	t.RotateZ(angle)
	w.Transform[id] = t
	return true
}
