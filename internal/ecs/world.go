package ecs

import "sort"

// EntityID is a unique identifier for a visual node (never recycled)
type EntityID uint64

// NoEntity is the nil entity, also used as "no parent"
const NoEntity EntityID = 0

// World holds the visual node tree as component maps
type World struct {
	nextID EntityID
	// generation changes whenever an entity is created or destroyed
	generation uint64

	alive map[EntityID]struct{}

	// Components
	Node      map[EntityID]Node
	Style     map[EntityID]Style
	Text      map[EntityID]Text
	Transform map[EntityID]Transform

	// Hierarchy
	Parent   map[EntityID]EntityID
	Children map[EntityID][]EntityID
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:    1, // 0 is "nil"
		alive:     make(map[EntityID]struct{}),
		Node:      make(map[EntityID]Node),
		Style:     make(map[EntityID]Style),
		Text:      make(map[EntityID]Text),
		Transform: make(map[EntityID]Transform),
		Parent:    make(map[EntityID]EntityID),
		Children:  make(map[EntityID][]EntityID),
	}
}

// NewEntity returns a new unique entity ID attached under parent.
// Pass NoEntity for a top-level node.
func (w *World) NewEntity(parent EntityID) EntityID {
	id := w.nextID
	w.nextID++
	w.generation++
	w.alive[id] = struct{}{}

	if parent != NoEntity && w.Exists(parent) {
		w.Parent[id] = parent
		w.Children[parent] = append(w.Children[parent], id)
	}
	return id
}

// Exists reports whether id is a live entity
func (w *World) Exists(id EntityID) bool {
	_, ok := w.alive[id]
	return ok
}

// Generation returns a counter that changes whenever the set of live
// entities changes
func (w *World) Generation() uint64 {
	return w.generation
}

// Count returns the number of live entities
func (w *World) Count() int {
	return len(w.alive)
}

// DestroyEntity removes all components of a single entity and unlinks it
// from its parent. Children are left orphaned; use DespawnRecursive to
// remove a subtree.
func (w *World) DestroyEntity(id EntityID) {
	if !w.Exists(id) {
		return
	}
	w.generation++
	if parent, ok := w.Parent[id]; ok {
		w.Children[parent] = removeID(w.Children[parent], id)
		if len(w.Children[parent]) == 0 {
			delete(w.Children, parent)
		}
	}
	for _, child := range w.Children[id] {
		delete(w.Parent, child)
	}

	delete(w.alive, id)
	delete(w.Node, id)
	delete(w.Style, id)
	delete(w.Text, id)
	delete(w.Transform, id)
	delete(w.Parent, id)
	delete(w.Children, id)
}

// DespawnRecursive removes id and all of its descendants.
// Returns the number of entities removed; 0 if id is already gone.
func (w *World) DespawnRecursive(id EntityID) int {
	if !w.Exists(id) {
		return 0
	}
	removed := 0
	// copy: DestroyEntity mutates the child slice
	children := append([]EntityID(nil), w.Children[id]...)
	for _, child := range children {
		removed += w.DespawnRecursive(child)
	}
	w.DestroyEntity(id)
	return removed + 1
}

// Descendants returns all descendants of id in depth-first order
func (w *World) Descendants(id EntityID) []EntityID {
	var out []EntityID
	for _, child := range w.Children[id] {
		out = append(out, child)
		out = append(out, w.Descendants(child)...)
	}
	return out
}

// Roots returns the top-level entities in creation order
func (w *World) Roots() []EntityID {
	var roots []EntityID
	for id := range w.alive {
		if _, hasParent := w.Parent[id]; !hasParent {
			roots = append(roots, id)
		}
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i] < roots[j] })
	return roots
}

// FindText returns entities whose label content equals s, in creation order
func (w *World) FindText(s string) []EntityID {
	var ids []EntityID
	for id, txt := range w.Text {
		if txt.Content == s {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func removeID(ids []EntityID, id EntityID) []EntityID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
