// Package scene implements the shared drawing surface that owns all
// currently displayed geometry. Shapes are addressed by opaque
// handles; the scene keeps insertion order, which is the paint order.
//
// The scene has no locking discipline of its own: per the editor's
// event-driven model a single goroutine mutates it, and the import
// path relies on removal-before-insertion ordering for safety.
package scene

import (
	"github.com/google/uuid"

	"github.com/ondeweb/material-icon-gen/svgdoc"
)

// Handle identifies one shape owned by the scene.
type Handle = uuid.UUID

// Scene is the ownership arena for imported geometry.
type Scene struct {
	order   []Handle
	shapes  map[Handle]svgdoc.Node
	handles map[svgdoc.Node]Handle
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{
		shapes:  make(map[Handle]svgdoc.Node),
		handles: make(map[svgdoc.Node]Handle),
	}
}

// Insert adds a shape to the scene and returns its handle. Inserting
// a node already present returns the existing handle.
func (s *Scene) Insert(n svgdoc.Node) Handle {
	if h, ok := s.handles[n]; ok {
		return h
	}
	h := uuid.New()
	s.shapes[h] = n
	s.handles[n] = h
	s.order = append(s.order, h)
	return h
}

// Remove detaches the shape with the given handle. It reports whether
// the handle was present.
func (s *Scene) Remove(h Handle) bool {
	n, ok := s.shapes[h]
	if !ok {
		return false
	}
	delete(s.shapes, h)
	delete(s.handles, n)
	for i, o := range s.order {
		if o == h {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// RemoveNode detaches the given shape, if the scene owns it.
func (s *Scene) RemoveNode(n svgdoc.Node) bool {
	h, ok := s.handles[n]
	if !ok {
		return false
	}
	return s.Remove(h)
}

// Lookup returns the handle owning n.
func (s *Scene) Lookup(n svgdoc.Node) (Handle, bool) {
	h, ok := s.handles[n]
	return h, ok
}

// Node returns the shape addressed by h.
func (s *Scene) Node(h Handle) (svgdoc.Node, bool) {
	n, ok := s.shapes[h]
	return n, ok
}

// Len returns the number of shapes in the scene.
func (s *Scene) Len() int { return len(s.shapes) }

// Shapes returns the owned shapes in paint order.
func (s *Scene) Shapes() []svgdoc.Node {
	out := make([]svgdoc.Node, 0, len(s.order))
	for _, h := range s.order {
		out = append(out, s.shapes[h])
	}
	return out
}

// Clear detaches every shape.
func (s *Scene) Clear() {
	s.order = s.order[:0]
	s.shapes = make(map[Handle]svgdoc.Node)
	s.handles = make(map[svgdoc.Node]Handle)
}
