package svgdoc

import "image/color"

// Kind discriminates the closed set of node variants.
type Kind uint8

const (
	KindGroup Kind = iota
	KindSimplePath
	KindCompoundPath
)

func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindSimplePath:
		return "simple path"
	case KindCompoundPath:
		return "compound path"
	default:
		return "<unknown Kind>"
	}
}

// Node is one element of a parsed document tree: either a group of
// child nodes or a path-like shape. The set of implementations is
// closed; consumers switch on the concrete type or on Kind.
type Node interface {
	Kind() Kind
}

// Group is an ordered sequence of child nodes ("g" elements and the
// document root).
type Group struct {
	Children []Node
}

func (*Group) Kind() Kind { return KindGroup }

// SimplePath is a single-contour outline with its resolved paint
// attributes. A nil Fill means the shape is not filled ("none").
type SimplePath struct {
	Outline     Path
	Fill        *color.NRGBA
	StrokeWidth float64
}

func (*SimplePath) Kind() Kind { return KindSimplePath }

// Area returns the unsigned enclosed area of the outline.
func (p *SimplePath) Area() float64 {
	a := p.Outline.SignedArea()
	if a < 0 {
		return -a
	}
	return a
}

// CompoundPath is a single logical shape made of several sub-paths,
// used to express holes and multi-contour glyphs. A nil Fill means
// the shape is not filled.
type CompoundPath struct {
	SubPaths []*SimplePath
	Fill     *color.NRGBA
}

func (*CompoundPath) Kind() Kind { return KindCompoundPath }

// Area returns the sum of the unsigned areas of the sub-paths.
func (p *CompoundPath) Area() float64 {
	var total float64
	for _, sp := range p.SubPaths {
		total += sp.Area()
	}
	return total
}

// PathLike reports whether the node is directly renderable as a
// filled outline.
func PathLike(n Node) bool {
	switch n.(type) {
	case *SimplePath, *CompoundPath:
		return true
	}
	return false
}
