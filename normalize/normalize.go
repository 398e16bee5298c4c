// Package normalize reduces an imported vector document tree to the
// single path-like shape that represents the whole icon.
//
// The algorithm is a depth-first walk: path-like nodes are taken as
// they are, groups reduce to the one candidate their subtree yields,
// and groups with several competing candidates are resolved by
// keeping the filled ones and rebuilding them as one compound shape.
// The walk is scene-free: discarded candidates are reported back to
// the caller, which owns the actual scene removals.
package normalize

import (
	"errors"
	"image/color"
	"sort"

	"github.com/ondeweb/material-icon-gen/svgdoc"
)

// ErrNoPathFound reports that the document contains no path-like
// geometry anywhere in its tree. It is distinct from a parse failure,
// which surfaces from the document layer as svgdoc.ErrInvalidDocument.
var ErrNoPathFound = errors.New("no path found in document")

// SubPathOrder reports whether sub-path a must precede b in the
// rebuilt compound shape.
type SubPathOrder func(a, b *svgdoc.SimplePath) bool

// ByAscendingArea orders sub-paths by growing enclosed area. This is
// an empirical rule: the downstream containment evaluation decides
// inside/outside of overlapping sub-paths by their order, and known
// real-world icon exports only render correctly smallest first. It is
// the default policy, not a geometric law.
func ByAscendingArea(a, b *svgdoc.SimplePath) bool {
	return a.Area() < b.Area()
}

type options struct {
	order SubPathOrder
}

// Option customizes a normalization run.
type Option func(*options)

// WithSubPathOrder overrides the sub-path ordering policy applied
// when rebuilding a compound shape from several candidates.
func WithSubPathOrder(order SubPathOrder) Option {
	return func(o *options) { o.order = order }
}

// Normalize walks the imported tree and selects the single path-like
// shape representing the icon. It returns the surviving shape and the
// candidate nodes that were consumed along the way and must be
// detached from the owning scene by the caller. When the tree holds
// no path-like geometry it returns ErrNoPathFound and no discards.
//
// Normalize is idempotent: running it on its own output returns that
// output unchanged.
func Normalize(root svgdoc.Node, opts ...Option) (svgdoc.Node, []svgdoc.Node, error) {
	o := options{order: ByAscendingArea}
	for _, opt := range opts {
		opt(&o)
	}
	result, discarded := reduce(root, o)
	if result == nil {
		return nil, discarded, ErrNoPathFound
	}
	return result, discarded, nil
}

// reduce returns the candidate shape the subtree of n reduces to, or
// nil when the subtree holds none, together with the nodes consumed
// by multi-candidate resolution.
func reduce(n svgdoc.Node, o options) (svgdoc.Node, []svgdoc.Node) {
	switch n := n.(type) {
	case *svgdoc.SimplePath:
		return n, nil
	case *svgdoc.CompoundPath:
		return n, nil
	case *svgdoc.Group:
		return reduceGroup(n, o)
	default:
		// not a failure by itself; only surfaces as ErrNoPathFound
		// when nothing else yields a candidate
		return nil, nil
	}
}

func reduceGroup(g *svgdoc.Group, o options) (svgdoc.Node, []svgdoc.Node) {
	var candidates []svgdoc.Node
	var discarded []svgdoc.Node
	for _, child := range g.Children {
		c, d := reduce(child, o)
		discarded = append(discarded, d...)
		if c != nil {
			candidates = append(candidates, c)
		}
	}
	switch len(candidates) {
	case 0:
		return nil, discarded
	case 1:
		// the common case for well-formed single-shape icons:
		// pass the shape through untouched
		return candidates[0], discarded
	}

	// Multi-shape group, e.g. an icon set with an invisible bounding
	// rect next to the visible glyph. Every candidate is consumed
	// here regardless of whether it contributes to the result.
	discarded = append(discarded, candidates...)

	// Keep the filled candidates and flatten them one level: a simple
	// path contributes itself, a compound path its own sub-paths in
	// order. Compound paths are not nested at this stage, so no
	// deeper flattening is needed. An all-unfilled group degrades to
	// an empty compound shape rather than failing.
	var subs []*svgdoc.SimplePath
	for _, cand := range candidates {
		switch cand := cand.(type) {
		case *svgdoc.SimplePath:
			if cand.Fill != nil {
				subs = append(subs, cand)
			}
		case *svgdoc.CompoundPath:
			if cand.Fill != nil {
				subs = append(subs, cand.SubPaths...)
			}
		}
	}

	// A fully transparent fill keeps the sub-paths uniform: the
	// containment evaluation downstream reads fill presence as a
	// winding hint, and mixed colors among sub-paths of one compound
	// shape would corrupt it.
	for _, sp := range subs {
		sp.Fill = &color.NRGBA{}
		sp.StrokeWidth = 0
	}
	sort.SliceStable(subs, func(i, j int) bool { return o.order(subs[i], subs[j]) })

	return &svgdoc.CompoundPath{SubPaths: subs, Fill: &color.NRGBA{}}, discarded
}
