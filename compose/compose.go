// Package compose renders a normalized icon shape onto a colored
// base with a configurable material long shadow. It is the
// consumer of the normalization result: one path-like shape in,
// one launcher-icon image out.
//
// Rasterization is delegated to rasterx fillers; the shadow is a
// silhouette smear clipped to the base coverage.
package compose

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"

	"github.com/ondeweb/material-icon-gen/svgdoc"
)

// BaseShape selects the outline of the colored base plate.
type BaseShape uint8

const (
	BaseSquare BaseShape = iota
	BaseRoundedSquare
	BaseCircle
)

func (b BaseShape) String() string {
	switch b {
	case BaseSquare:
		return "square"
	case BaseRoundedSquare:
		return "rounded"
	case BaseCircle:
		return "circle"
	default:
		return "<unknown BaseShape>"
	}
}

// ParseBaseShape parses the textual form used by config files and
// CLI flags.
func ParseBaseShape(s string) (BaseShape, error) {
	switch s {
	case "square":
		return BaseSquare, nil
	case "rounded":
		return BaseRoundedSquare, nil
	case "circle":
		return BaseCircle, nil
	}
	return 0, fmt.Errorf("unknown base shape %q", s)
}

// Shadow configures the long shadow cast by the icon across the base.
type Shadow struct {
	Length  float64 // travel distance as a fraction of the canvas size
	Opacity float64 // starting opacity, 0 to 1
	Fade    bool    // fade out along the travel
}

// Options are the composition parameters supplied by the control
// surface.
type Options struct {
	Size         int     // canvas size in pixels (square)
	Base         BaseShape
	CornerRadius float64 // corner radius as a fraction of size, rounded base only
	BaseColor    color.NRGBA
	IconColor    color.NRGBA
	IconScale    float64 // icon extent as a fraction of the canvas
	Shadow       Shadow
}

// DefaultOptions returns the composition defaults: deep purple base,
// white icon at 60% of the canvas, fading shadow.
func DefaultOptions() Options {
	return Options{
		Size:         512,
		Base:         BaseSquare,
		CornerRadius: 0.08,
		BaseColor:    color.NRGBA{0x51, 0x2D, 0xA8, 0xFF},
		IconColor:    color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF},
		IconScale:    0.60,
		Shadow:       Shadow{Length: 1.0, Opacity: 0.25, Fade: true},
	}
}

var errNotPathLike = errors.New("composition input must be a path-like shape")

// Render composes the icon onto the base and returns the finished
// launcher image. The icon must be a path-like node (the output of
// normalization); a nil icon renders the bare base.
func Render(icon svgdoc.Node, o Options) (*image.RGBA, error) {
	if o.Size <= 0 {
		return nil, fmt.Errorf("invalid canvas size %d", o.Size)
	}
	if icon != nil && !svgdoc.PathLike(icon) {
		return nil, errNotPathLike
	}
	sz := o.Size
	bounds := image.Rect(0, 0, sz, sz)

	// base plate
	base := image.NewRGBA(bounds)
	fillPath(base, basePath(o), svgdoc.Identity, o.BaseColor)

	out := image.NewRGBA(bounds)
	draw.Copy(out, image.Point{}, base, bounds, draw.Src, nil)
	if icon == nil {
		return out, nil
	}

	m, ok := fitTransform(icon, o)
	if !ok {
		// degenerate icon with no extent: nothing to draw
		return out, nil
	}

	// icon silhouette, used as the shadow stamp
	sil := image.NewRGBA(bounds)
	fillNode(sil, icon, m, color.NRGBA{0x00, 0x00, 0x00, 0xFF})

	if o.Shadow.Length > 0 && o.Shadow.Opacity > 0 {
		shadow := renderShadow(sil, o)
		// clip the smear to the base coverage before compositing
		draw.DrawMask(out, bounds, shadow, image.Point{}, base, image.Point{}, draw.Over)
	}

	fillNode(out, icon, m, o.IconColor)
	return out, nil
}

// renderShadow smears the icon silhouette along the down-right
// diagonal, optionally fading it out.
func renderShadow(sil *image.RGBA, o Options) *image.RGBA {
	bounds := sil.Bounds()
	shadow := image.NewRGBA(bounds)
	steps := int(o.Shadow.Length * float64(o.Size))
	for i := 1; i <= steps; i++ {
		a := o.Shadow.Opacity
		if o.Shadow.Fade {
			a *= 1 - float64(i)/float64(steps+1)
		}
		src := image.NewUniform(color.NRGBA{0x00, 0x00, 0x00, uint8(a * 0xFF)})
		draw.DrawMask(shadow, bounds.Add(image.Pt(i, i)), src, image.Point{},
			sil, image.Point{}, draw.Over)
	}
	return shadow
}

// basePath returns the outline of the base plate in canvas
// coordinates.
func basePath(o Options) svgdoc.Path {
	sz := float64(o.Size)
	switch o.Base {
	case BaseCircle:
		return svgdoc.EllipsePath(sz/2, sz/2, sz/2, sz/2)
	case BaseRoundedSquare:
		r := o.CornerRadius * sz
		return svgdoc.RoundRectPath(0, 0, sz, sz, r, r)
	default:
		return svgdoc.RectPath(0, 0, sz, sz)
	}
}

// fitTransform maps the icon bounds to a centered square of
// IconScale times the canvas, preserving aspect ratio. It reports
// false for shapes with no measurable extent.
func fitTransform(icon svgdoc.Node, o Options) (svgdoc.Matrix2D, bool) {
	minX, minY, maxX, maxY := nodeBounds(icon)
	w, h := maxX-minX, maxY-minY
	if w <= 0 && h <= 0 {
		return svgdoc.Identity, false
	}
	extent := w
	if h > extent {
		extent = h
	}
	sz := float64(o.Size)
	scale := o.IconScale * sz / extent
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	m := svgdoc.Identity.
		Translate(sz/2, sz/2).
		Scale(scale, scale).
		Translate(-cx, -cy)
	return m, true
}

func nodeBounds(n svgdoc.Node) (minX, minY, maxX, maxY float64) {
	first := true
	for _, ct := range nodeContours(n) {
		if len(ct) == 0 {
			continue
		}
		x0, y0, x1, y1 := ct.Bounds()
		if first {
			minX, minY, maxX, maxY = x0, y0, x1, y1
			first = false
			continue
		}
		if x0 < minX {
			minX = x0
		}
		if y0 < minY {
			minY = y0
		}
		if x1 > maxX {
			maxX = x1
		}
		if y1 > maxY {
			maxY = y1
		}
	}
	return
}

// nodeContours flattens a path-like node to its outline contours.
func nodeContours(n svgdoc.Node) []svgdoc.Path {
	switch n := n.(type) {
	case *svgdoc.SimplePath:
		return []svgdoc.Path{n.Outline}
	case *svgdoc.CompoundPath:
		out := make([]svgdoc.Path, 0, len(n.SubPaths))
		for _, sp := range n.SubPaths {
			out = append(out, sp.Outline)
		}
		return out
	}
	return nil
}

// fillNode rasterizes every contour of the node in one fill pass.
// Even-odd winding lets the sub-path ordering of a compound shape
// decide holes.
func fillNode(img *image.RGBA, n svgdoc.Node, m svgdoc.Matrix2D, col color.Color) {
	var all svgdoc.Path
	for _, ct := range nodeContours(n) {
		all = append(all, ct...)
	}
	fillPath(img, all, m, col)
}

func fillPath(img *image.RGBA, p svgdoc.Path, m svgdoc.Matrix2D, col color.Color) {
	if len(p) == 0 {
		return
	}
	b := img.Bounds()
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), img, b)
	filler := rasterx.NewFiller(b.Dx(), b.Dy(), scanner)
	filler.SetWinding(false) // even-odd
	p.AddTo(filler, m)
	filler.SetColor(col)
	filler.Draw()
}
