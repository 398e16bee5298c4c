package svgdoc

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/image/math/fixed"
)

// This file defines the basic path structure

// Adder accumulates flattened-out path commands. It is satisfied by
// rasterizer fillers such as rasterx.Filler.
type Adder interface {
	// Start starts a new contour at the given point.
	Start(a fixed.Point26_6)
	// Line adds a line segment from the current point to b
	Line(b fixed.Point26_6)
	// QuadBezier adds a quadratic bezier curve to the path
	QuadBezier(b, c fixed.Point26_6)
	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(b, c, d fixed.Point26_6)
	// Stop closes the path to the start point if closeLoop is true
	Stop(closeLoop bool)
}

// Operation groups the different SVG path commands
type Operation interface {
	// add itself on the adder `q`, after applying the transform `m`
	addTo(q Adder, m Matrix2D)
}

type MoveTo fixed.Point26_6

type LineTo fixed.Point26_6

type QuadTo [2]fixed.Point26_6

type CubicTo [3]fixed.Point26_6

type Close struct{}

func (op MoveTo) addTo(q Adder, m Matrix2D) {
	q.Stop(false) // implicit close if currently in path.
	q.Start(m.trPoint(fixed.Point26_6(op)))
}

func (op LineTo) addTo(q Adder, m Matrix2D) {
	q.Line(m.trPoint(fixed.Point26_6(op)))
}

func (op QuadTo) addTo(q Adder, m Matrix2D) {
	q.QuadBezier(m.trPoint(op[0]), m.trPoint(op[1]))
}

func (op CubicTo) addTo(q Adder, m Matrix2D) {
	q.CubeBezier(m.trPoint(op[0]), m.trPoint(op[1]), m.trPoint(op[2]))
}

func (op Close) addTo(q Adder, _ Matrix2D) {
	q.Stop(true)
}

// Path describes a sequence of basic SVG operations, which should not be nil.
// Higher-level shapes are reduced to a path during parsing.
type Path []Operation

// ToSVGPath returns a string representation of the path
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		case LineTo:
			chunks[i] = fmt.Sprintf("L%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		case QuadTo:
			chunks[i] = fmt.Sprintf("Q%4.3f,%4.3f,%4.3f,%4.3f", float32(op[0].X)/64, float32(op[0].Y)/64,
				float32(op[1].X)/64, float32(op[1].Y)/64)
		case CubicTo:
			chunks[i] = fmt.Sprintf("C%4.3f,%4.3f,%4.3f,%4.3f,%4.3f,%4.3f", float32(op[0].X)/64, float32(op[0].Y)/64,
				float32(op[1].X)/64, float32(op[1].Y)/64, float32(op[2].X)/64, float32(op[2].Y)/64)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// Start starts a new contour at the given point.
func (p *Path) Start(a fixed.Point26_6) {
	*p = append(*p, MoveTo{a.X, a.Y})
}

// Line adds a linear segment to the current contour.
func (p *Path) Line(b fixed.Point26_6) {
	*p = append(*p, LineTo{b.X, b.Y})
}

// QuadBezier adds a quadratic segment to the current contour.
func (p *Path) QuadBezier(b, c fixed.Point26_6) {
	*p = append(*p, QuadTo{b, c})
}

// CubeBezier adds a cubic segment to the current contour.
func (p *Path) CubeBezier(b, c, d fixed.Point26_6) {
	*p = append(*p, CubicTo{b, c, d})
}

// Stop joins the ends of the contour
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// AddTo replays the path on the adder `q`, applying the transform `m`
// to every point. An implicit Stop(false) terminates the path.
func (p Path) AddTo(q Adder, m Matrix2D) {
	for _, op := range p {
		op.addTo(q, m)
	}
	q.Stop(false)
}

// Transform returns a copy of the path with `m` applied to every point.
func (p Path) Transform(m Matrix2D) Path {
	var q Path
	p.AddTo(&q, m)
	return q
}

// Contours splits the path at each MoveTo, returning one path
// per contour. Operations before the first MoveTo are dropped.
func (p Path) Contours() []Path {
	var out []Path
	var cur Path
	for _, op := range p {
		if _, isMove := op.(MoveTo); isMove {
			if len(cur) > 0 {
				out = append(out, cur)
			}
			cur = Path{op}
			continue
		}
		if len(cur) > 0 {
			cur = append(cur, op)
		}
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// curveSegments is the number of chords used to flatten one bezier
// curve when measuring a path. Enough for stable area comparisons,
// which is all the measurements are used for.
const curveSegments = 16

// flatten reduces the path to polygon vertices in float64 user units,
// one slice per contour.
func (p Path) flatten() [][][2]float64 {
	var polys [][][2]float64
	var cur [][2]float64
	var cx, cy float64
	at := func(x, y fixed.Int26_6) (float64, float64) {
		return float64(x) / 64, float64(y) / 64
	}
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			if len(cur) > 0 {
				polys = append(polys, cur)
			}
			cx, cy = at(op.X, op.Y)
			cur = [][2]float64{{cx, cy}}
		case LineTo:
			cx, cy = at(op.X, op.Y)
			cur = append(cur, [2]float64{cx, cy})
		case QuadTo:
			bx, by := at(op[0].X, op[0].Y)
			ex, ey := at(op[1].X, op[1].Y)
			for i := 1; i <= curveSegments; i++ {
				t := float64(i) / curveSegments
				u := 1 - t
				x := u*u*cx + 2*u*t*bx + t*t*ex
				y := u*u*cy + 2*u*t*by + t*t*ey
				cur = append(cur, [2]float64{x, y})
			}
			cx, cy = ex, ey
		case CubicTo:
			bx, by := at(op[0].X, op[0].Y)
			gx, gy := at(op[1].X, op[1].Y)
			ex, ey := at(op[2].X, op[2].Y)
			for i := 1; i <= curveSegments; i++ {
				t := float64(i) / curveSegments
				u := 1 - t
				x := u*u*u*cx + 3*u*u*t*bx + 3*u*t*t*gx + t*t*t*ex
				y := u*u*u*cy + 3*u*u*t*by + 3*u*t*t*gy + t*t*t*ey
				cur = append(cur, [2]float64{x, y})
			}
			cx, cy = ex, ey
		case Close:
			if len(cur) > 0 {
				cur = append(cur, cur[0])
			}
		}
	}
	if len(cur) > 0 {
		polys = append(polys, cur)
	}
	return polys
}

// SignedArea computes the enclosed area of the path by the shoelace
// formula over its flattened contours. Open contours are treated as
// implicitly closed. Counter-clockwise contours (in the y-down SVG
// coordinate system) yield negative values.
func (p Path) SignedArea() float64 {
	var total float64
	for _, poly := range p.flatten() {
		var a float64
		for i := 0; i < len(poly)-1; i++ {
			a += poly[i][0]*poly[i+1][1] - poly[i+1][0]*poly[i][1]
		}
		// close the ring
		last, first := poly[len(poly)-1], poly[0]
		a += last[0]*first[1] - first[0]*last[1]
		total += a
	}
	return total / 2
}

// Bounds returns the extent of the flattened path.
// It returns zeros for an empty path.
func (p Path) Bounds() (minX, minY, maxX, maxY float64) {
	first := true
	for _, poly := range p.flatten() {
		for _, pt := range poly {
			if first {
				minX, maxX = pt[0], pt[0]
				minY, maxY = pt[1], pt[1]
				first = false
				continue
			}
			minX = math.Min(minX, pt[0])
			maxX = math.Max(maxX, pt[0])
			minY = math.Min(minY, pt[1])
			maxY = math.Max(maxY, pt[1])
		}
	}
	return
}
