package svgdoc

import (
	"math"
	"testing"
)

func TestSignedAreaRect(t *testing.T) {
	p := RectPath(0, 0, 10, 10)
	if got := p.SignedArea(); math.Abs(got-100) > 1e-6 {
		t.Errorf("rect area = %v, want 100", got)
	}
	// reversed winding flips the sign
	rev := compile(t, "M0 0 L0 10 L10 10 L10 0 Z")
	if got := rev.SignedArea(); math.Abs(got+100) > 1e-6 {
		t.Errorf("reversed rect area = %v, want -100", got)
	}
}

func TestSignedAreaEllipse(t *testing.T) {
	p := EllipsePath(0, 0, 8, 5)
	want := math.Pi * 8 * 5
	got := math.Abs(p.SignedArea())
	if math.Abs(got-want)/want > 0.01 {
		t.Errorf("ellipse area = %v, want ~%v", got, want)
	}
}

func TestPathBounds(t *testing.T) {
	p := RectPath(2, 3, 12, 8)
	minX, minY, maxX, maxY := p.Bounds()
	if minX != 2 || minY != 3 || maxX != 12 || maxY != 8 {
		t.Errorf("bounds = (%v,%v)-(%v,%v), want (2,3)-(12,8)", minX, minY, maxX, maxY)
	}
}

func TestPathTransform(t *testing.T) {
	p := RectPath(0, 0, 10, 10)
	tp := p.Transform(Identity.Translate(5, 5).Scale(2, 2))
	minX, minY, maxX, maxY := tp.Bounds()
	if minX != 5 || minY != 5 || maxX != 25 || maxY != 25 {
		t.Errorf("transformed bounds = (%v,%v)-(%v,%v)", minX, minY, maxX, maxY)
	}
	// scaling by 2 quadruples the area
	if got := tp.SignedArea(); math.Abs(got-400) > 1e-6 {
		t.Errorf("transformed area = %v, want 400", got)
	}
}

func TestMatrixInverseOps(t *testing.T) {
	m := Identity.Translate(3, -2).Rotate(0.7).Scale(1.5, 0.5)
	inv := Identity.Scale(1/1.5, 1/0.5).Rotate(-0.7).Translate(-3, 2)
	x, y := m.Mult(inv).Apply(11, 13)
	if math.Abs(x-11) > 1e-9 || math.Abs(y-13) > 1e-9 {
		t.Errorf("round trip moved the point to (%v,%v)", x, y)
	}
}

func TestSimplePathArea(t *testing.T) {
	sp := &SimplePath{Outline: RectPath(0, 0, 4, 5)}
	if got := sp.Area(); math.Abs(got-20) > 1e-6 {
		t.Errorf("area = %v, want 20", got)
	}
}

func TestCompoundPathAreaSumsAbsolute(t *testing.T) {
	// a ring: outer square with a reverse-wound hole still counts
	// both contours
	outer := &SimplePath{Outline: RectPath(0, 0, 10, 10)}
	hole := &SimplePath{Outline: compile(t, "M2 2 L2 8 L8 8 L8 2 Z")}
	cp := &CompoundPath{SubPaths: []*SimplePath{outer, hole}}
	if got := cp.Area(); math.Abs(got-136) > 1e-6 {
		t.Errorf("compound area = %v, want 136", got)
	}
}

func TestKinds(t *testing.T) {
	var nodes = []struct {
		n    Node
		kind Kind
		path bool
	}{
		{&Group{}, KindGroup, false},
		{&SimplePath{}, KindSimplePath, true},
		{&CompoundPath{}, KindCompoundPath, true},
	}
	for _, c := range nodes {
		if c.n.Kind() != c.kind {
			t.Errorf("%T reports kind %v", c.n, c.n.Kind())
		}
		if PathLike(c.n) != c.path {
			t.Errorf("PathLike(%T) = %v", c.n, !c.path)
		}
	}
}
