package svgdoc

import (
	"strings"
	"testing"
)

func compile(t *testing.T, d string) Path {
	t.Helper()
	var c pathCursor
	if err := c.compilePath(d); err != nil {
		t.Fatalf("compiling %q: %v", d, err)
	}
	return c.path
}

func TestCompileBasicCommands(t *testing.T) {
	p := compile(t, "M0 0 L10 0 L10 10 Z")
	want := []string{"MoveTo", "LineTo", "LineTo", "Close"}
	if len(p) != len(want) {
		t.Fatalf("got %d ops, want %d", len(p), len(want))
	}
	if op, ok := p[1].(LineTo); !ok || op.X != 10*64 || op.Y != 0 {
		t.Errorf("unexpected second op %v", p[1])
	}
	if _, ok := p[3].(Close); !ok {
		t.Errorf("expected trailing close, got %v", p[3])
	}
}

func TestCompileRelativeAndShorthand(t *testing.T) {
	// h/v shorthands, relative moves
	p := compile(t, "m5 5 h10 v10 h-10 z")
	if op, ok := p[2].(LineTo); !ok || op.X != 15*64 || op.Y != 15*64 {
		t.Errorf("relative v landed at %v", p[2])
	}
	// implicit lineto after moveto
	p = compile(t, "M0 0 10 0 10 10")
	if len(p) != 3 {
		t.Fatalf("implicit linetos: got %d ops, want 3", len(p))
	}
	if _, ok := p[1].(LineTo); !ok {
		t.Errorf("second coordinate pair should be a lineto, got %v", p[1])
	}
}

func TestCompileCurves(t *testing.T) {
	p := compile(t, "M0 0 C0 10 10 10 10 0 S20 -10 20 0")
	if len(p) != 3 {
		t.Fatalf("got %d ops, want 3", len(p))
	}
	// the smooth control point is the previous one reflected around
	// the current position
	op, ok := p[2].(CubicTo)
	if !ok {
		t.Fatalf("expected cubic, got %v", p[2])
	}
	if op[0].X != 10*64 || op[0].Y != -10*64 {
		t.Errorf("reflected control point is %v,%v, want 640,-640", op[0].X, op[0].Y)
	}

	p = compile(t, "M0 0 Q5 10 10 0 T20 0")
	if op, ok := p[2].(QuadTo); !ok || op[0].X != 15*64 || op[0].Y != -10*64 {
		t.Errorf("reflected quad control is %v", p[2])
	}
}

func TestCompileArc(t *testing.T) {
	p := compile(t, "M0 0 A5 5 0 0 1 10 0")
	if len(p) < 2 {
		t.Fatalf("arc produced no curves")
	}
	for _, op := range p[1:] {
		if _, ok := op.(CubicTo); !ok {
			t.Fatalf("arc must lower to cubics, got %v", op)
		}
	}
	// crammed flags, as emitted by some authoring tools
	p = compile(t, "M0 0a5 5 0 0110 0")
	if len(p) < 2 {
		t.Fatalf("crammed arc flags were not understood")
	}
}

func TestCompileElidedSeparators(t *testing.T) {
	p := compile(t, "M10-5L1.5.3 2 4")
	if op, ok := p[0].(MoveTo); !ok || op.X != 10*64 || op.Y != -5*64 {
		t.Fatalf("sign-separated move is %v", p[0])
	}
	if op, ok := p[1].(LineTo); !ok || op.X != 96 { // 1.5 * 64
		t.Fatalf("dot-separated line is %v", p[1])
	}
	if len(p) != 3 {
		t.Fatalf("got %d ops, want 3", len(p))
	}
}

func TestCompileMultiContour(t *testing.T) {
	p := compile(t, "M0 0h10v10H0z M2 2h6v6H2z")
	cts := p.Contours()
	if len(cts) != 2 {
		t.Fatalf("got %d contours, want 2", len(cts))
	}
	for i, ct := range cts {
		if _, ok := ct[0].(MoveTo); !ok {
			t.Errorf("contour %d does not begin with a move", i)
		}
	}
}

func TestCompileErrors(t *testing.T) {
	for _, d := range []string{
		"L10 10",     // must begin with a moveto
		"M0 0 L10",   // missing parameter
		"M0 0 X5 5",  // unknown command
		"M0 0 A5 5 0 2 1 10 0", // arc flag out of range
	} {
		var c pathCursor
		if err := c.compilePath(d); err == nil {
			t.Errorf("compiling %q: expected error", d)
		}
	}
}

func TestToSVGPathRoundTrip(t *testing.T) {
	p := compile(t, "M0 0 L10 0 Q10 10 0 10 Z")
	s := p.ToSVGPath()
	for _, frag := range []string{"M", "L", "Q", "Z"} {
		if !strings.Contains(s, frag) {
			t.Errorf("serialized path %q misses %s", s, frag)
		}
	}
}
