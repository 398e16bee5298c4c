package compose

import (
	"image/color"
	"testing"

	"github.com/ondeweb/material-icon-gen/svgdoc"
)

func testOptions() Options {
	o := DefaultOptions()
	o.Size = 64
	o.BaseColor = color.NRGBA{0xFF, 0x00, 0x00, 0xFF}
	o.IconScale = 0.5
	o.Shadow = Shadow{} // off unless a test enables it
	return o
}

func squareIcon() svgdoc.Node {
	return &svgdoc.SimplePath{Outline: svgdoc.RectPath(0, 0, 10, 10)}
}

func TestRenderBareBase(t *testing.T) {
	out, err := Render(nil, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	if got := out.Bounds().Dx(); got != 64 {
		t.Fatalf("canvas width = %d, want 64", got)
	}
	if px := out.RGBAAt(2, 2); px.R != 0xFF || px.A != 0xFF {
		t.Errorf("square base corner = %v, want opaque red", px)
	}
}

func TestRenderCircleBase(t *testing.T) {
	o := testOptions()
	o.Base = BaseCircle
	out, err := Render(nil, o)
	if err != nil {
		t.Fatal(err)
	}
	if px := out.RGBAAt(1, 1); px.A != 0 {
		t.Errorf("circle base corner = %v, want transparent", px)
	}
	if px := out.RGBAAt(32, 32); px.R != 0xFF {
		t.Errorf("circle base center = %v, want red", px)
	}
}

func TestRenderIcon(t *testing.T) {
	out, err := Render(squareIcon(), testOptions())
	if err != nil {
		t.Fatal(err)
	}
	// icon fills the centered half of the canvas in white
	if px := out.RGBAAt(32, 32); px.R != 0xFF || px.G != 0xFF || px.B != 0xFF {
		t.Errorf("icon center = %v, want white", px)
	}
	// outside the icon the base shows through
	if px := out.RGBAAt(2, 2); px.G != 0 || px.R != 0xFF {
		t.Errorf("pixel outside icon = %v, want red", px)
	}
}

func TestRenderShadow(t *testing.T) {
	o := testOptions()
	o.Shadow = Shadow{Length: 0.25, Opacity: 1}
	out, err := Render(squareIcon(), o)
	if err != nil {
		t.Fatal(err)
	}
	// the smear runs down-right from the icon edge across the base
	if px := out.RGBAAt(52, 52); px.R > 0x40 {
		t.Errorf("shadowed pixel = %v, want near black", px)
	}
	// opposite corner stays untouched
	if px := out.RGBAAt(5, 5); px.R != 0xFF {
		t.Errorf("unshadowed pixel = %v, want red", px)
	}
}

func TestRenderShadowClippedToBase(t *testing.T) {
	o := testOptions()
	o.Base = BaseCircle
	o.Shadow = Shadow{Length: 1, Opacity: 1}
	out, err := Render(squareIcon(), o)
	if err != nil {
		t.Fatal(err)
	}
	// the bottom-right canvas corner is outside the circular base, so
	// the smear must not reach it
	if px := out.RGBAAt(62, 62); px.A != 0 {
		t.Errorf("shadow escaped the base: %v", px)
	}
}

func TestRenderCompound(t *testing.T) {
	// a square with a centered square hole; even-odd winding must
	// leave the hole open
	icon := &svgdoc.CompoundPath{SubPaths: []*svgdoc.SimplePath{
		{Outline: svgdoc.RectPath(4, 4, 6, 6)},
		{Outline: svgdoc.RectPath(0, 0, 10, 10)},
	}}
	out, err := Render(icon, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	if px := out.RGBAAt(32, 32); px.G != 0 {
		t.Errorf("hole center = %v, want base red", px)
	}
	if px := out.RGBAAt(20, 20); px.G != 0xFF {
		t.Errorf("icon body = %v, want white", px)
	}
}

func TestRenderRejectsGroups(t *testing.T) {
	if _, err := Render(&svgdoc.Group{}, testOptions()); err == nil {
		t.Error("expected an error for a non-path-like input")
	}
}

func TestRenderSkipsEmptyContours(t *testing.T) {
	// an empty sub-path must not disturb the fit of its siblings
	icon := &svgdoc.CompoundPath{SubPaths: []*svgdoc.SimplePath{
		{},
		{Outline: svgdoc.RectPath(0, 0, 10, 10)},
	}}
	out, err := Render(icon, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	if px := out.RGBAAt(32, 32); px.G != 0xFF {
		t.Errorf("icon center = %v, want white", px)
	}
}

func TestRenderDegenerateIcon(t *testing.T) {
	out, err := Render(&svgdoc.SimplePath{}, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	if px := out.RGBAAt(32, 32); px.R != 0xFF || px.B != 0 {
		t.Errorf("degenerate icon altered the base: %v", px)
	}
}

func TestRenderInvalidSize(t *testing.T) {
	o := testOptions()
	o.Size = 0
	if _, err := Render(nil, o); err == nil {
		t.Error("expected an error for a zero canvas")
	}
}

func TestParseBaseShape(t *testing.T) {
	for _, c := range []struct {
		in   string
		want BaseShape
	}{
		{"square", BaseSquare},
		{"rounded", BaseRoundedSquare},
		{"circle", BaseCircle},
	} {
		got, err := ParseBaseShape(c.in)
		if err != nil || got != c.want {
			t.Errorf("ParseBaseShape(%q) = %v, %v", c.in, got, err)
		}
	}
	if _, err := ParseBaseShape("hexagon"); err == nil {
		t.Error("expected an error for an unknown shape")
	}
}
