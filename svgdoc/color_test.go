package svgdoc

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want *color.NRGBA
	}{
		{"none", nil},
		{"transparent", nil},
		{"#fff", &color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}},
		{"#512DA8", &color.NRGBA{0x51, 0x2D, 0xA8, 0xFF}},
		{"rgb(255, 0, 128)", &color.NRGBA{0xFF, 0x00, 0x80, 0xFF}},
		{"rgb(100%, 0%, 50%)", &color.NRGBA{0xFF, 0x00, 0x7F, 0xFF}},
		{"teal", &color.NRGBA{0x00, 0x80, 0x80, 0xFF}},
		{"  Black ", &color.NRGBA{0x00, 0x00, 0x00, 0xFF}},
		{"url(#grad1)", &color.NRGBA{0x00, 0x00, 0x00, 0xFF}},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", c.in, err)
			continue
		}
		switch {
		case got == nil && c.want == nil:
		case got == nil || c.want == nil || *got != *c.want:
			t.Errorf("ParseColor(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"#12345", "#gggggg", "rgb(1,2)", "notacolor"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q): expected error", in)
		}
	}
}
