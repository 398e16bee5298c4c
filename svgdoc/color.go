package svgdoc

import (
	"errors"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var errBadColor = errors.New("invalid color specification")

// ParseColor parses an SVG color value: hex (#rgb or #rrggbb),
// rgb(...) with numeric or percentage components, or an SVG 1.1 color
// name. "none" parses to a nil color, which is not the same as black:
// it turns filling off entirely.
func ParseColor(colorStr string) (*color.NRGBA, error) {
	v := strings.ToLower(strings.TrimSpace(colorStr))
	switch {
	case v == "none", v == "transparent":
		return nil, nil
	case strings.HasPrefix(v, "url"):
		// gradient and pattern references paint as default black
		return &color.NRGBA{0, 0, 0, 0xFF}, nil
	case strings.HasPrefix(v, "#"):
		r, g, b, err := parseColorHex(v)
		if err != nil {
			return nil, err
		}
		return &color.NRGBA{r, g, b, 0xFF}, nil
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		vals := strings.Split(v[len("rgb("):len(v)-1], ",")
		if len(vals) != 3 {
			return nil, errBadColor
		}
		var cvals [3]uint8
		for i := range cvals {
			c, err := parseColorValue(strings.TrimSpace(vals[i]))
			if err != nil {
				return nil, err
			}
			cvals[i] = c
		}
		return &color.NRGBA{cvals[0], cvals[1], cvals[2], 0xFF}, nil
	}
	if cn, ok := colornames.Map[v]; ok {
		return &color.NRGBA{cn.R, cn.G, cn.B, cn.A}, nil
	}
	return nil, errBadColor
}

// parseColorHex parses a 3 or 6 digit hex color number.
func parseColorHex(colorStr string) (r, g, b uint8, err error) {
	colorStr = strings.TrimPrefix(colorStr, "#")
	if len(colorStr) == 3 {
		// SVG specs say duplicate characters in case of 3 digit hex number
		colorStr = string([]byte{
			colorStr[0], colorStr[0],
			colorStr[1], colorStr[1],
			colorStr[2], colorStr[2],
		})
	}
	if len(colorStr) != 6 {
		return 0, 0, 0, errBadColor
	}
	var t uint64
	for _, v := range []struct {
		c *uint8
		s string
	}{
		{&r, colorStr[0:2]},
		{&g, colorStr[2:4]},
		{&b, colorStr[4:6]},
	} {
		t, err = strconv.ParseUint(v.s, 16, 8)
		if err != nil {
			return
		}
		*v.c = uint8(t)
	}
	return
}

// parseColorValue parses one rgb(...) component, either 0-255 or a
// percentage.
func parseColorValue(v string) (uint8, error) {
	if strings.HasSuffix(v, "%") {
		n, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(v, "%")))
		if err != nil {
			return 0, err
		}
		return uint8(n * 0xFF / 100), nil
	}
	n, err := strconv.Atoi(v)
	if n > 255 {
		n = 255
	}
	return uint8(n), err
}
