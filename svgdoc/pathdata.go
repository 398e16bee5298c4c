package svgdoc

import (
	"errors"
	"fmt"
)

// This file compiles the `d` attribute of path elements
// into the basic operation set.

var (
	errParamMismatch  = errors.New("param mismatch")
	errCommandUnknown = errors.New("unknown path command")
)

// pathCursor accumulates the state of one `d` attribute compilation:
// the operations emitted so far, the pen position and the bookkeeping
// needed for shorthand (S, T) control point reflection.
type pathCursor struct {
	path           Path
	placeX, placeY float64
	startX, startY float64 // contour start, target of Z
	cntlX, cntlY   float64 // last emitted control point
	lastCmd        byte
	inPath         bool
}

func (c *pathCursor) clear() {
	c.path.Clear()
	c.placeX, c.placeY = 0, 0
	c.startX, c.startY = 0, 0
	c.lastCmd = 0
	c.inPath = false
}

// paramCounts maps each path command to its parameter count.
var paramCounts = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1,
	'C': 6, 'S': 4, 'Q': 4, 'T': 2,
	'A': 7, 'Z': 0,
}

func isPathCommand(b byte) bool {
	u := upper(b)
	_, ok := paramCounts[u]
	return ok
}

func upper(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

// compilePath translates the SVG path description string into
// operations appended to c.path.
func (c *pathCursor) compilePath(d string) error {
	i := skipSeparators(d, 0)
	if i < len(d) && upper(d[i]) != 'M' {
		return fmt.Errorf("%w: path data must begin with a moveto", errCommandUnknown)
	}
	var cmd byte
	for i < len(d) {
		i = skipSeparators(d, i)
		if i >= len(d) {
			break
		}
		if isPathCommand(d[i]) {
			cmd = d[i]
			i++
		} else if cmd == 0 {
			return fmt.Errorf("%w: %q", errCommandUnknown, d[i])
		} else if upper(cmd) == 'M' {
			// an implicit repetition of moveto is a lineto
			cmd = cmd - 'M' + 'L'
		} else if upper(cmd) == 'Z' {
			return fmt.Errorf("%w: number after close", errParamMismatch)
		}
		params := make([]float64, 0, 7)
		n := paramCounts[upper(cmd)]
		for k := 0; k < n; k++ {
			i = skipSeparators(d, i)
			var (
				v   float64
				err error
			)
			if upper(cmd) == 'A' && (k == 3 || k == 4) {
				v, i, err = readFlag(d, i)
			} else {
				v, i, err = readNumber(d, i)
			}
			if err != nil {
				return err
			}
			params = append(params, v)
		}
		if err := c.exec(cmd, params); err != nil {
			return err
		}
		c.lastCmd = cmd
	}
	return nil
}

func (c *pathCursor) exec(cmd byte, p []float64) error {
	rel := cmd >= 'a' && cmd <= 'z'
	rx, ry := 0.0, 0.0
	if rel {
		rx, ry = c.placeX, c.placeY
	}
	switch upper(cmd) {
	case 'M':
		c.placeX, c.placeY = p[0]+rx, p[1]+ry
		c.startX, c.startY = c.placeX, c.placeY
		c.path.Start(toFixedP(c.placeX, c.placeY))
		c.inPath = true
	case 'L':
		c.lineTo(p[0]+rx, p[1]+ry)
	case 'H':
		c.lineTo(p[0]+rx, c.placeY)
	case 'V':
		c.lineTo(c.placeX, p[0]+ry)
	case 'C':
		c.curveTo(p[0]+rx, p[1]+ry, p[2]+rx, p[3]+ry, p[4]+rx, p[5]+ry)
	case 'S':
		cx, cy := c.reflectControl('C')
		c.curveTo(cx, cy, p[0]+rx, p[1]+ry, p[2]+rx, p[3]+ry)
	case 'Q':
		c.quadTo(p[0]+rx, p[1]+ry, p[2]+rx, p[3]+ry)
	case 'T':
		cx, cy := c.reflectControl('Q')
		c.quadTo(cx, cy, p[0]+rx, p[1]+ry)
	case 'A':
		ex, ey := p[5]+rx, p[6]+ry
		c.path.addArc(p[0], p[1], p[2], p[3] != 0, p[4] != 0,
			c.placeX, c.placeY, ex, ey)
		c.placeX, c.placeY = ex, ey
	case 'Z':
		if !c.inPath {
			return fmt.Errorf("%w: close with no open contour", errParamMismatch)
		}
		c.path.Stop(true)
		c.placeX, c.placeY = c.startX, c.startY
	}
	return nil
}

func (c *pathCursor) lineTo(x, y float64) {
	c.path.Line(toFixedP(x, y))
	c.placeX, c.placeY = x, y
}

func (c *pathCursor) curveTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.path.CubeBezier(toFixedP(c1x, c1y), toFixedP(c2x, c2y), toFixedP(x, y))
	c.cntlX, c.cntlY = c2x, c2y
	c.placeX, c.placeY = x, y
}

func (c *pathCursor) quadTo(cx, cy, x, y float64) {
	c.path.QuadBezier(toFixedP(cx, cy), toFixedP(x, y))
	c.cntlX, c.cntlY = cx, cy
	c.placeX, c.placeY = x, y
}

// reflectControl returns the first control point of a shorthand curve:
// the previous control point reflected around the current position, or
// the current position when the previous command was not of the given
// family.
func (c *pathCursor) reflectControl(family byte) (float64, float64) {
	last := upper(c.lastCmd)
	if last == family || (family == 'C' && last == 'S') || (family == 'Q' && last == 'T') {
		return 2*c.placeX - c.cntlX, 2*c.placeY - c.cntlY
	}
	return c.placeX, c.placeY
}

func isSeparator(b byte) bool {
	return b == ' ' || b == ',' || b == '\t' || b == '\n' || b == '\r'
}

func skipSeparators(d string, i int) int {
	for i < len(d) && isSeparator(d[i]) {
		i++
	}
	return i
}

// readNumber scans one float starting at d[i]. A sign or a second
// decimal point terminates the previous number, as SVG allows
// separators to be elided ("10-5" or "1.5.3").
func readNumber(d string, i int) (float64, int, error) {
	start := i
	seenDot, seenExp := false, false
	for i < len(d) {
		b := d[i]
		switch {
		case b >= '0' && b <= '9':
		case b == '.':
			if seenDot || seenExp {
				goto done
			}
			seenDot = true
		case b == '-' || b == '+':
			if i != start && upper(d[i-1]) != 'E' {
				goto done
			}
		case upper(b) == 'E':
			if seenExp || i == start {
				goto done
			}
			seenExp = true
		default:
			goto done
		}
		i++
	}
done:
	if i == start {
		return 0, i, fmt.Errorf("%w: expected number at %q", errParamMismatch, d[start:])
	}
	v, err := parseBasicFloat(d[start:i])
	if err != nil {
		return 0, i, err
	}
	return v, i, nil
}

// readFlag scans an arc flag, which is a bare 0 or 1 and may be
// crammed against the following number.
func readFlag(d string, i int) (float64, int, error) {
	if i >= len(d) || (d[i] != '0' && d[i] != '1') {
		return 0, i, fmt.Errorf("%w: expected arc flag", errParamMismatch)
	}
	return float64(d[i] - '0'), i + 1, nil
}
