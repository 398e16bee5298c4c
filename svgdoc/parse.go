package svgdoc

import (
	"encoding/xml"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/net/html/charset"
)

// ErrorMode determines how the parser reacts to SVG elements
// it does not handle.
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unhandled elements silently
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode logs a warning for unhandled elements
	WarnErrorMode
	// StrictErrorMode aborts parsing on unhandled elements
	StrictErrorMode
)

// ErrInvalidDocument wraps any failure to parse the raw input as a
// vector document.
var ErrInvalidDocument = errors.New("invalid vector document")

// Bounds defines a bounding box, such as a viewport.
type Bounds struct{ X, Y, W, H float64 }

// Document holds a parsed SVG source: the viewport and the node tree.
type Document struct {
	ViewBox Bounds
	Root    *Group

	Width, Height string // top level width and height attributes
}

// style is the inheritable paint state while parsing.
type style struct {
	fill        *color.NRGBA
	fillOpacity float64
	strokeWidth float64
	transform   Matrix2D
}

// defaultStyle fills opaque black with no stroke, as the SVG
// specification prescribes; "fill:none" resets fill to nil.
var defaultStyle = style{
	fill:        &color.NRGBA{0x00, 0x00, 0x00, 0xFF},
	fillOpacity: 1.0,
	transform:   Identity,
}

// docCursor is used while parsing SVG files
type docCursor struct {
	pathCursor
	doc        *Document
	styleStack []style
	groupStack []*Group
	points     []float64
	defsDepth  int
	errorMode  ErrorMode
}

// ReadDocumentStream parses SVG markup from the given io.Reader into
// a node tree. Only a subset of SVG is supported, but it is enough
// for most icons. errMode determines if the parser ignores, errors
// out, or logs a warning when it does not handle an element.
func ReadDocumentStream(stream io.Reader, errMode ErrorMode) (*Document, error) {
	doc := &Document{Root: &Group{}}
	cursor := &docCursor{
		doc:        doc,
		styleStack: []style{defaultStyle},
		groupStack: []*Group{doc.Root},
		errorMode:  errMode,
	}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, fmt.Errorf("%w: no markup found", ErrInvalidDocument)
				}
				break
			}
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		switch se := t.(type) {
		case xml.StartElement:
			seenTag = true
			// Reads all recognized style attributes from the start element
			// and places it on top of the styleStack
			if err = cursor.pushStyle(se.Attr); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
			}
			if err = cursor.readStartElement(se); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
			}
		case xml.EndElement:
			// pop style
			cursor.styleStack = cursor.styleStack[:len(cursor.styleStack)-1]
			switch {
			case nonRenderedElements[se.Name.Local]:
				if cursor.defsDepth > 0 {
					cursor.defsDepth--
				}
			case se.Name.Local == "g" && cursor.defsDepth == 0 && len(cursor.groupStack) > 1:
				cursor.groupStack = cursor.groupStack[:len(cursor.groupStack)-1]
			}
		}
	}
	return doc, nil
}

// ReadDocument parses the named SVG file.
func ReadDocument(svgFile string, errMode ErrorMode) (*Document, error) {
	fin, err := os.Open(svgFile)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return ReadDocumentStream(fin, errMode)
}

func (c *docCursor) topStyle() style  { return c.styleStack[len(c.styleStack)-1] }
func (c *docCursor) topGroup() *Group { return c.groupStack[len(c.groupStack)-1] }

// pushStyle parses the paint attributes of the element and pushes the
// merged state on the style stack. Both a style attribute and direct
// fill/opacity/transform attributes are understood.
func (c *docCursor) pushStyle(attrs []xml.Attr) error {
	var pairs []string
	for _, attr := range attrs {
		switch strings.ToLower(attr.Name.Local) {
		case "style":
			pairs = append(pairs, strings.Split(attr.Value, ";")...)
		default:
			pairs = append(pairs, attr.Name.Local+":"+attr.Value)
		}
	}
	// Make a copy of the top style
	cur := c.topStyle()
	for _, pair := range pairs {
		kv := strings.SplitN(pair, ":", 2)
		if len(kv) != 2 {
			continue
		}
		k := strings.ToLower(strings.TrimSpace(kv[0]))
		v := strings.TrimSpace(kv[1])
		if err := c.readStyleAttr(&cur, k, v); err != nil {
			return err
		}
	}
	c.styleStack = append(c.styleStack, cur)
	return nil
}

func (c *docCursor) readStyleAttr(cur *style, k, v string) error {
	switch k {
	case "fill":
		col, err := ParseColor(v)
		if err != nil {
			return err
		}
		cur.fill = col
	case "fill-opacity", "opacity":
		op, err := parseBasicFloat(v)
		if err != nil {
			return err
		}
		cur.fillOpacity *= op
	case "stroke-width":
		w, err := parseUnitFloat(v)
		if err != nil {
			return err
		}
		cur.strokeWidth = w
	case "stroke":
		// stroke paint is irrelevant for icon normalization; only the
		// width survives into the imported shape
	case "transform":
		m, err := c.parseTransform(v)
		if err != nil {
			return err
		}
		cur.transform = m
	}
	return nil
}

// elementFunc handles one start element kind
type elementFunc func(c *docCursor, attrs []xml.Attr) error

var elementFuncs = map[string]elementFunc{
	"svg":      svgF,
	"g":        gF,
	"path":     pathF,
	"rect":     rectF,
	"circle":   circleF,
	"ellipse":  circleF, // circleF handles ellipse also
	"line":     lineF,
	"polyline": polylineF,
	"polygon":  polygonF,
	"title":    skipF,
	"desc":     skipF,
	"metadata": skipF,
}

// nonRenderedElements are containers whose content defines reusable
// resources, not drawable geometry. Their entire subtree is withheld
// from the node tree.
var nonRenderedElements = map[string]bool{
	"defs":     true,
	"clipPath": true,
	"mask":     true,
	"symbol":   true,
}

func (c *docCursor) readStartElement(se xml.StartElement) error {
	if nonRenderedElements[se.Name.Local] {
		c.defsDepth++
		return nil
	}
	if c.defsDepth > 0 {
		// inside a definition: shape elements must not reach the
		// drawable tree, and resource elements such as gradients are
		// not an error in any mode
		return nil
	}
	ef, ok := elementFuncs[se.Name.Local]
	if !ok {
		errStr := "cannot process svg element " + se.Name.Local
		if c.errorMode == StrictErrorMode {
			return errors.New(errStr)
		} else if c.errorMode == WarnErrorMode {
			log.Warn(errStr)
		}
		return nil
	}
	if err := ef(c, se.Attr); err != nil {
		return err
	}
	if len(c.path) > 0 {
		// the cursor compiled a shape from the element
		c.topGroup().Children = append(c.topGroup().Children, c.buildNode())
		c.clear()
	}
	return nil
}

// buildNode converts the accumulated path operations into a path-like
// node carrying the resolved style: a SimplePath for one contour, a
// CompoundPath when the source had several.
func (c *docCursor) buildNode() Node {
	sty := c.topStyle()
	baked := c.path.Transform(sty.transform)
	fill := sty.fill
	if fill != nil && sty.fillOpacity < 1 {
		f := *fill
		f.A = uint8(float64(f.A) * sty.fillOpacity)
		fill = &f
	}
	contours := baked.Contours()
	if len(contours) == 1 {
		return &SimplePath{Outline: contours[0], Fill: fill, StrokeWidth: sty.strokeWidth}
	}
	sub := make([]*SimplePath, len(contours))
	for i, ct := range contours {
		sub[i] = &SimplePath{Outline: ct, Fill: fill, StrokeWidth: sty.strokeWidth}
	}
	return &CompoundPath{SubPaths: sub, Fill: fill}
}

func svgF(c *docCursor, attrs []xml.Attr) error {
	var width, height float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "viewBox":
			if err = c.getPoints(attr.Value); err != nil {
				return err
			}
			if len(c.points) != 4 {
				return errParamMismatch
			}
			c.doc.ViewBox = Bounds{c.points[0], c.points[1], c.points[2], c.points[3]}
		case "width":
			c.doc.Width = attr.Value
			width, err = parseDimension(attr.Value)
		case "height":
			c.doc.Height = attr.Value
			height, err = parseDimension(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	if c.doc.ViewBox.W == 0 {
		c.doc.ViewBox.W = width
	}
	if c.doc.ViewBox.H == 0 {
		c.doc.ViewBox.H = height
	}
	return nil
}

// g pushes the style and opens a child group
func gF(c *docCursor, _ []xml.Attr) error {
	g := &Group{}
	c.topGroup().Children = append(c.topGroup().Children, g)
	c.groupStack = append(c.groupStack, g)
	return nil
}

func skipF(*docCursor, []xml.Attr) error { return nil }

func pathF(c *docCursor, attrs []xml.Attr) error {
	for _, attr := range attrs {
		if attr.Name.Local == "d" {
			if err := c.compilePath(attr.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

func rectF(c *docCursor, attrs []xml.Attr) error {
	var x, y, w, h, rx, ry float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x":
			x, err = parseUnitFloat(attr.Value)
		case "y":
			y, err = parseUnitFloat(attr.Value)
		case "width":
			w, err = parseUnitFloat(attr.Value)
		case "height":
			h, err = parseUnitFloat(attr.Value)
		case "rx":
			rx, err = parseUnitFloat(attr.Value)
		case "ry":
			ry, err = parseUnitFloat(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	if w == 0 || h == 0 {
		return nil
	}
	if rx > 0 || ry > 0 {
		if rx == 0 {
			rx = ry
		}
		if ry == 0 {
			ry = rx
		}
		c.path = append(c.path, RoundRectPath(x, y, x+w, y+h, rx, ry)...)
	} else {
		c.path = append(c.path, RectPath(x, y, x+w, y+h)...)
	}
	return nil
}

func circleF(c *docCursor, attrs []xml.Attr) error {
	var cx, cy, rx, ry float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "cx":
			cx, err = parseUnitFloat(attr.Value)
		case "cy":
			cy, err = parseUnitFloat(attr.Value)
		case "r":
			rx, err = parseUnitFloat(attr.Value)
			ry = rx
		case "rx":
			rx, err = parseUnitFloat(attr.Value)
		case "ry":
			ry, err = parseUnitFloat(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	if rx == 0 || ry == 0 { // not drawn, but not an error
		return nil
	}
	c.path = append(c.path, EllipsePath(cx, cy, rx, ry)...)
	return nil
}

func lineF(c *docCursor, attrs []xml.Attr) error {
	var x1, y1, x2, y2 float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x1":
			x1, err = parseUnitFloat(attr.Value)
		case "y1":
			y1, err = parseUnitFloat(attr.Value)
		case "x2":
			x2, err = parseUnitFloat(attr.Value)
		case "y2":
			y2, err = parseUnitFloat(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	c.path.Start(toFixedP(x1, y1))
	c.path.Line(toFixedP(x2, y2))
	return nil
}

func polylineF(c *docCursor, attrs []xml.Attr) error {
	for _, attr := range attrs {
		if attr.Name.Local != "points" {
			continue
		}
		if err := c.getPoints(attr.Value); err != nil {
			return err
		}
		if len(c.points)%2 != 0 {
			return errors.New("polygon has odd number of points")
		}
	}
	if len(c.points) > 4 {
		c.path.Start(toFixedP(c.points[0], c.points[1]))
		for i := 2; i < len(c.points)-1; i += 2 {
			c.path.Line(toFixedP(c.points[i], c.points[i+1]))
		}
	}
	return nil
}

func polygonF(c *docCursor, attrs []xml.Attr) error {
	err := polylineF(c, attrs)
	if len(c.points) > 4 {
		c.path.Stop(true)
	}
	return err
}

func (c *docCursor) parseTransform(v string) (Matrix2D, error) {
	ts := strings.Split(v, ")")
	m1 := c.topStyle().transform
	for _, t := range ts {
		t = strings.TrimSpace(t)
		if len(t) == 0 {
			continue
		}
		d := strings.Split(t, "(")
		if len(d) != 2 || len(d[1]) < 1 {
			return m1, errParamMismatch // badly formed transformation
		}
		if err := c.getPoints(d[1]); err != nil {
			return m1, err
		}
		var err error
		m1, err = c.readTransformAttr(m1, strings.ToLower(strings.TrimSpace(d[0])))
		if err != nil {
			return m1, err
		}
	}
	return m1, nil
}

func (c *docCursor) readTransformAttr(m1 Matrix2D, k string) (Matrix2D, error) {
	ln := len(c.points)
	switch k {
	case "rotate":
		if ln == 1 {
			m1 = m1.Rotate(c.points[0] * degToRad)
		} else if ln == 3 {
			m1 = m1.Translate(c.points[1], c.points[2]).
				Rotate(c.points[0] * degToRad).
				Translate(-c.points[1], -c.points[2])
		} else {
			return m1, errParamMismatch
		}
	case "translate":
		if ln == 1 {
			m1 = m1.Translate(c.points[0], 0)
		} else if ln == 2 {
			m1 = m1.Translate(c.points[0], c.points[1])
		} else {
			return m1, errParamMismatch
		}
	case "skewx":
		if ln == 1 {
			m1 = m1.SkewX(c.points[0] * degToRad)
		} else {
			return m1, errParamMismatch
		}
	case "skewy":
		if ln == 1 {
			m1 = m1.SkewY(c.points[0] * degToRad)
		} else {
			return m1, errParamMismatch
		}
	case "scale":
		if ln == 1 {
			m1 = m1.Scale(c.points[0], c.points[0])
		} else if ln == 2 {
			m1 = m1.Scale(c.points[0], c.points[1])
		} else {
			return m1, errParamMismatch
		}
	case "matrix":
		if ln == 6 {
			m1 = m1.Mult(Matrix2D{
				A: c.points[0], B: c.points[1],
				C: c.points[2], D: c.points[3],
				E: c.points[4], F: c.points[5],
			})
		} else {
			return m1, errParamMismatch
		}
	default:
		return m1, errParamMismatch
	}
	return m1, nil
}

const degToRad = 3.141592653589793 / 180

// getPoints parses a comma or space separated list of numbers into
// c.points, which is reused across calls.
func (c *docCursor) getPoints(s string) error {
	c.points = c.points[:0]
	for _, f := range splitOnCommaOrSpace(s) {
		v, err := parseBasicFloat(f)
		if err != nil {
			return err
		}
		c.points = append(c.points, v)
	}
	return nil
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
}

func parseBasicFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// parseUnitFloat parses a length, tolerating a px suffix. Percentage
// lengths are rejected: shape geometry in icon sources has no
// percentage base, and dropping it silently would lose geometry.
func parseUnitFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "%") {
		return 0, fmt.Errorf("unsupported percentage length %q", s)
	}
	s = strings.TrimSuffix(s, "px")
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// parseDimension parses a top level width or height attribute. A
// percentage means "fill the viewport" there and resolves to zero so
// that the viewBox takes precedence.
func parseDimension(s string) (float64, error) {
	if strings.HasSuffix(strings.TrimSpace(s), "%") {
		return 0, nil
	}
	return parseUnitFloat(s)
}
