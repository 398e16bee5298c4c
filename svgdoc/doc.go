// Package svgdoc parses SVG markup into a tree of drawable nodes.
// Documents are reduced to groups and path-like shapes (simple or
// compound paths); higher level elements such as rects, circles and
// polygons are lowered to their path equivalent during parsing.
// The resulting tree is the input of the normalization step that
// selects the single shape representing an imported icon.
package svgdoc
