package svgdoc

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// This file implements the transformation from
// high level shapes to their path equivalent

// maxDx is the maximum radians a cubic splice is allowed to span
// in ellipse parametric when approximating an off-axis ellipse.
const maxDx float64 = math.Pi / 8

// kappa scales a radius to the control point offset approximating a
// quarter circle with one cubic bezier.
const kappa = 0.5522847498307936

// toFixedP converts two floats to a fixed point.
func toFixedP(x, y float64) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(x * 64)
	p.Y = fixed.Int26_6(y * 64)
	return
}

// RectPath returns the closed rectangle (minX, minY)-(maxX, maxY).
func RectPath(minX, minY, maxX, maxY float64) Path {
	var p Path
	p.Start(toFixedP(minX, minY))
	p.Line(toFixedP(maxX, minY))
	p.Line(toFixedP(maxX, maxY))
	p.Line(toFixedP(minX, maxY))
	p.Stop(true)
	return p
}

// RoundRectPath returns a rectangle with corners rounded by radius
// rx horizontally and ry vertically. Radii are clamped to half the
// rectangle dimensions; non-positive radii degrade to RectPath.
func RoundRectPath(minX, minY, maxX, maxY, rx, ry float64) Path {
	if rx <= 0 || ry <= 0 {
		return RectPath(minX, minY, maxX, maxY)
	}
	if w := maxX - minX; w < rx*2 {
		rx = w / 2
	}
	if h := maxY - minY; h < ry*2 {
		ry = h / 2
	}
	cx, cy := rx*kappa, ry*kappa
	var p Path
	p.Start(toFixedP(minX+rx, minY))
	p.Line(toFixedP(maxX-rx, minY))
	p.CubeBezier(toFixedP(maxX-rx+cx, minY), toFixedP(maxX, minY+ry-cy), toFixedP(maxX, minY+ry))
	p.Line(toFixedP(maxX, maxY-ry))
	p.CubeBezier(toFixedP(maxX, maxY-ry+cy), toFixedP(maxX-rx+cx, maxY), toFixedP(maxX-rx, maxY))
	p.Line(toFixedP(minX+rx, maxY))
	p.CubeBezier(toFixedP(minX+rx-cx, maxY), toFixedP(minX, maxY-ry+cy), toFixedP(minX, maxY-ry))
	p.Line(toFixedP(minX, minY+ry))
	p.CubeBezier(toFixedP(minX, minY+ry-cy), toFixedP(minX+rx-cx, minY), toFixedP(minX+rx, minY))
	p.Stop(true)
	return p
}

// EllipsePath returns the ellipse centered at cx, cy with radii
// rx, ry, approximated by four cubic beziers.
func EllipsePath(cx, cy, rx, ry float64) Path {
	dx, dy := rx*kappa, ry*kappa
	var p Path
	p.Start(toFixedP(cx+rx, cy))
	p.CubeBezier(toFixedP(cx+rx, cy+dy), toFixedP(cx+dx, cy+ry), toFixedP(cx, cy+ry))
	p.CubeBezier(toFixedP(cx-dx, cy+ry), toFixedP(cx-rx, cy+dy), toFixedP(cx-rx, cy))
	p.CubeBezier(toFixedP(cx-rx, cy-dy), toFixedP(cx-dx, cy-ry), toFixedP(cx, cy-ry))
	p.CubeBezier(toFixedP(cx+dx, cy-ry), toFixedP(cx+rx, cy-dy), toFixedP(cx+rx, cy))
	p.Stop(true)
	return p
}

// addArc appends an elliptical arc from (sx, sy) to (ex, ey) with
// radii rx, ry rotated by rot degrees, following the SVG large-arc
// and sweep flags. The arc is approximated with cubic bezier splines
// by the method of L. Maisonobe, "Drawing an elliptical arc using
// polylines, quadratic or cubic Bezier curves", 2003.
// https://www.spaceroots.org/documents/elllipse/elliptical-arc.pdf
func (p *Path) addArc(rx, ry, rot float64, largeArc, sweep bool, sx, sy, ex, ey float64) {
	if rx == 0 || ry == 0 {
		p.Line(toFixedP(ex, ey))
		return
	}
	rotX := rot * math.Pi / 180
	cx, cy := findEllipseCenter(&rx, &ry, rotX, sx, sy, ex, ey, sweep, !largeArc)

	startAngle := math.Atan2(sy-cy, sx-cx) - rotX
	endAngle := math.Atan2(ey-cy, ex-cx) - rotX
	deltaTheta := endAngle - startAngle
	arcBig := math.Abs(deltaTheta) > math.Pi

	etaStart := math.Atan2(math.Sin(startAngle)/ry, math.Cos(startAngle)/rx)
	etaEnd := math.Atan2(math.Sin(endAngle)/ry, math.Cos(endAngle)/rx)
	deltaEta := etaEnd - etaStart
	if arcBig != largeArc {
		if deltaEta < 0 {
			deltaEta += math.Pi * 2
		} else {
			deltaEta -= math.Pi * 2
		}
	}
	// This check might be needed if the center point of the ellipse is
	// at the midpoint of the start and end lines.
	if deltaEta < 0 && sweep {
		deltaEta += math.Pi * 2
	} else if deltaEta >= 0 && !sweep {
		deltaEta -= math.Pi * 2
	}

	// Round up to determine the number of cubic splines used
	segs := int(math.Abs(deltaEta)/maxDx) + 1
	dEta := deltaEta / float64(segs) // span of each segment
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3
	lx, ly := sx, sy
	sinTheta, cosTheta := math.Sin(rotX), math.Cos(rotX)
	ldx, ldy := ellipsePrime(rx, ry, sinTheta, cosTheta, etaStart)
	for i := 1; i <= segs; i++ {
		eta := etaStart + dEta*float64(i)
		var px, py float64
		if i == segs {
			px, py = ex, ey // exact end point, no roundoff error
		} else {
			px, py = ellipsePointAt(rx, ry, sinTheta, cosTheta, eta, cx, cy)
		}
		dx, dy := ellipsePrime(rx, ry, sinTheta, cosTheta, eta)
		p.CubeBezier(toFixedP(lx+alpha*ldx, ly+alpha*ldy),
			toFixedP(px-alpha*dx, py-alpha*dy), toFixedP(px, py))
		lx, ly, ldx, ldy = px, py, dx, dy
	}
}

// ellipsePrime gives tangent vectors for the parameterized ellipse;
// a, b radii, eta parameter
func ellipsePrime(a, b, sinTheta, cosTheta, eta float64) (px, py float64) {
	bCosEta := b * math.Cos(eta)
	aSinEta := a * math.Sin(eta)
	px = -aSinEta*cosTheta - bCosEta*sinTheta
	py = -aSinEta*sinTheta + bCosEta*cosTheta
	return
}

// ellipsePointAt gives points for the parameterized ellipse;
// a, b radii, eta parameter, center cx, cy
func ellipsePointAt(a, b, sinTheta, cosTheta, eta, cx, cy float64) (px, py float64) {
	aCosEta := a * math.Cos(eta)
	bSinEta := b * math.Sin(eta)
	px = cx + aCosEta*cosTheta - bSinEta*sinTheta
	py = cy + aCosEta*sinTheta + bSinEta*cosTheta
	return
}

// findEllipseCenter locates the center of the ellipse if it exists. If it does not exist,
// the radius values will be increased minimally for a solution to be possible
// while preserving the ra to rb ratio. ra and rb arguments are pointers that can be
// checked after the call to see if the values changed. This method uses coordinate transformations
// to reduce the problem to finding the center of a circle that includes the origin
// and an arbitrary point. The center of the circle is then transformed
// back to the original coordinates and returned.
func findEllipseCenter(ra, rb *float64, rotX, startX, startY, endX, endY float64, sweep, smallArc bool) (cx, cy float64) {
	cos, sin := math.Cos(rotX), math.Sin(rotX)

	// Move origin to start point
	nx, ny := endX-startX, endY-startY

	// Rotate ellipse x-axis to coordinate x-axis
	nx, ny = nx*cos+ny*sin, -nx*sin+ny*cos
	// Scale X dimension so that ra = rb
	nx *= *rb / *ra // Now the ellipse is a circle radius rb; therefore foci and center coincide

	midX, midY := nx/2, ny/2
	midlenSq := midX*midX + midY*midY

	var hr float64
	if *rb**rb < midlenSq {
		// Requested ellipse does not exist; scale ra, rb to fit. Length of
		// span is greater than max width of ellipse, must scale *ra, *rb
		nrb := math.Sqrt(midlenSq)
		if *ra == *rb {
			*ra = nrb // prevents roundoff
		} else {
			*ra = *ra * nrb / *rb
		}
		*rb = nrb
	} else {
		hr = math.Sqrt(*rb**rb-midlenSq) / math.Sqrt(midlenSq)
	}
	// Notice that if hr is zero, both answers are the same.
	if (sweep && smallArc) || (!sweep && !smallArc) {
		cx = midX + midY*hr
		cy = midY - midX*hr
	} else {
		cx = midX - midY*hr
		cy = midY + midX*hr
	}

	// reverse scale
	cx *= *ra / *rb
	// Reverse rotate and translate back to original coordinates
	return cx*cos - cy*sin + startX, cx*sin + cy*cos + startY
}
