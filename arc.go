// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconvg

import "math"

// pathArcTo approximates an SVG-style elliptical arc, from (x0, y0) to
// (x1, y1) with radius (rx, ry) rotated by xAxisRotation (a zero-to-one
// fraction of a full turn), by a sequence of cubic Bézier curves fed to c's
// PathCubeTo method. All coordinates are already in dst coordinate space.
//
// largeArc and sweep are the SVG arc flags: largeArc picks which of the two
// possible arcs (spanning more or less than half the ellipse) to draw, and
// sweep picks the arc's direction.
//
// The conversion follows the endpoint-to-center parameterization in the
// W3C SVG 1.1 Implementation Notes, §F.6.
func pathArcTo(c Canvas, x0, y0, rx, ry, xAxisRotation float64, largeArc, sweep bool, x1, y1 float64) error {
	if rx == 0 || ry == 0 || (x0 == x1 && y0 == y1) {
		return c.PathLineTo(float32(x1), float32(y1))
	}
	rx, ry = math.Abs(rx), math.Abs(ry)

	phi := xAxisRotation * 2 * math.Pi
	sinPhi, cosPhi := math.Sincos(phi)

	// Step 1: compute (x0', y0'), the midpoint in the rotated frame.
	dx2, dy2 := (x0-x1)/2, (y0-y1)/2
	x0p := cosPhi*dx2 + sinPhi*dy2
	y0p := -sinPhi*dx2 + cosPhi*dy2

	// Correct out-of-range radii.
	lambda := (x0p*x0p)/(rx*rx) + (y0p*y0p)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx, ry = rx*s, ry*s
	}

	// Step 2: compute (cx', cy'), the ellipse center in the rotated frame.
	rxSq, rySq := rx*rx, ry*ry
	x0pSq, y0pSq := x0p*x0p, y0p*y0p
	num := rxSq*rySq - rxSq*y0pSq - rySq*x0pSq
	den := rxSq*y0pSq + rySq*x0pSq
	coef := 0.0
	if den != 0 {
		coef = math.Sqrt(math.Max(0, num/den))
	}
	if largeArc == sweep {
		coef = -coef
	}
	cxp := coef * (rx * y0p / ry)
	cyp := coef * -(ry * x0p / rx)

	// Step 3: compute (cx, cy), the ellipse center in the original frame.
	cx := cosPhi*cxp - sinPhi*cyp + (x0+x1)/2
	cy := sinPhi*cxp + cosPhi*cyp + (y0+y1)/2

	angle := func(ux, uy, vx, vy float64) float64 {
		dot := ux*vx + uy*vy
		lenProd := math.Hypot(ux, uy) * math.Hypot(vx, vy)
		a := math.Acos(clamp(dot/lenProd, -1, 1))
		if ux*vy-uy*vx < 0 {
			a = -a
		}
		return a
	}

	// Step 4: compute the start angle and the angle delta.
	theta1 := angle(1, 0, (x0p-cxp)/rx, (y0p-cyp)/ry)
	dTheta := angle((x0p-cxp)/rx, (y0p-cyp)/ry, (-x0p-cxp)/rx, (-y0p-cyp)/ry)
	if !sweep && dTheta > 0 {
		dTheta -= 2 * math.Pi
	} else if sweep && dTheta < 0 {
		dTheta += 2 * math.Pi
	}

	// Split the arc into segments spanning at most 90 degrees each, and
	// approximate each by a single cubic Bézier using the standard
	// kappa-based control-point magic number.
	numSegments := int(math.Ceil(math.Abs(dTheta) / (math.Pi / 2)))
	if numSegments < 1 {
		numSegments = 1
	}
	segTheta := dTheta / float64(numSegments)
	kappa := 4.0 / 3.0 * math.Tan(segTheta/4)

	pointAt := func(theta float64) (x, y, dxdt, dydt float64) {
		sinT, cosT := math.Sincos(theta)
		ex, ey := rx*cosT, ry*sinT
		x = cosPhi*ex - sinPhi*ey + cx
		y = sinPhi*ex + cosPhi*ey + cy
		dxdt = -rx*sinT*cosPhi - ry*cosT*sinPhi
		dydt = -rx*sinT*sinPhi + ry*cosT*cosPhi
		return
	}

	theta := theta1
	curX, curY := x0, y0
	for i := 0; i < numSegments; i++ {
		thetaNext := theta + segTheta
		_, _, dxdt0, dydt0 := pointAt(theta)
		nx, ny, dxdt1, dydt1 := pointAt(thetaNext)
		if i == numSegments-1 {
			nx, ny = x1, y1
		}
		p1x, p1y := curX+kappa*dxdt0, curY+kappa*dydt0
		p2x, p2y := nx-kappa*dxdt1, ny-kappa*dydt1
		if err := c.PathCubeTo(float32(p1x), float32(p1y), float32(p2x), float32(p2y), float32(nx), float32(ny)); err != nil {
			return err
		}
		curX, curY = nx, ny
		theta = thetaNext
	}
	return nil
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
