package utils

import "math"

// Point2 is a point in shape space.
type Point2 struct {
	X, Y float64
}

type cubicSegment struct {
	c1, c2, end Point2
}

// heartStart and heartSegments describe the heart outline as a closed chain
// of cubic bezier curves. Shape space is roughly x in [-1, 2], y in [0, 3.5];
// the lobes sit at y=0 and the tip at y=3.5, so with screen y pointing down
// the heart is upright.
var heartStart = Point2{0.5, 0.5}

var heartSegments = []cubicSegment{
	{Point2{0.5, 0.5}, Point2{1, 0}, Point2{0, 0}},
	{Point2{-1, 0}, Point2{-1, 1.5}, Point2{-1, 1.5}},
	{Point2{-1, 2.5}, Point2{0.5, 3.5}, Point2{0.5, 3.5}},
	{Point2{0.5, 3.5}, Point2{2, 2.5}, Point2{2, 1.5}},
	{Point2{2, 1.5}, Point2{2, 0}, Point2{1, 0}},
	{Point2{0.5, 0}, Point2{0.5, 0.5}, Point2{0.5, 0.5}},
}

// HeartCenter is the center of the outline's bounding box in shape space.
var HeartCenter = Point2{0.5, 1.75}

// HeartExtent is the larger side of the outline's bounding box.
const HeartExtent = 3.5

// HeartPathVisitor receives the outline as path commands. It matches the
// MoveTo/CubicTo/Close methods of ebiten's vector.Path, using float32.
type HeartPathVisitor interface {
	MoveTo(x, y float32)
	CubicTo(x1, y1, x2, y2, x3, y3 float32)
	Close()
}

// Transform2 maps shape-space points to destination pixels: the outline is
// centered on HeartCenter, scaled by Size/HeartExtent, squashed by
// ScaleX/ScaleY (the foreshortening of a heart turning around its vertical
// or horizontal axis; negative values mirror it) and rotated by Angle
// (radians). ScaleX and ScaleY of zero collapse the shape.
type Transform2 struct {
	CX, CY float64
	Size   float64
	Angle  float64
	ScaleX float64
	ScaleY float64
}

// Apply maps a shape-space point.
func (t Transform2) Apply(p Point2) (float64, float64) {
	k := t.Size / HeartExtent
	x := (p.X - HeartCenter.X) * k * t.ScaleX
	y := (p.Y - HeartCenter.Y) * k * t.ScaleY
	sin, cos := math.Sincos(t.Angle)
	return t.CX + x*cos - y*sin, t.CY + x*sin + y*cos
}

// TraceHeart emits the transformed heart outline to v.
func TraceHeart(v HeartPathVisitor, t Transform2) {
	x, y := t.Apply(heartStart)
	v.MoveTo(float32(x), float32(y))
	for _, seg := range heartSegments {
		x1, y1 := t.Apply(seg.c1)
		x2, y2 := t.Apply(seg.c2)
		x3, y3 := t.Apply(seg.end)
		v.CubicTo(float32(x1), float32(y1), float32(x2), float32(y2), float32(x3), float32(y3))
	}
	v.Close()
}

// HeartOutline samples the outline into a polygon with stepsPerCurve points
// per bezier segment, in shape space.
func HeartOutline(stepsPerCurve int) []Point2 {
	if stepsPerCurve < 1 {
		stepsPerCurve = 1
	}
	points := make([]Point2, 0, len(heartSegments)*stepsPerCurve+1)
	points = append(points, heartStart)
	p0 := heartStart
	for _, seg := range heartSegments {
		for i := 1; i <= stepsPerCurve; i++ {
			points = append(points, cubicAt(p0, seg.c1, seg.c2, seg.end, float64(i)/float64(stepsPerCurve)))
		}
		p0 = seg.end
	}
	return points
}

func cubicAt(p0, p1, p2, p3 Point2, t float64) Point2 {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	return Point2{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// PointInPolygon reports whether p lies inside the polygon (even-odd rule).
func PointInPolygon(p Point2, poly []Point2) bool {
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}
