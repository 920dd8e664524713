package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Vec2 is a ground-plane vector: X is world X and Y is world Z.
type Vec2 = dmath.Vec2

// Vec3 is a world-space point or direction. Y is up and the ground plane is XZ.
type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalized returns the unit vector, or the zero vector when v has no length.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

func (v Vec3) Distance(o Vec3) float64 {
	return v.Sub(o).Length()
}

// Flat projects v onto the ground plane.
func (v Vec3) Flat() dmath.Vec2 {
	return dmath.Vec2{X: v.X, Y: v.Z}
}

// Lift places a ground plane point at height y.
func Lift(p dmath.Vec2, y float64) Vec3 {
	return Vec3{X: p.X, Y: y, Z: p.Y}
}

// FlatLength is the length of a ground plane vector.
func FlatLength(p dmath.Vec2) float64 {
	return math.Hypot(p.X, p.Y)
}

// FlatNormalized returns the unit ground plane vector, or zero.
func FlatNormalized(p dmath.Vec2) dmath.Vec2 {
	l := FlatLength(p)
	if l == 0 {
		return dmath.Vec2{}
	}
	return dmath.Vec2{X: p.X / l, Y: p.Y / l}
}

func FlatDot(a, b dmath.Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// HorizontalDistance ignores height.
func HorizontalDistance(a, b Vec3) float64 {
	return math.Hypot(b.X-a.X, b.Z-a.Z)
}

// FlatDirection is the unit ground plane direction from a to b.
func FlatDirection(from, to Vec3) dmath.Vec2 {
	return FlatNormalized(dmath.Vec2{X: to.X - from.X, Y: to.Z - from.Z})
}

// Bearing is the ground plane angle from a to b, measured from +X toward +Z.
func Bearing(from, to Vec3) float64 {
	return math.Atan2(to.Z-from.Z, to.X-from.X)
}

// Heading converts a ground plane angle into a unit direction.
func Heading(angle float64) Vec3 {
	return Vec3{X: math.Cos(angle), Z: math.Sin(angle)}
}

// Yaw is the ground plane angle of a direction.
func Yaw(dir Vec3) float64 {
	return math.Atan2(dir.Z, dir.X)
}
