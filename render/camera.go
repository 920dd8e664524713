package render

import "github.com/automoto/knightfall/shared/gamemath"

// Camera maps the XZ ground plane to the screen, top down, with +Z up.
type Camera struct {
	Center gamemath.Vec3
	Scale  float64 // pixels per world unit
	Width  int
	Height int
}

func NewCamera(width, height int) *Camera {
	return &Camera{Scale: 8, Width: width, Height: height}
}

func (c *Camera) WorldToScreen(p gamemath.Vec3) (float32, float32) {
	x := (p.X-c.Center.X)*c.Scale + float64(c.Width)/2
	y := -(p.Z-c.Center.Z)*c.Scale + float64(c.Height)/2
	return float32(x), float32(y)
}

func (c *Camera) ScreenToWorld(x, y int) gamemath.Vec3 {
	return gamemath.Vec3{
		X: (float64(x)-float64(c.Width)/2)/c.Scale + c.Center.X,
		Z: -(float64(y)-float64(c.Height)/2)/c.Scale + c.Center.Z,
	}
}

// Follow moves the camera toward target.
func (c *Camera) Follow(target gamemath.Vec3, smoothing float64) {
	c.Center.X += (target.X - c.Center.X) * smoothing
	c.Center.Z += (target.Z - c.Center.Z) * smoothing
}
