package render

import (
	"testing"

	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/stretchr/testify/assert"
)

func TestCameraRoundTrip(t *testing.T) {
	c := NewCamera(640, 480)
	c.Center = gamemath.V3(10, 0, -5)

	x, y := c.WorldToScreen(c.Center)
	assert.Equal(t, float32(320), x)
	assert.Equal(t, float32(240), y)

	x, y = c.WorldToScreen(gamemath.V3(11, 0, -4))
	assert.Equal(t, float32(328), x)
	assert.Equal(t, float32(232), y, "+Z is up the screen")

	p := c.ScreenToWorld(328, 232)
	assert.InDelta(t, 11, p.X, 1e-9)
	assert.InDelta(t, -4, p.Z, 1e-9)
}

func TestCameraFollow(t *testing.T) {
	c := NewCamera(100, 100)
	c.Follow(gamemath.V3(10, 0, 20), 0.5)
	assert.Equal(t, gamemath.V3(5, 0, 10), c.Center)
}
