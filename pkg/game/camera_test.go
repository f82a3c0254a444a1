package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCameraClampsToWorld(t *testing.T) {
	c := NewCamera(800, 600, 1600, 1200)

	c.Move(-100, -100)
	x, y := c.Origin()
	assert.Equal(t, int32(0), x)
	assert.Equal(t, int32(0), y)

	c.Move(5000, 5000)
	x, y = c.Origin()
	assert.Equal(t, int32(800), x)
	assert.Equal(t, int32(600), y)
}

func TestCameraWorldSmallerThanView(t *testing.T) {
	c := NewCamera(800, 600, 400, 300)
	c.Move(100, 100)
	x, y := c.Origin()
	assert.Equal(t, int32(0), x)
	assert.Equal(t, int32(0), y)
}

func TestCameraApply(t *testing.T) {
	c := NewCamera(800, 600, 1600, 1200)
	c.SetOrigin(100, 50)

	x, y := c.Apply(130, 80)
	assert.Equal(t, float32(30), x)
	assert.Equal(t, float32(30), y)
}

func TestCameraVisible(t *testing.T) {
	c := NewCamera(800, 600, 1600, 1200)
	c.SetOrigin(100, 100)

	assert.True(t, c.Visible(150, 150, 64, 64))
	assert.True(t, c.Visible(50, 50, 64, 64), "partially visible counts")
	assert.False(t, c.Visible(0, 0, 64, 64))
	assert.False(t, c.Visible(950, 100, 64, 64))
}
