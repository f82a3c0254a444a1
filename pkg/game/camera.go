package game

import "github.com/kjkrol/gokg/geom"

// Camera is a clamped scroll window over a fixed-size pixel world.
// Scenes subtract its origin from world coordinates before drawing, so
// the view never shows anything outside the world bounds.
type Camera struct {
	origin geom.Vec[int32]
	view   geom.Vec[int32]
	world  geom.Vec[int32]
}

func NewCamera(viewW, viewH, worldW, worldH int32) *Camera {
	return &Camera{
		view:  geom.NewVec(viewW, viewH),
		world: geom.NewVec(worldW, worldH),
	}
}

func (c *Camera) Origin() (int32, int32) { return c.origin.X, c.origin.Y }

// Move shifts the origin by a delta, clamped to the world.
func (c *Camera) Move(dx, dy int32) {
	c.setOrigin(c.origin.Add(geom.NewVec(dx, dy)))
}

func (c *Camera) SetOrigin(x, y int32) {
	c.setOrigin(geom.NewVec(x, y))
}

func (c *Camera) setOrigin(o geom.Vec[int32]) {
	maxX := c.world.X - c.view.X
	if maxX < 0 {
		maxX = 0
	}
	maxY := c.world.Y - c.view.Y
	if maxY < 0 {
		maxY = 0
	}
	if o.X < 0 {
		o.X = 0
	} else if o.X > maxX {
		o.X = maxX
	}
	if o.Y < 0 {
		o.Y = 0
	} else if o.Y > maxY {
		o.Y = maxY
	}
	c.origin = o
}

// Apply converts world coordinates to screen coordinates.
func (c *Camera) Apply(x, y float32) (float32, float32) {
	return x - float32(c.origin.X), y - float32(c.origin.Y)
}

// Visible reports whether a world-space rectangle intersects the view,
// for culling draws before they reach the renderer.
func (c *Camera) Visible(x, y, w, h float32) bool {
	ox, oy := float32(c.origin.X), float32(c.origin.Y)
	return x+w > ox && x < ox+float32(c.view.X) &&
		y+h > oy && y < oy+float32(c.view.Y)
}
