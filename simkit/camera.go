package simkit

import "github.com/hajimehoshi/ebiten/v2"

// Camera is a 2D camera. World coordinates are y-up with the origin at
// the center of the view; the camera projects them onto the engine's
// y-down screen space.
type Camera struct {
	Offset Vec2 // world-space position the camera looks at
	Zoom   float64
}

// NewCamera returns a camera centered on the origin at 1:1 zoom.
func NewCamera() *Camera {
	return &Camera{Zoom: 1}
}

// GeoM returns the world-to-screen transform for a view of the given
// pixel size.
func (c *Camera) GeoM(screenW, screenH int) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-c.Offset.X, -c.Offset.Y)
	g.Scale(c.Zoom, -c.Zoom)
	g.Translate(float64(screenW)/2, float64(screenH)/2)
	return g
}

// WorldToScreen projects a world-space point to screen pixels.
func (c *Camera) WorldToScreen(p Vec2, screenW, screenH int) Vec2 {
	g := c.GeoM(screenW, screenH)
	x, y := g.Apply(p.X, p.Y)
	return Vec2{x, y}
}
