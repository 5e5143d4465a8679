package tui

import (
	"math"

	"hoverdash/internal/core"
)

// Projection tuning.
const (
	cellAspect  = 2.0 // Terminal cells are about twice as tall as wide
	nearPlane   = 0.1
	focalFactor = 0.75 // At the default orbit the gap band fills the screen
)

// Projector maps world points to screen cells for one frame's camera
// pose. It is rebuilt every frame from the snapshot; construction is a
// handful of vector ops and not worth caching.
type Projector struct {
	eye     core.Vec3
	right   core.Vec3
	up      core.Vec3
	forward core.Vec3
	cx, cy  float64
	focal   float64
}

// NewProjector builds the camera basis from eye and look-at target for
// a screen of the given cell dimensions.
func NewProjector(eye, target core.Vec3, width, height int) Projector {
	forward := target.Sub(eye).Normalized()
	right := forward.Cross(core.Vec3{Y: 1})
	if right.Len() < 1e-6 {
		right = core.Vec3{X: 1} // Looking straight up or down
	}
	right = right.Normalized()
	return Projector{
		eye:     eye,
		right:   right,
		up:      right.Cross(forward),
		forward: forward,
		cx:      float64(width) / 2,
		cy:      float64(height) / 2,
		focal:   float64(height) * focalFactor,
	}
}

// Project returns the screen cell and camera-space depth for a world
// point. ok is false for points on or behind the near plane; bounds
// clipping is left to the screen buffer.
func (p Projector) Project(pt core.Vec3) (x, y int, depth float64, ok bool) {
	d := pt.Sub(p.eye)
	z := d.Dot(p.forward)
	if z < nearPlane {
		return 0, 0, 0, false
	}
	sx := p.cx + d.Dot(p.right)/z*p.focal*cellAspect
	sy := p.cy - d.Dot(p.up)/z*p.focal
	return int(math.Round(sx)), int(math.Round(sy)), z, true
}
