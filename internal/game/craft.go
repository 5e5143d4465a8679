package game

import (
	"math"

	"hoverdash/internal/core"
)

// Physics constants - tuned for playability at 60 ticks/second
const (
	JumpImpulse = 7.0   // Upward velocity on flap, units/second
	Gravity     = -15.0 // Vertical acceleration, units/second²
	CeilingY    = 10.0  // Flying above this crashes
	FloorY      = -5.0  // Falling below this crashes
	CraftRadius = 0.5   // Collision sphere radius

	hoverAmplitude = 0.25 // Idle bob height in setup/ready modes
	hoverFrequency = 2.0  // Idle bob angular frequency, radians/second
)

// Craft integrates the vertical arcade physics of the player craft.
// Roll and pitch are pinned to zero at all times; only Y moves.
type Craft struct {
	Pos   core.Vec3
	VelY  float64
	Alive bool
}

// NewCraft creates a craft parked at the origin.
func NewCraft() *Craft {
	c := &Craft{}
	c.Reset()
	return c
}

// Reset snaps the craft back to the origin with zero velocity and
// restores visibility. Called on every entry into the ready mode.
func (c *Craft) Reset() {
	c.Pos = core.Vec3{}
	c.VelY = 0
	c.Alive = true
}

// Flap sets the vertical velocity to the jump impulse. The set is
// absolute, not additive, so rapid taps do not stack.
func (c *Craft) Flap() {
	c.VelY = JumpImpulse
}

// Update integrates one physics tick. Returns false when the craft
// left the playable band, which counts as a crash.
func (c *Craft) Update(dt float64) bool {
	c.VelY += Gravity * dt
	c.Pos.Y += c.VelY * dt
	return c.Pos.Y >= FloorY && c.Pos.Y <= CeilingY
}

// Hover parks the craft on the deterministic idle bob used outside
// play. No physics run; t is the seconds spent in the current mode.
func (c *Craft) Hover(t float64) {
	c.Pos.Y = hoverAmplitude * math.Sin(hoverFrequency*t)
	c.VelY = 0
}

// Bounds returns the craft's collision sphere.
func (c *Craft) Bounds() core.Sphere {
	return core.Sphere{Center: c.Pos, Radius: CraftRadius}
}
