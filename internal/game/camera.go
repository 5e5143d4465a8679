package game

import (
	"math"

	"hoverdash/internal/core"
)

// Camera tuning.
const (
	OrbitRadius = 7.0  // Base orbit distance, scaled by the zoom factor
	PolarMin    = 0.1  // Keeps the orbit off the poles
	PolarMax    = math.Pi - 0.1
	ZoomMin     = 0.5
	ZoomMax     = 3.0

	easeFactor = 0.08 // Per-tick follow interpolation outside setup modes
)

// CameraParams are the player-controlled orbit parameters: where on the
// sphere the camera sits and how far out.
type CameraParams struct {
	Azimuth float64
	Polar   float64
	Zoom    float64
}

// DefaultCameraParams returns the out-of-the-box orbit.
func DefaultCameraParams() CameraParams {
	return CameraParams{Azimuth: 0.5, Polar: 1.2, Zoom: 1.0}
}

// Clamp forces polar and zoom into their legal ranges.
func (p *CameraParams) Clamp() {
	p.Polar = core.ClampF(p.Polar, PolarMin, PolarMax)
	p.Zoom = core.ClampF(p.Zoom, ZoomMin, ZoomMax)
}

// position converts the orbit parameters to a point on the sphere of
// radius OrbitRadius*Zoom around the look-at target.
func (p CameraParams) position(target core.Vec3) core.Vec3 {
	r := OrbitRadius * p.Zoom
	sinP := math.Sin(p.Polar)
	return core.Vec3{
		X: target.X + r*sinP*math.Sin(p.Azimuth),
		Y: target.Y + r*math.Cos(p.Polar),
		Z: target.Z + r*sinP*math.Cos(p.Azimuth),
	}
}

// CameraRig derives the camera pose from the orbit parameters and the
// current mode. It holds the committed parameter set plus a transient
// copy edited during the paused camera adjustment; the transient copy
// is discarded unless explicitly committed.
type CameraRig struct {
	committed CameraParams
	transient CameraParams
	adjusting bool

	eye    core.Vec3
	target core.Vec3
	warmed bool // first Update snaps regardless of mode
}

// NewCameraRig creates a rig positioned by the given committed params.
func NewCameraRig(p CameraParams) *CameraRig {
	p.Clamp()
	return &CameraRig{committed: p}
}

// Committed returns the persisted orbit parameters.
func (r *CameraRig) Committed() CameraParams {
	return r.committed
}

// SetCommitted replaces the persisted orbit parameters, clamped.
func (r *CameraRig) SetCommitted(p CameraParams) {
	p.Clamp()
	r.committed = p
}

// Active returns the parameter set currently being viewed: the
// transient copy while adjusting, the committed one otherwise.
func (r *CameraRig) Active() CameraParams {
	if r.adjusting {
		return r.transient
	}
	return r.committed
}

// Adjust applies deltas to the active parameter set with clamping.
func (r *CameraRig) Adjust(dAzimuth, dPolar, dZoom float64) {
	p := r.Active()
	p.Azimuth += dAzimuth
	p.Polar += dPolar
	p.Zoom += dZoom
	p.Clamp()
	if r.adjusting {
		r.transient = p
	} else {
		r.committed = p
	}
}

// BeginAdjust snapshots the committed params into the transient copy.
// Entering the paused camera setup goes through here.
func (r *CameraRig) BeginAdjust() {
	r.transient = r.committed
	r.adjusting = true
}

// Commit promotes the transient copy to committed and ends adjusting.
func (r *CameraRig) Commit() {
	if r.adjusting {
		r.committed = r.transient
		r.adjusting = false
	}
}

// Discard throws the transient copy away and ends adjusting.
func (r *CameraRig) Discard() {
	r.adjusting = false
}

// Update moves the pose toward the target derived from the active
// params and the look-at point. Setup modes snap (factor 1); all other
// modes ease by a small fixed factor per tick for smooth follow.
func (r *CameraRig) Update(mode Mode, lookAt core.Vec3) {
	want := r.Active().position(lookAt)

	if mode.Setup() || !r.warmed {
		r.eye = want
		r.target = lookAt
		r.warmed = true
		return
	}

	r.eye = core.LerpVec3(r.eye, want, easeFactor)
	r.target = core.LerpVec3(r.target, lookAt, easeFactor)
}

// Eye returns the interpolated camera position.
func (r *CameraRig) Eye() core.Vec3 {
	return r.eye
}

// Target returns the interpolated look-at point.
func (r *CameraRig) Target() core.Vec3 {
	return r.target
}
