package game

import "hoverdash/internal/core"

// Effects is the visual feedback collaborator. The core only requests
// bursts; particle lifetime is owned entirely by the implementation.
type Effects interface {
	Burst(at core.Vec3, color core.Color, count int)
}

// nopEffects is the default collaborator until a renderer is attached.
type nopEffects struct{}

func (nopEffects) Burst(core.Vec3, core.Color, int) {}
