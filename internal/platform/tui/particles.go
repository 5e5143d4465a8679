package tui

import (
	"math"
	"math/rand"

	"hoverdash/internal/core"
	"hoverdash/internal/game"
)

// Particle tuning.
const (
	maxParticles    = 512
	particleGravity = -9.0 // Softer than craft gravity, reads better on screen
	particleDrag    = 2.2  // Exponential velocity decay rate
	burstSpeedMin   = 2.0
	burstSpeedMax   = 6.5
	burstLifeMin    = 0.35
	burstLifeMax    = 0.9
)

// particleRunes fade from fresh to dying.
var particleRunes = [...]rune{'*', '+', '·'}

// particle is one cosmetic spark in world space.
type particle struct {
	pos     core.Vec3
	vel     core.Vec3
	life    float64
	maxLife float64
	color   core.Color
}

// ParticleField implements the game's burst hook with a fixed-capacity
// world-space pool. Bursts past capacity overwrite slots circularly;
// expired particles are swap-removed on update. Sparks are cosmetic,
// so the field keeps its own RNG apart from the simulation.
type ParticleField struct {
	particles []particle
	rng       *rand.Rand
	overIdx   int
}

var _ game.Effects = (*ParticleField)(nil)

// NewParticleField creates an empty field. The seed only varies the
// spark directions; pass anything.
func NewParticleField(seed int64) *ParticleField {
	return &ParticleField{
		particles: make([]particle, 0, maxParticles),
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Burst flings count sparks from the given world point, directions
// drawn uniformly over the sphere with randomized speed and lifetime.
func (f *ParticleField) Burst(at core.Vec3, color core.Color, count int) {
	for i := 0; i < count; i++ {
		y := f.rng.Float64()*2 - 1
		theta := f.rng.Float64() * 2 * math.Pi
		r := math.Sqrt(1 - y*y)
		dir := core.Vec3{X: r * math.Cos(theta), Y: y, Z: r * math.Sin(theta)}
		speed := burstSpeedMin + f.rng.Float64()*(burstSpeedMax-burstSpeedMin)
		f.add(particle{
			pos:     at,
			vel:     dir.Scale(speed),
			maxLife: burstLifeMin + f.rng.Float64()*(burstLifeMax-burstLifeMin),
			color:   color,
		})
	}
}

func (f *ParticleField) add(p particle) {
	if len(f.particles) < maxParticles {
		f.particles = append(f.particles, p)
		return
	}
	// Circular overwrite.
	if f.overIdx >= maxParticles {
		f.overIdx = 0
	}
	f.particles[f.overIdx] = p
	f.overIdx++
}

// Update ages and integrates the pool. Expired particles are removed
// by swapping the last slot in.
func (f *ParticleField) Update(dt float64) {
	if dt <= 0 {
		return
	}
	drag := math.Exp(-particleDrag * dt)
	for i := 0; i < len(f.particles); {
		p := &f.particles[i]
		p.life += dt
		if p.life >= p.maxLife {
			f.particles[i] = f.particles[len(f.particles)-1]
			f.particles = f.particles[:len(f.particles)-1]
			continue
		}
		p.vel = p.vel.Scale(drag)
		p.vel.Y += particleGravity * dt
		p.pos = p.pos.Add(p.vel.Scale(dt))
		i++
	}
}

// Draw plots every live spark through the projector, depth-tested
// against the scene.
func (f *ParticleField) Draw(s *core.Screen, proj Projector) {
	for i := range f.particles {
		p := &f.particles[i]
		x, y, depth, ok := proj.Project(p.pos)
		if !ok {
			continue
		}
		idx := int(p.life / p.maxLife * float64(len(particleRunes)))
		if idx >= len(particleRunes) {
			idx = len(particleRunes) - 1
		}
		s.Plot(x, y, particleRunes[idx], p.color, depth)
	}
}

// Clear drops every live spark. Called on game restart.
func (f *ParticleField) Clear() {
	f.particles = f.particles[:0]
	f.overIdx = 0
}

// Live returns the number of live sparks.
func (f *ParticleField) Live() int {
	return len(f.particles)
}
