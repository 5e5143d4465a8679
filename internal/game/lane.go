package game

import (
	"math/rand"

	"hoverdash/internal/config"
	"hoverdash/internal/core"
)

// Lane layout constants.
const (
	LaneHalfWidth = 2.5  // Horizontal half-extent of each gate body
	GateThickness = 1.0  // Gate depth along the scroll axis
	CoinRadius    = 0.35 // Collectible sphere radius

	leadInSeconds = 4.0  // Travel time before the first gate arrives
	gapBandBottom = -2.0 // Gap center band, before the half-gap margin
	gapBandTop    = 6.0
)

// Segment is one obstacle unit: a gated pair, the collectible at its
// gap center and the fixed hazard classification. Segments are pooled
// by the lane and reset in place, never reallocated mid-attempt.
type Segment struct {
	Z           float64 // Position along the scroll axis; the craft sits at 0
	GapY        float64 // Gap center height
	Hazard      bool    // Collectible classification, drawn once at layout
	Passed      bool    // Pass event already fired for this segment
	CoinVisible bool
}

// LowerGate returns the solid body below the gap, spanning down to the
// floor of the playable band.
func (s Segment) LowerGate(gapHeight float64) core.Box {
	return core.Box{
		Min: core.Vec3{X: -LaneHalfWidth, Y: FloorY, Z: s.Z - GateThickness/2},
		Max: core.Vec3{X: LaneHalfWidth, Y: s.GapY - gapHeight/2, Z: s.Z + GateThickness/2},
	}
}

// UpperGate returns the solid body above the gap, spanning up to the
// ceiling of the playable band.
func (s Segment) UpperGate(gapHeight float64) core.Box {
	return core.Box{
		Min: core.Vec3{X: -LaneHalfWidth, Y: s.GapY + gapHeight/2, Z: s.Z - GateThickness/2},
		Max: core.Vec3{X: LaneHalfWidth, Y: CeilingY, Z: s.Z + GateThickness/2},
	}
}

// Coin returns the collectible sphere at the gap center.
func (s Segment) Coin() core.Sphere {
	return core.Sphere{Center: core.Vec3{Y: s.GapY, Z: s.Z}, Radius: CoinRadius}
}

// Lane owns the segment pool for the current level attempt, scrolls it
// toward the craft and reports pass events. Nothing else mutates the
// segments; the resolver and the renderer only read them.
type Lane struct {
	cfg      config.LevelConfig
	segments []Segment
}

// NewLane allocates a lane and lays it out for the given tuning and seed.
func NewLane(cfg config.LevelConfig, seed int64) *Lane {
	l := &Lane{}
	l.Reset(cfg, seed)
	return l
}

// Reset lays the pool out for a fresh attempt: segments at pipe_spacing
// intervals past a speed-scaled lead-in, gap centers drawn uniformly,
// hazard flags drawn once per segment with the level's trap chance.
// Existing segments are reset in place; the pool is only resized when
// the gate count changes between levels.
func (l *Lane) Reset(cfg config.LevelConfig, seed int64) {
	l.cfg = cfg
	if len(l.segments) != cfg.PipeCount {
		l.segments = make([]Segment, cfg.PipeCount)
	}

	rng := rand.New(rand.NewSource(seed))
	leadIn := cfg.GameSpeed * leadInSeconds
	lo := gapBandBottom + cfg.GapHeight/2
	hi := gapBandTop - cfg.GapHeight/2
	if hi < lo {
		hi = lo // Degenerate band for very tall gaps
	}

	for i := range l.segments {
		l.segments[i] = Segment{
			Z:           -(leadIn + float64(i)*cfg.PipeSpacing),
			GapY:        lo + rng.Float64()*(hi-lo),
			Hazard:      rng.Float64() < cfg.TrapChance,
			Passed:      false,
			CoinVisible: true,
		}
	}
}

// Advance scrolls every segment toward the craft by gameSpeed*dt and
// fires exactly one pass event per segment the first time it crosses
// the craft plane. The pass flag makes the event idempotent until the
// next Reset.
func (l *Lane) Advance(dt float64) []Event {
	var events []Event
	for i := range l.segments {
		l.segments[i].Z += l.cfg.GameSpeed * dt
		if !l.segments[i].Passed && l.segments[i].Z >= 0 {
			l.segments[i].Passed = true
			events = append(events, Event{Kind: EventPass, Segment: i, At: core.Vec3{Y: l.segments[i].GapY, Z: l.segments[i].Z}})
		}
	}
	return events
}

// HideCollectible marks a segment's coin as taken. Driven by collect
// events; the lane never decides this on its own.
func (l *Lane) HideCollectible(i int) {
	if i < 0 || i >= len(l.segments) {
		return
	}
	l.segments[i].CoinVisible = false
}

// Segments returns the segment pool. Callers must treat it as read-only.
func (l *Lane) Segments() []Segment {
	return l.segments
}

// Config returns the tuning the lane was last laid out with.
func (l *Lane) Config() config.LevelConfig {
	return l.cfg
}
