// Package game implements the hoverdash simulation core: a hovering
// craft flown through a lane of gated obstacles across a fixed ladder
// of levels. The core is pure and deterministic; rendering, audio and
// persistence hang off narrow collaborator interfaces.
package game

import (
	"hoverdash/internal/config"
	"hoverdash/internal/core"
)

// Input tuning for the camera setup modes.
const (
	dragAzimuthPerCell = 0.05 // Radians of azimuth per dragged column
	dragPolarPerCell   = 0.04 // Radians of polar per dragged row
	zoomPerWheelStep   = 0.1
	zoomPerKey         = 0.1
)

// Particle burst palette.
const (
	bonusBurstColor  core.Color = "#ffd700"
	hazardBurstColor core.Color = "#ff1744"
	crashBurstColor  core.Color = "#ff6e40"

	collectBurstCount = 16
	crashBurstCount   = 36
)

// Game wires the craft, lane, resolver, session and camera rig into a
// fixed-tick simulation. One Step call advances exactly one tick; all
// state is owned by the calling goroutine.
type Game struct {
	session  *Session
	craft    *Craft
	lane     *Lane
	resolver Resolver
	camera   *CameraRig

	levels  config.LevelSet
	cfg     core.RuntimeConfig
	audio   Audio
	effects Effects

	attempt   int // Salt for the per-attempt layout seed
	tickCount int
	modeTime  float64 // Seconds since the last mode change
	musicOn   bool
	dt        float64
}

// New creates a game over the given level ladder. Reset must be called
// before the first Step.
func New(levels config.LevelSet) *Game {
	return &Game{
		levels:  levels,
		audio:   nopAudio{},
		effects: nopEffects{},
		camera:  NewCameraRig(DefaultCameraParams()),
		musicOn: true,
	}
}

// SetAudio attaches the sound collaborator.
func (g *Game) SetAudio(a Audio) {
	if a == nil {
		a = nopAudio{}
	}
	g.audio = a
	if g.session != nil {
		g.session.audio = a
	}
}

// SetEffects attaches the particle collaborator.
func (g *Game) SetEffects(e Effects) {
	if e == nil {
		e = nopEffects{}
	}
	g.effects = e
}

// SetMusic toggles the background score and retargets the soundtrack
// immediately.
func (g *Game) SetMusic(on bool) {
	g.musicOn = on
	if g.session != nil {
		g.audio.SetSoundtrack(g.session.Mode, g.session.Level, on)
	}
}

// MusicOn reports whether the background score is enabled.
func (g *Game) MusicOn() bool {
	return g.musicOn
}

// SetCamera replaces the committed orbit parameters, typically from
// persisted settings at startup.
func (g *Game) SetCamera(p CameraParams) {
	g.camera.SetCommitted(p)
}

// Camera returns the committed orbit parameters for persisting.
func (g *Game) Camera() CameraParams {
	return g.camera.Committed()
}

// Reset initializes or restarts the whole game into camera setup.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	g.cfg = cfg
	g.dt = 1.0 / float64(cfg.TickRate)
	g.tickCount = 0
	g.modeTime = 0
	g.attempt = 0

	g.session = NewSession(g.levels, cfg.TickRate)
	g.session.audio = g.audio
	g.craft = NewCraft()
	if g.lane == nil {
		g.lane = NewLane(g.session.Config(), g.attemptSeed())
	} else {
		g.lane.Reset(g.session.Config(), g.attemptSeed())
	}

	g.camera.Update(g.session.Mode, g.lookAt())
	g.audio.SetSoundtrack(g.session.Mode, g.session.Level, g.musicOn)
}

// Step advances the simulation by one tick: input, craft physics, lane
// scroll, collision resolution, crash delivery, camera follow.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	prev := g.session.Mode
	g.tickCount++
	g.modeTime += g.dt

	g.handleInput(in)
	g.updateCraft()
	g.updateWorld()
	g.session.TickCrash()

	if g.session.Mode != prev {
		g.onModeChange()
	}
	g.camera.Update(g.session.Mode, g.lookAt())

	return core.StepResult{State: g.State()}
}

// handleInput routes the tick's input by mode. During the crash delay
// all input is ignored; the delivery cannot be interacted with.
func (g *Game) handleInput(in core.InputFrame) {
	if g.session.Crashing() {
		return
	}

	switch g.session.Mode {
	case ModeCameraSetup:
		g.applyCameraInput(in)
		if in.Has(core.ActionConfirm) || in.Has(core.ActionFlap) {
			g.session.ConfirmSetup()
		}

	case ModeReady:
		if in.Has(core.ActionFlap) || in.Has(core.ActionConfirm) {
			g.session.LaunchAttempt()
			g.craft.Flap() // The launching tap is also the first flap
		}

	case ModePlaying:
		if in.Has(core.ActionPause) {
			g.session.TogglePause()
		} else if in.Has(core.ActionFlap) {
			g.craft.Flap()
			g.audio.PlayCue(CueFlap)
		}

	case ModePaused:
		if in.Has(core.ActionPause) {
			g.session.TogglePause()
		} else if in.Has(core.ActionAdjust) {
			g.session.OpenCameraAdjust()
			g.camera.BeginAdjust()
		}

	case ModePausedCameraSetup:
		g.applyCameraInput(in)
		if in.Has(core.ActionConfirm) {
			g.camera.Commit()
			g.session.CloseCameraAdjust()
		} else if in.Has(core.ActionCancel) {
			g.camera.Discard()
			g.session.CloseCameraAdjust()
		}

	case ModeLevelComplete:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionFlap) {
			g.session.ConfirmLevelComplete()
		}

	case ModeGameOver, ModeVictory:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.session.Restart()
		}
	}
}

// applyCameraInput folds drag, wheel and zoom keys into the rig. Only
// the setup modes call this.
func (g *Game) applyCameraInput(in core.InputFrame) {
	if in.HasCameraDelta() {
		g.camera.Adjust(
			in.DragX*dragAzimuthPerCell,
			in.DragY*dragPolarPerCell,
			-in.Wheel*zoomPerWheelStep, // Wheel up zooms in
		)
	}
	if in.Has(core.ActionZoomIn) {
		g.camera.Adjust(0, 0, -zoomPerKey)
	}
	if in.Has(core.ActionZoomOut) {
		g.camera.Adjust(0, 0, zoomPerKey)
	}
}

// updateCraft runs the idle hover outside play and physics during it.
func (g *Game) updateCraft() {
	switch g.session.Mode {
	case ModeCameraSetup, ModeReady:
		g.craft.Hover(g.modeTime)
	case ModePlaying:
		if !g.craft.Alive {
			return // Crash delay: physics suspended
		}
		if !g.craft.Update(g.dt) {
			g.beginCrash(g.craft.Pos) // Left the playable band
		}
	}
}

// updateWorld scrolls the lane and resolves collisions while playing.
// The world freezes during the crash delay.
func (g *Game) updateWorld() {
	if g.session.Mode != ModePlaying || !g.craft.Alive {
		return
	}

	events := g.lane.Advance(g.dt)
	events = append(events, g.resolver.Resolve(g.craft, g.lane)...)
	g.applyEvents(events)
}

// applyEvents drains the tick's event queue into the session, hides
// collected coins and requests particle feedback.
func (g *Game) applyEvents(events []Event) {
	for _, ev := range events {
		switch ev.Kind {
		case EventPass:
			g.session.ApplyPass()
		case EventCollectBonus:
			g.lane.HideCollectible(ev.Segment)
			g.session.ApplyBonus()
			g.effects.Burst(ev.At, bonusBurstColor, collectBurstCount)
		case EventCollectHazard:
			g.lane.HideCollectible(ev.Segment)
			g.session.ApplyHazard()
			g.effects.Burst(ev.At, hazardBurstColor, collectBurstCount)
		case EventCrash:
			g.beginCrash(ev.At)
		}
		if !g.craft.Alive {
			return // Crash halts the rest of the queue
		}
	}
}

// beginCrash hides the craft, arms the delivery timer and fires the
// burst. A crash during an armed crash is a no-op.
func (g *Game) beginCrash(at core.Vec3) {
	if !g.craft.Alive {
		return
	}
	g.craft.Alive = false
	g.session.BeginCrash()
	g.effects.Burst(at, crashBurstColor, crashBurstCount)
}

// onModeChange runs the side effects of a mode transition: entering
// ready re-rolls the lane with a fresh attempt seed and resets the
// craft, and the soundtrack is retargeted.
func (g *Game) onModeChange() {
	g.modeTime = 0
	if g.session.Mode == ModeReady {
		g.attempt++
		g.lane.Reset(g.session.Config(), g.attemptSeed())
		g.craft.Reset()
	}
	g.audio.SetSoundtrack(g.session.Mode, g.session.Level, g.musicOn)
}

// attemptSeed derives the layout seed for the current level attempt.
// Mixing level and attempt into the run seed keeps replays
// deterministic while every ready entry rolls a fresh layout.
func (g *Game) attemptSeed() int64 {
	mixed := uint64(g.cfg.Seed) ^
		uint64(g.session.Level)*0xA11CE5ED ^
		uint64(g.attempt)*0x9E3779B185EBCA87
	return int64(mixed)
}

// lookAt returns the camera focus: a fixed point during the pre-run
// setup, the live craft once a run exists.
func (g *Game) lookAt() core.Vec3 {
	if g.session.Mode == ModeCameraSetup {
		return core.Vec3{}
	}
	return g.craft.Pos
}

// State returns the coarse platform-facing state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score,
		Level:    g.session.Level,
		Lives:    g.session.Lives,
		GameOver: g.session.Mode == ModeGameOver,
		Victory:  g.session.Mode == ModeVictory,
		Paused:   g.session.Mode == ModePaused || g.session.Mode == ModePausedCameraSetup,
	}
}

// Mode returns the current session mode.
func (g *Game) Mode() Mode {
	return g.session.Mode
}
