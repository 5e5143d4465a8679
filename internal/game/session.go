package game

import "hoverdash/internal/config"

// Progression rules.
const (
	InitialLives  = 5  // Lives granted on a fresh run
	DemotionLives = 3  // Lives granted after dropping a level
	BonusWrap     = 25 // Bonus tally that converts into an extra life

	passScore     = 1
	bonusScore    = 5
	hazardPenalty = 3

	crashDelaySeconds = 0.8 // Impact to delivery, physics suspended
)

// Session owns score, lives, level, the bonus tally and the discrete
// game mode. It is the single progression authority: every rule about
// advancing, demoting, gaining and losing lives lives here, driven by
// lane/resolver events and player input relayed by the game.
type Session struct {
	Mode        Mode
	Score       int
	Level       int
	Lives       int
	BonusTally  int
	PipesPassed int

	levels config.LevelSet
	audio  Audio

	crashPending bool
	crashTicks   int // Remaining ticks until the crash is delivered
	crashDelay   int
}

// NewSession creates a session in camera setup with the given ladder.
func NewSession(levels config.LevelSet, tickRate int) *Session {
	return &Session{
		Mode:       ModeCameraSetup,
		Level:      1,
		Lives:      InitialLives,
		levels:     levels,
		audio:      nopAudio{},
		crashDelay: int(crashDelaySeconds * float64(tickRate)),
	}
}

// Config returns the tuning for the current level. Levels past the end
// of the table clamp to the last tier while Level keeps climbing.
func (s *Session) Config() config.LevelConfig {
	return s.levels.Level(s.Level)
}

// FinalLevel returns the level whose completion wins the game.
func (s *Session) FinalLevel() int {
	return s.levels.FinalLevel
}

// enterReady resets the per-attempt state and moves to ready. The game
// re-rolls the lane layout and resets the craft when it observes the
// transition.
func (s *Session) enterReady() {
	s.Mode = ModeReady
	s.PipesPassed = 0
	s.crashPending = false
	s.crashTicks = 0
}

// ConfirmSetup leaves the initial camera setup and starts a fresh run.
func (s *Session) ConfirmSetup() {
	if s.Mode != ModeCameraSetup {
		return
	}
	s.Score = 0
	s.Level = 1
	s.Lives = InitialLives
	s.BonusTally = 0
	s.enterReady()
	s.audio.PlayCue(CuePause)
}

// LaunchAttempt starts play from ready. The launching tap doubles as
// the first flap, so the cue is the flap cue.
func (s *Session) LaunchAttempt() {
	if s.Mode != ModeReady {
		return
	}
	s.Mode = ModePlaying
	s.audio.PlayCue(CueFlap)
}

// TogglePause flips between playing and paused.
func (s *Session) TogglePause() {
	switch s.Mode {
	case ModePlaying:
		s.Mode = ModePaused
	case ModePaused:
		s.Mode = ModePlaying
	default:
		return
	}
	s.audio.PlayCue(CuePause)
}

// OpenCameraAdjust moves from paused into the paused camera setup.
func (s *Session) OpenCameraAdjust() {
	if s.Mode != ModePaused {
		return
	}
	s.Mode = ModePausedCameraSetup
	s.audio.PlayCue(CuePause)
}

// CloseCameraAdjust returns from the paused camera setup to paused.
// Committing or discarding the transient camera params is the rig's
// business; the session only moves the mode.
func (s *Session) CloseCameraAdjust() {
	if s.Mode != ModePausedCameraSetup {
		return
	}
	s.Mode = ModePaused
	s.audio.PlayCue(CuePause)
}

// ConfirmLevelComplete advances past a completed level: the next level
// with a bonus life, or victory past the final level.
func (s *Session) ConfirmLevelComplete() {
	if s.Mode != ModeLevelComplete {
		return
	}
	if s.Level < s.levels.FinalLevel {
		s.Level++
		s.Lives++
		s.enterReady()
		s.audio.PlayCue(CueLifeUp)
		return
	}
	s.Mode = ModeVictory
	s.audio.PlayCue(CueLevelComplete)
}

// Restart returns to camera setup from a finished game. Run state is
// reset when setup is confirmed, not here.
func (s *Session) Restart() {
	if s.Mode != ModeGameOver && s.Mode != ModeVictory {
		return
	}
	s.Mode = ModeCameraSetup
	s.audio.PlayCue(CuePause)
}

// ApplyPass scores a cleared gate and completes the level when the
// whole lane has been passed. Pass events arriving after the
// transition are dropped, so the level completes exactly once.
func (s *Session) ApplyPass() {
	if s.Mode != ModePlaying {
		return
	}
	s.Score += passScore
	s.PipesPassed++
	if s.PipesPassed >= s.Config().PipeCount {
		s.Mode = ModeLevelComplete
		s.audio.PlayCue(CueLevelComplete)
		return
	}
	s.audio.PlayCue(CueScore)
}

// ApplyBonus scores a bonus collect. The tally wraps at BonusWrap into
// an extra life, keeping any overflow.
func (s *Session) ApplyBonus() {
	if s.Mode != ModePlaying {
		return
	}
	s.Score += bonusScore
	s.BonusTally++
	s.audio.PlayCue(CueCoin)
	if s.BonusTally >= BonusWrap {
		s.Lives++
		s.BonusTally -= BonusWrap
		s.audio.PlayCue(CueLifeUp)
	}
}

// ApplyHazard scores a hazard collect. The score is floored at zero.
func (s *Session) ApplyHazard() {
	if s.Mode != ModePlaying {
		return
	}
	s.Score -= hazardPenalty
	if s.Score < 0 {
		s.Score = 0
	}
	s.audio.PlayCue(CueTrap)
}

// BeginCrash arms the crash delivery timer. A second trigger while one
// is pending is a no-op; the transition cannot be re-entered.
func (s *Session) BeginCrash() {
	if s.Mode != ModePlaying || s.crashPending {
		return
	}
	s.crashPending = true
	s.crashTicks = s.crashDelay
}

// Crashing reports whether a crash is armed but not yet delivered.
func (s *Session) Crashing() bool {
	return s.crashPending
}

// TickCrash counts the armed crash down and delivers it once the delay
// elapses: lose a life and retry, demote a level on total life loss,
// or end the game at level one. Returns true on the delivering tick.
func (s *Session) TickCrash() bool {
	if !s.crashPending {
		return false
	}
	if s.crashTicks > 0 {
		s.crashTicks--
		return false
	}
	s.crashPending = false
	s.Lives--
	switch {
	case s.Lives > 0:
		s.enterReady()
	case s.Level > 1:
		s.Level--
		s.Lives = DemotionLives
		s.enterReady()
	default:
		s.Mode = ModeGameOver
	}
	s.audio.PlayCue(CueCrash)
	return true
}
