package game

import (
	"testing"

	"hoverdash/internal/config"
)

// recordingAudio captures cues and soundtrack calls for assertions.
type recordingAudio struct {
	cues       []Cue
	soundtrack []Mode
}

func (r *recordingAudio) PlayCue(c Cue) {
	r.cues = append(r.cues, c)
}

func (r *recordingAudio) SetSoundtrack(mode Mode, level int, enabled bool) {
	r.soundtrack = append(r.soundtrack, mode)
}

func (r *recordingAudio) lastCue() Cue {
	if len(r.cues) == 0 {
		return Cue(-1)
	}
	return r.cues[len(r.cues)-1]
}

// testSession returns a session on the default ladder, already playing.
func testSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(config.DefaultLevels(), 60)
	s.ConfirmSetup()
	s.LaunchAttempt()
	if s.Mode != ModePlaying {
		t.Fatalf("setup failed, mode = %v", s.Mode)
	}
	return s
}

func TestSessionFreshRun(t *testing.T) {
	s := NewSession(config.DefaultLevels(), 60)
	if s.Mode != ModeCameraSetup {
		t.Fatalf("initial mode = %v, expected cameraSetup", s.Mode)
	}

	s.ConfirmSetup()

	if s.Mode != ModeReady {
		t.Errorf("mode = %v, expected ready", s.Mode)
	}
	if s.Score != 0 || s.Level != 1 || s.Lives != InitialLives || s.BonusTally != 0 {
		t.Errorf("fresh run state = score %d level %d lives %d bonus %d",
			s.Score, s.Level, s.Lives, s.BonusTally)
	}
}

func TestSessionBonusWrap(t *testing.T) {
	s := testSession(t)
	s.BonusTally = BonusWrap - 1
	lives := s.Lives

	s.ApplyBonus()

	if s.BonusTally != 0 {
		t.Errorf("tally = %d, expected wrap to 0", s.BonusTally)
	}
	if s.Lives != lives+1 {
		t.Errorf("lives = %d, expected %d", s.Lives, lives+1)
	}
	if s.Score != bonusScore {
		t.Errorf("score = %d, expected %d", s.Score, bonusScore)
	}
}

func TestSessionBonusWrapKeepsOverflow(t *testing.T) {
	// The wrap subtracts, it does not reset: any overflow carries.
	s := testSession(t)
	s.BonusTally = BonusWrap + 3 // Hypothetical overshoot
	s.ApplyBonus()
	if s.BonusTally != 4 {
		t.Errorf("tally = %d, expected 4 (overflow preserved)", s.BonusTally)
	}
}

func TestSessionScoreFloor(t *testing.T) {
	s := testSession(t)
	s.Score = 2

	// Any sequence of hazard hits never drives the score negative.
	for i := 0; i < 10; i++ {
		s.ApplyHazard()
		if s.Score < 0 {
			t.Fatalf("score went negative: %d", s.Score)
		}
	}
	if s.Score != 0 {
		t.Errorf("score = %d, expected 0", s.Score)
	}
}

func TestSessionCrashRetrySameLevel(t *testing.T) {
	s := testSession(t)
	s.Level = 3
	s.Lives = 2
	s.PipesPassed = 4

	s.BeginCrash()
	deliverCrash(t, s)

	if s.Mode != ModeReady {
		t.Errorf("mode = %v, expected ready", s.Mode)
	}
	if s.Level != 3 {
		t.Errorf("level = %d, expected 3 (no demotion with lives left)", s.Level)
	}
	if s.Lives != 1 {
		t.Errorf("lives = %d, expected 1", s.Lives)
	}
	if s.PipesPassed != 0 {
		t.Errorf("attempt counter should reset, got %d", s.PipesPassed)
	}
}

func TestSessionCrashDemotion(t *testing.T) {
	s := testSession(t)
	s.Level = 5
	s.Lives = 1

	s.BeginCrash()
	deliverCrash(t, s)

	if s.Mode != ModeReady {
		t.Errorf("mode = %v, expected ready (demotion, not elimination)", s.Mode)
	}
	if s.Level != 4 {
		t.Errorf("level = %d, expected 4", s.Level)
	}
	if s.Lives != DemotionLives {
		t.Errorf("lives = %d, expected %d", s.Lives, DemotionLives)
	}
}

func TestSessionCrashGameOver(t *testing.T) {
	s := testSession(t)
	s.Level = 1
	s.Lives = 1

	s.BeginCrash()
	deliverCrash(t, s)

	if s.Mode != ModeGameOver {
		t.Errorf("mode = %v, expected gameOver at level 1 with no lives", s.Mode)
	}
}

func TestSessionCrashDelayAndReentrancy(t *testing.T) {
	s := testSession(t)
	lives := s.Lives

	s.BeginCrash()
	if !s.Crashing() {
		t.Fatal("crash should be pending")
	}

	// A second trigger while one is pending is a no-op.
	s.BeginCrash()

	// The delay holds for crashDelay ticks before delivering.
	for i := 0; i < s.crashDelay; i++ {
		if s.TickCrash() {
			t.Fatalf("crash delivered early, tick %d of %d", i, s.crashDelay)
		}
		if s.Mode != ModePlaying {
			t.Fatalf("mode changed during the delay: %v", s.Mode)
		}
	}
	if !s.TickCrash() {
		t.Fatal("crash should deliver once the delay elapses")
	}

	if s.Lives != lives-1 {
		t.Errorf("exactly one life lost, got %d -> %d", lives, s.Lives)
	}
	if s.Crashing() {
		t.Error("delivery should clear the pending crash")
	}
	if s.TickCrash() {
		t.Error("a delivered crash must not deliver again")
	}
}

// deliverCrash runs the delay out and asserts delivery happens.
func deliverCrash(t *testing.T, s *Session) {
	t.Helper()
	for i := 0; i <= s.crashDelay+1; i++ {
		if s.TickCrash() {
			return
		}
	}
	t.Fatal("crash never delivered")
}

func TestSessionLevelCompleteOnce(t *testing.T) {
	s := testSession(t)
	count := s.Config().PipeCount

	for i := 0; i < count-1; i++ {
		s.ApplyPass()
	}
	if s.Mode != ModePlaying {
		t.Fatalf("mode = %v before the last gate", s.Mode)
	}

	s.ApplyPass()
	if s.Mode != ModeLevelComplete {
		t.Fatalf("mode = %v, expected levelComplete", s.Mode)
	}
	score := s.Score

	// Stray pass events arriving after the transition are dropped.
	s.ApplyPass()
	s.ApplyPass()
	if s.Mode != ModeLevelComplete {
		t.Error("extra pass events must not change the mode")
	}
	if s.Score != score {
		t.Errorf("extra pass events must not score: %d -> %d", score, s.Score)
	}
}

func TestSessionLevelAdvanceGrantsLife(t *testing.T) {
	s := testSession(t)
	s.Mode = ModeLevelComplete
	lives := s.Lives

	s.ConfirmLevelComplete()

	if s.Mode != ModeReady {
		t.Errorf("mode = %v, expected ready", s.Mode)
	}
	if s.Level != 2 {
		t.Errorf("level = %d, expected 2", s.Level)
	}
	if s.Lives != lives+1 {
		t.Errorf("lives = %d, expected %d", s.Lives, lives+1)
	}
	if s.PipesPassed != 0 {
		t.Errorf("attempt counter should reset, got %d", s.PipesPassed)
	}
}

func TestSessionVictory(t *testing.T) {
	s := testSession(t)
	s.Level = s.FinalLevel()
	s.Mode = ModeLevelComplete

	s.ConfirmLevelComplete()

	if s.Mode != ModeVictory {
		t.Errorf("mode = %v, expected victory past the final level", s.Mode)
	}
	if s.Level != s.FinalLevel() {
		t.Errorf("level should stay at %d, got %d", s.FinalLevel(), s.Level)
	}
}

func TestSessionPauseRoundTrip(t *testing.T) {
	s := testSession(t)
	score, level, lives := s.Score, s.Level, s.Lives

	s.TogglePause()
	if s.Mode != ModePaused {
		t.Fatalf("mode = %v, expected paused", s.Mode)
	}
	s.TogglePause()
	if s.Mode != ModePlaying {
		t.Fatalf("mode = %v, expected playing", s.Mode)
	}

	if s.Score != score || s.Level != level || s.Lives != lives {
		t.Error("pause round trip must not touch progression")
	}
}

func TestSessionCameraAdjustFlow(t *testing.T) {
	s := testSession(t)
	s.TogglePause()

	s.OpenCameraAdjust()
	if s.Mode != ModePausedCameraSetup {
		t.Fatalf("mode = %v, expected pausedCameraSetup", s.Mode)
	}
	s.CloseCameraAdjust()
	if s.Mode != ModePaused {
		t.Fatalf("mode = %v, expected paused", s.Mode)
	}

	// Opening from any mode but paused is refused.
	s.TogglePause() // back to playing
	s.OpenCameraAdjust()
	if s.Mode != ModePlaying {
		t.Errorf("camera adjust must only open from pause, mode = %v", s.Mode)
	}
}

func TestSessionRestart(t *testing.T) {
	s := testSession(t)
	s.Mode = ModeGameOver

	s.Restart()
	if s.Mode != ModeCameraSetup {
		t.Errorf("mode = %v, expected cameraSetup", s.Mode)
	}

	s.Mode = ModeVictory
	s.Restart()
	if s.Mode != ModeCameraSetup {
		t.Errorf("restart from victory: mode = %v, expected cameraSetup", s.Mode)
	}
}

func TestSessionGuardsIgnoreWrongMode(t *testing.T) {
	s := NewSession(config.DefaultLevels(), 60)

	// None of these apply in camera setup.
	s.ApplyPass()
	s.ApplyBonus()
	s.ApplyHazard()
	s.BeginCrash()
	s.TogglePause()
	s.LaunchAttempt()
	s.ConfirmLevelComplete()
	s.Restart()

	if s.Mode != ModeCameraSetup {
		t.Errorf("mode = %v, expected cameraSetup untouched", s.Mode)
	}
	if s.Score != 0 || s.PipesPassed != 0 {
		t.Error("guards should leave state untouched")
	}
	if s.Crashing() {
		t.Error("crash must not arm outside playing")
	}
}

func TestSessionTransitionCues(t *testing.T) {
	rec := &recordingAudio{}
	s := NewSession(config.DefaultLevels(), 60)
	s.audio = rec

	s.ConfirmSetup()
	if rec.lastCue() != CuePause {
		t.Errorf("setup confirm cue = %v, expected pause", rec.lastCue())
	}

	s.LaunchAttempt()
	if rec.lastCue() != CueFlap {
		t.Errorf("launch cue = %v, expected flap", rec.lastCue())
	}

	s.ApplyPass()
	if rec.lastCue() != CueScore {
		t.Errorf("pass cue = %v, expected score", rec.lastCue())
	}

	s.ApplyBonus()
	if rec.lastCue() != CueCoin {
		t.Errorf("bonus cue = %v, expected coin", rec.lastCue())
	}

	s.ApplyHazard()
	if rec.lastCue() != CueTrap {
		t.Errorf("hazard cue = %v, expected trap", rec.lastCue())
	}

	s.BeginCrash()
	deliverCrash(t, s)
	if rec.lastCue() != CueCrash {
		t.Errorf("crash delivery cue = %v, expected crash", rec.lastCue())
	}

	// Complete the level: the completing pass plays the completion cue
	// instead of the score cue.
	s.LaunchAttempt()
	for i := 0; i < s.Config().PipeCount; i++ {
		s.ApplyPass()
	}
	if s.Mode != ModeLevelComplete {
		t.Fatalf("mode = %v, expected levelComplete", s.Mode)
	}
	if rec.lastCue() != CueLevelComplete {
		t.Errorf("completion cue = %v, expected levelComplete", rec.lastCue())
	}

	s.ConfirmLevelComplete()
	if rec.lastCue() != CueLifeUp {
		t.Errorf("advance cue = %v, expected lifeUp", rec.lastCue())
	}
}
