package game

// Cue identifies a one-shot sound effect.
type Cue int

const (
	CueScore Cue = iota
	CueCoin
	CueTrap
	CueCrash
	CueFlap
	CueLifeUp
	CueLevelComplete
	CuePause
)

// String returns the cue name used for logging and tests.
func (c Cue) String() string {
	switch c {
	case CueScore:
		return "score"
	case CueCoin:
		return "coin"
	case CueTrap:
		return "trap"
	case CueCrash:
		return "crash"
	case CueFlap:
		return "flap"
	case CueLifeUp:
		return "lifeUp"
	case CueLevelComplete:
		return "levelComplete"
	case CuePause:
		return "pause"
	default:
		return "unknown"
	}
}

// Audio is the sound collaborator the core drives. Implementations own
// their backend entirely; a failed backend must degrade to no-ops so
// the game keeps running silently.
type Audio interface {
	// PlayCue fires a one-shot effect.
	PlayCue(c Cue)
	// SetSoundtrack retargets the generative background score. Called on
	// every mode or level change and when music is toggled; enabled=false
	// or any mode other than playing stops scheduling.
	SetSoundtrack(mode Mode, level int, enabled bool)
}

// nopAudio is the default collaborator until a real backend is attached.
type nopAudio struct{}

func (nopAudio) PlayCue(Cue) {}

func (nopAudio) SetSoundtrack(Mode, int, bool) {}
