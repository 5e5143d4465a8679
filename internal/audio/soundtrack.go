package audio

import (
	"math"
	"math/rand"
)

// Soundtrack tuning. Tempo climbs with the level so later tiers read
// as more urgent.
const (
	baseBPM     = 92
	bpmPerLevel = 6
	maxBPM      = 176

	stepsPerBeat = 2
	patternSteps = 16

	kickLenSec = 0.08
)

// Minor pentatonic offsets from the root note.
var scaleOffsets = [...]int{0, 3, 5, 7, 10}

// track is an endless two-voice generative score: a kick on the
// quarter notes and a plucked bass walking a pentatonic pattern. All
// state derives from the level number, so a level always plays the
// same line.
type track struct {
	samplesPerStep int
	kickSamples    int
	pattern        [patternSteps]float64 // Bass note frequencies
	kick           [patternSteps]bool

	step  int
	pos   int // Sample position within the current step
	phase float64
}

// newTrack lays out the pattern for a level.
func newTrack(level int) *track {
	if level < 1 {
		level = 1
	}
	bpm := baseBPM + bpmPerLevel*(level-1)
	if bpm > maxBPM {
		bpm = maxBPM
	}

	t := &track{
		samplesPerStep: int(float64(sampleRate) * 60.0 / float64(bpm) / stepsPerBeat),
		kickSamples:    seconds(kickLenSec),
	}

	root := 40 + (level-1)%5 // E2 upward, cycling
	rng := rand.New(rand.NewSource(int64(level)))
	for i := range t.pattern {
		note := root + scaleOffsets[rng.Intn(len(scaleOffsets))] + 12*rng.Intn(2)
		t.pattern[i] = noteFreq(note)
		t.kick[i] = i%4 == 0
	}
	return t
}

// Stream fills the buffer with the mixed kick and bass voices. The
// track never drains; removal happens by detaching it from its Ctrl.
func (t *track) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.samplesPerStep {
			t.pos = 0
			t.step = (t.step + 1) % patternSteps
		}

		st := float64(t.pos) / float64(sampleRate)

		kick := 0.0
		if t.kick[t.step] && t.pos < t.kickSamples {
			env := 1.0 - float64(t.pos)/float64(t.kickSamples)
			freq := 55.0 * (1 + 2*env) // Pitch drop gives the thump
			kick = 0.5 * env * math.Sin(2*math.Pi*freq*st)
		}

		t.phase += t.pattern[t.step] / float64(sampleRate)
		if t.phase >= 1.0 {
			t.phase -= 1.0
		}
		pluck := 1.0 - float64(t.pos)/float64(t.samplesPerStep)
		bass := 0.3 * pluck * math.Sin(2*math.Pi*t.phase)

		v := kick + bass
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *track) Err() error {
	return nil
}
