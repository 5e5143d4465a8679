package audio

import (
	"math"
	"math/rand"

	"hoverdash/internal/game"
)

// Waveform types for the oscillator.
const (
	waveSine = iota
	waveSquare
	waveSaw
	waveNoise
)

// floatBuffer is mono float64 samples at unity gain.
type floatBuffer []float64

// oscillator renders a raw waveform into a fresh buffer.
func oscillator(waveType int, freq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(sampleRate)

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		case waveNoise:
			buf[i] = rand.Float64()*2 - 1
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope shapes the buffer in place with a linear attack and
// release. Overlapping ramps resolve in favor of the attack.
func applyEnvelope(buf floatBuffer, attackSec, releaseSec float64) {
	total := len(buf)
	attackSamples := int(attackSec * float64(sampleRate))
	releaseSamples := int(releaseSec * float64(sampleRate))

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// mixBuffers adds b into a in place, extending a if b is longer.
func mixBuffers(a, b floatBuffer, bScale float64) floatBuffer {
	if len(b) > len(a) {
		extended := make(floatBuffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * bScale
	}
	return a
}

// concatBuffers appends b after a.
func concatBuffers(a, b floatBuffer) floatBuffer {
	out := make(floatBuffer, len(a)+len(b))
	copy(out, a)
	copy(out[len(a):], b)
	return out
}

// scaleBuffer multiplies the buffer in place.
func scaleBuffer(buf floatBuffer, k float64) floatBuffer {
	for i := range buf {
		buf[i] *= k
	}
	return buf
}

// seconds converts a duration to a sample count.
func seconds(d float64) int {
	return int(d * float64(sampleRate))
}

// noteFreq returns the equal-temperament frequency of a MIDI note,
// A4 (69) = 440Hz.
func noteFreq(midi int) float64 {
	return 440.0 * math.Pow(2, (float64(midi)-69.0)/12.0)
}

// tone renders a single enveloped note.
func tone(waveType int, freq float64, durSec, attackSec, releaseSec float64) floatBuffer {
	buf := oscillator(waveType, freq, seconds(durSec))
	applyEnvelope(buf, attackSec, releaseSec)
	return buf
}

// --- Cue generators (unity gain) ---

// scoreCue is a bell: fundamental plus one overtone.
func scoreCue() floatBuffer {
	fund := tone(waveSine, 880.0, 0.15, 0.005, 0.12)
	over := tone(waveSine, 1760.0, 0.15, 0.005, 0.08)
	return mixBuffers(fund, over, 0.3/0.7)
}

// coinCue is the classic two-note square pickup, B5 into E6.
func coinCue() floatBuffer {
	n1 := tone(waveSquare, 987.77, 0.07, 0.002, 0.02)
	n2 := tone(waveSquare, 1318.51, 0.16, 0.002, 0.12)
	return scaleBuffer(concatBuffers(n1, n2), 0.6)
}

// trapCue is a harsh low saw buzz.
func trapCue() floatBuffer {
	return tone(waveSaw, 110.0, 0.18, 0.002, 0.12)
}

// crashCue is a noise burst over a low rumble, both decaying.
func crashCue() floatBuffer {
	buf := tone(waveNoise, 0, 0.4, 0.001, 0.35)
	rumble := tone(waveSine, 70.0, 0.4, 0.001, 0.35)
	return mixBuffers(buf, rumble, 0.8)
}

// flapCue is a short soft whoosh.
func flapCue() floatBuffer {
	return scaleBuffer(tone(waveNoise, 0, 0.06, 0.005, 0.04), 0.4)
}

// lifeUpCue is a rising three-note arpeggio, A major.
func lifeUpCue() floatBuffer {
	buf := tone(waveSine, noteFreq(69), 0.08, 0.003, 0.03)
	buf = concatBuffers(buf, tone(waveSine, noteFreq(73), 0.08, 0.003, 0.03))
	return concatBuffers(buf, tone(waveSine, noteFreq(76), 0.14, 0.003, 0.1))
}

// levelCompleteCue is a four-note fanfare up the C major triad.
func levelCompleteCue() floatBuffer {
	buf := tone(waveSine, noteFreq(72), 0.09, 0.003, 0.03)
	buf = concatBuffers(buf, tone(waveSine, noteFreq(76), 0.09, 0.003, 0.03))
	buf = concatBuffers(buf, tone(waveSine, noteFreq(79), 0.09, 0.003, 0.03))
	return concatBuffers(buf, tone(waveSine, noteFreq(84), 0.22, 0.003, 0.16))
}

// pauseCue is a single muted tap.
func pauseCue() floatBuffer {
	return scaleBuffer(tone(waveSquare, 220.0, 0.07, 0.004, 0.05), 0.5)
}

// cueBuffer dispatches to the generator for a cue.
func cueBuffer(c game.Cue) floatBuffer {
	switch c {
	case game.CueScore:
		return scoreCue()
	case game.CueCoin:
		return coinCue()
	case game.CueTrap:
		return trapCue()
	case game.CueCrash:
		return crashCue()
	case game.CueFlap:
		return flapCue()
	case game.CueLifeUp:
		return lifeUpCue()
	case game.CueLevelComplete:
		return levelCompleteCue()
	case game.CuePause:
		return pauseCue()
	default:
		return nil
	}
}
