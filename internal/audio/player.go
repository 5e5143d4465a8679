// Package audio synthesizes every sound in the game at startup: short
// one-shot cues for game events and an endless generative soundtrack,
// mixed into one speaker stream. There are no sample assets; if the
// audio backend cannot be opened the player stays permanently silent
// and every method remains safe to call.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"hoverdash/internal/game"
)

const sampleRate = beep.SampleRate(48000)

// Gain applied to unity-gain buffers at mix time.
const (
	sfxGain = 0.25
)

const cueCount = int(game.CuePause) + 1

// Player implements the game's audio collaborator on top of a beep
// mixer. Cue buffers are rendered once at Init and replayed from
// memory.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicLevel  int
	cache       [cueCount]floatBuffer
	sfxOn       bool
	initialized bool
}

// NewPlayer creates a silent player. Init must succeed before any
// sound is produced.
func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
		sfxOn: true,
	}
}

// Init opens the speaker, renders the cue buffers and starts the
// mixer. Returns the backend error when no audio device is available;
// the player then stays silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	for c := 0; c < cueCount; c++ {
		p.cache[c] = cueBuffer(game.Cue(c))
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops the soundtrack and drops everything from the mixer.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.stopMusicLocked()
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// SetSFX toggles the one-shot cues.
func (p *Player) SetSFX(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sfxOn = on
}

// SFXOn reports whether one-shot cues are enabled.
func (p *Player) SFXOn() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sfxOn
}

// PlayCue mixes in one replay of the cue's pre-rendered buffer.
func (p *Player) PlayCue(c game.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || !p.sfxOn {
		return
	}
	if c < 0 || int(c) >= cueCount {
		return
	}
	buf := p.cache[c]
	if len(buf) == 0 {
		return
	}

	speaker.Lock()
	p.mixer.Add(&bufferStreamer{buf: buf, gain: sfxGain})
	speaker.Unlock()
}

// SetSoundtrack retargets the background score. Music plays only
// while a run is live; any other mode, or enabled=false, stops it.
// Re-targeting the level already playing is a no-op so mode churn
// does not restart the line.
func (p *Player) SetSoundtrack(mode game.Mode, level int, enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	if !enabled || mode != game.ModePlaying {
		p.stopMusicLocked()
		return
	}
	if p.music != nil && p.musicLevel == level {
		return
	}

	p.stopMusicLocked()
	ctrl := &beep.Ctrl{Streamer: newTrack(level)}
	speaker.Lock()
	p.mixer.Add(ctrl)
	speaker.Unlock()
	p.music = ctrl
	p.musicLevel = level
}

// stopMusicLocked detaches the current track. Nilling the Ctrl's
// streamer drains it, which makes the mixer drop it on the next pull.
func (p *Player) stopMusicLocked() {
	if p.music == nil {
		return
	}
	speaker.Lock()
	p.music.Streamer = nil
	speaker.Unlock()
	p.music = nil
}

// bufferStreamer replays a pre-rendered mono buffer once, applying a
// fixed gain into both channels.
type bufferStreamer struct {
	buf  floatBuffer
	gain float64
	pos  int
}

func (b *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if b.pos >= len(b.buf) {
		return 0, false
	}
	for i := range samples {
		if b.pos >= len(b.buf) {
			return i, true
		}
		v := b.buf[b.pos] * b.gain
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
	}
	return len(samples), true
}

func (b *bufferStreamer) Err() error {
	return nil
}
