package audio

import (
	"testing"

	"hoverdash/internal/game"
)

// A player whose Init never ran (or failed) must stay silent and safe.
func TestPlayerSilentWithoutInit(t *testing.T) {
	p := NewPlayer()
	p.PlayCue(game.CueScore)
	p.SetSoundtrack(game.ModePlaying, 1, true)
	p.Close()

	if !p.SFXOn() {
		t.Error("sfx should default on")
	}
	p.SetSFX(false)
	if p.SFXOn() {
		t.Error("SetSFX(false) should stick")
	}
	p.PlayCue(game.CueCoin)
}

func TestBufferStreamerDrains(t *testing.T) {
	buf := make(floatBuffer, 10)
	for i := range buf {
		buf[i] = 1.0
	}
	s := &bufferStreamer{buf: buf, gain: 0.5}

	out := make([][2]float64, 4)
	n, ok := s.Stream(out)
	if n != 4 || !ok {
		t.Fatalf("first pull = %d %v", n, ok)
	}
	if out[0][0] != 0.5 || out[0][1] != 0.5 {
		t.Errorf("gain not applied: %v", out[0])
	}

	s.Stream(out)
	n, ok = s.Stream(out)
	if n != 2 || !ok {
		t.Fatalf("tail pull = %d %v, expected the last 2 samples", n, ok)
	}
	n, ok = s.Stream(out)
	if n != 0 || ok {
		t.Fatalf("drained streamer = %d %v, expected 0 false", n, ok)
	}
	if err := s.Err(); err != nil {
		t.Errorf("Err = %v", err)
	}
}
