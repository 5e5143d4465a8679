package game

import (
	"math"
	"testing"

	"hoverdash/internal/config"
)

func testLevel() config.LevelConfig {
	return config.LevelConfig{
		GameSpeed:   4.0,
		GapHeight:   3.0,
		PipeSpacing: 14.0,
		PipeCount:   10,
		TrapChance:  0.5,
		Color:       "#43a047",
	}
}

func TestLaneLayout(t *testing.T) {
	cfg := testLevel()
	lane := NewLane(cfg, 42)
	segs := lane.Segments()

	if len(segs) != cfg.PipeCount {
		t.Fatalf("segment count = %d, expected %d", len(segs), cfg.PipeCount)
	}

	// First segment sits a speed-scaled lead-in away, the rest at
	// pipe_spacing intervals behind it.
	leadIn := cfg.GameSpeed * 4
	for i, s := range segs {
		wantZ := -(leadIn + float64(i)*cfg.PipeSpacing)
		if math.Abs(s.Z-wantZ) > 1e-9 {
			t.Errorf("segment %d Z = %v, expected %v", i, s.Z, wantZ)
		}
		if s.Passed {
			t.Errorf("segment %d should start unpassed", i)
		}
		if !s.CoinVisible {
			t.Errorf("segment %d coin should start visible", i)
		}
	}
}

func TestLaneGapBand(t *testing.T) {
	cfg := testLevel()
	lo := -2 + cfg.GapHeight/2
	hi := 6 - cfg.GapHeight/2

	// Across many seeds every gap center stays inside the band.
	for seed := int64(0); seed < 50; seed++ {
		lane := NewLane(cfg, seed)
		for i, s := range lane.Segments() {
			if s.GapY < lo || s.GapY > hi {
				t.Fatalf("seed %d segment %d gap %v outside [%v, %v]", seed, i, s.GapY, lo, hi)
			}
		}
	}
}

func TestLaneSeedDeterminism(t *testing.T) {
	cfg := testLevel()
	a := NewLane(cfg, 1234)
	b := NewLane(cfg, 1234)

	for i := range a.Segments() {
		if a.Segments()[i] != b.Segments()[i] {
			t.Fatalf("same seed produced different layouts at segment %d", i)
		}
	}

	// A different seed should produce a different layout. With ten
	// segments and a continuous gap distribution a full collision is
	// effectively impossible.
	c := NewLane(cfg, 1235)
	same := true
	for i := range a.Segments() {
		if a.Segments()[i] != c.Segments()[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical layouts")
	}
}

func TestLaneHazardChance(t *testing.T) {
	cfg := testLevel()

	// trap_chance 0 and 1 are exact.
	cfg.TrapChance = 0
	for _, s := range NewLane(cfg, 7).Segments() {
		if s.Hazard {
			t.Fatal("trap_chance 0 should produce no hazards")
		}
	}
	cfg.TrapChance = 1
	for _, s := range NewLane(cfg, 7).Segments() {
		if !s.Hazard {
			t.Fatal("trap_chance 1 should produce only hazards")
		}
	}
}

func TestLaneAdvancePassEventsIdempotent(t *testing.T) {
	cfg := testLevel()
	cfg.PipeCount = 3
	lane := NewLane(cfg, 99)

	// Advance far enough for the first segment to cross the craft
	// plane: lead-in is 16 units, speed 4, so 4+ seconds.
	var passes int
	for i := 0; i < 60*5; i++ {
		for _, ev := range lane.Advance(testDT) {
			if ev.Kind == EventPass {
				passes++
			}
		}
	}
	if passes != 1 {
		t.Fatalf("expected exactly 1 pass after 5 seconds, got %d", passes)
	}
	if !lane.Segments()[0].Passed {
		t.Error("first segment should be flagged passed")
	}

	// Further advancing never re-fires the same segment.
	for i := 0; i < 60; i++ {
		for _, ev := range lane.Advance(testDT) {
			if ev.Kind == EventPass && ev.Segment == 0 {
				t.Fatal("pass event fired twice for the same segment")
			}
		}
	}
}

func TestLaneAdvanceEventuallyPassesAll(t *testing.T) {
	cfg := testLevel()
	cfg.PipeCount = 4
	lane := NewLane(cfg, 5)

	var passes int
	for i := 0; i < 60*30 && passes < cfg.PipeCount; i++ {
		for _, ev := range lane.Advance(testDT) {
			if ev.Kind == EventPass {
				passes++
			}
		}
	}
	if passes != cfg.PipeCount {
		t.Fatalf("expected %d passes, got %d", cfg.PipeCount, passes)
	}
}

func TestLaneResetInPlace(t *testing.T) {
	cfg := testLevel()
	lane := NewLane(cfg, 11)

	// Dirty the pool: scroll, pass, hide a coin.
	for i := 0; i < 60*6; i++ {
		lane.Advance(testDT)
	}
	lane.HideCollectible(0)

	before := lane.Segments()
	lane.Reset(cfg, 12)
	after := lane.Segments()

	// Same backing array: the pool is reused, not reallocated.
	if &before[0] != &after[0] {
		t.Error("reset with the same gate count should reuse the segment pool")
	}
	for i, s := range after {
		if s.Passed {
			t.Errorf("segment %d passed flag should be cleared", i)
		}
		if !s.CoinVisible {
			t.Errorf("segment %d coin should be visible again", i)
		}
		if s.Z > -cfg.GameSpeed*4+1e-9 {
			t.Errorf("segment %d should be back behind the lead-in, Z=%v", i, s.Z)
		}
	}

	// A different gate count resizes.
	cfg.PipeCount = 12
	lane.Reset(cfg, 13)
	if len(lane.Segments()) != 12 {
		t.Errorf("pool size = %d, expected 12", len(lane.Segments()))
	}
}

func TestLaneHideCollectible(t *testing.T) {
	lane := NewLane(testLevel(), 3)

	lane.HideCollectible(2)
	if lane.Segments()[2].CoinVisible {
		t.Error("coin 2 should be hidden")
	}

	// Out-of-range indexes are ignored.
	lane.HideCollectible(-1)
	lane.HideCollectible(999)
}

func TestSegmentGeometry(t *testing.T) {
	s := Segment{Z: -10, GapY: 2}
	gap := 3.0

	lower := s.LowerGate(gap)
	upper := s.UpperGate(gap)

	if lower.Max.Y != s.GapY-gap/2 {
		t.Errorf("lower gate top = %v, expected %v", lower.Max.Y, s.GapY-gap/2)
	}
	if upper.Min.Y != s.GapY+gap/2 {
		t.Errorf("upper gate bottom = %v, expected %v", upper.Min.Y, s.GapY+gap/2)
	}
	if lower.Min.Y != FloorY || upper.Max.Y != CeilingY {
		t.Error("gates should span the playable band")
	}
	if lower.Min.Z != s.Z-GateThickness/2 || lower.Max.Z != s.Z+GateThickness/2 {
		t.Errorf("gate depth = [%v, %v], expected centered on Z=%v", lower.Min.Z, lower.Max.Z, s.Z)
	}

	coin := s.Coin()
	if coin.Center.Y != s.GapY || coin.Center.Z != s.Z {
		t.Errorf("coin center = %v, expected gap center", coin.Center)
	}
	if coin.Radius != CoinRadius {
		t.Errorf("coin radius = %v, expected %v", coin.Radius, CoinRadius)
	}
}
