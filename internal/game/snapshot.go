package game

import "hoverdash/internal/core"

// Snapshot is the read-only render view of one tick. The platform
// draws exclusively from it and never reaches into live components.
// The segment slice aliases the lane pool and must not be mutated.
type Snapshot struct {
	Mode        Mode
	Score       int
	Level       int
	Lives       int
	BonusTally  int
	PipesPassed int
	PipeCount   int
	FinalLevel  int

	CraftPos     core.Vec3
	CraftVel     float64
	CraftVisible bool
	Crashing     bool

	Segments  []Segment
	GapHeight float64
	LaneColor core.Color

	CameraEye    core.Vec3
	CameraTarget core.Vec3
	Camera       CameraParams
}

// Snapshot captures the current tick for rendering.
func (g *Game) Snapshot() Snapshot {
	cfg := g.session.Config()
	return Snapshot{
		Mode:        g.session.Mode,
		Score:       g.session.Score,
		Level:       g.session.Level,
		Lives:       g.session.Lives,
		BonusTally:  g.session.BonusTally,
		PipesPassed: g.session.PipesPassed,
		PipeCount:   cfg.PipeCount,
		FinalLevel:  g.session.FinalLevel(),

		CraftPos:     g.craft.Pos,
		CraftVel:     g.craft.VelY,
		CraftVisible: g.craft.Alive,
		Crashing:     g.session.Crashing(),

		Segments:  g.lane.Segments(),
		GapHeight: cfg.GapHeight,
		LaneColor: core.Color(cfg.Color),

		CameraEye:    g.camera.Eye(),
		CameraTarget: g.camera.Target(),
		Camera:       g.camera.Active(),
	}
}
