package tui

import (
	"math"

	"hoverdash/internal/core"
	"hoverdash/internal/game"
)

// Visual characters for rendering
const (
	gateEdgeChar  = '█'
	gateFillChar  = '▒'
	coinChar      = '●'
	craftChar     = '●'
	craftBodyChar = '█'
	craftNoseChar = '▶'
	craftTailChar = '◀'
	gridChar      = '·'
)

// Scene palette. Gates take the per-level color from the snapshot;
// everything else is fixed.
const (
	coinColor  core.Color = "#ffd700"
	craftColor core.Color = "#40c4ff"
	gridColor  core.Color = "#37474f"
	railColor  core.Color = "#546e7a"
)

// Ground grid tuning.
const (
	gridStep      = 5.0
	gridXStep     = 2.5
	gridHalfWidth = 10.0
	gridZBack     = 2  // Grid lines kept behind the craft
	gridZAhead    = 13 // Grid lines laid out down the lane
	railZStep     = 1.0
)

// Face sampling bounds. fillQuad sizes its grid from the projected
// corner spread, clamped so a face hugging the camera stays cheap.
const (
	quadMinSamples = 1
	quadMaxSamples = 96
)

// drawScene rasterizes one snapshot into the screen buffer: ground
// grid, gate bodies, collectibles, then the craft. Order is irrelevant
// beyond taste; every plot carries its own depth.
func drawScene(s *core.Screen, proj Projector, snap game.Snapshot) {
	drawGround(s, proj, snap.Segments)

	for i := range snap.Segments {
		seg := &snap.Segments[i]
		drawBox(s, proj, seg.LowerGate(snap.GapHeight), snap.LaneColor)
		drawBox(s, proj, seg.UpperGate(snap.GapHeight), snap.LaneColor)
		if seg.CoinVisible {
			drawCoin(s, proj, seg.Coin())
		}
	}

	if snap.CraftVisible {
		drawCraft(s, proj, snap.CraftPos)
	}
}

// drawGround lays a dot grid on the floor of the playable band. The
// line phase keys off the first segment so the floor scrolls with the
// world instead of sitting frozen under it.
func drawGround(s *core.Screen, proj Projector, segments []game.Segment) {
	phase := 0.0
	if len(segments) > 0 {
		phase = math.Mod(segments[0].Z, gridStep)
	}

	for k := -gridZAhead; k <= gridZBack; k++ {
		z := phase + float64(k)*gridStep
		for x := -gridHalfWidth; x <= gridHalfWidth; x += gridXStep {
			plotPoint(s, proj, core.Vec3{X: x, Y: game.FloorY, Z: z}, gridChar, gridColor)
		}
	}

	// Lane rails mark the gate footprint.
	zFrom := phase + float64(-gridZAhead)*gridStep
	zTo := phase + float64(gridZBack)*gridStep
	for z := zFrom; z <= zTo; z += railZStep {
		plotPoint(s, proj, core.Vec3{X: -game.LaneHalfWidth, Y: game.FloorY, Z: z}, gridChar, railColor)
		plotPoint(s, proj, core.Vec3{X: game.LaneHalfWidth, Y: game.FloorY, Z: z}, gridChar, railColor)
	}
}

func plotPoint(s *core.Screen, proj Projector, pt core.Vec3, r rune, c core.Color) {
	if x, y, depth, ok := proj.Project(pt); ok {
		s.Plot(x, y, r, c, depth)
	}
}

// drawBox rasterizes the camera-facing faces of an axis-aligned box,
// at most one per axis. Faces whose slab contains the eye are skipped;
// they are edge-on and contribute nothing.
func drawBox(s *core.Screen, proj Projector, b core.Box, c core.Color) {
	size := b.Max.Sub(b.Min)

	if proj.eye.Z > b.Max.Z {
		fillQuad(s, proj, core.Vec3{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z}, core.Vec3{X: size.X}, core.Vec3{Y: size.Y}, c)
	} else if proj.eye.Z < b.Min.Z {
		fillQuad(s, proj, b.Min, core.Vec3{X: size.X}, core.Vec3{Y: size.Y}, c)
	}

	if proj.eye.X > b.Max.X {
		fillQuad(s, proj, core.Vec3{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z}, core.Vec3{Y: size.Y}, core.Vec3{Z: size.Z}, c)
	} else if proj.eye.X < b.Min.X {
		fillQuad(s, proj, b.Min, core.Vec3{Y: size.Y}, core.Vec3{Z: size.Z}, c)
	}

	if proj.eye.Y > b.Max.Y {
		fillQuad(s, proj, core.Vec3{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z}, core.Vec3{X: size.X}, core.Vec3{Z: size.Z}, c)
	} else if proj.eye.Y < b.Min.Y {
		fillQuad(s, proj, b.Min, core.Vec3{X: size.X}, core.Vec3{Z: size.Z}, c)
	}
}

// fillQuad samples the parallelogram origin + u*du + v*dv over the
// unit square. The sample grid is sized from the projected corner
// spread so adjacent samples land on neighboring cells without holes.
// Border samples use the edge rune, the rest the fill rune.
func fillQuad(s *core.Screen, proj Projector, origin, du, dv core.Vec3, c core.Color) {
	p00, ok00 := projectCell(proj, origin)
	p10, ok10 := projectCell(proj, origin.Add(du))
	p01, ok01 := projectCell(proj, origin.Add(dv))
	p11, ok11 := projectCell(proj, origin.Add(du).Add(dv))
	if !ok00 && !ok10 && !ok01 && !ok11 {
		return
	}

	nu := sampleCount(p00, p10, ok00 && ok10, p01, p11, ok01 && ok11)
	nv := sampleCount(p00, p01, ok00 && ok01, p10, p11, ok10 && ok11)

	for i := 0; i <= nu; i++ {
		fu := float64(i) / float64(nu)
		for j := 0; j <= nv; j++ {
			fv := float64(j) / float64(nv)
			pt := origin.Add(du.Scale(fu)).Add(dv.Scale(fv))
			x, y, depth, ok := proj.Project(pt)
			if !ok {
				continue
			}
			r := gateFillChar
			if i == 0 || i == nu || j == 0 || j == nv {
				r = gateEdgeChar
			}
			s.Plot(x, y, r, c, depth)
		}
	}
}

type cellPt struct {
	x, y int
}

func projectCell(proj Projector, pt core.Vec3) (cellPt, bool) {
	x, y, _, ok := proj.Project(pt)
	return cellPt{x, y}, ok
}

// sampleCount picks a grid size from the longer of two projected
// edges. Edges with a culled endpoint fall back to the cap; the face
// straddles the near plane and needs dense sampling anyway.
func sampleCount(a1, b1 cellPt, ok1 bool, a2, b2 cellPt, ok2 bool) int {
	n := quadMinSamples
	if ok1 {
		n = core.Max(n, cellDist(a1, b1))
	}
	if ok2 {
		n = core.Max(n, cellDist(a2, b2))
	}
	if !ok1 || !ok2 {
		n = quadMaxSamples
	}
	return core.Clamp(n, quadMinSamples, quadMaxSamples)
}

func cellDist(a, b cellPt) int {
	return core.Max(abs(a.x-b.x), abs(a.y-b.y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// drawCoin plots a collectible. Bonus and trap coins share one glyph
// and color; the classification only shows at collection.
func drawCoin(s *core.Screen, proj Projector, sp core.Sphere) {
	x, y, depth, ok := proj.Project(sp.Center)
	if !ok {
		return
	}
	s.Plot(x, y, coinChar, coinColor, depth)
	if sp.Radius/depth*proj.focal*cellAspect >= 1 {
		s.Plot(x-1, y, coinChar, coinColor, depth)
		s.Plot(x+1, y, coinChar, coinColor, depth)
	}
}

// drawCraft plots the player craft, growing from a single dot far away
// to a winged three-cell body up close.
func drawCraft(s *core.Screen, proj Projector, pos core.Vec3) {
	x, y, depth, ok := proj.Project(pos)
	if !ok {
		return
	}
	if game.CraftRadius/depth*proj.focal*cellAspect < 1.2 {
		s.Plot(x, y, craftChar, craftColor, depth)
		return
	}
	s.Plot(x-1, y, craftTailChar, craftColor, depth)
	s.Plot(x, y, craftBodyChar, craftColor, depth)
	s.Plot(x+1, y, craftNoseChar, craftColor, depth)
}
