package tui

import (
	"math"
	"testing"

	"hoverdash/internal/core"
)

func TestProjectorCentersTarget(t *testing.T) {
	proj := NewProjector(core.Vec3{Z: 7}, core.Vec3{}, 80, 24)

	x, y, depth, ok := proj.Project(core.Vec3{})
	if !ok {
		t.Fatal("target should be visible")
	}
	if x != 40 || y != 12 {
		t.Errorf("target should land on screen center (40,12), got (%d,%d)", x, y)
	}
	if math.Abs(depth-7) > 1e-9 {
		t.Errorf("expected depth 7, got %v", depth)
	}
}

func TestProjectorCellAspect(t *testing.T) {
	// focal = 24 * 0.75 = 18. A unit offset at depth 7 projects to
	// 18/7 ≈ 2.57 rows but twice that in columns.
	proj := NewProjector(core.Vec3{Z: 7}, core.Vec3{}, 80, 24)

	x, _, _, ok := proj.Project(core.Vec3{X: 1})
	if !ok {
		t.Fatal("offset point should be visible")
	}
	if x != 45 {
		t.Errorf("unit X offset: expected column 45, got %d", x)
	}

	_, y, _, ok := proj.Project(core.Vec3{Y: 1})
	if !ok {
		t.Fatal("offset point should be visible")
	}
	if y != 9 {
		t.Errorf("unit Y offset: expected row 9, got %d", y)
	}
}

func TestProjectorCullsBehindCamera(t *testing.T) {
	proj := NewProjector(core.Vec3{Z: 7}, core.Vec3{}, 80, 24)

	if _, _, _, ok := proj.Project(core.Vec3{Z: 8}); ok {
		t.Error("point behind the eye should be culled")
	}
	if _, _, _, ok := proj.Project(core.Vec3{Z: 7}); ok {
		t.Error("point on the eye should be culled")
	}
	// Just inside the near plane still renders.
	if _, _, _, ok := proj.Project(core.Vec3{Z: 6.8}); !ok {
		t.Error("point past the near plane should be visible")
	}
}

func TestProjectorDepthOrdering(t *testing.T) {
	proj := NewProjector(core.Vec3{Z: 7}, core.Vec3{}, 80, 24)

	_, _, near, _ := proj.Project(core.Vec3{Z: 3})
	_, _, far, _ := proj.Project(core.Vec3{Z: -3})
	if near >= far {
		t.Errorf("nearer point must have smaller depth: near %v, far %v", near, far)
	}
}

func TestProjectorLookingStraightDown(t *testing.T) {
	// The vertical basis degenerates when forward is parallel to the
	// world up; the fallback keeps the projection usable.
	proj := NewProjector(core.Vec3{Y: 7}, core.Vec3{}, 80, 24)

	x, y, _, ok := proj.Project(core.Vec3{})
	if !ok {
		t.Fatal("target should be visible from straight above")
	}
	if x != 40 || y != 12 {
		t.Errorf("target should land on screen center, got (%d,%d)", x, y)
	}

	x, _, _, ok = proj.Project(core.Vec3{X: 1})
	if !ok {
		t.Fatal("offset point should be visible")
	}
	if x <= 40 {
		t.Errorf("positive X should project right of center, got column %d", x)
	}
}

func TestProjectorOffAxisCamera(t *testing.T) {
	// An orbit pose like the game's default: up stays roughly world-up,
	// so higher world points land on lower row numbers.
	eye := core.Vec3{X: 3.1, Y: 2.5, Z: 5.7}
	proj := NewProjector(eye, core.Vec3{}, 120, 40)

	_, yLow, _, ok1 := proj.Project(core.Vec3{Y: -1})
	_, yHigh, _, ok2 := proj.Project(core.Vec3{Y: 1})
	if !ok1 || !ok2 {
		t.Fatal("both probe points should be visible")
	}
	if yHigh >= yLow {
		t.Errorf("higher world point should be higher on screen: y=+1 row %d, y=-1 row %d", yHigh, yLow)
	}
}
