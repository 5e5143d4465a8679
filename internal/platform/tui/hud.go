package tui

import (
	"fmt"
	"strings"

	"hoverdash/internal/core"
	"hoverdash/internal/game"
)

// HUD palette.
const (
	hudColor      core.Color = "#eceff1"
	hudDimColor   core.Color = "#546e7a"
	heartColor    core.Color = "#ff1744"
	scoreColor    core.Color = "#ffd700"
	setupAccent   core.Color = "#40c4ff"
	readyAccent   core.Color = "#ffd700"
	pausedAccent  core.Color = "#b0bec5"
	clearAccent   core.Color = "#69f0ae"
	overAccent    core.Color = "#ff1744"
	victoryAccent core.Color = "#ffd700"
)

// drawHUD paints the status line and the current mode's overlay in
// front of the scene. Overlay text is the player's only manual.
func drawHUD(s *core.Screen, snap game.Snapshot, musicOn, sfxOn bool) {
	drawStatusLine(s, snap, musicOn, sfxOn)

	switch snap.Mode {
	case game.ModeCameraSetup:
		drawOverlay(s, "CAMERA SETUP", []string{
			"drag mouse to orbit",
			"wheel or +/- to zoom",
			"enter to start",
		}, setupAccent)
	case game.ModeReady:
		drawOverlay(s, fmt.Sprintf("LEVEL %d", snap.Level), []string{
			"space to launch",
		}, readyAccent)
	case game.ModePlaying:
		if snap.Crashing {
			s.DrawTextCentered(2, "CRASH", overAccent)
		}
	case game.ModePaused:
		drawOverlay(s, "PAUSED", []string{
			"p to resume",
			"c to adjust camera",
			"q to quit",
		}, pausedAccent)
	case game.ModePausedCameraSetup:
		drawOverlay(s, "CAMERA", []string{
			"drag mouse to orbit",
			"wheel or +/- to zoom",
			"enter to keep, esc to discard",
		}, setupAccent)
	case game.ModeLevelComplete:
		drawOverlay(s, fmt.Sprintf("LEVEL %d CLEAR", snap.Level), []string{
			fmt.Sprintf("score %d", snap.Score),
			fmt.Sprintf("enter for level %d", snap.Level+1),
		}, clearAccent)
	case game.ModeGameOver:
		drawOverlay(s, "GAME OVER", []string{
			fmt.Sprintf("score %d, reached level %d", snap.Score, snap.Level),
			"r to restart",
		}, overAccent)
	case game.ModeVictory:
		drawOverlay(s, "VICTORY", []string{
			fmt.Sprintf("all %d levels cleared", snap.FinalLevel),
			fmt.Sprintf("score %d", snap.Score),
			"r to restart",
		}, victoryAccent)
	}
}

// drawStatusLine renders the top row: score, ladder position, gate
// progress, lives and the bonus tally, with audio state on the right.
func drawStatusLine(s *core.Screen, snap game.Snapshot, musicOn, sfxOn bool) {
	x := 1
	x = drawLabel(s, x, fmt.Sprintf("SCORE %04d", snap.Score), scoreColor)
	x = drawLabel(s, x+2, fmt.Sprintf("LEVEL %d/%d", snap.Level, snap.FinalLevel), hudColor)
	x = drawLabel(s, x+2, fmt.Sprintf("GATES %d/%d", snap.PipesPassed, snap.PipeCount), hudColor)
	x = drawLabel(s, x+2, "LIVES ", hudColor)
	if snap.Lives > 0 {
		x = drawLabel(s, x, strings.Repeat("♥", snap.Lives), heartColor)
	} else {
		x = drawLabel(s, x, "-", hudDimColor)
	}
	drawLabel(s, x+2, fmt.Sprintf("BONUS %d/%d", snap.BonusTally, game.BonusWrap), hudColor)

	audio := fmt.Sprintf("music:%s sfx:%s", onOff(musicOn), onOff(sfxOn))
	s.DrawText(s.Width()-len(audio)-1, 0, audio, hudDimColor)
}

func drawLabel(s *core.Screen, x int, text string, c core.Color) int {
	s.DrawText(x, 0, text, c)
	return x + len([]rune(text))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// drawOverlay draws a centered message box: border, title row, blank
// row, then one row per line.
func drawOverlay(s *core.Screen, title string, lines []string, accent core.Color) {
	boxW := len([]rune(title))
	for _, ln := range lines {
		boxW = core.Max(boxW, len([]rune(ln)))
	}
	boxW += 6
	boxH := len(lines) + 4
	boxX := (s.Width() - boxW) / 2
	boxY := (s.Height() - boxH) / 2

	r := core.NewRect(boxX, boxY, boxW, boxH)
	s.FillRect(r, ' ', core.ColorDefault)
	s.DrawBox(r, accent)
	s.DrawTextCentered(boxY+1, title, accent)
	for i, ln := range lines {
		s.DrawTextCentered(boxY+3+i, ln, hudColor)
	}
}
