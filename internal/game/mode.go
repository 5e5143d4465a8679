package game

// Mode is the discrete game mode. It drives input handling, camera
// interpolation policy, audio and what the renderer overlays.
type Mode int

const (
	ModeCameraSetup Mode = iota
	ModeReady
	ModePlaying
	ModePaused
	ModePausedCameraSetup
	ModeGameOver
	ModeLevelComplete
	ModeVictory
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeCameraSetup:
		return "cameraSetup"
	case ModeReady:
		return "ready"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModePausedCameraSetup:
		return "pausedCameraSetup"
	case ModeGameOver:
		return "gameOver"
	case ModeLevelComplete:
		return "levelComplete"
	case ModeVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Setup reports whether the mode is one of the two camera setup modes,
// where drag/wheel input adjusts the camera and the rig snaps.
func (m Mode) Setup() bool {
	return m == ModeCameraSetup || m == ModePausedCameraSetup
}
