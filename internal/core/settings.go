package core

// Settings are the user preferences that survive restarts: audio toggles,
// zoom, and the committed camera orbit. The storage package persists them;
// when persistence is unavailable the defaults serve for the session.
type Settings struct {
	MusicEnabled bool
	SFXEnabled   bool
	Zoom         float64 // camera distance factor, [0.5, 3.0]
	CamAzimuth   float64 // radians around the vertical axis
	CamPolar     float64 // radians from the vertical axis, (0.1, pi-0.1)
}

// DefaultSettings returns the out-of-the-box preferences.
func DefaultSettings() Settings {
	return Settings{
		MusicEnabled: true,
		SFXEnabled:   true,
		Zoom:         1.0,
		CamAzimuth:   0.5,
		CamPolar:     1.2,
	}
}
