package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"hoverdash/internal/audio"
	"hoverdash/internal/core"
	"hoverdash/internal/game"
	"hoverdash/internal/storage"
)

// Model is the Bubble Tea model driving the game: it owns the tick
// loop, folds raw input into per-tick frames, steps the simulation and
// rasterizes snapshots. store and player may be nil; the game then
// runs without persistence or sound.
type Model struct {
	game      *game.Game
	screen    *core.Screen
	store     *storage.Store
	player    *audio.Player
	particles *ParticleField
	keymap    *KeyMapper
	config    core.RuntimeConfig
	frame     core.InputFrame
	state     core.GameState
	settings  core.Settings
	dt        float64
	quitting  bool
	runSaved  bool // Whether the finished run has been written to the store
}

// NewModel wires the game to its collaborators and resets it into
// camera setup. A zero seed is replaced from the clock.
func NewModel(g *game.Game, store *storage.Store, player *audio.Player, cfg core.RuntimeConfig, set core.Settings) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	particles := NewParticleField(cfg.Seed)
	g.SetEffects(particles)
	if player != nil {
		g.SetAudio(player)
		player.SetSFX(set.SFXEnabled)
	}
	g.SetMusic(set.MusicEnabled)
	g.SetCamera(game.CameraParams{Azimuth: set.CamAzimuth, Polar: set.CamPolar, Zoom: set.Zoom})
	g.Reset(cfg)

	return Model{
		game:      g,
		screen:    core.NewScreen(80, 24), // Placeholder until the first resize
		store:     store,
		player:    player,
		particles: particles,
		keymap:    NewKeyMapper(),
		config:    cfg,
		frame:     core.NewInputFrame(),
		settings:  set,
		dt:        1.0 / float64(cfg.TickRate),
	}
}

// Init starts the tick loop. The game itself is reset in NewModel so
// the first View already has a scene.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey folds a key press into the current input frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keymap.MapKeyToFrame(msg, &m.frame) {
		m.persistSettings()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse folds a mouse event into the current input frame. What
// the left button means depends on whether a camera setup mode is
// active, so the game's mode is consulted here.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.keymap.MapMouseToFrame(msg, &m.frame, m.game.Mode().Setup())
	return m, nil
}

// handleResize adapts the screen buffer. The simulation runs in world
// units and never notices the terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation tick: platform toggles, the game
// step, run persistence and particle aging.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.frame.Has(core.ActionMusic) {
		m.settings.MusicEnabled = !m.settings.MusicEnabled
		m.game.SetMusic(m.settings.MusicEnabled)
		m.persistSettings()
	}
	if m.frame.Has(core.ActionSFX) {
		m.settings.SFXEnabled = !m.settings.SFXEnabled
		if m.player != nil {
			m.player.SetSFX(m.settings.SFXEnabled)
		}
		m.persistSettings()
	}

	wasOver := m.state.GameOver
	modeBefore := m.game.Mode()

	result := m.game.Step(m.frame)
	m.state = result.State

	if m.state.GameOver {
		if !m.runSaved {
			m.saveRun()
			m.runSaved = true
		}
	} else {
		m.runSaved = false
	}
	if wasOver && !m.state.GameOver {
		m.particles.Clear() // Fresh start, drop leftover crash sparks
	}

	// Camera edits persist when a setup mode is confirmed or closed.
	if modeBefore.Setup() && !m.game.Mode().Setup() {
		m.persistSettings()
	}

	m.particles.Update(m.dt)
	m.frame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun records a finished run. Zero-score runs are not worth a row.
func (m *Model) saveRun() {
	if m.store == nil || m.state.Score <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(m.state.Score, m.state.Level, m.state.Victory)
}

// persistSettings writes the current preferences through the store.
// Without a store the settings simply last for the session.
func (m *Model) persistSettings() {
	if m.store == nil {
		return
	}
	cam := m.game.Camera()
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveSettings(core.Settings{
		MusicEnabled: m.settings.MusicEnabled,
		SFXEnabled:   m.settings.SFXEnabled,
		Zoom:         cam.Zoom,
		CamAzimuth:   cam.Azimuth,
		CamPolar:     cam.Polar,
	})
}

// renderFrame rasterizes the current tick into the screen buffer.
func (m Model) renderFrame() {
	snap := m.game.Snapshot()
	proj := NewProjector(snap.CameraEye, snap.CameraTarget, m.screen.Width(), m.screen.Height())
	m.screen.Clear()
	drawScene(m.screen, proj, snap)
	m.particles.Draw(m.screen, proj)
	drawHUD(m.screen, snap, m.game.MusicOn(), m.sfxOn())
}

// sfxOn reports the cue toggle for the HUD. Without a player the
// indicator tracks the persisted preference.
func (m Model) sfxOn() bool {
	if m.player == nil {
		return m.settings.SFXEnabled
	}
	return m.player.SFXOn()
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.renderFrame()

	dir := filepath.Join(os.Getenv("HOME"), ".hoverdash", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("hoverdash_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.renderFrame()
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given collaborators.
func Run(g *game.Game, store *storage.Store, player *audio.Player, cfg core.RuntimeConfig, set core.Settings) error {
	model := NewModel(g, store, player, cfg, set)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse for camera orbit and flaps
	)

	_, err := p.Run()
	return err
}
