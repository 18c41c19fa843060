package tui

import (
	"fmt"
	"log"
	"time"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/akyairhashvil/countdown/internal/util"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// MainModel is the root bubbletea model. It owns the timer and the start
// timestamp of the current countdown.
type MainModel struct {
	timer     models.Timer
	startedAt time.Time
	clock     util.Clock
	interval  time.Duration
	keys      *HandlerRegistry
	help      help.Model
	progress  progress.Model
	err       error // shown in the error region, never fatal
	width     int
	height    int
}

func NewMainModel(settings config.Settings, clock util.Clock) MainModel {
	if clock == nil {
		clock = util.SystemClock{}
	}
	interval := settings.PollInterval
	if interval <= 0 {
		interval = config.DefaultPollInterval
	}
	m := MainModel{
		timer:    models.NewTimer(),
		clock:    clock,
		interval: interval,
		keys:     DefaultRegistry(),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
	}
	m.progress.Width = config.ProgressWidth
	if settings.Theme != "" && !SetTheme(settings.Theme) {
		SetTheme(config.DefaultTheme)
		m.err = fmt.Errorf("unknown theme %q, using %s", settings.Theme, config.DefaultTheme)
		util.LogError("theme", m.err)
	}
	return m
}

// Timer returns a copy of the current timer state.
func (m MainModel) Timer() models.Timer {
	return m.timer
}

func (m MainModel) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(fmt.Sprintf("%s v%s", config.AppName, versionLabel())),
		tickCmd(m.interval),
	)
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		m, cmd = m.handleKey(msg)
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)
	case TickMsg:
		cmd = tickCmd(m.interval)
	}

	return m.refresh(), cmd
}

func (m MainModel) handleKey(msg tea.KeyMsg) (MainModel, tea.Cmd) {
	prev := m.timer.Mode
	ev := m.keys.Resolve(prev, msg)
	next, effect := m.timer.Apply(ev)
	m.timer = next

	switch effect {
	case models.EffectQuit:
		return m, tea.Quit
	case models.EffectStart:
		m.startedAt = m.clock.Now()
		log.Printf("countdown started: %ds", m.timer.TargetSeconds)
	}
	if prev == models.ModeRunning && next.Mode == models.ModeInput {
		log.Printf("countdown cancelled, target kept at %ds", m.timer.TargetSeconds)
	}
	return m, nil
}

func (m MainModel) handleWindowSize(msg tea.WindowSizeMsg) MainModel {
	m.width, m.height = msg.Width, msg.Height
	inner := m.width - 2*config.FrameMargin
	m.progress.Width = util.Clamp(inner, 0, config.ProgressWidth)
	return m
}

// refresh recomputes elapsed time from the clock while running.
func (m MainModel) refresh() MainModel {
	if m.timer.Mode != models.ModeRunning {
		return m
	}
	before := m.timer.Remaining()
	m.timer = m.timer.Advance(m.clock.Now().Sub(m.startedAt))
	if before > 0 && m.timer.Expired() {
		log.Printf("countdown expired after %ds", m.timer.TargetSeconds)
	}
	return m
}
