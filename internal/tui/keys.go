package tui

import (
	"sort"

	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding ties a key to the timer event it produces in the given modes.
type KeyBinding struct {
	Binding  key.Binding
	Event    models.Event
	Modes    []models.Mode
	Priority int
}

func (b KeyBinding) AppliesToMode(mode models.Mode) bool {
	if len(b.Modes) == 0 {
		return true
	}
	for _, m := range b.Modes {
		if m == mode {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

// DefaultRegistry holds the stock bindings: q/↑/↓/enter while setting the
// target, esc while counting down.
func DefaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	input := []models.Mode{models.ModeInput}
	running := []models.Mode{models.ModeRunning}
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Event:   models.EventQuit,
		Modes:   input,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "inc time")),
		Event:   models.EventIncrease,
		Modes:   input,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "dec time")),
		Event:   models.EventDecrease,
		Modes:   input,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		Event:   models.EventConfirm,
		Modes:   input,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "change time")),
		Event:   models.EventCancel,
		Modes:   running,
	})
	return r
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

// Resolve maps a key press to an event. Unbound keys resolve to EventOther.
func (r *HandlerRegistry) Resolve(mode models.Mode, msg tea.KeyMsg) models.Event {
	for _, b := range r.bindings {
		if b.AppliesToMode(mode) && key.Matches(msg, b.Binding) {
			return b.Event
		}
	}
	return models.EventOther
}

// BindingsForMode returns the bindings to advertise in mode, one per help key.
func (r *HandlerRegistry) BindingsForMode(mode models.Mode) []key.Binding {
	seen := make(map[string]bool)
	var out []key.Binding
	for _, b := range r.bindings {
		if !b.AppliesToMode(mode) {
			continue
		}
		h := b.Binding.Help()
		if h.Desc == "" || seen[h.Key] {
			continue
		}
		seen[h.Key] = true
		out = append(out, b.Binding)
	}
	return out
}
