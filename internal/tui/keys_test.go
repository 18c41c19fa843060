package tui

import (
	"testing"

	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestDefaultRegistryResolve(t *testing.T) {
	r := DefaultRegistry()
	cases := []struct {
		name string
		mode models.Mode
		msg  tea.KeyMsg
		want models.Event
	}{
		{"quit", models.ModeInput, keyPress("q"), models.EventQuit},
		{"increase", models.ModeInput, keyPress("up"), models.EventIncrease},
		{"decrease", models.ModeInput, keyPress("down"), models.EventDecrease},
		{"confirm", models.ModeInput, keyPress("enter"), models.EventConfirm},
		{"esc in input", models.ModeInput, keyPress("esc"), models.EventOther},
		{"cancel", models.ModeRunning, keyPress("esc"), models.EventCancel},
		{"q while running", models.ModeRunning, keyPress("q"), models.EventOther},
		{"up while running", models.ModeRunning, keyPress("up"), models.EventOther},
		{"unbound", models.ModeInput, keyPress("z"), models.EventOther},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Resolve(tc.mode, tc.msg); got != tc.want {
				t.Fatalf("Resolve() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBindingsForMode(t *testing.T) {
	r := DefaultRegistry()
	if got := len(r.BindingsForMode(models.ModeInput)); got != 4 {
		t.Fatalf("input bindings = %d, want 4", got)
	}
	running := r.BindingsForMode(models.ModeRunning)
	if len(running) != 1 || running[0].Help().Key != "esc" {
		t.Fatalf("unexpected running bindings: %v", running)
	}
}

func TestRegistryPriorityAndDedup(t *testing.T) {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "low")),
		Event:   models.EventIncrease,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "high")),
		Event:    models.EventDecrease,
		Priority: 10,
	})
	if got := r.Resolve(models.ModeInput, keyPress("x")); got != models.EventDecrease {
		t.Fatalf("expected higher priority binding to win, got %v", got)
	}
	bindings := r.BindingsForMode(models.ModeRunning)
	if len(bindings) != 1 || bindings[0].Help().Desc != "high" {
		t.Fatalf("expected one deduplicated binding, got %v", bindings)
	}
}
