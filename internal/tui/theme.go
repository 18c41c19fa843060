package tui

import (
	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name         string
	Base         lipgloss.Style
	Border       lipgloss.Color
	Instructions lipgloss.Style
	Idle         lipgloss.Style
	Running      lipgloss.Style
	Expired      lipgloss.Style
	ErrorTitle   lipgloss.Style
	Error        lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:         "Default",
		Base:         lipgloss.NewStyle().Margin(config.FrameMargin),
		Border:       lipgloss.Color("63"),
		Instructions: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Idle:         lipgloss.NewStyle(),
		Running:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Expired:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		ErrorTitle:   lipgloss.NewStyle().Bold(true),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	},
	"dracula": {
		Name:         "Dracula",
		Base:         lipgloss.NewStyle().Margin(config.FrameMargin),
		Border:       lipgloss.Color("62"),                                  // Purple
		Instructions: lipgloss.NewStyle().Foreground(lipgloss.Color("255")), // White
		Idle:         lipgloss.NewStyle(),
		Running:      lipgloss.NewStyle().Foreground(lipgloss.Color("120")), // Green
		Expired:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // Red
		ErrorTitle:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

// SetTheme switches the active theme and reports whether name was known.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if ok {
		CurrentTheme = t
	}
	return ok
}
