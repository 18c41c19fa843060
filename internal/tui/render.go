package tui

import (
	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

func (m MainModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	width := m.width - 2*config.FrameMargin
	if width < config.MinDisplayWidth {
		width = config.MinDisplayWidth
	}
	height := m.height - 2*config.FrameMargin - config.InstructionHeight

	parts := []string{m.renderInstructions(width)}
	var tail []string
	if m.timer.Mode == models.ModeRunning && m.progress.Width > 0 {
		tail = append(tail, m.progress.ViewAs(m.timer.Progress()))
		height--
	}
	if m.err != nil {
		tail = append(tail, renderError(m.err.Error(), width))
		height -= config.ErrorHeight
	}
	parts = append(parts, renderDisplay(m.timer, width, height))
	parts = append(parts, tail...)

	return CurrentTheme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// renderInstructions lists the key hints valid in the current mode.
func (m MainModel) renderInstructions(width int) string {
	line := m.help.ShortHelpView(m.keys.BindingsForMode(m.timer.Mode))
	return CurrentTheme.Instructions.Render(truncateLabel(line, width))
}

// displayStyle picks the style of the remaining-time text. Running
// countdowns blink, green while time is left and red once it hits zero.
func displayStyle(t models.Timer) lipgloss.Style {
	if t.Mode != models.ModeRunning {
		return CurrentTheme.Idle
	}
	style := CurrentTheme.Running
	if t.Remaining() == 0 {
		style = CurrentTheme.Expired
	}
	return style.Blink(true)
}

// renderDisplay draws the remaining time centred in a bordered box of the
// given outer size.
func renderDisplay(t models.Timer, width, height int) string {
	if height < config.MinDisplayHeight {
		height = config.MinDisplayHeight
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(CurrentTheme.Border).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center)
	return box.Render(displayStyle(t).Render(formatRemaining(t.Remaining())))
}

// renderError draws msg in red under an "Error Message" title.
func renderError(msg string, width int) string {
	title := CurrentTheme.ErrorTitle.Render("Error Message")
	body := CurrentTheme.Error.Render(truncateLabel(msg, width))
	return lipgloss.JoinVertical(lipgloss.Left, "", title, body)
}
