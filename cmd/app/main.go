package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/tui"
	"github.com/akyairhashvil/countdown/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

var ErrNotTerminal = errors.New("countdown needs an interactive terminal")

var isTerminal = func(fd int) bool { return term.IsTerminal(fd) }

func main() {
	settings, err := config.Load(os.Getenv("COUNTDOWN_CONFIG"))
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}

	// The program restores the terminal before Run returns, so the error is
	// printed on the primary screen.
	if err := run(settings); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(exitCode(err, settings.StrictExit))
	}
}

func run(settings config.Settings) error {
	if !isTerminal(int(os.Stdin.Fd())) || !isTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}

	closeLog, err := setupLogging(settings.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	model := tui.NewMainModel(settings, util.SystemClock{})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// setupLogging sends the standard logger to path, or discards it when path
// is empty. The returned func closes the file.
func setupLogging(path string) (func(), error) {
	if path == "" {
		util.DiscardLogs()
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, config.AppName)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { util.LogError("close log file", f.Close()) }, nil
}

// exitCode keeps the historical exit status of 0 on failure unless strict
// mode asks for a non-zero one.
func exitCode(err error, strict bool) int {
	if err != nil && strict {
		return 1
	}
	return 0
}
