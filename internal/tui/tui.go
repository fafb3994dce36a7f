// Package tui implements the interactive dashboard.
package tui

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/spiffcs/repodash/internal/filter"
	"github.com/spiffcs/repodash/internal/log"
	"github.com/spiffcs/repodash/internal/model"
)

// RunDashboard starts the dashboard in the alternate screen and blocks
// until the user quits. Logging is discarded while the dashboard owns the
// terminal.
func RunDashboard(ds *model.Dataset, sel filter.Selection, opts ...Option) error {
	level := log.Verbosity()
	log.Initialize(level, io.Discard)
	defer log.Initialize(level, os.Stderr)

	m := NewDashboardModel(ds, sel, opts...)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// ShouldUseTUI returns true if the TUI should be used based on environment.
func ShouldUseTUI() bool {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}

	ciVars := []string{
		"CI",
		"GITHUB_ACTIONS",
		"JENKINS_URL",
		"TRAVIS",
		"CIRCLECI",
		"GITLAB_CI",
		"BUILDKITE",
	}

	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return false
		}
	}

	return true
}
