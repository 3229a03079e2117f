// Package cli provides the command-line interface for devflow.
package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mikevive/farhost/internal/app"
	"github.com/mikevive/farhost/internal/tui"
)

// launchTUIFunc is a function variable for launching the TUI, allowing
// it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for devflow.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "devflow",
		Short: "Personal time tracking in the terminal",
		Long: `devflow is a terminal time tracker. Start a timer against a task and
category, and review your tracked time in daily and weekly reports.

Running devflow without arguments opens the interactive interface.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.AddCommand(newStatusCommand(c))
	return root
}

func launchTUI(c *app.Container) error {
	if err := recoverSession(c); err != nil {
		return err
	}
	p := tea.NewProgram(tui.New(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// recoverSession flushes entries for any session left behind by a crash
// before the interface takes over.
func recoverSession(c *app.Container) error {
	_, err := c.Timer.RecoverCrashedSession()
	return err
}
