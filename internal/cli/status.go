package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mikevive/farhost/internal/app"
)

// newStatusCommand creates the status command. It prints a single line
// suitable for shell prompts and status bars.
func newStatusCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the current timer state and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := recoverSession(c); err != nil {
				return err
			}
			out, err := c.TimerStatusUseCase().Execute()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out.Line)
			return err
		},
	}
}
