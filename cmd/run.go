package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	config "github.com/tupyy/outcome/configuration"
	"github.com/tupyy/outcome/internal/runner"
	"go.uber.org/zap"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] -- command [args...]",
	Short: "Run a command and print [stdout, null] or [null, error]",
	Args:  cobra.MinimumNArgs(1),
	// a failed outcome is not a usage error
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := setupLogger()
		defer logger.Sync()

		undo := zap.ReplaceGlobals(logger)
		defer undo()

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		outcome := runner.Run(ctx, runner.Command{
			Name: args[0],
			Args: args[1:],
			Dir:  config.GetWorkingDirectory(),
		})

		out, err := runner.Render(outcome, config.GetOutputFormat())
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))

		if outcome.IsErr() {
			return errFailedOutcome
		}

		return nil
	},
}

func init() {
	runCmd.Flags().String("output", runner.JSONFormat, "output format: json or yaml")
	runCmd.Flags().String("dir", "", "working directory of the command")
}
