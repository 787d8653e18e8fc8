package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	config "github.com/tupyy/outcome/configuration"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// errFailedOutcome is returned when the operation ran and failed. The tuple
// already reports it, so only the exit code is set.
var errFailedOutcome = errors.New("operation failed")

var configFile string

var rootCmd = &cobra.Command{
	Use:   "outcome",
	Short: "Run an operation and print its outcome as a [value, error] pair",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.InitConfiguration(cmd, configFile)
	},
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errFailedOutcome) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "configuration file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")

	rootCmd.AddCommand(runCmd)
}

// setupLogger logs JSON to stderr. Stdout is reserved for the outcome.
func setupLogger() *zap.Logger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if l, err := zap.ParseAtomicLevel(config.GetLogLevel()); err == nil {
		level = l
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.LevelKey = "severity"
	encoderCfg.MessageKey = "message"
	encoderCfg.EncodeTime = zapcore.RFC3339TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		level,
	)

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.DPanicLevel))
}
