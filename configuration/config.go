package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	prefix   = "OUTCOME"
	logLevel = "log-level"
	output   = "output"
	workDir  = "dir"

	defaultLogLevel = "info"
	defaultOutput   = "json"
)

var v = viper.New()

// InitConfiguration resolves settings from, in order of precedence, the
// command's flags, OUTCOME_* environment variables and the config file.
func InitConfiguration(cmd *cobra.Command, configFile string) error {
	v = viper.New()

	v.SetEnvPrefix(prefix)
	// log-level is read from OUTCOME_LOG_LEVEL
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(logLevel, defaultLogLevel)
	v.SetDefault(output, defaultOutput)

	if len(configFile) > 0 {
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			zap.S().Errorw("cannot read config file", "error", err, "config file", configFile)
			return fmt.Errorf("fail to read config file: %w", err)
		}

		zap.S().Infof("using config file: %v", v.ConfigFileUsed())
	}

	return v.BindPFlags(cmd.Flags())
}

func GetLogLevel() string {
	return v.GetString(logLevel)
}

func GetOutputFormat() string {
	return strings.ToLower(v.GetString(output))
}

func GetWorkingDirectory() string {
	return v.GetString(workDir)
}
