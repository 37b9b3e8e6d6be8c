package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Configuration keys. Each resolves flag > environment > config file >
// default; the environment variable is the uppercased key with the
// FLOODFILL_ prefix.
const (
	keyThreshold  = "threshold"
	keyScale      = "scale"
	keyNoProgress = "no_progress"
	keyOutputDir  = "output_dir"
)

// initConfig points viper at the config file, the FLOODFILL_* environment
// and the command's flags.
func initConfig(cmd *cobra.Command, cfgFile string) error {
	viper.SetEnvPrefix("FLOODFILL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "floodfill-bg"))
		}
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// A missing file on the default search path is fine; anything
		// else (unreadable, bad YAML, explicit --config gone) is not.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		logger.Debugw("config loaded", "file", viper.ConfigFileUsed())
	}

	for key, flag := range map[string]string{
		keyThreshold:  "threshold",
		keyScale:      "scale",
		keyNoProgress: "no-progress",
	} {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("failed to bind %s flag: %w", flag, err)
		}
	}
	return nil
}

// applyConfig copies resolved values back into the options. Flags set on
// the command line keep priority through viper's pflag binding.
func applyConfig(opts *Options) {
	opts.Threshold = viper.GetFloat64(keyThreshold)
	opts.Scale = viper.GetFloat64(keyScale)
	opts.NoProgress = viper.GetBool(keyNoProgress)
}
