package cmd

import (
	"fmt"

	"github.com/jsphweid/harmonwalk/config"
	"github.com/jsphweid/harmonwalk/logger"
	"github.com/spf13/cobra"
)

var (
	env         config.Env
	log         = logger.Nop()
	logLevel    string
	presetsPath string
)

var rootCmd = &cobra.Command{
	Use:   "harmonwalk",
	Short: "Composes a melody over a fixed progression",
	Long: `harmonwalk composes a short piano piece: a random-walk melody snapped to
a fixed chord progression. It writes LilyPond text and, optionally, a MIDI file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if env, err = config.ProvideEnv(); err != nil {
			return err
		}
		if !cmd.Flags().Changed("log-level") {
			logLevel = env.LogLevel
		}
		if !cmd.Flags().Changed("presets") {
			presetsPath = env.Presets
		}
		log, err = logger.ProvideLogger(logLevel)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&presetsPath, "presets", "", "YAML file with more presets")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// loadPresets returns the built-in presets plus any from the presets file.
func loadPresets() (config.Presets, error) {
	presets := config.Builtin()
	if presetsPath == "" {
		return presets, nil
	}
	if err := presets.LoadPresets(presetsPath); err != nil {
		return nil, fmt.Errorf("presets file %v: %w", presetsPath, err)
	}
	log.Debugw("loaded presets", "path", presetsPath, "names", presets.Names())
	return presets, nil
}
