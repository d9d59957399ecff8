package cmd

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(presetsCmd)
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Lists presets",
	Long:  `Lists the built-in presets and those from the presets file as YAML.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		presets, err := loadPresets()
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(presets)
		if err != nil {
			return fmt.Errorf("could not encode presets: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}
