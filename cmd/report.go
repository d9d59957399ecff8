package cmd

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/jsphweid/harmonwalk/score"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
	addConfigFlags(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report",
	Long:  `Composes a piece in memory and prints statistics about it as YAML.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := configFromFlags(cmd)
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(score.Analyze(&c))
		if err != nil {
			return fmt.Errorf("could not encode report: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}
