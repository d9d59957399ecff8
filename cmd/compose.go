package cmd

import (
	"errors"
	"fmt"

	"github.com/jsphweid/harmonwalk/file"
	"github.com/jsphweid/harmonwalk/score"
	"github.com/spf13/cobra"
)

var composeMidi bool

func init() {
	rootCmd.AddCommand(composeCmd)
	addConfigFlags(composeCmd)
	composeCmd.Flags().BoolVar(&composeMidi, "midi", false, "also write a .mid file next to the text")
}

var composeCmd = &cobra.Command{
	Use:   "compose [output.ly]",
	Short: "Composes a piece",
	Long: `Composes a piece and writes it as LilyPond text. Without an output path the
text goes to <out dir>/<run id>.ly. A path of "-" prints the text instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) == 1 {
			path = args[0]
		}
		if path == "-" && composeMidi {
			return errors.New("cannot write midi to stdout")
		}

		c, err := configFromFlags(cmd)
		if err != nil {
			return err
		}
		s := score.Compose(&c, log)

		if path == "-" {
			fmt.Fprint(cmd.OutOrStdout(), s.Text)
			return nil
		}
		out := file.Resolve(path, env.OutDir, s.RunID, composeMidi)
		if err := file.Save(s, out); err != nil {
			return err
		}
		log.Infow("wrote piece", "run", s.RunID, "seed", c.Seed, "text", out.Text, "midi", out.Midi)
		return nil
	},
}
