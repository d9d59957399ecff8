package cmd

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/jsphweid/harmonwalk/midi"
	"github.com/jsphweid/harmonwalk/sample"
	"github.com/jsphweid/harmonwalk/util"
	"github.com/spf13/cobra"
)

var (
	excerptPath  string
	excerptFrom  uint64
	excerptNotes int
)

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&excerptPath, "excerpt", "", "write an excerpt to this path")
	inspectCmd.Flags().Uint64Var(&excerptFrom, "from", 0, "excerpt start, in ticks")
	inspectCmd.Flags().IntVar(&excerptNotes, "notes", 16, "notes per track in the excerpt")
}

type trackView struct {
	Name   string `yaml:"name,omitempty"`
	Notes  int    `yaml:"notes"`
	Length uint64 `yaml:"length"`
}

type inspectView struct {
	Resolution uint16      `yaml:"resolution"`
	Tempo      float64     `yaml:"tempo"`
	Meter      string      `yaml:"meter"`
	Tracks     []trackView `yaml:"tracks"`
}

var inspectCmd = &cobra.Command{
	Use:   "inspect file.mid",
	Short: "Inspects a MIDI file",
	Long:  `Prints the tempo, meter and per-track note counts of a MIDI file, and can cut an excerpt from it.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mf, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}

		summary := midi.Decode(mf)
		view := inspectView{
			Resolution: summary.Resolution,
			Tempo:      summary.Tempo,
			Meter:      fmt.Sprintf("%d/%d", summary.Numerator, summary.Denominator),
		}
		for _, t := range summary.Tracks {
			view.Tracks = append(view.Tracks, trackView{Name: t.Name, Notes: t.NoteCount(), Length: t.Length})
		}
		out, err := yaml.Marshal(view)
		if err != nil {
			return fmt.Errorf("could not encode summary: %w", err)
		}
		if _, err := cmd.OutOrStdout().Write(out); err != nil {
			return err
		}

		if excerptPath == "" {
			return nil
		}
		data, err := midi.Bytes(sample.Excerpt(mf, excerptFrom, excerptNotes))
		if err != nil {
			return err
		}
		if err := util.WriteFile(excerptPath, data); err != nil {
			return err
		}
		log.Infow("wrote excerpt", "path", excerptPath, "from", excerptFrom, "notes", excerptNotes)
		return nil
	},
}
