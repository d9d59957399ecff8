package file

import (
	"path/filepath"
	"strings"

	"github.com/jsphweid/harmonwalk/midi"
	"github.com/jsphweid/harmonwalk/score"
	"github.com/jsphweid/harmonwalk/util"
)

const (
	TextExt = ".ly"
	MidiExt = ".mid"
)

// Outputs are the paths one composition is written to. An empty Midi path
// means no MIDI file.
type Outputs struct {
	Text string
	Midi string
}

// Resolve names the outputs of a run. Without an explicit path the text goes
// to <outDir>/<runID>.ly. The MIDI file sits next to the text file.
func Resolve(path, outDir, runID string, withMidi bool) Outputs {
	if path == "" {
		path = filepath.Join(outDir, runID+TextExt)
	}

	res := Outputs{Text: path}
	if withMidi {
		res.Midi = strings.TrimSuffix(path, filepath.Ext(path)) + MidiExt
	}
	return res
}

func Save(s *score.Score, out Outputs) error {
	if err := util.WriteFile(out.Text, []byte(s.Text)); err != nil {
		return err
	}
	if out.Midi == "" {
		return nil
	}

	data, err := midi.Bytes(s.Midi)
	if err != nil {
		return err
	}
	return util.WriteFile(out.Midi, data)
}
