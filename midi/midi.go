package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/harmonwalk/constants"
	"github.com/jsphweid/harmonwalk/model"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Part is one instrumental track of the piece.
type Part struct {
	Name   string
	Events []model.Event
	// Trailing is the silence after the last event, up to the end marker.
	Trailing uint32
}

// Encode builds a format 1 SMF with one tick per step. Track 0 carries the
// meter, the tempo and the end marker at length ticks; each part follows on
// its own track.
func Encode(tempo uint32, length uint64, parts ...Part) *smf.SMF {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(constants.Step)

	var control smf.Track
	control.Add(0, smf.MetaMeter(constants.Measure, 4))
	control.Add(0, smf.MetaTempo(float64(tempo)))
	control.Close(uint32(length))
	s.Add(control)

	for _, part := range parts {
		var track smf.Track
		track.Add(0, smf.MetaTrackSequenceName(part.Name))
		for _, e := range part.Events {
			velocity := e.Velocity
			if !e.On {
				// the old convention: a key-on at velocity 0 releases the key
				velocity = 0
			}
			track.Add(e.Delta, midi.NoteOn(constants.Channel, e.Key, velocity))
		}
		track.Close(part.Trailing)
		s.Add(track)
	}
	return s
}

func Bytes(s *smf.SMF) ([]byte, error) {
	var bf bytes.Buffer
	if _, err := s.WriteTo(&bf); err != nil {
		return nil, fmt.Errorf("could not write midi: %w", err)
	}
	return bf.Bytes(), nil
}

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error reading midi file... %w", err)
	}
	return Read(bytes.NewReader(dat))
}

func Read(r io.Reader) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if msg, ok := recover().(string); ok {
			s, e = nil, errors.New(msg)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing midi file... %w", err)
	}
	return res, nil
}
