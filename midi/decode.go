package midi

import (
	"github.com/jsphweid/harmonwalk/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

type Track struct {
	Name   string
	Events []model.Event
	// Length is the absolute tick of the end marker.
	Length   uint64
	Trailing uint32
}

func (t Track) NoteCount() int {
	var n int
	for _, e := range t.Events {
		if e.On {
			n++
		}
	}
	return n
}

type Summary struct {
	Resolution  uint16
	Tempo       float64
	Numerator   uint8
	Denominator uint8
	Tracks      []Track
}

// Decode reads key events back into parts. Both key-off messages and
// zero-velocity key-ons come back as releases.
func Decode(s *smf.SMF) Summary {
	var res Summary
	if ticks, ok := s.TimeFormat.(smf.MetricTicks); ok {
		res.Resolution = uint16(ticks)
	}

	for _, events := range s.Tracks {
		var track Track
		var pending uint32
		for _, evt := range events {
			track.Length += uint64(evt.Delta)
			pending += evt.Delta

			msg := evt.Message
			var bpm float64
			var num, denom, channel, key, velocity uint8
			var name string
			switch {
			case msg.GetMetaTempo(&bpm):
				res.Tempo = bpm
			case msg.GetMetaMeter(&num, &denom):
				res.Numerator, res.Denominator = num, denom
			case msg.GetMetaTrackName(&name):
				track.Name = name
			case msg.GetNoteStart(&channel, &key, &velocity):
				track.Events = append(track.Events, model.Event{
					Delta:    pending,
					On:       true,
					Key:      key,
					Velocity: velocity,
				})
				pending = 0
			case msg.GetNoteEnd(&channel, &key):
				track.Events = append(track.Events, model.Event{Delta: pending, Key: key})
				pending = 0
			}
		}
		track.Trailing = pending
		res.Tracks = append(res.Tracks, track)
	}
	return res
}
