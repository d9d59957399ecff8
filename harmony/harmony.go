// Package harmony unfolds the fixed chord progression into the bass part.
package harmony

import (
	"fmt"

	"github.com/jsphweid/harmonwalk/chord"
	"github.com/jsphweid/harmonwalk/model"
	"github.com/jsphweid/harmonwalk/pitch"
	"github.com/jsphweid/harmonwalk/sink"
)

// Write plays the whole progression repeat times in the configured style.
func Write(config *model.Config, repeat uint32, s sink.Sink) {
	s.Repeat(repeat, func() {
		for _, cycle := range chord.Progression {
			for _, tones := range cycle {
				writeMeasure(config.Harmony, chord.Transpose(tones, config.HarmonyBase), s)
			}
		}
	})
}

func note(s sink.Sink, p pitch.Pitch, d uint32) {
	s.WriteNote(model.Note{Pitch: p, Duration: d})
}

// Every style fills exactly one measure per chord.
func writeMeasure(style model.HarmonyStyle, t chord.Tones, s sink.Sink) {
	switch style {
	case model.Quarter:
		for _, p := range t {
			note(s, p, 4)
		}
	case model.UpOctaves:
		for _, p := range t {
			note(s, p, 2)
			note(s, p+12, 2)
		}
	case model.DownOctaves:
		for _, p := range t {
			note(s, p+12, 2)
			note(s, p, 2)
		}
	case model.CenterEighths:
		note(s, t[0], 4)
		note(s, t[1], 2)
		note(s, t[2], 2)
		note(s, t[1], 2)
		note(s, t[2], 2)
		note(s, t[3], 4)
	case model.Mirror:
		// Up through the chord, then an octave lower and back the way it
		// came, so the second half mirrors the first and returns to the root.
		for _, p := range t {
			note(s, p, 2)
		}
		for i := len(t) - 1; i >= 0; i-- {
			note(s, t[i]-12, 2)
		}
	case model.Triples:
		note(s, t[0], 2)
		note(s, t[1], 1)
		note(s, t[2], 2)
		note(s, t[3], 1)
		note(s, t[1], 2)
		note(s, t[2], 1)
		note(s, t[0], 2)
		note(s, t[3], 1)
		note(s, t[1], 2)
		note(s, t[2], 2)
	case model.QuarterChords:
		s.WriteChord([]pitch.Pitch{t[0], t[1], t[2]}, 4)
		s.WriteChord([]pitch.Pitch{t[0], t[1], t[3]}, 4)
		s.WriteChord([]pitch.Pitch{t[0], t[2], t[3]}, 4)
		s.WriteChord([]pitch.Pitch{t[1], t[2], t[3]}, 4)
	default:
		panic(fmt.Sprintf("unhandled harmony style %v", style))
	}
}
