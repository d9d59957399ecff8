package pitch

import (
	"strings"

	"github.com/jsphweid/harmonwalk/constants"
	"github.com/jsphweid/harmonwalk/util"
)

// Pitch is a signed semitone offset from LilyPond's unmarked c.
type Pitch int

// Correct for DMaj through AesMaj and fismin through cmin
var names = [12]string{"c", "cis", "d", "ees", "e", "f", "fis", "g", "aes", "a", "bes", "b"}

func (p Pitch) NoteClass() int {
	n := int(p) % 12
	if n < 0 {
		n += 12
	}
	return n
}

func (p Pitch) Octave() int {
	return (int(p) - p.NoteClass()) / 12
}

// NearestChordTone moves p to the closest note class in tones, staying in the
// nearest octave. flip breaks ties between equally close candidates; a true
// result lets the later candidate win.
func (p Pitch) NearestChordTone(tones []Pitch, flip func() bool) Pitch {
	if len(tones) == 0 {
		panic("NearestChordTone called with no chord tones")
	}

	best := 12
	nearest := p.NoteClass()
	for _, tone := range tones {
		diff := circularDistance(tone.NoteClass(), p.NoteClass())
		if diff == 0 {
			nearest = tone.NoteClass()
			break
		} else if diff < best {
			nearest = tone.NoteClass()
			best = diff
		} else if diff == best && flip() {
			nearest = tone.NoteClass()
		}
	}

	diff := nearest - p.NoteClass()
	if diff > 6 {
		diff -= 12
	} else if diff <= -6 {
		diff += 12
	}
	return p + Pitch(diff)
}

func circularDistance(a, b int) int {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	if diff > 6 {
		diff = 12 - diff
	}
	return diff
}

func (p Pitch) Name() string {
	return names[p.NoteClass()]
}

// String renders the absolute LilyPond pitch, e.g. "c'" or "bes,,".
func (p Pitch) String() string {
	octave := p.Octave()
	mark := "'"
	if octave < 0 {
		mark = ","
		octave = -octave
	}
	return p.Name() + strings.Repeat(mark, octave)
}

// Key is the MIDI key number, clamped to the valid range.
func (p Pitch) Key() uint8 {
	return uint8(util.Clamp(int(p)+constants.ReferenceKey, 0, 127))
}
