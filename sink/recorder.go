package sink

import (
	"github.com/jsphweid/harmonwalk/model"
	"github.com/jsphweid/harmonwalk/pitch"
)

// Item is one recorded write. A rest has no pitches.
type Item struct {
	Pitches  []pitch.Pitch
	Duration uint32
}

func (i Item) IsRest() bool {
	return len(i.Pitches) == 0
}

// Recorder keeps every write as an Item with repeats unfolded, for analysis.
type Recorder struct {
	Items []Item
}

func (r *Recorder) WriteNote(n model.Note) {
	r.Items = append(r.Items, Item{Pitches: []pitch.Pitch{n.Pitch}, Duration: n.Duration})
}

func (r *Recorder) WriteChord(pitches []pitch.Pitch, d uint32) {
	r.Items = append(r.Items, Item{Pitches: append([]pitch.Pitch(nil), pitches...), Duration: d})
}

func (r *Recorder) WriteRest(d uint32) {
	r.Items = append(r.Items, Item{Duration: d})
}

func (r *Recorder) Repeat(times uint32, body func()) {
	for i := uint32(0); i < times; i++ {
		body()
	}
}
