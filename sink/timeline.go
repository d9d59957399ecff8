package sink

import (
	"fmt"

	"github.com/jsphweid/harmonwalk/model"
	"github.com/jsphweid/harmonwalk/pitch"
)

// Timeline collects one part as delta-timed key events, one tick per step.
// Key-offs are zero-velocity key-ons on the wire; see model.Event.
type Timeline struct {
	velocity uint8
	pending  uint32
	ticks    uint64
	events   []model.Event
}

func NewTimeline(velocity uint8) *Timeline {
	if velocity == 0 || velocity > 127 {
		panic(fmt.Sprintf("note velocity must be within 1-127, got %d", velocity))
	}
	return &Timeline{velocity: velocity}
}

func (t *Timeline) WriteNote(n model.Note) {
	key := n.Pitch.Key()
	t.events = append(t.events,
		model.Event{Delta: t.pending, On: true, Key: key, Velocity: t.velocity},
		model.Event{Delta: n.Duration, Key: key},
	)
	t.pending = 0
	t.ticks += uint64(n.Duration)
}

func (t *Timeline) WriteChord(pitches []pitch.Pitch, d uint32) {
	delta := t.pending
	for _, p := range pitches {
		t.events = append(t.events, model.Event{Delta: delta, On: true, Key: p.Key(), Velocity: t.velocity})
		delta = 0
	}
	delta = d
	for _, p := range pitches {
		t.events = append(t.events, model.Event{Delta: delta, Key: p.Key()})
		delta = 0
	}
	t.pending = 0
	t.ticks += uint64(d)
}

func (t *Timeline) WriteRest(d uint32) {
	t.pending += d
	t.ticks += uint64(d)
}

func (t *Timeline) Repeat(times uint32, body func()) {
	for i := uint32(0); i < times; i++ {
		body()
	}
}

func (t *Timeline) Events() []model.Event {
	return t.events
}

// Trailing is the rest still owed after the last event; the track's end
// marker has to carry it.
func (t *Timeline) Trailing() uint32 {
	return t.pending
}

// Ticks is the total length of the part.
func (t *Timeline) Ticks() uint64 {
	return t.ticks
}
