// Package melody generates the treble part as a damped random walk whose
// notes snap to the underlying harmony.
package melody

import (
	"math"
	"math/rand/v2"

	"github.com/jsphweid/harmonwalk/chord"
	"github.com/jsphweid/harmonwalk/constants"
	"github.com/jsphweid/harmonwalk/model"
	"github.com/jsphweid/harmonwalk/pitch"
	"github.com/jsphweid/harmonwalk/sink"
)

// NewRand returns the generator a run owns. The same seed always gives the
// same piece.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

type State struct {
	pitch    float64
	velocity float64
	progress float64
	lastNote uint32
	time     uint32
	note     model.Note
	config   *model.Config
	rng      *rand.Rand
}

func New(config *model.Config, rng *rand.Rand) *State {
	return &State{
		pitch: float64(config.MelodyBase),
		note: model.Note{
			Pitch:    pitch.Pitch(config.MelodyBase),
			Duration: 1,
		},
		config: config,
		rng:    rng,
	}
}

// Time is the number of steps taken so far.
func (s *State) Time() uint32 {
	return s.time
}

// LastNote is the step at which the open note started.
func (s *State) LastNote() uint32 {
	return s.lastNote
}

func (s *State) coin() bool {
	return s.rng.Uint64()&1 == 1
}

// Step advances the walk by one step. When the open note ends there it is
// returned with ok set, and a new note is opened.
func (s *State) Step() (closed model.Note, ok bool) {
	c := s.config

	nudge := c.Nudge
	if !s.coin() {
		nudge = -nudge
	}
	gravity := (s.pitch - float64(c.MelodyBase)) * -c.Gravity
	s.velocity = (s.velocity+gravity)*(1-c.Drag) + nudge
	s.pitch += s.velocity

	medLen := (c.MaxLen + c.MinLen) / 2
	devLen := (c.MaxLen - c.MinLen) / 2
	s.progress += 1 / (devLen*Shape(c.Rhythm, s.time, c.Steady) + medLen)
	s.time++

	// both draws happen every step, whether or not progress is already due
	r1, r2 := s.rng.Float64(), s.rng.Float64()
	if !((s.progress > 1 || r1 < c.Stutter) && r2 > c.Stutter) {
		s.note.Duration++
		return model.Note{}, false
	}

	s.progress -= 1
	closed = s.note
	s.lastNote = s.time
	next := rounded(s.pitch)
	if s.lastNote%constants.Step != constants.Step-1 {
		next = next.NearestChordTone(chord.At(s.time), s.coin)
	}
	s.note = model.Note{Pitch: next, Duration: 1}
	return closed, true
}

// rounded is the nearest whole pitch, clamped to the MIDI key range.
func rounded(f float64) pitch.Pitch {
	lo := float64(-constants.ReferenceKey)
	hi := float64(127 - constants.ReferenceKey)
	f = math.Round(f)
	if !(f >= lo) {
		return pitch.Pitch(lo)
	}
	if f > hi {
		return pitch.Pitch(hi)
	}
	return pitch.Pitch(f)
}

// Write runs the walk over repeat full progressions. The note still open at
// the end is dropped and a rest fills out the piece instead.
func Write(config *model.Config, repeat uint32, rng *rand.Rand, s sink.Sink) {
	total := repeat * constants.RepeatSteps
	state := New(config, rng)
	for state.Time() < total {
		if n, ok := state.Step(); ok {
			s.WriteNote(n)
		}
	}
	if rest := total - state.LastNote(); rest > 0 {
		s.WriteRest(rest)
	}
}
