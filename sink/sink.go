// Package sink renders the generated parts. The melody and harmony generators
// drive any Sink with the same calls and never check which one they have.
package sink

import (
	"github.com/jsphweid/harmonwalk/model"
	"github.com/jsphweid/harmonwalk/pitch"
)

type Sink interface {
	WriteNote(n model.Note)
	// WriteChord sounds all pitches together for duration steps.
	WriteChord(pitches []pitch.Pitch, duration uint32)
	WriteRest(duration uint32)
	// Repeat plays whatever body writes the given number of times.
	Repeat(times uint32, body func())
}
