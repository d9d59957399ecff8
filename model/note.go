package model

import "github.com/jsphweid/harmonwalk/pitch"

// Note durations are in steps (sixteenths) and always at least 1.
type Note struct {
	Pitch    pitch.Pitch
	Duration uint32
}

// Event is one entry of a part's timeline. A key-off has On unset and zero
// velocity, and is encoded as a zero-velocity key-on.
type Event struct {
	Delta    uint32
	On       bool
	Key      uint8
	Velocity uint8
}

// IsRelease reports whether the event ends a sounding key.
func (e Event) IsRelease() bool {
	return !e.On || e.Velocity == 0
}
