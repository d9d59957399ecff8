package chord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/harmonwalk/constants"
	"github.com/jsphweid/harmonwalk/pitch"
)

// Tones is one measure of the progression, relative to the harmony base.
type Tones = [4]pitch.Pitch

// Progression is the full accompaniment: Repeat cycles of Cycle measures.
var Progression = [constants.Repeat][constants.Cycle]Tones{
	{
		// C E G B
		{0, 4, 7, 11},
		// C' A F D
		{12, 9, 5, 2},
		// C E G C'
		{0, 4, 7, 12},
		// D' B G D
		{14, 11, 7, 2},
	},
	{
		{0, 4, 7, 11},
		{12, 9, 5, 2},
		{0, 4, 7, 12},
		{14, 11, 7, 2},
	},
	{
		// E G C' E'
		{4, 7, 12, 16},
		// F' D' C' A
		{17, 14, 12, 9},
		// G B C' E'
		{7, 11, 12, 16},
		// G' F' D' B
		{19, 17, 14, 11},
	},
	{
		// C' G E C
		{12, 7, 4, 0},
		// D F A C'
		{2, 5, 9, 12},
		// B G E C
		{11, 7, 4, 0},
		// B, D G F
		{-1, 2, 7, 5},
	},
}

// The melody snaps to these simpler chords rather than the progression itself.
var (
	cmaj7 = []pitch.Pitch{0, 4, 7, 11}
	dm7   = []pitch.Pitch{0, 2, 5, 9}
	g7    = []pitch.Pitch{2, 5, 7, 11}
)

// At returns the chord tones the melody is quantized to at a step time.
func At(time uint32) []pitch.Pitch {
	switch (time / constants.MeasureSteps) % constants.Cycle {
	case 0, 2:
		return cmaj7
	case 1:
		return dm7
	default:
		return g7
	}
}

// Transpose offsets every tone, e.g. by the harmony base.
func Transpose(tones Tones, by int) Tones {
	var res Tones
	for i, p := range tones {
		res[i] = p + pitch.Pitch(by)
	}
	return res
}

// Key identifies a sounding set of pitches by their sorted MIDI keys, e.g.
// "36-40-43".
func Key(pitches []pitch.Pitch) string {
	sorted := make([]uint8, len(pitches))
	for i, p := range pitches {
		sorted[i] = p.Key()
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	parts := make([]string, len(sorted))
	for i, p := range sorted {
		parts[i] = fmt.Sprintf("%v", p)
	}
	return strings.Join(parts, "-")
}
