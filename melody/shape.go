package melody

import (
	"fmt"
	"math"

	"github.com/jsphweid/harmonwalk/constants"
	"github.com/jsphweid/harmonwalk/model"
)

// Shape is the periodic multiplier in [-1, 1] that swings note lengths
// between MinLen and MaxLen. One period lasts steady measures.
func Shape(style model.RhythmStyle, time uint32, steady float64) float64 {
	switch style {
	case model.Sinusoidal:
		return math.Cos(float64(time) * (2 * math.Pi) / constants.MeasureSteps / steady)
	case model.Sawtooth:
		return Sawtooth(float64(time) / constants.MeasureSteps / steady)
	default:
		panic(fmt.Sprintf("unhandled rhythm style %v", style))
	}
}

// Sawtooth falls linearly from 1 toward -1 and jumps back at every integer.
func Sawtooth(clock float64) float64 {
	return 1 - 2*(clock-math.Floor(clock))
}
