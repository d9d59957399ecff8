package melody

import (
	"math"
	"testing"

	"github.com/jsphweid/harmonwalk/model"
	"github.com/stretchr/testify/assert"
)

func TestSawtoothIsLinearRamp(t *testing.T) {
	assert := assert.New(t)
	for _, clock := range []float64{0, 0.25, 0.5, 0.75, 0.999, 1, 1.5, 2.25, 7.125} {
		want := 1 - 2*(clock-math.Floor(clock))
		assert.Equal(want, Sawtooth(clock), "clock %v", clock)
		assert.GreaterOrEqual(Sawtooth(clock), -1.0)
		assert.LessOrEqual(Sawtooth(clock), 1.0)
	}
	assert.Equal(1.0, Sawtooth(3))
	assert.Equal(0.0, Sawtooth(0.5))
	assert.Equal(-0.5, Sawtooth(1.75))
}

func TestSawtoothJumpsAtIntegers(t *testing.T) {
	assert.InDelta(t, -1.0, Sawtooth(math.Nextafter(2, 0)), 1e-9)
	assert.Equal(t, 1.0, Sawtooth(2))
}

func TestShapePeriodIsSteadyMeasures(t *testing.T) {
	assert := assert.New(t)
	// one measure is 16 steps, so with steady 2 the period is 32 steps
	assert.InDelta(1.0, Shape(model.Sinusoidal, 0, 2), 1e-12)
	assert.InDelta(-1.0, Shape(model.Sinusoidal, 16, 2), 1e-12)
	assert.InDelta(1.0, Shape(model.Sinusoidal, 32, 2), 1e-12)

	assert.Equal(1.0, Shape(model.Sawtooth, 0, 2))
	assert.Equal(0.0, Shape(model.Sawtooth, 16, 2))
	assert.Equal(1.0, Shape(model.Sawtooth, 32, 2))
	assert.Equal(0.5, Shape(model.Sawtooth, 8, 2))
}

func TestShapePanicsOnUnknownStyle(t *testing.T) {
	assert.Panics(t, func() { Shape(model.RhythmStyle(7), 0, 1) })
}
