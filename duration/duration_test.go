package duration

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLily(t *testing.T) {
	cases := map[uint32]string{
		1:  "16",
		2:  "8",
		3:  "8.",
		4:  "4",
		5:  "4~16",
		6:  "4.",
		7:  "4..",
		9:  "2~16",
		11: "2~8.",
		12: "2.",
		13: "2.~16",
		16: "1",
		24: "1.",
		31: "1....",
	}
	for steps, want := range cases {
		assert.Equal(t, want, Lily(steps), "steps %d", steps)
	}
}

func TestRoundTrip(t *testing.T) {
	for steps := uint32(1); steps <= MaxSteps; steps++ {
		t.Run(fmt.Sprintf("steps %d", steps), func(t *testing.T) {
			assert.Equal(t, steps, Decode(Encode(steps)))

			parsed, err := ParseLily(Lily(steps))
			require.NoError(t, err)
			assert.Equal(t, steps, parsed)
		})
	}
}

func TestEncodePanicsOutsideRange(t *testing.T) {
	assert.Panics(t, func() { Encode(0) })
	assert.Panics(t, func() { Encode(MaxSteps + 1) })
}

func TestParseLilyRejectsGarbage(t *testing.T) {
	_, err := ParseLily("3")
	assert.Error(t, err)
	_, err = ParseLily("16.")
	assert.Error(t, err)
}

func TestSplit(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]uint32{3}, Split(3, 16, 16))
	assert.Equal([]uint32{4}, Split(4, 4, 16))
	assert.Equal([]uint32{2, 3}, Split(5, 2, 16))
	// a note longer than a measure needs more than one split
	assert.Equal([]uint32{1, 16, 16, 7}, Split(40, 1, 16))
}

func TestSplitPiecesFitTheirMeasures(t *testing.T) {
	for steps := uint32(1); steps <= 64; steps++ {
		for remaining := uint32(1); remaining <= 16; remaining++ {
			pieces := Split(steps, remaining, 16)
			var total uint32
			left := remaining
			for _, p := range pieces {
				assert.LessOrEqual(t, p, left)
				total += p
				left -= p
				if left == 0 {
					left = 16
				}
			}
			assert.Equal(t, steps, total)
		}
	}
}
