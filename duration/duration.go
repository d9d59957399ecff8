// Package duration turns step counts into conventional note values.
//
// A step is a sixteenth note. Any count from 1 to 31 is written as a chain of
// base values (sixteenth up to whole), each optionally dotted, joined by ties.
package duration

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/jsphweid/harmonwalk/util"
)

// The largest count Encode accepts: a whole note with four dots.
const MaxSteps = 31

var lilyBases = [5]string{"16", "8", "4", "2", "1"}

// Value is one tied segment: a base length of 1<<Base steps plus Dots dots.
type Value struct {
	Base int
	Dots int
}

func (v Value) Steps() uint32 {
	base := uint32(1) << v.Base
	total := base
	for i := 0; i < v.Dots; i++ {
		base >>= 1
		total += base
	}
	return total
}

func (v Value) Lily() string {
	return lilyBases[v.Base] + strings.Repeat(".", v.Dots)
}

// Encode scans the bits of steps from the top down. A set bit starts a base
// value, the run of set bits right below it become dots, and the next set bit
// after a gap starts a new tied value.
func Encode(steps uint32) []Value {
	if steps == 0 || steps > MaxSteps {
		panic(fmt.Sprintf("cannot encode a duration of %d steps", steps))
	}

	var res []Value
	magnitude := bits.Len32(steps) - 1
	for magnitude >= 0 {
		if steps&(1<<magnitude) == 0 {
			magnitude--
			continue
		}
		v := Value{Base: magnitude}
		magnitude--
		for magnitude >= 0 && steps&(1<<magnitude) != 0 {
			v.Dots++
			magnitude--
		}
		res = append(res, v)
	}
	return res
}

func Decode(values []Value) uint32 {
	var total uint32
	for _, v := range values {
		total += v.Steps()
	}
	return total
}

// Lily renders steps as LilyPond duration text, e.g. 11 -> "2~8.".
func Lily(steps uint32) string {
	values := Encode(steps)
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.Lily()
	}
	return strings.Join(parts, "~")
}

// ParseLily is the inverse of Lily.
func ParseLily(text string) (uint32, error) {
	var values []Value
	for _, part := range strings.Split(text, "~") {
		base := strings.TrimRight(part, ".")
		v := Value{Base: -1, Dots: len(part) - len(base)}
		for i, name := range lilyBases {
			if name == base {
				v.Base = i
			}
		}
		if v.Base < 0 || v.Dots > v.Base {
			return 0, fmt.Errorf("invalid duration %q", part)
		}
		values = append(values, v)
	}
	return Decode(values), nil
}

// Split breaks steps into pieces that each end on or before the next measure
// boundary. remaining is how much of the current measure is left.
func Split(steps, remaining, measure uint32) []uint32 {
	var pieces []uint32
	for steps > 0 {
		piece := util.Min(steps, remaining)
		pieces = append(pieces, piece)
		steps -= piece
		remaining = measure
	}
	return pieces
}
