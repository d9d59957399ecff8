package sink

import (
	"fmt"
	"strings"

	"github.com/jsphweid/harmonwalk/constants"
	"github.com/jsphweid/harmonwalk/duration"
	"github.com/jsphweid/harmonwalk/model"
	"github.com/jsphweid/harmonwalk/pitch"
)

// Lily writes LilyPond music text. Anything crossing a barline is split there
// and tied, and a bar check follows every completed measure.
type Lily struct {
	buf       strings.Builder
	remaining uint32
	measures  uint64
	steps     uint64
	times     uint64
}

func NewLily() *Lily {
	return &Lily{remaining: constants.MeasureSteps, times: 1}
}

func (l *Lily) WriteNote(n model.Note) {
	name := n.Pitch.String()
	l.write(name, name, n.Duration, true)
}

func (l *Lily) WriteChord(pitches []pitch.Pitch, d uint32) {
	names := make([]string, len(pitches))
	for i, p := range pitches {
		names[i] = p.String()
	}
	l.write("<"+strings.Join(names, " ")+">", "q", d, true)
}

func (l *Lily) WriteRest(d uint32) {
	l.write("r", "r", d, false)
}

func (l *Lily) Repeat(times uint32, body func()) {
	if times == 0 {
		return
	}
	fmt.Fprintf(&l.buf, "\\repeat unfold %d {\n", times)
	l.times *= uint64(times)
	body()
	l.times /= uint64(times)
	l.buf.WriteString("}\n")
}

// Steps is the total length written so far, counting every repetition.
func (l *Lily) Steps() uint64 {
	return l.steps
}

// MeasureLeft is how many steps remain before the next barline.
func (l *Lily) MeasureLeft() uint32 {
	return l.remaining
}

func (l *Lily) String() string {
	return l.buf.String()
}

func (l *Lily) write(head, cont string, d uint32, tie bool) {
	if d == 0 {
		return
	}
	pieces := duration.Split(d, l.remaining, constants.MeasureSteps)
	for i, piece := range pieces {
		token := cont
		if i == 0 {
			token = head
		}
		if tie {
			l.buf.WriteString(token + duration.Lily(piece))
			if i < len(pieces)-1 {
				l.buf.WriteByte('~')
			}
		} else {
			// rests can't be tied, so every value gets its own token
			for j, v := range duration.Encode(piece) {
				if j > 0 {
					l.buf.WriteByte(' ')
				}
				l.buf.WriteString(token + v.Lily())
			}
		}
		l.buf.WriteByte(' ')
		l.advance(piece)
	}
}

func (l *Lily) advance(steps uint32) {
	l.steps += uint64(steps) * l.times
	l.remaining -= steps
	if l.remaining > 0 {
		return
	}
	l.remaining = constants.MeasureSteps
	l.measures++
	if l.measures%constants.Cycle == 0 {
		l.buf.WriteString("|\n")
	} else {
		l.buf.WriteString("| ")
	}
}
