// Package score puts the melody and the harmony together into complete
// LilyPond and MIDI renditions of one piece.
package score

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jsphweid/harmonwalk/constants"
	"github.com/jsphweid/harmonwalk/harmony"
	"github.com/jsphweid/harmonwalk/melody"
	"github.com/jsphweid/harmonwalk/midi"
	"github.com/jsphweid/harmonwalk/model"
	"github.com/jsphweid/harmonwalk/sink"
	"gitlab.com/gomidi/midi/v2/smf"
	"go.uber.org/zap"
)

type Score struct {
	RunID  string
	Config model.Config
	Text   string
	Midi   *smf.SMF
	// Steps is the length of the piece in sixteenths.
	Steps uint64
}

// Compose renders both formats. Each rendering replays the run from the
// seed, so they describe the same notes.
func Compose(config *model.Config, log *zap.SugaredLogger) *Score {
	s := &Score{
		RunID:  uuid.New().String(),
		Config: *config,
		Text:   WriteText(config),
		Midi:   WriteMidi(config),
		Steps:  Length(config),
	}
	log.Debugw("composed",
		"run", s.RunID,
		"seed", config.Seed,
		"harmony", config.Harmony,
		"rhythm", config.Rhythm,
		"repeat", config.Repeat,
		"steps", s.Steps,
	)
	return s
}

func Length(config *model.Config) uint64 {
	return uint64(config.Repeat) * constants.RepeatSteps
}

func WriteMelody(config *model.Config, s sink.Sink) {
	melody.Write(config, config.Repeat, melody.NewRand(config.Seed), s)
}

func WriteHarmony(config *model.Config, s sink.Sink) {
	harmony.Write(config, config.Repeat, s)
}

func WriteText(config *model.Config) string {
	melodyText := sink.NewLily()
	WriteMelody(config, melodyText)
	harmonyText := sink.NewLily()
	WriteHarmony(config, harmonyText)

	return fmt.Sprintf(`
\version "%s"
\score {
\new PianoStaff <<
\new Staff {
\tempo 4 = %d
\clef treble
\key c \major
\time 4/4
{ %s}
\fine
}
\new Staff {
\clef bass
\key c \major
\time 4/4
%s
\fine
}
>>
\layout {}
\midi {}
}
`, constants.LilypondVersion, config.Tempo, melodyText.String(), harmonyText.String())
}

func WriteMidi(config *model.Config) *smf.SMF {
	melodyTrack := sink.NewTimeline(config.Velocity)
	WriteMelody(config, melodyTrack)
	harmonyTrack := sink.NewTimeline(config.Velocity)
	WriteHarmony(config, harmonyTrack)

	return midi.Encode(config.Tempo, Length(config),
		midi.Part{Name: "melody", Events: melodyTrack.Events(), Trailing: melodyTrack.Trailing()},
		midi.Part{Name: "harmony", Events: harmonyTrack.Events(), Trailing: harmonyTrack.Trailing()},
	)
}
