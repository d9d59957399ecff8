package constants

// The number of the smallest note generated per beat.
const Step = 4

// The number of beats per measure.
const Measure = 4

// The number of measures for the chord progression to cycle.
const Cycle = 4

// The number of cycles in the complete harmony.
const Repeat = 4

// Steps in one measure, which is also a whole note.
const MeasureSteps = Step * Measure

// Steps in one repetition of the accompaniment (16 measures).
const RepeatSteps = Repeat * Cycle * MeasureSteps

// ReferenceKey is the MIDI key of pitch 0, LilyPond's unmarked c.
const ReferenceKey = 48

// All parts share one output channel.
const Channel = 0

// The LilyPond release the score syntax targets.
const LilypondVersion = "2.24.1"

const DefaultOutDir = "./out"
