package model

// Config is a fully resolved composition request. Nothing in the generator
// mutates it.
type Config struct {
	// The harmony preset to use
	Harmony HarmonyStyle `yaml:"harmony" json:"harmony"`
	// How the speed of notes oscillates
	Rhythm RhythmStyle `yaml:"rhythm" json:"rhythm"`
	// The number of beats per minute.
	Tempo uint32 `yaml:"tempo" json:"tempo"`
	// The minimum length (in steps) of notes generated (ignoring stutter).
	MinLen float64 `yaml:"min_len" json:"min_len"`
	// The maximum length (in steps) of notes generated (ignoring stutter).
	MaxLen float64 `yaml:"max_len" json:"max_len"`
	// The pitch of the harmony's lowest note. Must be divisible by 12.
	HarmonyBase int `yaml:"harmony_base" json:"harmony_base"`
	// The pitch of the melody's center.
	MelodyBase int `yaml:"melody_base" json:"melody_base"`
	// Scales how frequently the speed of notes changes, in measures.
	Steady float64 `yaml:"steady" json:"steady"`
	// How strongly the melody oscillates around its center.
	Gravity float64 `yaml:"gravity" json:"gravity"`
	// How strongly the melody's velocity declines.
	Drag float64 `yaml:"drag" json:"drag"`
	// The amount of random influence on the melody.
	Nudge float64 `yaml:"nudge" json:"nudge"`
	// The amount of random influence on the speed of notes.
	Stutter float64 `yaml:"stutter" json:"stutter"`
	// Number of times to repeat the accompaniment. Each repetition is 16 measures.
	Repeat uint32 `yaml:"repeat" json:"repeat"`
	Seed   uint64 `yaml:"seed" json:"seed"`
	// MIDI note velocity for every key-on.
	Velocity uint8 `yaml:"velocity" json:"velocity"`
}
