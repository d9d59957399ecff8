package model

import "fmt"

type HarmonyStyle int

const (
	Quarter HarmonyStyle = iota
	UpOctaves
	DownOctaves
	CenterEighths
	Mirror
	Triples
	QuarterChords
)

var harmonyNames = map[HarmonyStyle]string{
	Quarter:       "quarter",
	UpOctaves:     "up-octaves",
	DownOctaves:   "down-octaves",
	CenterEighths: "center-8ths",
	Mirror:        "mirror",
	Triples:       "triples",
	QuarterChords: "quarter-chords",
}

func HarmonyStyles() []HarmonyStyle {
	return []HarmonyStyle{Quarter, UpOctaves, DownOctaves, CenterEighths, Mirror, Triples, QuarterChords}
}

func (h HarmonyStyle) String() string {
	if name, ok := harmonyNames[h]; ok {
		return name
	}
	return fmt.Sprintf("HarmonyStyle(%d)", int(h))
}

func ParseHarmonyStyle(s string) (HarmonyStyle, bool) {
	for style, name := range harmonyNames {
		if name == s {
			return style, true
		}
	}
	return 0, false
}

func (h HarmonyStyle) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *HarmonyStyle) UnmarshalText(text []byte) error {
	style, ok := ParseHarmonyStyle(string(text))
	if !ok {
		return fmt.Errorf("unknown harmony %q", string(text))
	}
	*h = style
	return nil
}

// RhythmStyle picks the periodic function that shapes note lengths over time.
type RhythmStyle int

const (
	Sinusoidal RhythmStyle = iota
	Sawtooth
)

var rhythmNames = map[RhythmStyle]string{
	Sinusoidal: "sinusoidal",
	Sawtooth:   "sawtooth",
}

func RhythmStyles() []RhythmStyle {
	return []RhythmStyle{Sinusoidal, Sawtooth}
}

func (r RhythmStyle) String() string {
	if name, ok := rhythmNames[r]; ok {
		return name
	}
	return fmt.Sprintf("RhythmStyle(%d)", int(r))
}

func ParseRhythmStyle(s string) (RhythmStyle, bool) {
	for style, name := range rhythmNames {
		if name == s {
			return style, true
		}
	}
	return 0, false
}

func (r RhythmStyle) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *RhythmStyle) UnmarshalText(text []byte) error {
	style, ok := ParseRhythmStyle(string(text))
	if !ok {
		return fmt.Errorf("unknown rhythm %q", string(text))
	}
	*r = style
	return nil
}
