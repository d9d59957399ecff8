package score

import (
	"github.com/jsphweid/harmonwalk/chord"
	"github.com/jsphweid/harmonwalk/constants"
	"github.com/jsphweid/harmonwalk/model"
	"github.com/jsphweid/harmonwalk/pitch"
	"github.com/jsphweid/harmonwalk/sink"
	"github.com/jsphweid/harmonwalk/util"
)

type Report struct {
	Seed          uint64         `yaml:"seed"`
	Steps         uint64         `yaml:"steps"`
	MelodyNotes   int            `yaml:"melody_notes"`
	MelodyRest    uint32         `yaml:"melody_rest"`
	Lowest        string         `yaml:"lowest"`
	Highest       string         `yaml:"highest"`
	Durations     map[uint32]int `yaml:"durations"`
	HarmonyEvents int            `yaml:"harmony_events"`
	// distinct sets of pitches sounded within one harmony measure
	HarmonyChords []string `yaml:"harmony_chords"`
}

func Analyze(config *model.Config) Report {
	r := Report{
		Seed:      config.Seed,
		Steps:     Length(config),
		Durations: make(map[uint32]int),
	}

	var melodyItems sink.Recorder
	WriteMelody(config, &melodyItems)
	var lowest, highest pitch.Pitch
	for _, item := range melodyItems.Items {
		if item.IsRest() {
			r.MelodyRest += item.Duration
			continue
		}
		p := item.Pitches[0]
		if r.MelodyNotes == 0 || p < lowest {
			lowest = p
		}
		if r.MelodyNotes == 0 || p > highest {
			highest = p
		}
		r.MelodyNotes += 1
		r.Durations[item.Duration] += 1
	}
	r.Lowest, r.Highest = lowest.String(), highest.String()

	var harmonyItems sink.Recorder
	WriteHarmony(config, &harmonyItems)
	r.HarmonyEvents = len(harmonyItems.Items)
	r.HarmonyChords = measureChords(harmonyItems.Items)
	return r
}

func measureChords(items []sink.Item) []string {
	seen := make(map[string]bool)
	var order []string
	var sounding []pitch.Pitch
	var filled uint32
	for _, item := range items {
		sounding = append(sounding, item.Pitches...)
		filled += item.Duration
		if filled < constants.MeasureSteps {
			continue
		}
		key := chord.Key(unique(sounding))
		if !seen[key] {
			seen[key] = true
			order = append(order, key)
		}
		sounding, filled = nil, 0
	}
	return order
}

func unique(pitches []pitch.Pitch) []pitch.Pitch {
	set := make(map[pitch.Pitch]bool)
	for _, p := range pitches {
		set[p] = true
	}
	return util.GetSortedKeys(set)
}
