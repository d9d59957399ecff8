package cmd

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/jsphweid/harmonwalk/config"
	"github.com/jsphweid/harmonwalk/model"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errBadValue = errors.New("bad value")

// field is one Config setting that can be overridden by name, both as a
// command flag and as a query parameter.
type field struct {
	name  string
	usage string
	set   func(c *model.Config, v string) error
}

func parseFloat(dst *float64) func(string) error {
	return func(v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*dst = f
		return nil
	}
}

func parseUint(dst any, bits int) func(string) error {
	return func(v string) error {
		n, err := strconv.ParseUint(v, 10, bits)
		if err != nil {
			return err
		}
		switch d := dst.(type) {
		case *uint8:
			*d = uint8(n)
		case *uint32:
			*d = uint32(n)
		case *uint64:
			*d = n
		}
		return nil
	}
}

func parseInt(dst *int) func(string) error {
	return func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*dst = n
		return nil
	}
}

var fields = []field{
	{"harmony", "harmony style", func(c *model.Config, v string) error {
		h, ok := model.ParseHarmonyStyle(v)
		if !ok {
			return fmt.Errorf("%w %q", config.ErrUnknownHarmony, v)
		}
		c.Harmony = h
		return nil
	}},
	{"rhythm", "rhythm style", func(c *model.Config, v string) error {
		r, ok := model.ParseRhythmStyle(v)
		if !ok {
			return fmt.Errorf("%w %q", config.ErrUnknownRhythm, v)
		}
		c.Rhythm = r
		return nil
	}},
	{"tempo", "beats per minute", func(c *model.Config, v string) error {
		return parseUint(&c.Tempo, 32)(v)
	}},
	{"min-len", "shortest note length in steps, before stutter", func(c *model.Config, v string) error {
		return parseFloat(&c.MinLen)(v)
	}},
	{"max-len", "longest note length in steps, before stutter", func(c *model.Config, v string) error {
		return parseFloat(&c.MaxLen)(v)
	}},
	{"harmony-base", "lowest harmony pitch, a multiple of 12", func(c *model.Config, v string) error {
		return parseInt(&c.HarmonyBase)(v)
	}},
	{"melody-base", "center of the melody", func(c *model.Config, v string) error {
		return parseInt(&c.MelodyBase)(v)
	}},
	{"steady", "how slowly the note speed changes", func(c *model.Config, v string) error {
		return parseFloat(&c.Steady)(v)
	}},
	{"gravity", "pull of the melody toward its center", func(c *model.Config, v string) error {
		return parseFloat(&c.Gravity)(v)
	}},
	{"drag", "decay of the melody's velocity", func(c *model.Config, v string) error {
		return parseFloat(&c.Drag)(v)
	}},
	{"nudge", "random push on the melody", func(c *model.Config, v string) error {
		return parseFloat(&c.Nudge)(v)
	}},
	{"stutter", "random push on the note speed", func(c *model.Config, v string) error {
		return parseFloat(&c.Stutter)(v)
	}},
	{"repeat", "number of 16 measure repetitions", func(c *model.Config, v string) error {
		return parseUint(&c.Repeat, 32)(v)
	}},
	{"velocity", "MIDI key-on velocity", func(c *model.Config, v string) error {
		return parseUint(&c.Velocity, 8)(v)
	}},
	{"seed", "random seed, drawn at random if unset", func(c *model.Config, v string) error {
		return parseUint(&c.Seed, 64)(v)
	}},
}

// resolveConfig starts from a preset and applies every override that was
// given. lookup reports the raw value of a field and whether it was set.
func resolveConfig(presets config.Presets, preset string, lookup func(name string) (string, bool), log *zap.SugaredLogger) (model.Config, error) {
	c, err := presets.Get(preset)
	if err != nil {
		return c, err
	}

	seeded := false
	for _, f := range fields {
		v, ok := lookup(f.name)
		if !ok {
			continue
		}
		if err := f.set(&c, v); err != nil {
			if errors.Is(err, config.ErrUnknownHarmony) || errors.Is(err, config.ErrUnknownRhythm) {
				return c, err
			}
			return c, fmt.Errorf("%s %w %q: %v", f.name, errBadValue, v, err)
		}
		seeded = seeded || f.name == "seed"
	}

	if !seeded {
		if env.Seed != nil {
			c.Seed = *env.Seed
		} else {
			c.Seed = rand.Uint64()
			log.Infow("drew a random seed", "seed", c.Seed)
		}
	}
	return c, config.Validate(&c)
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().String("preset", "", "preset to start from (default $HARMONWALK_PRESET or 1)")
	for _, f := range fields {
		cmd.Flags().String(f.name, "", f.usage)
	}
}

func configFromFlags(cmd *cobra.Command) (model.Config, error) {
	presets, err := loadPresets()
	if err != nil {
		return model.Config{}, err
	}

	preset := defaultPreset()
	if cmd.Flags().Changed("preset") {
		preset, _ = cmd.Flags().GetString("preset")
	}
	return resolveConfig(presets, preset, func(name string) (string, bool) {
		if !cmd.Flags().Changed(name) {
			return "", false
		}
		v, err := cmd.Flags().GetString(name)
		return v, err == nil
	}, log)
}

func defaultPreset() string {
	if env.Preset == "" {
		return "1"
	}
	return env.Preset
}
