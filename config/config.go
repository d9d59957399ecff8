package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/jsphweid/harmonwalk/constants"
	"github.com/jsphweid/harmonwalk/model"
	"github.com/jsphweid/harmonwalk/util"
	"github.com/kelseyhightower/envconfig"
)

var (
	ErrUnknownPreset  = errors.New("unknown preset")
	ErrUnknownHarmony = errors.New("unknown harmony")
	ErrUnknownRhythm  = errors.New("unknown rhythm")
	ErrHarmonyBase    = errors.New("harmony can only be adjusted by multiples of 12")
	ErrVelocity       = errors.New("velocity must be within 1-127")
	ErrLengths        = errors.New("note lengths must satisfy 0 < min_len <= max_len")
	ErrRepeat         = errors.New("repeat must be at least 1")
	ErrTempo          = errors.New("tempo must be at least 1")
	ErrSteady         = errors.New("steady must be positive")
	ErrGravity        = errors.New("gravity must be within [0, 4)")
	ErrDrag           = errors.New("drag must be within [0, 1]")
	ErrNudge          = errors.New("nudge must be finite and not negative")
	ErrStutter        = errors.New("stutter must be within [0, 1]")
)

// Env holds the defaults that can be set from HARMONWALK_* variables.
type Env struct {
	Preset   string `default:"1"`
	Presets  string
	OutDir   string `split_words:"true" default:"./out"`
	LogLevel string `split_words:"true" default:"info"`
	Addr     string `default:":8080"`
	Seed     *uint64
}

func ProvideEnv() (Env, error) {
	var env Env
	if err := envconfig.Process("harmonwalk", &env); err != nil {
		return env, fmt.Errorf("could not read environment: %w", err)
	}
	if env.OutDir == "" {
		env.OutDir = constants.DefaultOutDir
	}
	return env, nil
}

var version1 = model.Config{
	Harmony:     model.Quarter,
	Rhythm:      model.Sinusoidal,
	Tempo:       80,
	MinLen:      1.0,
	MaxLen:      4.0,
	HarmonyBase: -12,
	MelodyBase:  12,
	Steady:      math.Pi,
	Gravity:     0.15,
	Drag:        0.22,
	Nudge:       1.5,
	Stutter:     0.05,
	Repeat:      1,
	Velocity:    100,
}

// Presets maps a preset name to a complete configuration, minus the seed.
type Presets map[string]model.Config

func Builtin() Presets {
	v1_1 := version1
	v1_1.Harmony = model.CenterEighths
	v1_1.MinLen = 1.15
	v1_1.MaxLen = 3.5

	v2 := version1
	v2.Harmony = model.Mirror
	v2.Rhythm = model.Sawtooth
	v2.Tempo = 96
	v2.MinLen = 1.0
	v2.MaxLen = 3.0
	v2.Steady = 2

	return Presets{
		"1":   version1,
		"1.1": v1_1,
		"2":   v2,
	}
}

func (p Presets) Get(name string) (model.Config, error) {
	c, ok := p[name]
	if !ok {
		return model.Config{}, fmt.Errorf("%w %q", ErrUnknownPreset, name)
	}
	return c, nil
}

func (p Presets) Names() []string {
	return util.GetSortedKeys(p)
}

type presetFile struct {
	Presets map[string]map[string]any `yaml:"presets"`
}

// LoadPresets adds the presets defined in a YAML file. Each one starts from
// the preset named by its "extends" key ("1" if missing) and overrides only
// the fields it sets.
func (p Presets) LoadPresets(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read presets: %w", err)
	}
	return p.ParsePresets(data)
}

func (p Presets) ParsePresets(data []byte) error {
	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("could not parse presets: %w", err)
	}

	// extends may point at a preset defined in the same file, so resolve in
	// dependency order
	pending := file.Presets
	for len(pending) > 0 {
		progressed := false
		for _, name := range util.GetSortedKeys(pending) {
			fields := pending[name]
			extends := "1"
			if e, ok := fields["extends"].(string); ok {
				extends = e
			}
			base, ok := p[extends]
			if !ok {
				if _, later := pending[extends]; later && extends != name {
					continue
				}
				return fmt.Errorf("preset %q extends %w %q", name, ErrUnknownPreset, extends)
			}
			delete(fields, "extends")
			overrides, err := yaml.Marshal(fields)
			if err != nil {
				return fmt.Errorf("preset %q: %w", name, err)
			}
			if err := yaml.Unmarshal(overrides, &base); err != nil {
				return fmt.Errorf("preset %q: %w", name, err)
			}
			p[name] = base
			delete(pending, name)
			progressed = true
		}
		if !progressed {
			return fmt.Errorf("presets %v extend each other", util.GetSortedKeys(pending))
		}
	}
	return nil
}

func Validate(c *model.Config) error {
	if _, ok := model.ParseHarmonyStyle(c.Harmony.String()); !ok {
		return fmt.Errorf("%w %v", ErrUnknownHarmony, c.Harmony)
	}
	if _, ok := model.ParseRhythmStyle(c.Rhythm.String()); !ok {
		return fmt.Errorf("%w %v", ErrUnknownRhythm, c.Rhythm)
	}
	if c.HarmonyBase%12 != 0 {
		return fmt.Errorf("%w, got %d", ErrHarmonyBase, c.HarmonyBase)
	}
	if c.Velocity == 0 || c.Velocity > 127 {
		return fmt.Errorf("%w, got %d", ErrVelocity, c.Velocity)
	}
	if !(c.MinLen > 0 && c.MinLen <= c.MaxLen && !math.IsInf(c.MaxLen, 1)) {
		return fmt.Errorf("%w, got %v and %v", ErrLengths, c.MinLen, c.MaxLen)
	}
	if c.Repeat < 1 {
		return ErrRepeat
	}
	if c.Tempo < 1 {
		return ErrTempo
	}
	if !(c.Steady > 0 && !math.IsInf(c.Steady, 1)) {
		return fmt.Errorf("%w, got %v", ErrSteady, c.Steady)
	}
	// past a gravity of 4 the walk overshoots further on every step, even
	// without drag
	if !(c.Gravity >= 0 && c.Gravity < 4) {
		return fmt.Errorf("%w, got %v", ErrGravity, c.Gravity)
	}
	if !(c.Drag >= 0 && c.Drag <= 1) {
		return fmt.Errorf("%w, got %v", ErrDrag, c.Drag)
	}
	if !(c.Nudge >= 0 && !math.IsInf(c.Nudge, 1)) {
		return fmt.Errorf("%w, got %v", ErrNudge, c.Nudge)
	}
	if !(c.Stutter >= 0 && c.Stutter <= 1) {
		return fmt.Errorf("%w, got %v", ErrStutter, c.Stutter)
	}
	return nil
}
