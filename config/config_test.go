package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/harmonwalk/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinPresets(t *testing.T) {
	presets := Builtin()
	assert := assert.New(t)
	assert.Equal([]string{"1", "1.1", "2"}, presets.Names())

	v1, err := presets.Get("1")
	require.NoError(t, err)
	assert.Equal(model.Quarter, v1.Harmony)
	assert.Equal(math.Pi, v1.Steady)
	assert.Equal(-12, v1.HarmonyBase)

	v1_1, err := presets.Get("1.1")
	require.NoError(t, err)
	assert.Equal(model.CenterEighths, v1_1.Harmony)
	assert.Equal(1.15, v1_1.MinLen)
	assert.Equal(3.5, v1_1.MaxLen)
	assert.Equal(v1.Gravity, v1_1.Gravity)

	for _, name := range presets.Names() {
		c, _ := presets.Get(name)
		assert.NoError(Validate(&c), name)
	}
}

func TestGetUnknownPreset(t *testing.T) {
	_, err := Builtin().Get("3")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestParsePresetsOverridesOnlyGivenFields(t *testing.T) {
	presets := Builtin()
	err := presets.ParsePresets([]byte(`
presets:
  slow:
    extends: "1.1"
    tempo: 60
    harmony: quarter-chords
  slower:
    extends: slow
    tempo: 40
    rhythm: sawtooth
  plain:
    nudge: 0.5
`))
	require.NoError(t, err)

	assert := assert.New(t)
	slow, err := presets.Get("slow")
	require.NoError(t, err)
	assert.Equal(uint32(60), slow.Tempo)
	assert.Equal(model.QuarterChords, slow.Harmony)
	assert.Equal(1.15, slow.MinLen)

	slower, err := presets.Get("slower")
	require.NoError(t, err)
	assert.Equal(uint32(40), slower.Tempo)
	assert.Equal(model.Sawtooth, slower.Rhythm)
	assert.Equal(model.QuarterChords, slower.Harmony)

	plain, err := presets.Get("plain")
	require.NoError(t, err)
	assert.Equal(0.5, plain.Nudge)
	assert.Equal(model.Quarter, plain.Harmony)
}

func TestParsePresetsErrors(t *testing.T) {
	cases := map[string]string{
		"unknown base": "presets:\n  a:\n    extends: nope\n",
		"cycle":        "presets:\n  a:\n    extends: b\n  b:\n    extends: a\n",
		"bad harmony":  "presets:\n  a:\n    harmony: polka\n",
		"not yaml":     "presets: [",
		"wrong type":   "presets:\n  a:\n    tempo: fast\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, Builtin().ParsePresets([]byte(doc)))
		})
	}
}

func TestLoadPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte("presets:\n  loud:\n    velocity: 127\n"), 0644))

	presets := Builtin()
	require.NoError(t, presets.LoadPresets(path))
	loud, err := presets.Get("loud")
	require.NoError(t, err)
	assert.Equal(t, uint8(127), loud.Velocity)

	assert.Error(t, presets.LoadPresets(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(c *model.Config)
		want   error
	}{
		{"harmony base", func(c *model.Config) { c.HarmonyBase = -10 }, ErrHarmonyBase},
		{"zero velocity", func(c *model.Config) { c.Velocity = 0 }, ErrVelocity},
		{"loud velocity", func(c *model.Config) { c.Velocity = 128 }, ErrVelocity},
		{"lengths swapped", func(c *model.Config) { c.MinLen, c.MaxLen = 4, 1 }, ErrLengths},
		{"zero length", func(c *model.Config) { c.MinLen = 0 }, ErrLengths},
		{"no repeat", func(c *model.Config) { c.Repeat = 0 }, ErrRepeat},
		{"no tempo", func(c *model.Config) { c.Tempo = 0 }, ErrTempo},
		{"steady", func(c *model.Config) { c.Steady = 0 }, ErrSteady},
		{"infinite steady", func(c *model.Config) { c.Steady = math.Inf(1) }, ErrSteady},
		{"infinite max length", func(c *model.Config) { c.MaxLen = math.Inf(1) }, ErrLengths},
		{"strong gravity", func(c *model.Config) { c.Gravity = 4 }, ErrGravity},
		{"negative gravity", func(c *model.Config) { c.Gravity = -0.1 }, ErrGravity},
		{"nan gravity", func(c *model.Config) { c.Gravity = math.NaN() }, ErrGravity},
		{"negative drag", func(c *model.Config) { c.Drag = -0.5 }, ErrDrag},
		{"drag above one", func(c *model.Config) { c.Drag = 1.5 }, ErrDrag},
		{"infinite nudge", func(c *model.Config) { c.Nudge = math.Inf(1) }, ErrNudge},
		{"negative nudge", func(c *model.Config) { c.Nudge = -1 }, ErrNudge},
		{"stutter above one", func(c *model.Config) { c.Stutter = 2 }, ErrStutter},
		{"nan stutter", func(c *model.Config) { c.Stutter = math.NaN() }, ErrStutter},
		{"harmony", func(c *model.Config) { c.Harmony = 42 }, ErrUnknownHarmony},
		{"rhythm", func(c *model.Config) { c.Rhythm = 42 }, ErrUnknownRhythm},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := version1
			tc.modify(&c)
			assert.ErrorIs(t, Validate(&c), tc.want)
		})
	}

	c := version1
	c.HarmonyBase = 24
	assert.NoError(t, Validate(&c))
}

func TestProvideEnv(t *testing.T) {
	t.Setenv("HARMONWALK_PRESET", "1.1")
	t.Setenv("HARMONWALK_OUT_DIR", "/tmp/scores")
	t.Setenv("HARMONWALK_SEED", "42")

	env, err := ProvideEnv()
	require.NoError(t, err)
	assert := assert.New(t)
	assert.Equal("1.1", env.Preset)
	assert.Equal("/tmp/scores", env.OutDir)
	assert.Equal("info", env.LogLevel)
	require.NotNil(t, env.Seed)
	assert.Equal(uint64(42), *env.Seed)
}

func TestProvideEnvDefaults(t *testing.T) {
	env, err := ProvideEnv()
	require.NoError(t, err)
	assert.Equal(t, "1", env.Preset)
	assert.Equal(t, "./out", env.OutDir)
	assert.Nil(t, env.Seed)
}
