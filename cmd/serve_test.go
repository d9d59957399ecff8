package cmd_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/jsphweid/harmonwalk/cmd"
	"github.com/jsphweid/harmonwalk/config"
	"github.com/jsphweid/harmonwalk/logger"
	"github.com/jsphweid/harmonwalk/midi"
	"github.com/jsphweid/harmonwalk/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, target string) (*http.Response, []byte) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	cmd.NewRouter(config.Builtin(), logger.Nop()).ServeHTTP(w, req)

	resp := w.Result()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestComposeText(t *testing.T) {
	resp, body := get(t, "/compose?seed=42&harmony=mirror")

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)
	assert.Equal("42", resp.Header.Get("X-Seed"))
	assert.NotEmpty(resp.Header.Get("X-Run-Id"))
	assert.True(strings.HasPrefix(string(body), "\n\\version \"2.24.1\""))

	_, again := get(t, "/compose?seed=42&harmony=mirror")
	assert.Equal(body, again)

	_, other := get(t, "/compose?seed=42&harmony=triples")
	assert.NotEqual(body, other)
}

func TestComposeMidi(t *testing.T) {
	resp, body := get(t, "/compose?seed=7&preset=2&repeat=2&format=midi")

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)
	assert.Equal("audio/midi", resp.Header.Get("Content-Type"))

	s, err := midi.Read(bytes.NewReader(body))
	require.NoError(t, err)
	summary := midi.Decode(s)
	assert.InDelta(96.0, summary.Tempo, 0.01)
	require.Len(t, summary.Tracks, 3)
	assert.Equal(uint64(512), summary.Tracks[0].Length)
}

func TestComposeDrawsASeed(t *testing.T) {
	resp, _ := get(t, "/compose")
	assert.Equal(t, 200, resp.StatusCode)
	_, err := strconv.ParseUint(resp.Header.Get("X-Seed"), 10, 64)
	assert.NoError(t, err)
}

func TestComposeLogsTheDrawnSeedToItsLogger(t *testing.T) {
	log, recorded := logger.NewTestLogger()
	req := httptest.NewRequest(http.MethodGet, "/compose", nil)
	w := httptest.NewRecorder()
	cmd.NewRouter(config.Builtin(), log).ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)

	drawn := recorded.FilterMessage("drew a random seed").All()
	require.Len(t, drawn, 1)
	assert.Equal(t, w.Header().Get("X-Seed"), strconv.FormatUint(drawn[0].ContextMap()["seed"].(uint64), 10))
}

func TestComposeBadRequests(t *testing.T) {
	for target, detail := range map[string]string{
		"/compose?format=wav":          "format must be ly or midi",
		"/compose?preset=9":            "unknown preset",
		"/compose?harmony=polka":       "unknown harmony",
		"/compose?tempo=fast":          "tempo bad value",
		"/compose?harmony-base=-7":     "multiples of 12",
		"/compose?velocity=0&seed=1":   "velocity",
		"/compose?min-len=3&max-len=2": "min_len <= max_len",
		"/compose?seed=1&gravity=5":    "gravity",
		"/compose?drag=-1":             "drag",
		"/compose?nudge=Inf":           "nudge",
	} {
		resp, body := get(t, target)
		assert.Equal(t, 400, resp.StatusCode, target)

		var res model.ErrorResponse
		require.NoError(t, json.Unmarshal(body, &res), target)
		assert.Contains(t, res.Error, detail, target)
	}
}

func TestPresets(t *testing.T) {
	resp, body := get(t, "/presets")
	assert.Equal(t, 200, resp.StatusCode)

	var presets map[string]model.Config
	require.NoError(t, json.Unmarshal(body, &presets))
	assert.Equal(t, config.Builtin(), config.Presets(presets))
}

func TestWrongMethod(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/compose", nil)
	w := httptest.NewRecorder()
	cmd.NewRouter(config.Builtin(), logger.Nop()).ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
