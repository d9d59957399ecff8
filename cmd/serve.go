package cmd

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jsphweid/harmonwalk/config"
	"github.com/jsphweid/harmonwalk/midi"
	"github.com/jsphweid/harmonwalk/model"
	"github.com/jsphweid/harmonwalk/score"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default $HARMONWALK_ADDR or :8080)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves compositions over HTTP",
	Long:  `Serves GET /compose and GET /presets.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		presets, err := loadPresets()
		if err != nil {
			return err
		}
		addr := serveAddr
		if addr == "" {
			addr = env.Addr
		}
		log.Infow("listening", "addr", addr)
		return http.ListenAndServe(addr, NewRouter(presets, log))
	},
}

type server struct {
	presets config.Presets
	log     *zap.SugaredLogger
}

// NewRouter builds the HTTP handler. Every request composes from scratch.
func NewRouter(presets config.Presets, log *zap.SugaredLogger) http.Handler {
	s := &server{presets: presets, log: log}

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/compose", s.handleCompose).Methods("GET")
	router.HandleFunc("/presets", s.handlePresets).Methods("GET")

	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet},
		ExposedHeaders: []string{"X-Run-Id", "X-Seed"},
	}).Handler(router)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func (s *server) handleCompose(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	format := query.Get("format")
	if format == "" {
		format = "ly"
	}
	if format != "ly" && format != "midi" {
		writeError(w, http.StatusBadRequest, errors.New("format must be ly or midi"))
		return
	}

	preset := query.Get("preset")
	if preset == "" {
		preset = defaultPreset()
	}
	c, err := resolveConfig(s.presets, preset, func(name string) (string, bool) {
		if !query.Has(name) {
			return "", false
		}
		return query.Get(name), true
	}, s.log)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	sc := score.Compose(&c, s.log)
	w.Header().Set("X-Run-Id", sc.RunID)
	w.Header().Set("X-Seed", strconv.FormatUint(c.Seed, 10))

	if format == "ly" {
		w.Header().Set("Content-Type", "text/x-lilypond; charset=utf-8")
		w.Write([]byte(sc.Text))
		return
	}

	data, err := midi.Bytes(sc.Midi)
	if err != nil {
		s.log.Errorw("could not encode midi", "run", sc.RunID, "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "audio/midi")
	w.Write(data)
}

func (s *server) handlePresets(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.presets)
}
