package serverapp

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"goalforge/internal/config"
	"goalforge/internal/goal"
	"goalforge/internal/httpmw"
	"goalforge/internal/plan"
	"goalforge/internal/telemetry"
)

type Options struct {
	Config  *config.Config
	DataDir string
	Logger  *log.Logger

	// Clock overrides the wall clock; tests inject a plan.FakeClock.
	Clock plan.Clock
}

func NewHandler(opts Options) (http.Handler, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if strings.TrimSpace(opts.DataDir) == "" {
		opts.DataDir = opts.Config.Server.DataDir
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Clock == nil {
		opts.Clock = plan.RealClock{}
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "goalforge",
			"time":    opts.Clock.Now().UTC().Format(time.RFC3339),
		})
	})

	goalRepo, err := goal.NewFileRepo(opts.DataDir)
	if err != nil {
		return nil, err
	}

	events := telemetry.NewMemoryRepository()
	goalHandler := goal.NewHandler(goalRepo, events, opts.Config.Planning.ToPlanningConfig(), opts.Clock)
	goalHandler.Register(mux)

	mux.HandleFunc("GET /api/events", func(w http.ResponseWriter, r *http.Request) {
		since := time.Time{}
		if v := strings.TrimSpace(r.URL.Query().Get("since")); v != "" {
			t, err := time.Parse(time.RFC3339, v)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]any{"error": "since must be RFC3339"})
				return
			}
			since = t
		}
		var types []telemetry.EventType
		for _, v := range r.URL.Query()["type"] {
			if v = strings.TrimSpace(v); v != "" {
				types = append(types, telemetry.EventType(v))
			}
		}
		evs, err := events.GetEvents(since, types)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, evs)
	})

	return httpmw.Chain(mux,
		httpmw.WithRequestID,
		httpmw.WithRecover(opts.Logger),
		httpmw.WithAccessLog(opts.Logger),
	), nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
