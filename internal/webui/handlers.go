package webui

import (
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"github.com/herald-hooks/herald/internal/activity"
	"github.com/herald-hooks/herald/internal/announce"
	"github.com/herald-hooks/herald/internal/config"
	"github.com/herald-hooks/herald/internal/tts"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("response encode failed")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": s.version,
	})
}

func (s *Service) handleGetSettings(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, config.Get())
}

func (s *Service) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	var settings config.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeError(w, http.StatusBadRequest, "invalid settings payload: "+err.Error())
		return
	}
	if err := config.Save(&settings); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	// Save already invalidated the cache; respond with what will now be read.
	writeJSON(w, http.StatusOK, config.Get())
}

func (s *Service) handleListActivity(w http.ResponseWriter, r *http.Request) {
	filter := activity.Filter{
		Hook:      r.URL.Query().Get("hook"),
		SessionID: r.URL.Query().Get("session"),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		filter.Limit = n
	}

	entries, err := s.recorder.List(filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"entries": entries,
		"count":   len(entries),
	})
}

func (s *Service) handleClearActivity(w http.ResponseWriter, _ *http.Request) {
	if err := s.recorder.Clear(); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// ttsTestRequest selects a backend explicitly or defers to the configured
// priority list.
type ttsTestRequest struct {
	Text    string `json:"text"`
	Backend string `json:"backend,omitempty"`
}

type ttsTestResponse struct {
	Backend    string `json:"backend"`
	Message    string `json:"message"`
	DurationMs int64  `json:"duration_ms"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
}

func (s *Service) handleTTSTest(w http.ResponseWriter, r *http.Request) {
	var req ttsTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	settings := config.Get()
	registry := tts.DefaultRegistry()
	opts := tts.Options{Voice: settings.Voice}

	var backend tts.Backend
	if req.Backend != "" {
		factory, ok := registry.Lookup(req.Backend)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown backend: "+req.Backend)
			return
		}
		backend = factory(opts)
		if !backend.Available() {
			writeError(w, http.StatusConflict, "backend not available: "+req.Backend)
			return
		}
	} else {
		backend = tts.Resolve(settings.ProviderPriority, registry, opts)
		if backend == nil {
			writeError(w, http.StatusConflict, "no speech backend available")
			return
		}
	}

	text := tts.Normalize(req.Text)
	err := announce.NewQueue(settings).Announce(r.Context(), backend, announce.Request{
		Hook: "tts-test",
		Text: text,
	})

	resp := ttsTestResponse{Backend: backend.Name(), Message: text, Success: err == nil}
	if err != nil {
		resp.Error = err.Error()
	}
	if entries, lerr := s.recorder.List(activity.Filter{Hook: "tts-test", Limit: 1}); lerr == nil && len(entries) == 1 {
		resp.DurationMs = entries[0].DurationMs
	}
	writeJSON(w, http.StatusOK, resp)
}
