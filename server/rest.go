package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/umputun/agentui/pkg/demo"
	"github.com/umputun/agentui/pkg/settings"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// listAgentsHandler returns the agent catalog
func (s *Server) listAgentsHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, demo.Agents())
}

// getAgentGatewayHandler returns current gateway settings
func (s *Server) getAgentGatewayHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.settings.Get())
}

// updateAgentGatewayHandler merges a partial JSON payload into gateway settings and
// returns the merged record
func (s *Server) updateAgentGatewayHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("[WARN] can't read agent gateway payload: %v", err)
		renderError(w, r, settings.ErrBadRequest, http.StatusBadRequest)
		return
	}

	patch, err := settings.ParsePatch(body)
	if err != nil {
		log.Printf("[DEBUG] rejected agent gateway payload: %v", err)
		renderError(w, r, settings.ErrBadRequest, http.StatusBadRequest)
		return
	}

	rec := s.settings.Update(r.Context(), patch)
	log.Printf("[INFO] agent gateway settings updated, enabled=%v, auth=%s", rec.Enabled, rec.AuthMode)
	renderJSON(w, r, http.StatusOK, rec)
}

// agentGatewayHistoryHandler returns recent settings revisions, newest first
func (s *Server) agentGatewayHistoryHandler(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l < 1 {
			renderError(w, r, errors.New("invalid limit"), http.StatusBadRequest)
			return
		}
		limit = min(l, maxHistoryLimit)
	}

	revs, err := s.settings.History(r.Context(), limit)
	if err != nil {
		log.Printf("[ERROR] failed to load settings history: %v", err)
		renderError(w, r, errors.New("failed to load history"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, revs)
}

// clusterHandler returns a freshly generated cluster snapshot
func (s *Server) clusterHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.cluster.Snapshot())
}

// organizationsHandler returns organizations of the current user
func (s *Server) organizationsHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, demo.Organizations())
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON, {"message": "..."}
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	if errors.Is(err, settings.ErrBadRequest) {
		errMsg = "Invalid request"
	}
	renderJSON(w, r, code, map[string]string{"message": errMsg})
}
