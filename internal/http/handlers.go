package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	appteams "football-team-service/internal/app/teams"
	domainteams "football-team-service/internal/domain/teams"
	"football-team-service/internal/logging"
	"football-team-service/internal/metrics"
)

// Handler wires HTTP routes to the teams service.
type Handler struct {
	svc     *appteams.Service
	logger  *slog.Logger
	metrics *metrics.Recorder
	readyFn func() bool
}

// NewHandler constructs a Handler. readyFn may be nil, in which case the
// service is always reported ready.
func NewHandler(svc *appteams.Service, logger *slog.Logger, recorder *metrics.Recorder, readyFn func() bool) *Handler {
	return &Handler{
		svc:     svc,
		logger:  logger,
		metrics: recorder,
		readyFn: readyFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.readyFn != nil && !h.readyFn() {
		writeError(w, nethttp.StatusServiceUnavailable, "not ready", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// AddTeam registers a new team record from the request body.
func (h *Handler) AddTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	var team domainteams.Team
	if err := json.NewDecoder(r.Body).Decode(&team); err != nil {
		writeError(w, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	logger := logging.FromContext(r.Context(), h.logger)

	confirmation, err := h.svc.Add(team)
	if err != nil {
		if errors.Is(err, appteams.ErrTeamExists) {
			h.metrics.RecordAdd(true)
			writeError(w, nethttp.StatusConflict, "team already exists", h.logger)
			return
		}
		writeError(w, nethttp.StatusInternalServerError, "failed to add team", h.logger)
		return
	}
	h.metrics.RecordAdd(false)

	logging.Info(logger, "team added", logging.FieldTeam, team.TeamName)
	writeText(w, nethttp.StatusCreated, confirmation, h.logger)
}

// TeamByName returns the team registered under the path's team name.
func (h *Handler) TeamByName(w nethttp.ResponseWriter, r *nethttp.Request) {
	name := chi.URLParam(r, "teamName")
	if name == "" {
		writeError(w, nethttp.StatusBadRequest, "missing team name", h.logger)
		return
	}

	team, err := h.svc.Get(name)
	if err != nil {
		if errors.Is(err, appteams.ErrTeamNotFound) {
			h.metrics.RecordLookup(false)
			writeError(w, nethttp.StatusNotFound, "team not found", h.logger)
			return
		}
		writeError(w, nethttp.StatusInternalServerError, "failed to look up team", h.logger)
		return
	}
	h.metrics.RecordLookup(true)

	writeJSON(w, nethttp.StatusOK, team, h.logger)
}

// ListTeams returns all registered teams in insertion order.
func (h *Handler) ListTeams(w nethttp.ResponseWriter, r *nethttp.Request) {
	teams := h.svc.Teams()
	writeJSON(w, nethttp.StatusOK, domainteams.ListResponse{
		Count: len(teams),
		Teams: teams,
	}, h.logger)
}
