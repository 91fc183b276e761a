package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/leftweet/nextgamesnippet/internal/calendar"
	"github.com/leftweet/nextgamesnippet/internal/logger"
	"github.com/leftweet/nextgamesnippet/internal/snippet"
	"github.com/leftweet/nextgamesnippet/internal/team"
)

// Service is the lookup pipeline behind the handlers. *snippet.Service satisfies it.
type Service interface {
	Directory() *team.Directory
	SummaryEnabled() bool
	Lookup(ctx context.Context, query string, withSummary bool) (*snippet.Report, error)
}

// Handler contains dependencies for HTTP handlers
type Handler struct {
	svc Service
}

// NewHandler creates a new handler
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Index renders the empty form
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, h.newPage())
}

// Lookup handles a form submission. Every outcome re-renders the page.
func (h *Handler) Lookup(w http.ResponseWriter, r *http.Request) {
	page := h.newPage()

	if err := r.ParseForm(); err != nil {
		page.Error = "Could not read the form submission."
		h.render(w, http.StatusBadRequest, page)
		return
	}

	selected := r.PostFormValue("team")
	page.Selected = selected

	if _, ok := h.svc.Directory().ByName(selected); !ok {
		page.Error = snippet.UserMessage(team.ErrUnknownTeam)
		h.render(w, http.StatusBadRequest, page)
		return
	}

	report, err := h.svc.Lookup(r.Context(), selected, true)
	if err != nil {
		page.Error = snippet.UserMessage(err)
		h.render(w, http.StatusBadGateway, page)
		return
	}

	page.Report = report
	page.Fields = rowFields(report)
	page.Warning = report.Warning
	h.render(w, http.StatusOK, page)
}

// Teams returns the team directory
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Directory().All())
}

// NextGame returns the lookup report for ?team=, with a summary when ?summary=true
func (h *Handler) NextGame(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("team")
	if query == "" {
		respondError(w, http.StatusBadRequest, "team query parameter is required", nil)
		return
	}

	withSummary := false
	if raw := r.URL.Query().Get("summary"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "summary must be a boolean", err)
			return
		}
		withSummary = parsed
	}

	report, err := h.svc.Lookup(r.Context(), query, withSummary)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, team.ErrUnknownTeam) {
			status = http.StatusNotFound
		}
		respondError(w, status, snippet.UserMessage(err), err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// NextGameICS returns the next game for ?team= as an iCalendar file
func (h *Handler) NextGameICS(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("team")
	if query == "" {
		respondError(w, http.StatusBadRequest, "team query parameter is required", nil)
		return
	}

	report, err := h.svc.Lookup(r.Context(), query, false)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, team.ErrUnknownTeam) {
			status = http.StatusNotFound
		}
		respondError(w, status, snippet.UserMessage(err), err)
		return
	}

	ics, err := calendar.GenerateICS(report.Game, report.Team, time.Now())
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "The next game has no calendar date", err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s-next-game.ics"`, strings.ToLower(report.Team.Abbreviation)))
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, ics)
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":          "healthy",
		"service":         "nextgame",
		"summary_enabled": h.svc.SummaryEnabled(),
	})
}

// Metrics returns the in-memory counters and timings
func (h *Handler) Metrics(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, logger.MetricsSnapshot())
}

func (h *Handler) newPage() *pageData {
	return &pageData{
		Teams:          h.svc.Directory().All(),
		SummaryEnabled: h.svc.SummaryEnabled(),
	}
}

func (h *Handler) render(w http.ResponseWriter, status int, page *pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, page); err != nil {
		logger.Error("Rendering page failed", nil, err)
	}
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}
	if err != nil {
		response["details"] = err.Error()
	}
	respondJSON(w, status, response)
}
