package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"orgpulse/internal/service"
	"orgpulse/internal/stats"
)

// StatsHandler handles dashboard aggregation endpoints
type StatsHandler struct {
	statsSvc *service.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsSvc *service.StatsService) *StatsHandler {
	return &StatsHandler{statsSvc: statsSvc}
}

func dimensionParam(r *http.Request) stats.Dimension {
	d := r.URL.Query().Get("dimension")
	if d == "" {
		d = string(stats.DimensionDepartment)
	}
	return stats.Dimension(d)
}

func writeStatsError(w http.ResponseWriter, err error) {
	if errors.Is(err, stats.ErrInvalidDimension) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if errors.Is(err, service.ErrSurveyNotFound) {
		writeError(w, http.StatusNotFound, "survey not found")
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

// Groups handles GET /v1/surveys/{surveyId}/stats/groups
func (h *StatsHandler) Groups(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	groups, err := h.statsSvc.GroupStats(r.Context(), surveyID, dimensionParam(r))
	if err != nil {
		writeStatsError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"groups": groups})
}

// Questions handles GET /v1/surveys/{surveyId}/stats/questions
func (h *StatsHandler) Questions(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	var department, position *string
	if d := r.URL.Query().Get("department"); d != "" {
		department = &d
	}
	if p := r.URL.Query().Get("position"); p != "" {
		position = &p
	}

	scores, err := h.statsSvc.PerQuestionScores(r.Context(), surveyID, department, position)
	if err != nil {
		writeStatsError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"questions": scores})
}

// Line handles GET /v1/surveys/{surveyId}/stats/line
func (h *StatsHandler) Line(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]
	q := r.URL.Query()

	var questionIDs []string
	if raw := q.Get("questionIds"); raw != "" {
		questionIDs = strings.Split(raw, ",")
	}
	includeTotal := q.Get("includeTotal") != "false"

	series, err := h.statsSvc.LineSeries(r.Context(), surveyID, dimensionParam(r), questionIDs, includeTotal)
	if err != nil {
		writeStatsError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, series)
}

// Distribution handles GET /v1/surveys/{surveyId}/stats/distribution
func (h *StatsHandler) Distribution(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]
	orgIDs := r.URL.Query()["organizationId"]

	dist, err := h.statsSvc.OptionDistribution(r.Context(), surveyID, dimensionParam(r), orgIDs)
	if err != nil {
		writeStatsError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"questions": dist})
}

// Pie handles GET /v1/surveys/{surveyId}/stats/pie
func (h *StatsHandler) Pie(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]
	q := r.URL.Query()

	questionID := q.Get("questionId")
	if questionID == "" {
		writeError(w, http.StatusBadRequest, "questionId is required")
		return
	}
	optionText := q.Get("option")
	if optionText == "" {
		writeError(w, http.StatusBadRequest, "option is required")
		return
	}
	includeUnanswered := q.Get("includeUnanswered") == "true"

	pie, err := h.statsSvc.PieOptionDistribution(r.Context(), surveyID, questionID, optionText, dimensionParam(r), includeUnanswered)
	if err != nil {
		writeStatsError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pie)
}
