package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"orgpulse/internal/model"
	"orgpulse/internal/service"
)

// AnswerHandler handles answer submission and listing
type AnswerHandler struct {
	answerSvc *service.AnswerService
}

// NewAnswerHandler creates a new answer handler
func NewAnswerHandler(answerSvc *service.AnswerService) *AnswerHandler {
	return &AnswerHandler{answerSvc: answerSvc}
}

// Submit handles POST /v1/surveys/{surveyId}/answers (public)
func (h *AnswerHandler) Submit(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	var req model.SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "answers is required")
		return
	}

	answer, err := h.answerSvc.Submit(r.Context(), surveyID, &req)
	if errors.Is(err, service.ErrSurveyNotFound) {
		writeError(w, http.StatusNotFound, "survey not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"answerId":   answer.ID,
		"totalScore": answer.TotalScore,
	})
}

// List handles GET /v1/surveys/{surveyId}/answers
func (h *AnswerHandler) List(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	filter := &model.AnswerFilter{}
	q := r.URL.Query()
	if dept := q.Get("department"); dept != "" {
		filter.Department = &dept
	}
	if pos := q.Get("position"); pos != "" {
		filter.Position = &pos
	}
	if orgs, ok := q["organizationId"]; ok {
		filter.OrganizationIDs = orgs
	}

	answers, err := h.answerSvc.List(r.Context(), surveyID, filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"answers": answers})
}
