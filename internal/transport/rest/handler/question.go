package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"orgpulse/internal/model"
	"orgpulse/internal/service"
	"orgpulse/internal/stats"
)

// QuestionHandler handles question endpoints
type QuestionHandler struct {
	questionSvc *service.QuestionService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionSvc *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionSvc: questionSvc}
}

// QuestionRequest is the request body for creating or updating a question
type QuestionRequest struct {
	Text             string                `json:"text" validate:"required"`
	Type             model.QuestionType    `json:"type" validate:"required"`
	Options          []model.Option        `json:"options"`
	MinScore         int                   `json:"minScore"`
	MaxScore         int                   `json:"maxScore"`
	Order            int                   `json:"order"`
	ParentQuestionID *string               `json:"parentQuestionId,omitempty"`
	TriggerOptions   []model.TriggerOption `json:"triggerOptions,omitempty"`
}

func (req *QuestionRequest) toModel() *model.Question {
	return &model.Question{
		Text:             req.Text,
		Type:             req.Type,
		Options:          req.Options,
		MinScore:         req.MinScore,
		MaxScore:         req.MaxScore,
		Order:            req.Order,
		ParentQuestionID: req.ParentQuestionID,
		TriggerOptions:   req.TriggerOptions,
	}
}

// writeQuestionError maps structural validation failures to 400s with
// the offending field named.
func writeQuestionError(w http.ResponseWriter, err error) {
	var fieldErr *stats.FieldError
	if errors.As(err, &fieldErr) {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": fieldErr.Message,
			"field": fieldErr.Field,
		})
		return
	}
	if errors.Is(err, service.ErrSurveyNotFound) {
		writeError(w, http.StatusNotFound, "survey not found")
		return
	}
	if errors.Is(err, service.ErrQuestionNotFound) {
		writeError(w, http.StatusNotFound, "question not found")
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

// Create handles POST /v1/surveys/{surveyId}/questions
func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	var req QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "text and type are required")
		return
	}

	question := req.toModel()
	question.SurveyID = surveyID

	id, err := h.questionSvc.Create(r.Context(), question)
	if err != nil {
		writeQuestionError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"questionId": id})
}

// List handles GET /v1/surveys/{surveyId}/questions
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	questions, err := h.questionSvc.ListBySurvey(r.Context(), surveyID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"questions": questions})
}

// Update handles PUT /v1/questions/{questionId}
func (h *QuestionHandler) Update(w http.ResponseWriter, r *http.Request) {
	questionID := mux.Vars(r)["questionId"]

	var req QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "text and type are required")
		return
	}

	question := req.toModel()
	question.ID = questionID

	if err := h.questionSvc.Update(r.Context(), question); err != nil {
		writeQuestionError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, question)
}

// Delete handles DELETE /v1/questions/{questionId}
func (h *QuestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	questionID := mux.Vars(r)["questionId"]

	if err := h.questionSvc.Delete(r.Context(), questionID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
