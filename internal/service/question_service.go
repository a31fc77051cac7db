package service

import (
	"context"
	"errors"

	"orgpulse/internal/model"
	"orgpulse/internal/repository"
	"orgpulse/internal/stats"
)

var ErrQuestionNotFound = errors.New("question not found")

// QuestionService handles question CRUD with structural validation.
// Conditional questions are checked both on their own (type/option
// pairing, parent/trigger pairing) and against the survey's question
// set (parent must exist, no dependency cycles).
type QuestionService struct {
	questionRepo repository.QuestionRepo
	surveyRepo   repository.SurveyRepo
}

// NewQuestionService creates a new question service
func NewQuestionService(questionRepo repository.QuestionRepo, surveyRepo repository.SurveyRepo) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		surveyRepo:   surveyRepo,
	}
}

// Create validates and stores a new question
func (s *QuestionService) Create(ctx context.Context, question *model.Question) (string, error) {
	if err := stats.ValidateQuestion(question); err != nil {
		return "", err
	}

	survey, err := s.surveyRepo.GetByID(ctx, question.SurveyID)
	if err != nil {
		return "", err
	}
	if survey == nil {
		return "", ErrSurveyNotFound
	}

	siblings, err := s.questionRepo.GetBySurveyID(ctx, question.SurveyID)
	if err != nil {
		return "", err
	}
	if err := stats.ValidateQuestionGraph(append(siblings, *question)); err != nil {
		return "", err
	}

	return s.questionRepo.Create(ctx, question)
}

// GetByID retrieves a question by ID
func (s *QuestionService) GetByID(ctx context.Context, id string) (*model.Question, error) {
	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}
	return question, nil
}

// ListBySurvey returns the survey's questions in display order
func (s *QuestionService) ListBySurvey(ctx context.Context, surveyID string) ([]model.Question, error) {
	return s.questionRepo.GetBySurveyID(ctx, surveyID)
}

// Update validates and stores changes to an existing question
func (s *QuestionService) Update(ctx context.Context, question *model.Question) error {
	if err := stats.ValidateQuestion(question); err != nil {
		return err
	}

	existing, err := s.questionRepo.GetByID(ctx, question.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrQuestionNotFound
	}

	siblings, err := s.questionRepo.GetBySurveyID(ctx, existing.SurveyID)
	if err != nil {
		return err
	}
	// Re-check the graph with the updated question in place of the old one.
	graph := make([]model.Question, 0, len(siblings))
	for _, q := range siblings {
		if q.ID == question.ID {
			continue
		}
		graph = append(graph, q)
	}
	question.SurveyID = existing.SurveyID
	if err := stats.ValidateQuestionGraph(append(graph, *question)); err != nil {
		return err
	}

	return s.questionRepo.Update(ctx, question)
}

// Delete removes a question
func (s *QuestionService) Delete(ctx context.Context, id string) error {
	return s.questionRepo.Delete(ctx, id)
}
