package service

import (
	"context"
	"errors"

	"orgpulse/internal/model"
	"orgpulse/internal/repository"
)

var ErrSurveyNotFound = errors.New("survey not found")

// SurveyService handles survey CRUD operations
type SurveyService struct {
	surveyRepo repository.SurveyRepo
}

// NewSurveyService creates a new survey service
func NewSurveyService(surveyRepo repository.SurveyRepo) *SurveyService {
	return &SurveyService{
		surveyRepo: surveyRepo,
	}
}

// Create creates a new survey
func (s *SurveyService) Create(ctx context.Context, survey *model.Survey) (string, error) {
	return s.surveyRepo.Create(ctx, survey)
}

// GetByID retrieves a survey by ID
func (s *SurveyService) GetByID(ctx context.Context, id string) (*model.Survey, error) {
	survey, err := s.surveyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}
	return survey, nil
}

// GetByAdminID retrieves all surveys for an admin
func (s *SurveyService) GetByAdminID(ctx context.Context, adminID string) ([]*model.Survey, error) {
	return s.surveyRepo.GetByAdminID(ctx, adminID)
}

// Update updates an existing survey
func (s *SurveyService) Update(ctx context.Context, survey *model.Survey) error {
	return s.surveyRepo.Update(ctx, survey)
}

// Delete deletes a survey
func (s *SurveyService) Delete(ctx context.Context, id string) error {
	return s.surveyRepo.Delete(ctx, id)
}
