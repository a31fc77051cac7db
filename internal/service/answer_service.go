package service

import (
	"context"
	"log"

	"orgpulse/internal/cache"
	"orgpulse/internal/model"
	"orgpulse/internal/repository"
	"orgpulse/internal/stats"
)

// AnswerService handles public answer submission and admin listing.
// Submission grades the response against the survey's question set and
// stores the total alongside the raw answer blob, so aggregation never
// has to re-score historical rows.
type AnswerService struct {
	answerRepo   repository.AnswerRepo
	questionRepo repository.QuestionRepo
	surveyRepo   repository.SurveyRepo
	statsCache   cache.StatsCache
	broadcaster  Broadcaster
}

// NewAnswerService creates a new answer service
func NewAnswerService(
	answerRepo repository.AnswerRepo,
	questionRepo repository.QuestionRepo,
	surveyRepo repository.SurveyRepo,
	statsCache cache.StatsCache,
) *AnswerService {
	return &AnswerService{
		answerRepo:   answerRepo,
		questionRepo: questionRepo,
		surveyRepo:   surveyRepo,
		statsCache:   statsCache,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *AnswerService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Submit grades and stores a survey response. Corrupt or empty answer
// blobs are accepted and stored with a zero total; dropping a
// respondent over a malformed value would skew the counts more than
// keeping them.
func (s *AnswerService) Submit(ctx context.Context, surveyID string, req *model.SubmitAnswerRequest) (*model.Answer, error) {
	survey, err := s.surveyRepo.GetByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}

	questions, err := s.questionRepo.GetBySurveyID(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	decoded := stats.DecodeAnswers(req.Answers)
	total := stats.TotalScoreForSurvey(questions, decoded)

	answer := &model.Answer{
		SurveyID:         surveyID,
		Department:       req.Department,
		Position:         req.Position,
		OrganizationID:   req.OrganizationID,
		OrganizationName: req.OrganizationName,
		Answers:          req.Answers,
		TotalScore:       &total,
	}

	if _, err := s.answerRepo.Create(ctx, answer); err != nil {
		return nil, err
	}

	if err := s.statsCache.Invalidate(ctx, surveyID); err != nil {
		log.Printf("stats cache invalidate failed for survey %s: %v", surveyID, err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToWatchers(surveyID, "answer_submitted", map[string]interface{}{
			"answerId":   answer.ID,
			"surveyId":   surveyID,
			"totalScore": total,
		})
		s.broadcaster.BroadcastToWatchers(surveyID, "stats_invalidated", map[string]string{
			"surveyId": surveyID,
		})
	}

	return answer, nil
}

// GetByID retrieves a single answer
func (s *AnswerService) GetByID(ctx context.Context, id string) (*model.Answer, error) {
	return s.answerRepo.GetByID(ctx, id)
}

// List returns the survey's answers, optionally filtered by respondent
// attributes
func (s *AnswerService) List(ctx context.Context, surveyID string, filter *model.AnswerFilter) ([]model.Answer, error) {
	return s.answerRepo.ListBySurveyID(ctx, surveyID, filter)
}
