package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"orgpulse/internal/cache"
	"orgpulse/internal/model"
	"orgpulse/internal/repository"
	"orgpulse/internal/stats"
)

// StatsService computes dashboard aggregations over a survey's stored
// answers. Results are cached per survey and parameter set; submissions
// invalidate by bumping the survey's cache version, so a miss here is
// always a recompute from Mongo.
type StatsService struct {
	questionRepo repository.QuestionRepo
	answerRepo   repository.AnswerRepo
	surveyRepo   repository.SurveyRepo
	statsCache   cache.StatsCache
}

// NewStatsService creates a new stats service
func NewStatsService(
	questionRepo repository.QuestionRepo,
	answerRepo repository.AnswerRepo,
	surveyRepo repository.SurveyRepo,
	statsCache cache.StatsCache,
) *StatsService {
	return &StatsService{
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		surveyRepo:   surveyRepo,
		statsCache:   statsCache,
	}
}

func (s *StatsService) checkSurvey(ctx context.Context, surveyID string) error {
	survey, err := s.surveyRepo.GetByID(ctx, surveyID)
	if err != nil {
		return err
	}
	if survey == nil {
		return ErrSurveyNotFound
	}
	return nil
}

// cached runs compute on a miss and fills dst either way. Cache errors
// are logged and fall through to a plain compute; the dashboard should
// never 500 because Redis is down.
func (s *StatsService) cached(ctx context.Context, surveyID, view, variant string, dst interface{}, compute func() (interface{}, error)) error {
	payload, err := s.statsCache.GetPayload(ctx, surveyID, view, variant)
	if err != nil {
		log.Printf("stats cache get failed for survey %s view %s: %v", surveyID, view, err)
	}
	if payload != nil {
		if err := json.Unmarshal(payload, dst); err == nil {
			return nil
		}
	}

	result, err := compute()
	if err != nil {
		return err
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		return err
	}
	if err := s.statsCache.SetPayload(ctx, surveyID, view, variant, encoded); err != nil {
		log.Printf("stats cache set failed for survey %s view %s: %v", surveyID, view, err)
	}
	return json.Unmarshal(encoded, dst)
}

// GroupStats returns respondent counts and score totals grouped along
// one dimension
func (s *StatsService) GroupStats(ctx context.Context, surveyID string, dim stats.Dimension) ([]model.GroupStat, error) {
	if !dim.Valid() {
		return nil, stats.ErrInvalidDimension
	}
	if err := s.checkSurvey(ctx, surveyID); err != nil {
		return nil, err
	}

	var out []model.GroupStat
	err := s.cached(ctx, surveyID, "groups", string(dim), &out, func() (interface{}, error) {
		answers, err := s.answerRepo.ListBySurveyID(ctx, surveyID, nil)
		if err != nil {
			return nil, err
		}
		groups, err := stats.GroupStats(answers, dim)
		if err != nil {
			return nil, err
		}
		return groups, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PerQuestionScores returns score totals per question, optionally
// filtered to one department and/or position
func (s *StatsService) PerQuestionScores(ctx context.Context, surveyID string, department, position *string) ([]model.QuestionScore, error) {
	if err := s.checkSurvey(ctx, surveyID); err != nil {
		return nil, err
	}

	variant := fmt.Sprintf("d=%s|p=%s", deref(department), deref(position))

	var out []model.QuestionScore
	err := s.cached(ctx, surveyID, "questions", variant, &out, func() (interface{}, error) {
		questions, err := s.questionRepo.GetBySurveyID(ctx, surveyID)
		if err != nil {
			return nil, err
		}
		answers, err := s.answerRepo.ListBySurveyID(ctx, surveyID, nil)
		if err != nil {
			return nil, err
		}
		return stats.PerQuestionScores(questions, answers, department, position), nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LineSeries returns average-score series along one dimension
func (s *StatsService) LineSeries(ctx context.Context, surveyID string, dim stats.Dimension, questionIDs []string, includeSurveyTotal bool) (*model.LineSeries, error) {
	if !dim.Valid() {
		return nil, stats.ErrInvalidDimension
	}
	if err := s.checkSurvey(ctx, surveyID); err != nil {
		return nil, err
	}

	variant := fmt.Sprintf("%s|q=%s|t=%t", dim, strings.Join(questionIDs, ","), includeSurveyTotal)

	var out model.LineSeries
	err := s.cached(ctx, surveyID, "line", variant, &out, func() (interface{}, error) {
		questions, err := s.questionRepo.GetBySurveyID(ctx, surveyID)
		if err != nil {
			return nil, err
		}
		answers, err := s.answerRepo.ListBySurveyID(ctx, surveyID, nil)
		if err != nil {
			return nil, err
		}
		series, err := stats.LineSeries(questions, answers, dim, questionIDs, includeSurveyTotal)
		if err != nil {
			return nil, err
		}
		return series, nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// OptionDistribution returns per-question answer distributions with a
// per-bucket dimension breakdown, optionally restricted to a set of
// organizations
func (s *StatsService) OptionDistribution(ctx context.Context, surveyID string, dim stats.Dimension, orgIDs []string) ([]model.QuestionDistribution, error) {
	if !dim.Valid() {
		return nil, stats.ErrInvalidDimension
	}
	if err := s.checkSurvey(ctx, surveyID); err != nil {
		return nil, err
	}

	variant := fmt.Sprintf("%s|org=%s", dim, strings.Join(orgIDs, ","))

	var out []model.QuestionDistribution
	err := s.cached(ctx, surveyID, "distribution", variant, &out, func() (interface{}, error) {
		questions, err := s.questionRepo.GetBySurveyID(ctx, surveyID)
		if err != nil {
			return nil, err
		}
		var filter *model.AnswerFilter
		if len(orgIDs) > 0 {
			filter = &model.AnswerFilter{OrganizationIDs: orgIDs}
		}
		answers, err := s.answerRepo.ListBySurveyID(ctx, surveyID, filter)
		if err != nil {
			return nil, err
		}
		dist, err := stats.OptionDistribution(questions, answers, dim)
		if err != nil {
			return nil, err
		}
		return dist, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PieOptionDistribution returns, for one option of one question, who
// picked it broken down along one dimension
func (s *StatsService) PieOptionDistribution(ctx context.Context, surveyID, questionID, optionText string, dim stats.Dimension, includeUnanswered bool) (*model.PieDistribution, error) {
	if !dim.Valid() {
		return nil, stats.ErrInvalidDimension
	}
	if err := s.checkSurvey(ctx, surveyID); err != nil {
		return nil, err
	}

	variant := fmt.Sprintf("%s|q=%s|o=%s|u=%t", dim, questionID, optionText, includeUnanswered)

	var out model.PieDistribution
	err := s.cached(ctx, surveyID, "pie", variant, &out, func() (interface{}, error) {
		questions, err := s.questionRepo.GetBySurveyID(ctx, surveyID)
		if err != nil {
			return nil, err
		}
		answers, err := s.answerRepo.ListBySurveyID(ctx, surveyID, nil)
		if err != nil {
			return nil, err
		}
		pie, err := stats.PieOptionDistribution(questions, answers, questionID, optionText, dim, includeUnanswered)
		if err != nil {
			return nil, err
		}
		return pie, nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
