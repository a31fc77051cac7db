package stats

import (
	"sort"

	"orgpulse/internal/model"
)

// SurveyTotalSeriesName labels the stored-total series on line charts
const SurveyTotalSeriesName = "问卷总分"

// LineSeries builds the line-chart payload for a survey: one category
// per distinct resolved dimension value observed among the answers
// (missing values fall into the 未知 bucket), sorted. With
// includeSurveyTotal, one series averages the stored per-answer
// totals. Each requested question id adds one series of recomputed
// averages, but only for choice questions that declare at least one
// scored option; unscored questions are skipped silently.
func LineSeries(questions []model.Question, answers []model.Answer, dim Dimension, questionIDs []string, includeSurveyTotal bool) (*model.LineSeries, error) {
	if !dim.Valid() {
		return nil, ErrInvalidDimension
	}

	categorySet := map[string]bool{}
	for i := range answers {
		categorySet[resolveKey(&answers[i], dim)] = true
	}
	categories := make([]string, 0, len(categorySet))
	for category := range categorySet {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	index := make(map[string]int, len(categories))
	for i, category := range categories {
		index[category] = i
	}

	result := &model.LineSeries{Categories: categories, Series: []model.Series{}}

	if includeSurveyTotal {
		sums := make([]float64, len(categories))
		counts := make([]int, len(categories))
		for i := range answers {
			a := &answers[i]
			if a.TotalScore == nil {
				continue
			}
			at := index[resolveKey(a, dim)]
			sums[at] += *a.TotalScore
			counts[at]++
		}
		result.Series = append(result.Series, model.Series{
			Name: SurveyTotalSeriesName,
			Data: averages(sums, counts),
		})
	}

	if len(questionIDs) == 0 {
		return result, nil
	}

	byID := make(map[string]*model.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	for _, questionID := range questionIDs {
		q := byID[questionID]
		if q == nil || !hasScoredOptions(q) {
			continue
		}
		sums := make([]float64, len(categories))
		counts := make([]int, len(categories))
		for i := range answers {
			a := &answers[i]
			decoded := DecodeAnswers(a.Answers)
			if decoded == nil {
				continue
			}
			v, ok := decoded[questionID]
			if !ok {
				continue
			}
			at := index[resolveKey(a, dim)]
			sums[at] += ScoreForAnswer(q, v)
			if v.IsAnswered() {
				counts[at]++
			}
		}
		result.Series = append(result.Series, model.Series{
			Name: "Q" + q.ID + " " + q.Text,
			Data: averages(sums, counts),
		})
	}
	return result, nil
}

// hasScoredOptions reports whether the question is a choice type with
// at least one option carrying a declared weight.
func hasScoredOptions(q *model.Question) bool {
	if !q.Type.IsChoice() {
		return false
	}
	for _, opt := range q.Options {
		if opt.Score != nil {
			return true
		}
	}
	return false
}

func averages(sums []float64, counts []int) []float64 {
	data := make([]float64, len(sums))
	for i := range sums {
		if counts[i] > 0 {
			data[i] = round2(sums[i] / float64(counts[i]))
		}
	}
	return data
}
