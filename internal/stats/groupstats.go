package stats

import (
	"math"

	"orgpulse/internal/model"
)

// GroupStats aggregates stored survey totals into one bucket per
// distinct dimension value, in first-seen order. Answers whose
// department or position is unset are excluded outright; this is the
// historical behavior of the survey-level stats and intentionally
// differs from the distribution views, which bucket unknowns under a
// sentinel.
func GroupStats(answers []model.Answer, dim Dimension) ([]model.GroupStat, error) {
	if !dim.Valid() {
		return nil, ErrInvalidDimension
	}

	var order []string
	buckets := map[string]*model.GroupStat{}
	for i := range answers {
		a := &answers[i]
		key, ok := rawKey(a, dim)
		if !ok {
			continue
		}
		stat := buckets[key]
		if stat == nil {
			stat = &model.GroupStat{Dimension: string(dim), Key: key}
			buckets[key] = stat
			order = append(order, key)
		}
		stat.Count++
		if a.TotalScore != nil {
			stat.TotalScoreSum += *a.TotalScore
		}
	}

	stats := make([]model.GroupStat, 0, len(order))
	for _, key := range order {
		stat := buckets[key]
		if stat.Count > 0 {
			stat.AverageScore = round2(stat.TotalScoreSum / float64(stat.Count))
		}
		stats = append(stats, *stat)
	}
	return stats, nil
}

// PerQuestionScores recomputes each survey question's total and
// average from the raw answer values, optionally filtered by exact
// department and/or position. Scores are recomputed through
// ScoreForAnswer rather than read from the stored survey totals, so
// the per-question figures stay internally consistent. An answer
// counts toward a question only when its key is present with a truthy
// value. Organization filtering is intentionally not offered here.
func PerQuestionScores(questions []model.Question, answers []model.Answer, department, position *string) []model.QuestionScore {
	if len(questions) == 0 {
		return []model.QuestionScore{}
	}

	type accumulator struct {
		total float64
		count int
	}
	accs := make(map[string]*accumulator, len(questions))
	byID := make(map[string]*model.Question, len(questions))
	for i := range questions {
		q := &questions[i]
		accs[q.ID] = &accumulator{}
		byID[q.ID] = q
	}

	for i := range answers {
		a := &answers[i]
		if department != nil && (a.Department == nil || *a.Department != *department) {
			continue
		}
		if position != nil && (a.Position == nil || *a.Position != *position) {
			continue
		}
		decoded := DecodeAnswers(a.Answers)
		for questionID, v := range decoded {
			acc, ok := accs[questionID]
			if !ok || !v.IsTruthy() {
				continue
			}
			acc.total += ScoreForAnswer(byID[questionID], v)
			acc.count++
		}
	}

	scores := make([]model.QuestionScore, 0, len(questions))
	for i := range questions {
		q := &questions[i]
		acc := accs[q.ID]
		avg := 0.0
		if acc.count > 0 {
			avg = round2(acc.total / float64(acc.count))
		}
		scores = append(scores, model.QuestionScore{
			QuestionID:    q.ID,
			QuestionText:  q.Text,
			ResponseCount: acc.count,
			TotalScore:    round2(acc.total),
			AvgScore:      avg,
		})
	}
	return scores
}

func round2(n float64) float64 {
	return math.Round(n*100) / 100
}
