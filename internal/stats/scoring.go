package stats

import "orgpulse/internal/model"

// DefaultCorrectCredit is awarded when a matched option is flagged
// correct but carries no declared weight.
const DefaultCorrectCredit = 1.0

// ScoreForAnswer computes the score one answer value earns on a
// question. Only choice types score; text, number, sort and
// conditional questions always yield 0 (auto-scoring them is an open
// extension point, not an error). Unmatched selections contribute 0
// silently, and missing option data degrades to 0 rather than failing.
func ScoreForAnswer(q *model.Question, v Value) float64 {
	if !v.IsTruthy() {
		return 0
	}
	switch q.Type {
	case model.QuestionTypeSingleChoice:
		if v.Kind != KindText {
			return 0
		}
		return optionWeight(q.Options, v.Text)
	case model.QuestionTypeMultiChoice:
		if v.Kind != KindList {
			return 0
		}
		var score float64
		for _, selected := range v.List {
			score += optionWeight(q.Options, selected)
		}
		return score
	default:
		return 0
	}
}

// TotalScoreForSurvey sums ScoreForAnswer over every survey question
// answered in the map. Keys that match no survey question are ignored;
// questions absent from the map contribute 0.
func TotalScoreForSurvey(questions []model.Question, answers map[string]Value) float64 {
	var total float64
	for i := range questions {
		q := &questions[i]
		v, ok := answers[q.ID]
		if !ok || !v.IsTruthy() {
			continue
		}
		total += ScoreForAnswer(q, v)
	}
	return total
}

func optionWeight(options []model.Option, text string) float64 {
	for _, opt := range options {
		if opt.Text != text {
			continue
		}
		var weight float64
		if opt.Score != nil {
			weight = *opt.Score
		}
		if weight == 0 && opt.IsCorrect {
			return DefaultCorrectCredit
		}
		return weight
	}
	return 0
}
