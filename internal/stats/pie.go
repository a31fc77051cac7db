package stats

import "orgpulse/internal/model"

// PieOptionDistribution counts, per dimension key, the respondents who
// selected the given option on one question: containment for
// multi-selections, stringified equality otherwise. Respondents who
// did not answer the question are pooled under the unanswered sentinel
// when includeUnanswered is set. An unknown question id yields empty
// data rather than an error.
func PieOptionDistribution(questions []model.Question, answers []model.Answer, questionID, optionText string, dim Dimension, includeUnanswered bool) (*model.PieDistribution, error) {
	if !dim.Valid() {
		return nil, ErrInvalidDimension
	}

	result := &model.PieDistribution{
		Option:    optionText,
		Dimension: string(dim),
		Data:      []model.BreakdownEntry{},
	}

	var question *model.Question
	for i := range questions {
		if questions[i].ID == questionID {
			question = &questions[i]
			break
		}
	}
	if question == nil {
		return result, nil
	}

	counts := newBucketCounts()
	for i := range answers {
		a := &answers[i]
		key := resolveKey(a, dim)

		decoded := DecodeAnswers(a.Answers)
		v, ok := decoded[questionID]
		if !ok || !v.IsAnswered() {
			if includeUnanswered {
				counts.bump(UnansweredBucket)
			}
			continue
		}
		if v.Matches(optionText) {
			counts.bump(key)
		}
	}

	_, result.Data = counts.entries()
	return result, nil
}
