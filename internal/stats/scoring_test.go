package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"orgpulse/internal/model"
)

func floatPtr(f float64) *float64 { return &f }

func strPtr(s string) *string { return &s }

func singleChoiceQuestion(id string, options ...model.Option) model.Question {
	return model.Question{ID: id, SurveyID: "s1", Text: "q" + id, Type: model.QuestionTypeSingleChoice, Options: options}
}

func TestScoreForAnswerSingleChoice(t *testing.T) {
	q := singleChoiceQuestion("1",
		model.Option{Text: "非常满意", Score: floatPtr(5)},
		model.Option{Text: "不满意", Score: floatPtr(1)},
	)

	assert.Equal(t, 5.0, ScoreForAnswer(&q, TextValue("非常满意")))
	assert.Equal(t, 1.0, ScoreForAnswer(&q, TextValue("不满意")))
	assert.Equal(t, 0.0, ScoreForAnswer(&q, TextValue("没有这个选项")))
	assert.Equal(t, 0.0, ScoreForAnswer(&q, TextValue("")))
}

func TestScoreForAnswerCorrectFlagFallback(t *testing.T) {
	q := singleChoiceQuestion("1",
		model.Option{Text: "对", IsCorrect: true},
		model.Option{Text: "也对", Score: floatPtr(0), IsCorrect: true},
		model.Option{Text: "错"},
	)

	// Zero or undeclared weight with the correct flag earns the default credit.
	assert.Equal(t, 1.0, ScoreForAnswer(&q, TextValue("对")))
	assert.Equal(t, 1.0, ScoreForAnswer(&q, TextValue("也对")))
	assert.Equal(t, 0.0, ScoreForAnswer(&q, TextValue("错")))
}

func TestScoreForAnswerMultiChoice(t *testing.T) {
	q := model.Question{
		ID:   "2",
		Type: model.QuestionTypeMultiChoice,
		Options: []model.Option{
			{Text: "薪资", Score: floatPtr(4)},
			{Text: "环境", Score: floatPtr(2)},
		},
	}

	assert.Equal(t, 6.0, ScoreForAnswer(&q, ListValue("薪资", "环境")))
	// Selection order must not matter.
	assert.Equal(t, 6.0, ScoreForAnswer(&q, ListValue("环境", "薪资")))
	// Unmatched entries contribute 0 silently.
	assert.Equal(t, 4.0, ScoreForAnswer(&q, ListValue("薪资", "加班")))
	assert.Equal(t, 0.0, ScoreForAnswer(&q, ListValue()))
}

func TestScoreForAnswerUnscoredTypes(t *testing.T) {
	for _, typ := range []model.QuestionType{
		model.QuestionTypeTextInput,
		model.QuestionTypeNumberInput,
		model.QuestionTypeSortOrder,
		model.QuestionTypeConditional,
	} {
		q := model.Question{ID: "3", Type: typ, Options: []model.Option{{Text: "a", Score: floatPtr(9)}}}
		assert.Zero(t, ScoreForAnswer(&q, TextValue("a")), "type %s must not score", typ)
		assert.Zero(t, ScoreForAnswer(&q, ListValue("a")), "type %s must not score", typ)
		assert.Zero(t, ScoreForAnswer(&q, NumberValue(42)), "type %s must not score", typ)
	}
}

func TestScoreForAnswerNoOptions(t *testing.T) {
	// Malformed/missing option data degrades to zero, never an error.
	q := model.Question{ID: "4", Type: model.QuestionTypeSingleChoice}
	assert.Equal(t, 0.0, ScoreForAnswer(&q, TextValue("任何值")))
}

func TestTotalScoreForSurvey(t *testing.T) {
	questions := []model.Question{
		singleChoiceQuestion("1", model.Option{Text: "非常满意", Score: floatPtr(5)}),
		{
			ID:   "2",
			Type: model.QuestionTypeMultiChoice,
			Options: []model.Option{
				{Text: "薪资", Score: floatPtr(4)},
				{Text: "环境", Score: floatPtr(2)},
			},
		},
		{ID: "3", Type: model.QuestionTypeTextInput},
	}

	answers := map[string]Value{
		"1":     TextValue("非常满意"),
		"2":     ListValue("薪资", "环境"),
		"3":     TextValue("随便写点"),
		"999":   TextValue("已删除题目的残留"),
		"extra": NumberValue(7),
	}

	// Extraneous keys are ignored; text input contributes 0.
	assert.Equal(t, 11.0, TotalScoreForSurvey(questions, answers))

	// A linked question absent from the map contributes 0.
	delete(answers, "2")
	assert.Equal(t, 5.0, TotalScoreForSurvey(questions, answers))

	// Empty values are skipped before scoring.
	answers["1"] = TextValue("")
	assert.Equal(t, 0.0, TotalScoreForSurvey(questions, answers))
}

func TestDecodeAnswers(t *testing.T) {
	decoded := DecodeAnswers(`{"1":"非常满意","2":["薪资","环境"],"3":42.5,"4":null}`)
	assert.Len(t, decoded, 3)
	assert.Equal(t, TextValue("非常满意"), decoded["1"])
	assert.Equal(t, ListValue("薪资", "环境"), decoded["2"])
	assert.Equal(t, NumberValue(42.5), decoded["3"])
	_, ok := decoded["4"]
	assert.False(t, ok)

	assert.Nil(t, DecodeAnswers(""))
	assert.Nil(t, DecodeAnswers("{corrupt"))
	assert.Nil(t, DecodeAnswers("null"))
}

func TestValuePredicates(t *testing.T) {
	assert.False(t, TextValue("").IsTruthy())
	assert.False(t, NumberValue(0).IsTruthy())
	assert.False(t, ListValue().IsTruthy())
	assert.True(t, TextValue(" ").IsTruthy())
	assert.True(t, NumberValue(0.5).IsTruthy())

	// Whitespace-only strings are unanswered, but the number zero is answered.
	assert.False(t, TextValue("   ").IsAnswered())
	assert.True(t, NumberValue(0).IsAnswered())
	assert.True(t, TextValue("hello").IsAnswered())
	assert.False(t, ListValue().IsAnswered())
}

func TestValueSelectionsAndMatches(t *testing.T) {
	assert.Equal(t, []string{"A"}, TextValue("A").Selections())
	assert.Equal(t, []string{"3"}, NumberValue(3).Selections())
	assert.Equal(t, []string{"a", "b"}, ListValue("a", "b").Selections())

	assert.True(t, ListValue("a", "b").Matches("b"))
	assert.False(t, ListValue("a", "b").Matches("c"))
	assert.True(t, NumberValue(3).Matches("3"))
	assert.True(t, TextValue("A").Matches("A"))
}
