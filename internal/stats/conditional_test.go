package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgpulse/internal/model"
)

func TestValidateQuestionParentTriggerPairing(t *testing.T) {
	parent := strPtr("10")

	q := model.Question{ID: "11", Type: model.QuestionTypeConditional, ParentQuestionID: parent}
	err := ValidateQuestion(&q)
	require.Error(t, err)
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "triggerOptions", fieldErr.Field)

	q.TriggerOptions = []model.TriggerOption{{OptionText: "不满意"}}
	assert.NoError(t, ValidateQuestion(&q))

	orphan := model.Question{
		ID:             "12",
		Type:           model.QuestionTypeConditional,
		TriggerOptions: []model.TriggerOption{{OptionText: "不满意"}},
	}
	err = ValidateQuestion(&orphan)
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "parentQuestionId", fieldErr.Field)

	blank := model.Question{
		ID:               "13",
		Type:             model.QuestionTypeConditional,
		ParentQuestionID: parent,
		TriggerOptions:   []model.TriggerOption{{OptionText: "  "}},
	}
	err = ValidateQuestion(&blank)
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "triggerOptions", fieldErr.Field)
}

func TestValidateQuestionOptionPairing(t *testing.T) {
	choice := model.Question{ID: "1", Type: model.QuestionTypeSingleChoice}
	assert.Error(t, ValidateQuestion(&choice))

	sortQ := model.Question{ID: "2", Type: model.QuestionTypeSortOrder, Options: []model.Option{{Text: "只有一个"}}}
	assert.Error(t, ValidateQuestion(&sortQ))

	sortQ.Options = append(sortQ.Options, model.Option{Text: "第二个"})
	assert.NoError(t, ValidateQuestion(&sortQ))

	text := model.Question{ID: "3", Type: model.QuestionTypeTextInput, Options: []model.Option{{Text: "不该有"}}}
	assert.Error(t, ValidateQuestion(&text))

	number := model.Question{ID: "4", Type: model.QuestionTypeNumberInput}
	assert.NoError(t, ValidateQuestion(&number))
}

func TestValidateQuestionGraph(t *testing.T) {
	questions := []model.Question{
		{ID: "1", Type: model.QuestionTypeSingleChoice, Options: []model.Option{{Text: "a"}}},
		{ID: "2", Type: model.QuestionTypeConditional, ParentQuestionID: strPtr("1"), TriggerOptions: []model.TriggerOption{{OptionText: "a"}}},
	}
	assert.NoError(t, ValidateQuestionGraph(questions))

	unknown := append(questions, model.Question{
		ID: "3", Type: model.QuestionTypeConditional,
		ParentQuestionID: strPtr("99"),
		TriggerOptions:   []model.TriggerOption{{OptionText: "a"}},
	})
	assert.Error(t, ValidateQuestionGraph(unknown))

	cycle := []model.Question{
		{ID: "1", ParentQuestionID: strPtr("2"), TriggerOptions: []model.TriggerOption{{OptionText: "x"}}},
		{ID: "2", ParentQuestionID: strPtr("1"), TriggerOptions: []model.TriggerOption{{OptionText: "y"}}},
	}
	assert.Error(t, ValidateQuestionGraph(cycle))

	self := []model.Question{
		{ID: "1", ParentQuestionID: strPtr("1"), TriggerOptions: []model.TriggerOption{{OptionText: "x"}}},
	}
	assert.Error(t, ValidateQuestionGraph(self))
}

func TestIsActive(t *testing.T) {
	child := model.Question{
		ID:               "3",
		Type:             model.QuestionTypeConditional,
		ParentQuestionID: strPtr("1"),
		TriggerOptions:   []model.TriggerOption{{OptionText: "不满意"}},
	}

	assert.True(t, IsActive(&child, TextValue("不满意")))
	assert.False(t, IsActive(&child, TextValue("非常满意")))
	assert.True(t, IsActive(&child, ListValue("其他", "不满意")))
	assert.False(t, IsActive(&child, ListValue("其他")))
	// Missing parent answer leaves the child inactive.
	assert.False(t, IsActive(&child, Value{}))

	root := model.Question{ID: "1", Type: model.QuestionTypeSingleChoice}
	assert.True(t, IsActive(&root, Value{}))

	// Scoring an inactive conditional child still yields 0.
	assert.Zero(t, ScoreForAnswer(&child, TextValue("任何值")))
}
