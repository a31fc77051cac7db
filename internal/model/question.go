package model

import "time"

// QuestionType defines the type of question
type QuestionType string

const (
	QuestionTypeSingleChoice QuestionType = "single_choice"
	QuestionTypeMultiChoice  QuestionType = "multi_choice"
	QuestionTypeTextInput    QuestionType = "text_input"
	QuestionTypeNumberInput  QuestionType = "number_input"
	QuestionTypeSortOrder    QuestionType = "sort_order"
	QuestionTypeConditional  QuestionType = "conditional"
)

// IsChoice reports whether the type is backed by a scoreable option list
func (t QuestionType) IsChoice() bool {
	return t == QuestionTypeSingleChoice || t == QuestionTypeMultiChoice
}

// Option is a declared answer option on a choice or sort question.
// Score is nil when the author declared no weight for the option.
type Option struct {
	Text      string   `json:"text" bson:"text"`
	Score     *float64 `json:"score,omitempty" bson:"score,omitempty"`
	IsCorrect bool     `json:"isCorrect,omitempty" bson:"isCorrect,omitempty"`
}

// TriggerOption names a parent option text that activates a conditional child
type TriggerOption struct {
	OptionText string `json:"optionText" bson:"optionText"`
}

// Question is a survey question definition. ParentQuestionID and
// TriggerOptions are set together or not at all; the pairing is
// enforced before persisting.
type Question struct {
	ID               string          `json:"id" bson:"_id,omitempty"`
	SurveyID         string          `json:"surveyId" bson:"surveyId"`
	Text             string          `json:"text" bson:"text"`
	Type             QuestionType    `json:"type" bson:"type"`
	Options          []Option        `json:"options,omitempty" bson:"options,omitempty"`
	MinScore         int             `json:"minScore" bson:"minScore"`
	MaxScore         int             `json:"maxScore" bson:"maxScore"`
	Order            int             `json:"order" bson:"order"`
	ParentQuestionID *string         `json:"parentQuestionId,omitempty" bson:"parentQuestionId,omitempty"`
	TriggerOptions   []TriggerOption `json:"triggerOptions,omitempty" bson:"triggerOptions,omitempty"`
	CreatedAt        time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt" bson:"updatedAt"`
}
