package stats

import (
	"fmt"
	"strings"

	"orgpulse/internal/model"
)

// FieldError is a validation failure addressed to a specific field of
// the question being saved.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidateQuestion checks a question definition before it is
// persisted: option/type pairing, and the parent/trigger contract for
// conditional children. It does not verify that trigger texts name
// real options on the parent; a mismatch merely produces a child that
// never activates.
func ValidateQuestion(q *model.Question) error {
	switch q.Type {
	case model.QuestionTypeSingleChoice, model.QuestionTypeMultiChoice, model.QuestionTypeSortOrder:
		if len(q.Options) == 0 {
			return &FieldError{Field: "options", Message: "choice and sort questions require options"}
		}
		if q.Type == model.QuestionTypeSortOrder && len(q.Options) < 2 {
			return &FieldError{Field: "options", Message: "sort questions require at least two options"}
		}
	case model.QuestionTypeTextInput, model.QuestionTypeNumberInput:
		if len(q.Options) > 0 {
			return &FieldError{Field: "options", Message: "text and number questions cannot carry options"}
		}
	}

	if q.ParentQuestionID != nil && len(q.TriggerOptions) == 0 {
		return &FieldError{Field: "triggerOptions", Message: "a parent question requires at least one trigger option"}
	}
	if len(q.TriggerOptions) > 0 {
		if q.ParentQuestionID == nil {
			return &FieldError{Field: "parentQuestionId", Message: "trigger options require a parent question"}
		}
		for _, trigger := range q.TriggerOptions {
			if strings.TrimSpace(trigger.OptionText) == "" {
				return &FieldError{Field: "triggerOptions", Message: "trigger options must name a parent option text"}
			}
		}
	}
	return nil
}

// ValidateQuestionGraph checks the parent references across a survey's
// question set: every parent id must resolve inside the set and the
// references must not form a cycle.
func ValidateQuestionGraph(questions []model.Question) error {
	arena := make(map[string]*model.Question, len(questions))
	for i := range questions {
		arena[questions[i].ID] = &questions[i]
	}
	for i := range questions {
		q := &questions[i]
		if q.ParentQuestionID == nil {
			continue
		}
		seen := map[string]bool{q.ID: true}
		current := q
		for current.ParentQuestionID != nil {
			parentID := *current.ParentQuestionID
			parent, ok := arena[parentID]
			if !ok {
				return &FieldError{
					Field:   "parentQuestionId",
					Message: fmt.Sprintf("question %s references unknown parent %s", current.ID, parentID),
				}
			}
			if seen[parentID] {
				return &FieldError{Field: "parentQuestionId", Message: "parent references form a cycle"}
			}
			seen[parentID] = true
			current = parent
		}
	}
	return nil
}

// IsActive reports whether a conditional child question applies to a
// respondent, given the recorded value of its parent question: the
// value must equal (scalar) or contain (list) one of the trigger
// texts. Questions without a parent are always active. The rule is
// advisory; submission does not reject answers for inactive children.
func IsActive(child *model.Question, parentValue Value) bool {
	if child.ParentQuestionID == nil {
		return true
	}
	for _, trigger := range child.TriggerOptions {
		if parentValue.Matches(trigger.OptionText) {
			return true
		}
	}
	return false
}
