package model

import "time"

// Answer is one submitted response to a survey. It is created once at
// submission and never updated. The Answers field holds the encoded
// question-id -> value JSON object exactly as submitted; decoding it is
// the stats engine's job, so partially corrupt historical rows can
// still be listed and aggregated.
type Answer struct {
	ID               string    `json:"id" bson:"_id,omitempty"`
	SurveyID         string    `json:"surveyId" bson:"surveyId"`
	Department       *string   `json:"department,omitempty" bson:"department,omitempty"`
	Position         *string   `json:"position,omitempty" bson:"position,omitempty"`
	OrganizationID   *string   `json:"organizationId,omitempty" bson:"organizationId,omitempty"`
	OrganizationName *string   `json:"organizationName,omitempty" bson:"organizationName,omitempty"`
	Answers          string    `json:"answers" bson:"answers"`
	TotalScore       *float64  `json:"totalScore,omitempty" bson:"totalScore,omitempty"`
	SubmittedAt      time.Time `json:"submittedAt" bson:"submittedAt"`
}

// SubmitAnswerRequest is the public submission body. Answers is the
// raw question-id -> value JSON object; respondent attributes are
// optional and self-reported.
type SubmitAnswerRequest struct {
	Department       *string `json:"department,omitempty"`
	Position         *string `json:"position,omitempty"`
	OrganizationID   *string `json:"organizationId,omitempty"`
	OrganizationName *string `json:"organizationName,omitempty"`
	Answers          string  `json:"answers" validate:"required"`
}

// AnswerFilter narrows an answer listing. Nil fields match everything.
type AnswerFilter struct {
	Department      *string
	Position        *string
	OrganizationIDs []string
}
