package model

import "time"

// Survey is a questionnaire container. Questions live in their own
// collection and reference the survey by id.
type Survey struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	AdminID     string    `json:"adminId" bson:"adminId"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}
