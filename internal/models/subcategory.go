package models

import "time"

// Subcategory groups questions under a category. Disabling a subcategory
// hides it and its questions from learner flows without touching the
// questions themselves.
type Subcategory struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	CategoryID string    `bson:"category_id" json:"category_id"`
	Name       string    `bson:"name" json:"name"`
	Status     string    `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

func (s *Subcategory) Validate() error {
	if s.CategoryID == "" {
		return &ValidationError{Field: "category_id", Reason: "category is required"}
	}
	if s.Name == "" {
		return &ValidationError{Field: "name", Reason: "name is required"}
	}
	if s.Status != StatusEnabled && s.Status != StatusDisabled {
		return &ValidationError{Field: "status", Reason: "status must be enabled or disabled"}
	}
	return nil
}
