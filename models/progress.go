package models

import "time"

// UserProgress records one user's state for one lesson. A lesson may be
// retried; Score keeps the best result and CompletionDate the first time the
// lesson was completed.
type UserProgress struct {
	ID             int64      `json:"-"`
	UserID         int64      `json:"user_id"`
	LessonID       int64      `json:"lesson_id"`
	Completed      bool       `json:"completed"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
	Score          int        `json:"score"`
}

func (p UserProgress) TableName() string {
	return "user_progress"
}
