package models

import "time"

// UserStreak tracks consecutive days of activity. CurrentStreak resets to
// zero after the configured inactivity window; MaxStreak never decreases.
type UserStreak struct {
	UserID           int64      `json:"user_id"`
	CurrentStreak    int        `json:"current_streak"`
	MaxStreak        int        `json:"max_streak"`
	LastActivityDate *time.Time `json:"last_activity_date,omitempty"`
}

func (s UserStreak) TableName() string {
	return "user_streaks"
}
