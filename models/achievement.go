package models

import "time"

// Achievement is a badge definition. Requirement is an opaque rule string
// evaluated by the progress service (e.g. "lessons_completed>=10").
type Achievement struct {
	ID          int64  `json:"-"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImagePath   string `json:"image_path,omitempty"`
	Requirement string `json:"requirement"`
	XPReward    int    `json:"xp_reward"`
}

func (a Achievement) TableName() string {
	return "achievements"
}

// UserAchievement links a user to an earned achievement.
type UserAchievement struct {
	ID            int64     `json:"-"`
	UserID        int64     `json:"user_id"`
	AchievementID int64     `json:"achievement_id"`
	EarnedDate    time.Time `json:"earned_date"`
}

func (a UserAchievement) TableName() string {
	return "user_achievements"
}
