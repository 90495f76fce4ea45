package models

// UserStats is the per-user aggregate counter row, created together with the
// account and updated as the user studies.
type UserStats struct {
	UserID             int64 `json:"user_id"`
	TotalXP            int   `json:"total_xp"`
	LessonsCompleted   int   `json:"lessons_completed"`
	ExercisesCompleted int   `json:"exercises_completed"`
	CorrectAnswers     int   `json:"correct_answers"`
	IncorrectAnswers   int   `json:"incorrect_answers"`
}

func (s UserStats) TableName() string {
	return "user_stats"
}
