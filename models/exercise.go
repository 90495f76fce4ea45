package models

// Exercise types supported by the exercise runner.
const (
	ExerciseTranslation    = "translation"
	ExerciseMultipleChoice = "multiple_choice"
	ExerciseListening      = "listening"
	ExerciseFillBlank      = "fill_blank"
)

// Exercise is a single task inside a lesson. Content carries the prompt,
// CorrectAnswer the expected response, and Options an optional JSON-encoded
// list of choices for multiple-choice tasks.
type Exercise struct {
	ID            int64  `json:"-"`
	LessonID      int64  `json:"lesson_id"`
	Type          string `json:"type"`
	Content       string `json:"content"`
	CorrectAnswer string `json:"-"`
	Options       string `json:"options,omitempty"`
	Hint          string `json:"hint,omitempty"`
	ImagePath     string `json:"image_path,omitempty"`
	AudioPath     string `json:"audio_path,omitempty"`
	XPReward      int    `json:"xp_reward"`
	OrderIndex    int    `json:"order_index"`
}

func (e Exercise) TableName() string {
	return "exercises"
}
