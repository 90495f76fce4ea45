package models

// LessonCategory groups lessons of one language by topic.
type LessonCategory struct {
	ID          int64  `json:"-"`
	Name        string `json:"name"`
	Description string `json:"description"`
	LanguageID  int64  `json:"language_id"`
}

func (c LessonCategory) TableName() string {
	return "lesson_categories"
}

// Lesson is an ordered unit of study within a language and category.
// Difficulty ranges from 1 (beginner) upward; XPReward is granted once on
// completion.
type Lesson struct {
	ID          int64  `json:"-"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CategoryID  int64  `json:"category_id"`
	LanguageID  int64  `json:"language_id"`
	Difficulty  int    `json:"difficulty"`
	XPReward    int    `json:"xp_reward"`
	OrderIndex  int    `json:"order_index"`
	IsActive    bool   `json:"is_active"`
}

func (l Lesson) TableName() string {
	return "lessons"
}
