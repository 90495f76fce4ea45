package models

// Language is a learnable language offered by the application.
type Language struct {
	ID       int64  `json:"-"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

func (l Language) TableName() string {
	return "languages"
}
