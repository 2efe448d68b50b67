package models

// User mirrors the dataset's users table. Read-only, like items.
type User struct {
	ID        string `gorm:"primaryKey" json:"id"`
	Created   int64  `json:"created"`
	Karma     int    `json:"karma"`
	About     string `gorm:"type:text" json:"about,omitempty"`
	Submitted string `gorm:"type:text" json:"submitted,omitempty"`
}

func (User) TableName() string {
	return "users"
}
