package model

import "time"

// User is the single persisted identity record. Email is stored normalized
// (trimmed, lowercase) and the unique index is the authority on duplicates.
type User struct {
	UserID    string    `gorm:"primaryKey;size:36" json:"user_id"`
	Name      string    `gorm:"size:100" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:255" json:"email"`
	Password  string    `gorm:"size:100" json:"-"` // bcrypt hash, never the raw password
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
