package domain

// User Model
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`                          // Primary key
	Username string `gorm:"size:100;uniqueIndex;not null" json:"username"` // Unique username
	Password string `gorm:"size:255;not null" json:"-"`                    // Encoded PBKDF2 hash, never serialized
}
