package models

import (
	"gorm.io/gorm"
)

// User is an account holder. Password stores a bcrypt digest, never the
// plaintext, and is excluded from every JSON response.
type User struct {
	gorm.Model
	Email    string `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:128;not null" json:"-"`
}
