package models

import (
	"gorm.io/gorm"
)

// Goal holds a user's macronutrient targets. The unique index on UserID
// backs the one-goal-per-user rule so concurrent first-time writes cannot
// produce duplicate rows.
type Goal struct {
	gorm.Model
	UserID        uint `gorm:"uniqueIndex;not null" json:"user_id"`
	ProteinTarget int  `json:"protein"` // g
	CarbsTarget   int  `json:"carbs"`   // g
	FatTarget     int  `json:"fat"`     // g
	SodiumTarget  int  `json:"sodium"`  // mg
}
