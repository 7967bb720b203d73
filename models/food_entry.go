package models

import (
	"time"

	"gorm.io/gorm"
)

// DateFormat is the wire format for entry dates, both directions.
const DateFormat = "2006-01-02"

// FoodEntry is one logged food for a user on a calendar date. Entries are
// immutable through this API; many may share a user and date.
type FoodEntry struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null" json:"user_id"`
	FoodName string    `gorm:"size:120;not null" json:"food_name"`
	Protein  float64   `json:"protein"` // g
	Carbs    float64   `json:"carbs"`   // g
	Fat      float64   `json:"fat"`     // g
	Sodium   float64   `json:"sodium"`  // mg
	Date     time.Time `gorm:"type:date;not null" json:"-"`
}

// DateString renders the entry date in YYYY-MM-DD form.
func (e *FoodEntry) DateString() string {
	return e.Date.Format(DateFormat)
}
