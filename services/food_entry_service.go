package services

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/robord1/macronutrient-tracker-api/apperrors"
	"github.com/robord1/macronutrient-tracker-api/models"
)

const maxFoodNameLength = 120

// FoodEntryInput is the raw payload for a new entry. The food name uses a
// pointer and the nutrients raw JSON so absent, null, and wrong-typed
// values can each be reported with the offending field's name instead of
// failing the bind.
type FoodEntryInput struct {
	FoodName *string         `json:"food_name"`
	Protein  json.RawMessage `json:"protein"`
	Carbs    json.RawMessage `json:"carbs"`
	Fat      json.RawMessage `json:"fat"`
	Sodium   json.RawMessage `json:"sodium"`
	Date     string          `json:"date"`
}

// FoodEntryService records and lists a user's dated food entries.
type FoodEntryService struct {
	db  *gorm.DB
	log *logrus.Logger
	now func() time.Time
}

func NewFoodEntryService(db *gorm.DB, log *logrus.Logger) *FoodEntryService {
	return &FoodEntryService{db: db, log: log, now: time.Now}
}

// Add validates the payload in contract order and persists the entry:
// every required field present, nutrients non-negative, food name trimmed
// and at most 120 characters, optional date in YYYY-MM-DD form. A missing
// date defaults to the current UTC calendar date.
func (s *FoodEntryService) Add(userID uint, input FoodEntryInput) (*models.FoodEntry, error) {
	required := []struct {
		name    string
		present bool
	}{
		{"food_name", input.FoodName != nil},
		{"protein", len(input.Protein) > 0},
		{"carbs", len(input.Carbs) > 0},
		{"fat", len(input.Fat) > 0},
		{"sodium", len(input.Sodium) > 0},
	}
	for _, f := range required {
		if !f.present {
			return nil, apperrors.Validation("Missing field: %s", f.name)
		}
	}

	nutrients := []struct {
		name string
		raw  json.RawMessage
	}{
		{"protein", input.Protein},
		{"carbs", input.Carbs},
		{"fat", input.Fat},
		{"sodium", input.Sodium},
	}
	values := make(map[string]float64, len(nutrients))
	for _, n := range nutrients {
		value, err := numericField(n.name, n.raw)
		if err != nil {
			return nil, err
		}
		values[n.name] = value
	}

	foodName := strings.TrimSpace(*input.FoodName)
	if foodName == "" || utf8.RuneCountInString(foodName) > maxFoodNameLength {
		return nil, apperrors.Validation(
			"food_name must be a non-empty string with a maximum length of %d characters", maxFoodNameLength)
	}

	date, err := s.resolveDate(input.Date)
	if err != nil {
		return nil, err
	}

	entry := models.FoodEntry{
		UserID:   userID,
		FoodName: foodName,
		Protein:  values["protein"],
		Carbs:    values["carbs"],
		Fat:      values["fat"],
		Sodium:   values["sodium"],
		Date:     date,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, apperrors.Internal(err)
	}

	s.log.WithFields(logrus.Fields{"user_id": userID, "entry_id": entry.ID}).Debug("food entry added")
	return &entry, nil
}

// ListByDate returns the user's entries matching exactly one calendar
// date. dateStr is optional and defaults to the current UTC date; an empty
// result is a successful empty slice.
func (s *FoodEntryService) ListByDate(userID uint, dateStr string) ([]models.FoodEntry, error) {
	date, err := s.resolveDate(dateStr)
	if err != nil {
		return nil, err
	}

	entries := make([]models.FoodEntry, 0)
	if err := s.db.Where("user_id = ? AND date = ?", userID, date).Find(&entries).Error; err != nil {
		return nil, apperrors.Internal(err)
	}
	return entries, nil
}

// numericField decodes one nutrient value. JSON strings, booleans,
// objects, explicit nulls, and negative numbers all fail with the same
// field-naming message.
func numericField(name string, raw json.RawMessage) (float64, error) {
	var value float64
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) || json.Unmarshal(raw, &value) != nil || value < 0 {
		return 0, apperrors.Validation("%s must be a non-negative number", name)
	}
	return value, nil
}

func (s *FoodEntryService) resolveDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return s.today(), nil
	}
	date, err := time.ParseInLocation(models.DateFormat, dateStr, time.UTC)
	if err != nil {
		return time.Time{}, apperrors.Validation("Invalid date format. Use YYYY-MM-DD.")
	}
	return date, nil
}

func (s *FoodEntryService) today() time.Time {
	y, m, d := s.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
