package services

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/robord1/macronutrient-tracker-api/apperrors"
	"github.com/robord1/macronutrient-tracker-api/models"
)

// GoalService manages each user's single macronutrient target record.
type GoalService struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewGoalService(db *gorm.DB, log *logrus.Logger) *GoalService {
	return &GoalService{db: db, log: log}
}

// Get returns the user's goal record, or NotFound when none has been set.
func (s *GoalService) Get(userID uint) (*models.Goal, error) {
	var goal models.Goal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("No goals found for this user")
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &goal, nil
}

// Upsert replaces all four targets, creating the row on a user's first
// call. The lookup and write run in one transaction with a row lock, and
// the unique index on user_id guarantees at most one goal per user even
// when two first-time calls race: the loser's insert fails with a
// duplicate key and the second pass takes the update path.
func (s *GoalService) Upsert(userID uint, protein, carbs, fat, sodium int) (bool, error) {
	var created bool
	for attempt := 0; attempt < 2; attempt++ {
		created = false
		err := s.db.Transaction(func(tx *gorm.DB) error {
			var goal models.Goal
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("user_id = ?", userID).
				First(&goal).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				goal = models.Goal{
					UserID:        userID,
					ProteinTarget: protein,
					CarbsTarget:   carbs,
					FatTarget:     fat,
					SodiumTarget:  sodium,
				}
				if err := tx.Create(&goal).Error; err != nil {
					return err
				}
				created = true
				return nil
			}
			if err != nil {
				return err
			}

			goal.ProteinTarget = protein
			goal.CarbsTarget = carbs
			goal.FatTarget = fat
			goal.SodiumTarget = sodium
			return tx.Save(&goal).Error
		})
		if errors.Is(err, gorm.ErrDuplicatedKey) && attempt == 0 {
			continue
		}
		if err != nil {
			return false, apperrors.Internal(err)
		}
		break
	}

	s.log.WithFields(logrus.Fields{"user_id": userID, "created": created}).Debug("goals upserted")
	return created, nil
}
