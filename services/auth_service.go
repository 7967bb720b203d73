package services

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/robord1/macronutrient-tracker-api/apperrors"
	"github.com/robord1/macronutrient-tracker-api/models"
	"github.com/robord1/macronutrient-tracker-api/utils"
)

const minPasswordLength = 8

// Kept generic so responses never reveal whether an email is registered.
const (
	conflictMessage    = "Unable to process your request"
	credentialsMessage = "Invalid credentials"
)

var validate = validator.New()

// AuthService owns signup and login. It holds the only code path that ever
// touches password plaintext.
type AuthService struct {
	db     *gorm.DB
	tokens *utils.TokenManager
	log    *logrus.Logger
}

func NewAuthService(db *gorm.DB, tokens *utils.TokenManager, log *logrus.Logger) *AuthService {
	return &AuthService{db: db, tokens: tokens, log: log}
}

// Signup validates the credentials in contract order and persists a new
// user with a bcrypt digest. The first failing check wins.
func (s *AuthService) Signup(email, password string) error {
	if email == "" || password == "" {
		return apperrors.Validation("Email and password are required")
	}
	if err := validate.Var(email, "email"); err != nil {
		return apperrors.Validation("Invalid email format")
	}
	if len(password) < minPasswordLength {
		return apperrors.Validation("Password must be at least 8 characters long")
	}

	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return apperrors.Conflict(conflictMessage)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.Internal(err)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return apperrors.Internal(err)
	}

	user := models.User{Email: email, Password: hashed}
	if err := s.db.Create(&user).Error; err != nil {
		// Unique index catches a signup racing past the lookup above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict(conflictMessage)
		}
		return apperrors.Internal(err)
	}

	s.log.WithField("user_id", user.ID).Info("user created")
	return nil
}

// Login verifies the credentials and issues a bearer token for the user.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", apperrors.Validation("Email and password are required")
	}

	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", apperrors.Authentication(credentialsMessage)
	}
	if err != nil {
		return "", apperrors.Internal(err)
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", apperrors.Authentication(credentialsMessage)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", apperrors.Internal(err)
	}
	return token, nil
}
