package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/robord1/macronutrient-tracker-api/apperrors"
)

// AuthService is what the auth endpoints need from the service layer.
type AuthService interface {
	Signup(email, password string) error
	Login(email, password string) (string, error)
}

type AuthController struct {
	auth AuthService
	log  *logrus.Logger
}

func NewAuthController(auth AuthService, log *logrus.Logger) *AuthController {
	return &AuthController{auth: auth, log: log}
}

type credentialsInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles POST /signup.
func (ct *AuthController) Signup(c *gin.Context) {
	var input credentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, ct.log, apperrors.Validation("Email and password are required"))
		return
	}

	if err := ct.auth.Signup(input.Email, input.Password); err != nil {
		respondError(c, ct.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully"})
}

// Login handles POST /login.
func (ct *AuthController) Login(c *gin.Context) {
	var input credentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, ct.log, apperrors.Validation("Email and password are required"))
		return
	}

	token, err := ct.auth.Login(input.Email, input.Password)
	if err != nil {
		respondError(c, ct.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": token})
}
