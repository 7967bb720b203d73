package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Home handles GET / and confirms the API is up.
func Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the Macronutrient Tracker API!",
		"version": "0.1",
		"status":  "online",
		"docs":    "",
	})
}
