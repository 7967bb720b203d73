package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/robord1/macronutrient-tracker-api/apperrors"
	"github.com/robord1/macronutrient-tracker-api/middlewares"
	"github.com/robord1/macronutrient-tracker-api/models"
	"github.com/robord1/macronutrient-tracker-api/services"
)

// FoodEntryService is what the food-entry endpoints need from the service
// layer.
type FoodEntryService interface {
	Add(userID uint, input services.FoodEntryInput) (*models.FoodEntry, error)
	ListByDate(userID uint, date string) ([]models.FoodEntry, error)
}

type FoodEntryController struct {
	entries FoodEntryService
	log     *logrus.Logger
}

func NewFoodEntryController(entries FoodEntryService, log *logrus.Logger) *FoodEntryController {
	return &FoodEntryController{entries: entries, log: log}
}

type foodEntryResponse struct {
	ID       uint    `json:"id"`
	FoodName string  `json:"food_name"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Sodium   float64 `json:"sodium"`
	Date     string  `json:"date"`
}

func toFoodEntryResponse(entry *models.FoodEntry) foodEntryResponse {
	return foodEntryResponse{
		ID:       entry.ID,
		FoodName: entry.FoodName,
		Protein:  entry.Protein,
		Carbs:    entry.Carbs,
		Fat:      entry.Fat,
		Sodium:   entry.Sodium,
		Date:     entry.DateString(),
	}
}

// AddFoodEntry handles POST /food-entries.
func (ct *FoodEntryController) AddFoodEntry(c *gin.Context) {
	userID := middlewares.UserID(c)

	var input services.FoodEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, ct.log, apperrors.Validation("Request body is required"))
		return
	}

	entry, err := ct.entries.Add(userID, input)
	if err != nil {
		respondError(c, ct.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Food entry added successfully",
		"food_entry": toFoodEntryResponse(entry),
	})
}

// ListFoodEntries handles GET /food-entries. An empty day is a 200 with an
// empty array, never a 404.
func (ct *FoodEntryController) ListFoodEntries(c *gin.Context) {
	userID := middlewares.UserID(c)

	entries, err := ct.entries.ListByDate(userID, c.Query("date"))
	if err != nil {
		respondError(c, ct.log, err)
		return
	}

	results := make([]foodEntryResponse, 0, len(entries))
	for i := range entries {
		results = append(results, toFoodEntryResponse(&entries[i]))
	}
	c.JSON(http.StatusOK, results)
}
