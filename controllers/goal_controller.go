package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/robord1/macronutrient-tracker-api/apperrors"
	"github.com/robord1/macronutrient-tracker-api/middlewares"
	"github.com/robord1/macronutrient-tracker-api/models"
)

// GoalService is what the goal endpoints need from the service layer.
type GoalService interface {
	Get(userID uint) (*models.Goal, error)
	Upsert(userID uint, protein, carbs, fat, sodium int) (created bool, err error)
}

type GoalController struct {
	goals GoalService
	log   *logrus.Logger
}

func NewGoalController(goals GoalService, log *logrus.Logger) *GoalController {
	return &GoalController{goals: goals, log: log}
}

type goalResponse struct {
	ID      uint `json:"id"`
	Protein int  `json:"protein"`
	Carbs   int  `json:"carbs"`
	Fat     int  `json:"fat"`
	Sodium  int  `json:"sodium"`
}

// GetGoals handles GET /goals. The wire contract keeps goals as an array
// even though a user has at most one.
func (ct *GoalController) GetGoals(c *gin.Context) {
	userID := middlewares.UserID(c)

	goal, err := ct.goals.Get(userID)
	if err != nil {
		respondError(c, ct.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id": userID,
		"goals": []goalResponse{{
			ID:      goal.ID,
			Protein: goal.ProteinTarget,
			Carbs:   goal.CarbsTarget,
			Fat:     goal.FatTarget,
			Sodium:  goal.SodiumTarget,
		}},
	})
}

type setGoalsInput struct {
	Protein *int `json:"protein"`
	Carbs   *int `json:"carbs"`
	Fat     *int `json:"fat"`
	Sodium  *int `json:"sodium"`
}

// SetGoals handles POST and PUT /goals as a full-replace upsert: 201 when
// the goal record is created, 200 when an existing one is overwritten.
func (ct *GoalController) SetGoals(c *gin.Context) {
	userID := middlewares.UserID(c)

	var input setGoalsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, ct.log, apperrors.Validation("Request body is required"))
		return
	}

	required := []struct {
		name  string
		value *int
	}{
		{"protein", input.Protein},
		{"carbs", input.Carbs},
		{"fat", input.Fat},
		{"sodium", input.Sodium},
	}
	for _, f := range required {
		if f.value == nil {
			respondError(c, ct.log, apperrors.Validation("Missing field: %s", f.name))
			return
		}
	}

	created, err := ct.goals.Upsert(userID, *input.Protein, *input.Carbs, *input.Fat, *input.Sodium)
	if err != nil {
		respondError(c, ct.log, err)
		return
	}

	if created {
		c.JSON(http.StatusCreated, gin.H{"message": "Goals set successfully"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Goals updated successfully"})
}
