package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/robord1/macronutrient-tracker-api/controllers"
	"github.com/robord1/macronutrient-tracker-api/middlewares"
	"github.com/robord1/macronutrient-tracker-api/utils"
)

// Handlers groups the constructed controllers the router wires up.
type Handlers struct {
	Auth        *controllers.AuthController
	Goals       *controllers.GoalController
	FoodEntries *controllers.FoodEntryController
}

// Route declares one endpoint: method, path, handler, and whether a valid
// bearer token is required before the handler runs.
type Route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Auth    bool
}

// Table is the full route registration table for the API.
func Table(h Handlers) []Route {
	return []Route{
		{http.MethodGet, "/", controllers.Home, false},
		{http.MethodPost, "/signup", h.Auth.Signup, false},
		{http.MethodPost, "/login", h.Auth.Login, false},
		{http.MethodGet, "/goals", h.Goals.GetGoals, true},
		{http.MethodPost, "/goals", h.Goals.SetGoals, true},
		{http.MethodPut, "/goals", h.Goals.SetGoals, true},
		{http.MethodPost, "/food-entries", h.FoodEntries.AddFoodEntry, true},
		{http.MethodGet, "/food-entries", h.FoodEntries.ListFoodEntries, true},
	}
}

// SetupRouter registers the route table on a gin engine. Recovery keeps
// unexpected panics from leaking anything beyond a bare 500.
func SetupRouter(h Handlers, tokens *utils.TokenManager) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	requireAuth := middlewares.RequireAuth(tokens)
	for _, route := range Table(h) {
		if route.Auth {
			r.Handle(route.Method, route.Path, requireAuth, route.Handler)
			continue
		}
		r.Handle(route.Method, route.Path, route.Handler)
	}
	return r
}
