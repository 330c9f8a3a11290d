package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/planfit/backend/internal/domain"
	"github.com/planfit/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	calculator     *usecase.CalculatorService
	mealPlanner    *usecase.MealPlanService
	workoutPlanner *usecase.WorkoutPlanService
	catalog        *usecase.CatalogService
	profiles       domain.ProfileRepository
}

// NewHandler creates a new HTTP handler
func NewHandler(
	calculator *usecase.CalculatorService,
	mealPlanner *usecase.MealPlanService,
	workoutPlanner *usecase.WorkoutPlanService,
	catalog *usecase.CatalogService,
	profiles domain.ProfileRepository,
) *Handler {
	return &Handler{
		calculator:     calculator,
		mealPlanner:    mealPlanner,
		workoutPlanner: workoutPlanner,
		catalog:        catalog,
		profiles:       profiles,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "planfit-backend",
		"version": "1.0.0",
	})
}

// CalculateTDEE computes the full calorie and macro prescription
func (h *Handler) CalculateTDEE(c *gin.Context) {
	var metrics domain.UserMetrics
	if err := c.ShouldBindJSON(&metrics); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	calc, err := h.calculator.CalculateCompleteTDEE(metrics)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, calc)
}

// convertRequest is the body for the unit conversion endpoints
type convertRequest struct {
	Value float64 `json:"value"`
	From  string  `json:"from" binding:"required"`
	To    string  `json:"to" binding:"required"`
}

// ConvertWeight converts a weight between kg and lbs
func (h *Handler) ConvertWeight(c *gin.Context) {
	var req convertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	value, err := h.calculator.ConvertWeight(req.Value, domain.WeightUnit(req.From), domain.WeightUnit(req.To))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"value": value, "unit": req.To})
}

// ConvertHeight converts a height between cm and decimal feet
func (h *Handler) ConvertHeight(c *gin.Context) {
	var req convertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	value, err := h.calculator.ConvertHeight(req.Value, domain.HeightUnit(req.From), domain.HeightUnit(req.To))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"value": value, "unit": req.To})
}

// mealPlanRequest drives meal plan generation. One of Targets, Metrics,
// or ProfileID must identify the daily targets; the first present wins.
type mealPlanRequest struct {
	ProfileID string                  `json:"profileId,omitempty"`
	Metrics   *domain.UserMetrics     `json:"metrics,omitempty"`
	Targets   *domain.TDEECalculation `json:"targets,omitempty"`
	Goal      domain.Goal             `json:"goal,omitempty"`
}

// GenerateMealPlan builds a four-meal day against the food catalog
func (h *Handler) GenerateMealPlan(c *gin.Context) {
	var req mealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	targets, goal, err := h.resolveTargets(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	foods, err := h.catalog.Foods(c.Request.Context(), domain.FoodFilter{})
	if err != nil {
		respondError(c, err)
		return
	}

	plan := h.mealPlanner.GenerateMealPlan(*targets, foods, goal)
	c.JSON(http.StatusOK, plan)
}

// resolveTargets picks the daily targets out of the request: explicit
// targets win, then inline metrics, then a stored profile.
func (h *Handler) resolveTargets(c *gin.Context, req *mealPlanRequest) (*domain.TDEECalculation, domain.Goal, error) {
	switch {
	case req.Targets != nil:
		if req.Goal == "" {
			return nil, "", domain.ErrInvalidRequest
		}
		return req.Targets, req.Goal, nil
	case req.Metrics != nil:
		calc, err := h.calculator.CalculateCompleteTDEE(*req.Metrics)
		if err != nil {
			return nil, "", err
		}
		return calc, req.Metrics.Goal, nil
	case req.ProfileID != "":
		profile, err := h.profiles.Get(c.Request.Context(), req.ProfileID)
		if err != nil {
			return nil, "", err
		}
		calc, err := h.calculator.CalculateCompleteTDEE(profile.UserMetrics)
		if err != nil {
			return nil, "", err
		}
		return calc, profile.Goal, nil
	default:
		return nil, "", domain.ErrInvalidRequest
	}
}

// workoutPlanRequest drives workout plan generation. ProfileID fills in
// frequency, goal, and equipment; explicit fields override.
type workoutPlanRequest struct {
	ProfileID string      `json:"profileId,omitempty"`
	Frequency int         `json:"frequency,omitempty"`
	Goal      domain.Goal `json:"goal,omitempty"`
	Equipment []string    `json:"equipment,omitempty"`
}

// GenerateWorkoutPlan builds a weekly training cycle against the exercise catalog
func (h *Handler) GenerateWorkoutPlan(c *gin.Context) {
	var req workoutPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.ProfileID != "" {
		profile, err := h.profiles.Get(c.Request.Context(), req.ProfileID)
		if err != nil {
			respondError(c, err)
			return
		}
		if req.Frequency == 0 {
			req.Frequency = profile.WeeklyFrequency
		}
		if req.Goal == "" {
			req.Goal = profile.Goal
		}
		if req.Equipment == nil {
			req.Equipment = profile.Equipment
		}
	}

	exercises, err := h.catalog.Exercises(c.Request.Context(), domain.ExerciseFilter{
		Equipment: req.Equipment,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	plan, err := h.workoutPlanner.GenerateWorkoutPlan(req.Frequency, exercises, req.Goal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// ListFoods returns catalog foods, optionally filtered by category and
// the locally-common flag.
func (h *Handler) ListFoods(c *gin.Context) {
	filter := domain.FoodFilter{
		LocallyCommon: c.Query("common") == "true",
	}
	for _, cat := range c.QueryArray("category") {
		filter.Categories = append(filter.Categories, domain.FoodCategory(cat))
	}

	foods, err := h.catalog.Foods(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"foods": foods, "count": len(foods)})
}

// ListExercises returns catalog exercises, optionally filtered by
// category, muscle group, difficulty, and available equipment.
func (h *Handler) ListExercises(c *gin.Context) {
	filter := domain.ExerciseFilter{
		Category:    domain.ExerciseCategory(c.Query("category")),
		MuscleGroup: c.Query("muscleGroup"),
		Difficulty:  domain.Difficulty(c.Query("difficulty")),
		Equipment:   c.QueryArray("equipment"),
	}

	exercises, err := h.catalog.Exercises(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exercises": exercises, "count": len(exercises)})
}

// GetProfile returns a stored profile
func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := h.profiles.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// PutProfile creates or replaces a stored profile
func (h *Handler) PutProfile(c *gin.Context) {
	var profile domain.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profile.ID = c.Param("id")

	if err := h.profiles.Save(c.Request.Context(), &profile); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// respondError maps domain errors to HTTP statuses
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidRequest),
		errors.Is(err, domain.ErrUnknownSex),
		errors.Is(err, domain.ErrUnknownActivityLevel),
		errors.Is(err, domain.ErrUnknownGoal),
		errors.Is(err, domain.ErrUnknownUnit),
		errors.Is(err, domain.ErrInvalidFrequency):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
