package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"goodshelf/internal/stats"
)

// StatsResponse pairs the computed reading summary with the persisted
// yearly goal.
type StatsResponse struct {
	stats.Summary
	YearlyGoal int `json:"yearlyGoal"`
}

// StatsController serves reading statistics and the yearly goal.
type StatsController struct {
	books BookStore
	goals GoalStore
}

func NewStatsController(books BookStore, goals GoalStore) *StatsController {
	return &StatsController{books: books, goals: goals}
}

// GetStats recomputes the summary over the whole library on every call.
// GET /api/stats
func (sc *StatsController) GetStats(c *gin.Context) {
	books, err := sc.books.GetAllBooks()
	if err != nil {
		respondInternalError(c, err, "load books for stats")
		return
	}
	goal, err := sc.goals.GetYearlyGoal()
	if err != nil {
		respondInternalError(c, err, "load yearly goal")
		return
	}

	c.JSON(http.StatusOK, StatsResponse{
		Summary:    stats.Compute(books, time.Now()),
		YearlyGoal: goal,
	})
}

// UpdateGoal persists a new yearly reading goal.
// PUT /api/stats/goal
func (sc *StatsController) UpdateGoal(c *gin.Context) {
	var req struct {
		Goal *int `json:"goal" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "goal is required")
		return
	}

	if err := sc.goals.SetYearlyGoal(*req.Goal); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	respondSuccess(c, "yearly goal updated")
}
