package controllers

import (
	"net/http"
	"time"

	"github.com/Deycylopez14/Hidratacion/services"

	"github.com/gin-gonic/gin"
)

type addHydrationInput struct {
	Amount int `json:"amount" binding:"required,gt=0"`
}

// AddHydration logs one consumption event at the current instant and returns
// the re-aggregated day so the client refreshes in one round trip.
func AddHydration(c *gin.Context) {
	uid := c.GetUint("userID")

	var input addHydrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := services.AddHydration(uid, input.Amount, time.Now().UTC()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al registrar el consumo. Intenta de nuevo."})
		return
	}

	c.JSON(http.StatusCreated, services.GetDailyProgress(uid, time.Now().UTC()))
}

// GetToday returns today's aggregation: timeline, total, percent, remaining.
// Read problems degrade to defaults instead of erroring.
func GetToday(c *gin.Context) {
	uid := c.GetUint("userID")
	c.JSON(http.StatusOK, services.GetDailyProgress(uid, time.Now().UTC()))
}

// GetByDate aggregates an arbitrary day (YYYY-MM-DD) for the statistics view.
func GetByDate(c *gin.Context) {
	uid := c.GetUint("userID")

	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'date' query param"})
		return
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":     dateStr,
		"progress": services.GetDailyProgress(uid, date),
	})
}

// GetWeeklyStats serves the rolling 7-day average/maximum and per-day sums.
func GetWeeklyStats(c *gin.Context) {
	uid := c.GetUint("userID")
	c.JSON(http.StatusOK, services.GetWeeklyStatsCached(uid, time.Now().UTC()))
}
