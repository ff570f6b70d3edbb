package controllers

import (
	"net/http"
	"time"

	"github.com/Deycylopez14/Hidratacion/config"
	"github.com/Deycylopez14/Hidratacion/services"

	"github.com/gin-gonic/gin"
)

// Development-only endpoints used to seed data and exercise push delivery.
// Both refuse to run in production.

func devGuard(c *gin.Context) bool {
	if config.Env() == "production" {
		c.JSON(http.StatusForbidden, gin.H{"error": "not available in production"})
		return false
	}
	return true
}

type simulatedIntakeInput struct {
	Amount int    `json:"amount" binding:"required,gt=0"`
	Date   string `json:"date" binding:"required"` // YYYY-MM-DD
}

// SimulatedIntake inserts an event on an arbitrary past or future day,
// stamped at noon UTC so it lands unambiguously inside that day.
func SimulatedIntake(c *gin.Context) {
	if !devGuard(c) {
		return
	}
	uid := c.GetUint("userID")

	var input simulatedIntakeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	day, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	at := time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, time.UTC)

	rec, err := services.AddHydration(uid, input.Amount, at)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, rec)
}

// TestPush sends a one-off notification through every registered channel.
func TestPush(c *gin.Context) {
	if !devGuard(c) {
		return
	}
	uid := c.GetUint("userID")

	services.EmitAlert(uid, "test", "Prueba de notificación",
		"Si ves esto, las notificaciones funcionan.", nil)

	c.JSON(http.StatusOK, gin.H{"message": "test notification sent"})
}
