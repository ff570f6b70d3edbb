package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Deycylopez14/Hidratacion/services"

	"github.com/gin-gonic/gin"
)

// GetGoals returns the stored preferences plus today's progress against them.
func GetGoals(c *gin.Context) {
	uid := c.GetUint("userID")

	goal, err := services.GetGoal(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"goal":     goal,
		"progress": services.GetDailyProgress(uid, time.Now().UTC()),
	})
}

// UpdateGoals upserts the one-per-user preferences row. The goal amount is
// clamped to the allowed range before storage.
func UpdateGoals(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := services.UpsertGoal(uid, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo guardar la meta. Intenta de nuevo."})
		return
	}

	c.JSON(http.StatusOK, goal)
}

// GetSuggestedGoal computes the advisory heuristic from query params without
// touching the stored goal.
func GetSuggestedGoal(c *gin.Context) {
	weight, _ := strconv.ParseFloat(c.Query("weight"), 64)
	age, _ := strconv.Atoi(c.Query("age"))

	suggested := services.SuggestedGoal(
		weight,
		c.Query("activity"),
		c.Query("climate"),
		c.Query("gender"),
		age,
	)

	c.JSON(http.StatusOK, gin.H{"suggested_goal": suggested, "unit": "ml"})
}
