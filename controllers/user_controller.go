package controllers

import (
	"net/http"

	"github.com/Deycylopez14/Hidratacion/services"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	email := c.GetString("email")
	profile, err := services.GetUserProfile(email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func UpdateProfile(c *gin.Context) {
	email := c.GetString("email")
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.UpdateUserProfile(email, input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo guardar el perfil. Intenta de nuevo."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated successfully"})
}

type onboardingInput struct {
	Nickname string             `json:"nickname"`
	Goal     services.GoalInput `json:"goal"`
}

// CompleteOnboarding stores the wizard result (nickname + initial goal
// preferences) and marks the user as onboarded.
func CompleteOnboarding(c *gin.Context) {
	email := c.GetString("email")

	var input onboardingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.CompleteUserOnboarding(email, input.Nickname, input.Goal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo completar la configuración inicial."})
		return
	}

	c.Status(http.StatusNoContent)
}
