package controllers

import (
	"net/http"

	"github.com/Deycylopez14/Hidratacion/services"

	"github.com/gin-gonic/gin"
)

type ReminderController struct {
	Scheduler *services.ReminderScheduler
}

func NewReminderController(s *services.ReminderScheduler) *ReminderController {
	return &ReminderController{Scheduler: s}
}

func (rc *ReminderController) GetSettings(c *gin.Context) {
	uid := c.GetUint("userID")

	st, err := services.GetReminderSetting(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, st)
}

type reminderInput struct {
	Enabled      bool `json:"enabled"`
	FrequencyMin int  `json:"frequency_min"`
	Sound        bool `json:"sound"`
}

// UpdateSettings saves the configuration and re-arms (or tears down) the
// user's timer in the same call.
func (rc *ReminderController) UpdateSettings(c *gin.Context) {
	uid := c.GetUint("userID")

	var input reminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	st, err := services.SaveReminderSetting(uid, input.Enabled, input.FrequencyMin, input.Sound)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo guardar el recordatorio."})
		return
	}

	rc.Scheduler.Apply(uid, st.Enabled, st.FrequencyMin, st.Sound)

	c.JSON(http.StatusOK, st)
}

// GetAlerts serves the stored notification feed.
func (rc *ReminderController) GetAlerts(c *gin.Context) {
	uid := c.GetUint("userID")

	alerts, err := services.ListAlerts(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alerts)
}
