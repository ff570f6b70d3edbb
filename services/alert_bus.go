package services

import (
	"time"

	"github.com/Deycylopez14/Hidratacion/models"
	"github.com/Deycylopez14/Hidratacion/utils"

	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_alert = alertDeps{db: db, rt: rt, ps: ps}
}

// EmitAlert persists the notification and fans it out over websocket and
// SNS push. Safe to call from the reminder scheduler goroutines.
func EmitAlert(userID uint, typ, title, message string, data map[string]string) {
	if _alert.db == nil {
		return // not initialized
	}
	a := &models.Alert{UserID: userID, Type: typ, Title: title, Message: message, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.Broadcast(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
			"data":  data,
		})
		if typ == "reminder" {
			utils.ReminderCount.WithLabelValues("ws").Inc()
		}
	}
	if _alert.ps != nil {
		_alert.ps.PushToUser(userID, title, message, data)
		if typ == "reminder" {
			utils.ReminderCount.WithLabelValues("push").Inc()
		}
	}
}

// ListAlerts returns the user's notification feed, newest first.
func ListAlerts(userID uint) ([]models.Alert, error) {
	var alerts []models.Alert
	err := _alert.db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(50).
		Find(&alerts).Error
	return alerts, err
}
