package models

import "time"

// Alert is a notification that was emitted to the user (reminders included),
// kept so clients can show a notification feed.
type Alert struct {
    ID        uint      `gorm:"primaryKey"`
    UserID    uint      `gorm:"index"`
    Type      string    `gorm:"size:20"` // "reminder" | "info"
    Title     string    `gorm:"size:128"`
    Message   string    `gorm:"type:text"`
    CreatedAt time.Time
}
