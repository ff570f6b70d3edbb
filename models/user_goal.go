package models

import (
    "gorm.io/gorm"
)

// UserGoal holds each user’s daily hydration target plus the physiological
// inputs used to compute a suggested goal. One row per user (upsert).
type UserGoal struct {
    gorm.Model
    UserID       uint   `gorm:"uniqueIndex;not null"`
    DailyGoal    int    // e.g. 2000 ml or 64 oz, depending on Unit
    Unit         string `gorm:"size:4;default:ml"` // "ml" | "oz"
    Weight       float64 // kg
    Age          int
    Gender       string `gorm:"size:16"`
    Activity     string `gorm:"size:16"` // "bajo" | "medio" | "alto"
    Climate      string `gorm:"size:16"` // "frio" | "templado" | "caluroso"
    SleepTime    string `gorm:"size:8"`  // "HH:MM"
    WakeTime     string `gorm:"size:8"`  // "HH:MM"
    ReminderType string `gorm:"size:16"`
}
