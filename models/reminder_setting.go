package models

import (
    "gorm.io/gorm"
)

// ReminderSetting is the per-user reminder configuration. One row per user.
// FrequencyMin is clamped to [10,180] by every editing surface.
type ReminderSetting struct {
    gorm.Model
    UserID       uint `gorm:"uniqueIndex;not null"`
    Enabled      bool
    FrequencyMin int  `gorm:"default:60"`
    Sound        bool
}
