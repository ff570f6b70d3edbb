package models

import (
    "gorm.io/gorm"
)

// Hydration is one logged water-consumption event. Immutable once created;
// the only lifecycle operations are insert and delete.
type Hydration struct {
    gorm.Model
    UserID uint `gorm:"index;not null"`
    Amount int  `gorm:"not null"` // in the user's unit at time of entry
}
