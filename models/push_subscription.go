package models

import (
    "gorm.io/datatypes"
    "gorm.io/gorm"
)

// PushSubscription stores the opaque Web Push subscription payload issued by
// the browser. At most one live row per user; re-enabling replaces it.
type PushSubscription struct {
    gorm.Model
    UserID       uint           `gorm:"uniqueIndex;not null"`
    Subscription datatypes.JSON `gorm:"not null"`
}
