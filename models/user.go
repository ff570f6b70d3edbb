package models

import (
    "time"

    "gorm.io/gorm"
)

type User struct {
    gorm.Model
    PublicID       string `gorm:"uniqueIndex;size:36;not null"` // opaque id handed to clients
    Email          string `gorm:"uniqueIndex;not null"`         // immutable after registration
    Password       string `gorm:"not null"`
    FullName       string
    ProfilePicture string
    Onboarded      bool
    Disabled       bool
    ResetToken     string
    ResetTokenExp  time.Time
}
