package services

import (
	"errors"
	"fmt"

	"github.com/Deycylopez14/Hidratacion/config"
	"github.com/Deycylopez14/Hidratacion/models"
	"github.com/Deycylopez14/Hidratacion/utils"
)

type ProfileInput struct {
	FullName       string `json:"full_name"`
	ProfilePicture string `json:"profile_picture"` // base64 data URI
	Onboarded      *bool  `json:"onboarded"`       // nil means leave as is
}

func GetUserProfile(email string) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	return map[string]interface{}{
		"id":              user.PublicID,
		"email":           user.Email,
		"full_name":       user.FullName,
		"profile_picture": user.ProfilePicture,
		"onboarded":       user.Onboarded,
	}, nil
}

// UpdateUserProfile edits the mutable profile fields. Email is immutable
// post-registration and is never touched here.
func UpdateUserProfile(email string, input ProfileInput) error {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return errors.New("user not found or disabled")
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(input.ProfilePicture, user.PublicID)
		if err != nil {
			return fmt.Errorf("failed to upload image: %v", err)
		}
		user.ProfilePicture = url
	}
	if input.Onboarded != nil {
		user.Onboarded = *input.Onboarded
	}

	return config.DB.Save(&user).Error
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

// CompleteUserOnboarding stores the nickname and initial goal preferences in
// one shot, then flips the onboarded flag.
func CompleteUserOnboarding(email, nickname string, goal GoalInput) error {
	var user models.User
	if err := config.DB.
		Where("email = ? AND disabled = ?", email, false).
		First(&user).Error; err != nil {
		return errors.New("user not found or disabled")
	}

	if nickname != "" {
		user.FullName = nickname
	}
	user.Onboarded = true
	if err := config.DB.Save(&user).Error; err != nil {
		return err
	}

	_, err := UpsertGoal(user.ID, goal)
	return err
}
