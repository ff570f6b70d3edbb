package services

import (
	"testing"

	"github.com/Deycylopez14/Hidratacion/config"
	"github.com/Deycylopez14/Hidratacion/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfileNameOnlyKeepsOnboardedFlag(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, RegisterUser("rosa@example.com", "secret123", "Rosa"))
	require.NoError(t, CompleteUserOnboarding("rosa@example.com", "", GoalInput{DailyGoal: 2000, Unit: "ml"}))

	require.NoError(t, UpdateUserProfile("rosa@example.com", ProfileInput{FullName: "Nuevo"}))

	var user models.User
	require.NoError(t, config.DB.Where("email = ?", "rosa@example.com").First(&user).Error)
	assert.Equal(t, "Nuevo", user.FullName)
	assert.True(t, user.Onboarded)
}

func TestUpdateProfileExplicitOnboardedValue(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, RegisterUser("ivan@example.com", "secret123", "Ivan"))

	onboarded := true
	require.NoError(t, UpdateUserProfile("ivan@example.com", ProfileInput{Onboarded: &onboarded}))

	var user models.User
	require.NoError(t, config.DB.Where("email = ?", "ivan@example.com").First(&user).Error)
	assert.True(t, user.Onboarded)

	onboarded = false
	require.NoError(t, UpdateUserProfile("ivan@example.com", ProfileInput{Onboarded: &onboarded}))
	require.NoError(t, config.DB.Where("email = ?", "ivan@example.com").First(&user).Error)
	assert.False(t, user.Onboarded)
}

func TestGetUserProfileShape(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, RegisterUser("sol@example.com", "secret123", "Sol"))

	profile, err := GetUserProfile("sol@example.com")
	require.NoError(t, err)
	assert.Equal(t, "sol@example.com", profile["email"])
	assert.Equal(t, "Sol", profile["full_name"])
	assert.NotEmpty(t, profile["id"])
	assert.Equal(t, false, profile["onboarded"])
}
