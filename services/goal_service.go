package services

import (
	"errors"
	"math"

	"github.com/Deycylopez14/Hidratacion/config"
	"github.com/Deycylopez14/Hidratacion/models"

	"gorm.io/gorm"
)

// Goal bounds in ml-equivalent; oz bounds are derived from them.
const (
	MinGoalMl = 500
	MaxGoalMl = 5000
)

type GoalInput struct {
	DailyGoal    int     `json:"daily_goal"`
	Unit         string  `json:"unit"`
	Weight       float64 `json:"weight"`
	Age          int     `json:"age"`
	Gender       string  `json:"gender"`
	Activity     string  `json:"activity"`
	Climate      string  `json:"climate"`
	SleepTime    string  `json:"sleep_time"`
	WakeTime     string  `json:"wake_time"`
	ReminderType string  `json:"reminder_type"`
}

// GetGoal returns the stored row, or defaults when none exists.
func GetGoal(userID uint) (*models.UserGoal, error) {
	var g models.UserGoal
	err := config.DB.Where("user_id = ?", userID).First(&g).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.UserGoal{UserID: userID, DailyGoal: DefaultGoalMl, Unit: "ml"}, nil
		}
		return nil, err
	}
	if g.Unit == "" {
		g.Unit = "ml"
	}
	return &g, nil
}

// UpsertGoal saves the preferences keyed by user id; at most one row per
// user. The goal amount is clamped before it is stored.
func UpsertGoal(userID uint, in GoalInput) (*models.UserGoal, error) {
	unit := in.Unit
	if unit != "oz" {
		unit = "ml"
	}
	goal := ClampGoal(in.DailyGoal, unit)

	var g models.UserGoal
	err := config.DB.Where("user_id = ?", userID).First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		g = models.UserGoal{
			UserID:       userID,
			DailyGoal:    goal,
			Unit:         unit,
			Weight:       in.Weight,
			Age:          in.Age,
			Gender:       in.Gender,
			Activity:     in.Activity,
			Climate:      in.Climate,
			SleepTime:    in.SleepTime,
			WakeTime:     in.WakeTime,
			ReminderType: in.ReminderType,
		}
		if err := config.DB.Create(&g).Error; err != nil {
			return nil, err
		}
		return &g, nil
	}
	if err != nil {
		return nil, err
	}

	g.DailyGoal = goal
	g.Unit = unit
	g.Weight = in.Weight
	g.Age = in.Age
	g.Gender = in.Gender
	g.Activity = in.Activity
	g.Climate = in.Climate
	g.SleepTime = in.SleepTime
	g.WakeTime = in.WakeTime
	g.ReminderType = in.ReminderType

	if err := config.DB.Save(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// ClampGoal bounds the goal to [500,5000] ml-equivalent in the given unit.
func ClampGoal(goal int, unit string) int {
	min, max := MinGoalMl, MaxGoalMl
	if unit == "oz" {
		min = int(math.Ceil(MinGoalMl / MlPerOz))
		max = int(math.Floor(MaxGoalMl / MlPerOz))
	}
	if goal < min {
		return min
	}
	if goal > max {
		return max
	}
	return goal
}

// SuggestedGoal is an advisory heuristic; it never overwrites the stored
// goal. Base 30 ml per kg with additive offsets, rounded to 100 ml and
// clamped to [1200,5000].
func SuggestedGoal(weight float64, activity, climate, gender string, age int) int {
	if weight <= 0 {
		return DefaultGoalMl
	}
	base := weight * 30
	switch activity {
	case "alto":
		base += 500
	case "medio":
		base += 250
	}
	switch climate {
	case "caluroso":
		base += 400
	case "frio":
		base -= 200
	}
	if gender == "masculino" {
		base += 250
	}
	if age >= 55 {
		base -= 200
	}
	suggested := int(math.Round(base/100) * 100)
	if suggested < 1200 {
		suggested = 1200
	}
	if suggested > 5000 {
		suggested = 5000
	}
	return suggested
}
