package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/Deycylopez14/Hidratacion/cache"
	"github.com/Deycylopez14/Hidratacion/config"
	"github.com/Deycylopez14/Hidratacion/models"
	"github.com/Deycylopez14/Hidratacion/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	DefaultGoalMl = 2000
	MlPerOz       = 29.5735
)

type TimelineEntry struct {
	Time   string `json:"time"` // HH:MM, UTC
	Amount int    `json:"amount"`
}

// DailyProgress is the aggregation for one calendar day. Total, Goal and
// Remaining are in the user's unit; Percent is computed in ml space.
type DailyProgress struct {
	Timeline  []TimelineEntry `json:"timeline"`
	Total     int             `json:"total"`
	Percent   int             `json:"percent"`
	Remaining int             `json:"remaining"`
	Goal      int             `json:"goal"`
	Unit      string          `json:"unit"`
}

type DayTotal struct {
	Day   string `json:"day"` // YYYY-MM-DD
	Total int    `json:"total"`
}

type WeeklyStats struct {
	Days []DayTotal `json:"days"`
	Avg  int        `json:"avg"`
	Best int        `json:"best"`
}

func AddHydration(userID uint, amount int, at time.Time) (*models.Hydration, error) {
	if amount <= 0 {
		return nil, errors.New("amount must be positive")
	}
	h := &models.Hydration{UserID: userID, Amount: amount}
	h.CreatedAt = at
	if err := config.DB.Create(h).Error; err != nil {
		return nil, err
	}
	invalidateStats(userID)
	return h, nil
}

func DeleteHydration(userID, id uint) error {
	err := config.DB.
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&models.Hydration{}).Error
	if err == nil {
		invalidateStats(userID)
	}
	return err
}

func DeleteAllHydration(userID uint) error {
	err := config.DB.
		Where("user_id = ?", userID).
		Delete(&models.Hydration{}).Error
	if err == nil {
		invalidateStats(userID)
	}
	return err
}

// ListHydration returns the full event list, newest first, for the history
// table and the exporters.
func ListHydration(userID uint) ([]models.Hydration, error) {
	var rows []models.Hydration
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&rows).Error
	return rows, err
}

// GetDailyProgress aggregates the target day. Read failures fall back to an
// empty timeline and the default goal; only writes surface errors to users.
func GetDailyProgress(userID uint, day time.Time) *DailyProgress {
	goal, unit := goalForUser(userID)

	start := dayStartUTC(day)
	end := start.Add(24 * time.Hour)

	var rows []models.Hydration
	err := config.DB.
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		Order("created_at asc").
		Find(&rows).Error
	if err != nil {
		logError("hydration_read_failed", err)
		rows = nil
	}

	timeline := make([]TimelineEntry, 0, len(rows))
	total := 0
	for _, r := range rows {
		timeline = append(timeline, TimelineEntry{
			Time:   r.CreatedAt.UTC().Format("15:04"),
			Amount: r.Amount,
		})
		total += r.Amount
	}

	percent, remaining := progressOf(total, goal, unit)
	return &DailyProgress{
		Timeline:  timeline,
		Total:     total,
		Percent:   percent,
		Remaining: remaining,
		Goal:      goal,
		Unit:      unit,
	}
}

// GetWeeklyStats computes per-day sums over the trailing 7 calendar days.
// The average is over days with at least one event; empty days contribute
// nothing to the denominator.
func GetWeeklyStats(userID uint, now time.Time) *WeeklyStats {
	start := dayStartUTC(now.AddDate(0, 0, -6))
	end := dayStartUTC(now).Add(24 * time.Hour)

	var rows []models.Hydration
	err := config.DB.
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		Order("created_at asc").
		Find(&rows).Error
	if err != nil {
		logError("hydration_stats_read_failed", err)
		return &WeeklyStats{Days: []DayTotal{}}
	}

	sums := map[string]int{}
	var order []string
	for _, r := range rows {
		day := r.CreatedAt.UTC().Format("2006-01-02")
		if _, seen := sums[day]; !seen {
			order = append(order, day)
		}
		sums[day] += r.Amount
	}

	days := make([]DayTotal, 0, len(order))
	sum, best := 0, 0
	for _, d := range order {
		days = append(days, DayTotal{Day: d, Total: sums[d]})
		sum += sums[d]
		if sums[d] > best {
			best = sums[d]
		}
	}

	avg := 0
	if len(order) > 0 {
		avg = int(math.Round(float64(sum) / float64(len(order))))
	}
	return &WeeklyStats{Days: days, Avg: avg, Best: best}
}

// GetWeeklyStatsCached serves stats from Redis when available; recomputed on
// every intake write via invalidateStats.
func GetWeeklyStatsCached(userID uint, now time.Time) *WeeklyStats {
	if !cache.Enabled() {
		return GetWeeklyStats(userID, now)
	}
	key := statsKey(userID)
	var cached WeeklyStats
	if err := cache.Get(key, &cached); err == nil {
		return &cached
	}
	stats := GetWeeklyStats(userID, now)
	if err := cache.Set(key, stats, 5*time.Minute); err != nil {
		logError("stats_cache_set_failed", err)
	}
	return stats
}

func invalidateStats(userID uint) {
	if !cache.Enabled() {
		return
	}
	if err := cache.Delete(statsKey(userID)); err != nil {
		logError("stats_cache_invalidate_failed", err)
	}
}

func statsKey(userID uint) string { return fmt.Sprintf("stats:%d", userID) }

// goalForUser reads the goal row; a miss or read failure yields the default.
func goalForUser(userID uint) (int, string) {
	var g models.UserGoal
	err := config.DB.Where("user_id = ?", userID).First(&g).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logError("goal_read_failed", err)
		}
		return DefaultGoalMl, "ml"
	}
	if g.DailyGoal <= 0 {
		return DefaultGoalMl, "ml"
	}
	unit := g.Unit
	if unit == "" {
		unit = "ml"
	}
	return g.DailyGoal, unit
}

// progressOf normalizes both operands to ml before computing percent and
// remaining, so oz users get the same ratio as ml users.
func progressOf(total, goal int, unit string) (percent, remaining int) {
	totalMl := toMl(total, unit)
	goalMl := toMl(goal, unit)
	if goalMl <= 0 {
		return 0, 0
	}
	percent = int(math.Round(totalMl / goalMl * 100))
	if percent > 100 {
		percent = 100
	}
	remaining = int(math.Round(goalMl - totalMl))
	if remaining < 0 {
		remaining = 0
	}
	return percent, remaining
}

func toMl(v int, unit string) float64 {
	if unit == "oz" {
		return float64(v) * MlPerOz
	}
	return float64(v)
}

func dayStartUTC(t time.Time) time.Time {
	tt := t.UTC()
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.UTC)
}

func logError(event string, err error) {
	if utils.Logger != nil {
		utils.Logger.Error(event, zap.Error(err))
	}
}
