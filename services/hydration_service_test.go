package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/Deycylopez14/Hidratacion/config"
	"github.com/Deycylopez14/Hidratacion/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserGoal{},
		&models.Hydration{},
		&models.PushSubscription{},
		&models.ReminderSetting{},
		&models.UserDevice{},
		&models.Alert{},
	))
	config.DB = db
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
		config.DB = nil
	})
}

func at(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts
}

func TestDailyProgressAgainstMlGoal(t *testing.T) {
	setupTestDB(t)
	uid := uint(1)
	_, err := UpsertGoal(uid, GoalInput{DailyGoal: 2000, Unit: "ml"})
	require.NoError(t, err)

	day := at(t, "2026-03-10T08:00:00Z")
	_, err = AddHydration(uid, 500, day)
	require.NoError(t, err)
	_, err = AddHydration(uid, 700, day.Add(2*time.Hour))
	require.NoError(t, err)

	p := GetDailyProgress(uid, day)
	assert.Equal(t, 1200, p.Total)
	assert.Equal(t, 60, p.Percent)
	assert.Equal(t, 800, p.Remaining)
	assert.Equal(t, 2000, p.Goal)
	assert.Equal(t, "ml", p.Unit)
	require.Len(t, p.Timeline, 2)
	assert.Equal(t, "08:00", p.Timeline[0].Time)
	assert.Equal(t, 500, p.Timeline[0].Amount)
	assert.Equal(t, "10:00", p.Timeline[1].Time)
}

func TestDailyProgressAgainstOzGoal(t *testing.T) {
	setupTestDB(t)
	uid := uint(2)
	_, err := UpsertGoal(uid, GoalInput{DailyGoal: 64, Unit: "oz"})
	require.NoError(t, err)

	day := at(t, "2026-03-10T09:00:00Z")
	_, err = AddHydration(uid, 32, day)
	require.NoError(t, err)

	p := GetDailyProgress(uid, day)
	assert.Equal(t, 50, p.Percent)
	assert.Equal(t, "oz", p.Unit)
	assert.Equal(t, 64, p.Goal)
}

func TestDailyProgressDefaultsWithoutGoalRow(t *testing.T) {
	setupTestDB(t)
	uid := uint(3)

	p := GetDailyProgress(uid, at(t, "2026-03-10T00:00:00Z"))
	assert.Equal(t, 2000, p.Goal)
	assert.Equal(t, "ml", p.Unit)
	assert.Equal(t, 0, p.Total)
	assert.Equal(t, 0, p.Percent)
	assert.Equal(t, 2000, p.Remaining)
	assert.Empty(t, p.Timeline)
}

func TestPercentCapsAtHundred(t *testing.T) {
	setupTestDB(t)
	uid := uint(4)
	_, err := UpsertGoal(uid, GoalInput{DailyGoal: 2000, Unit: "ml"})
	require.NoError(t, err)

	day := at(t, "2026-03-10T10:00:00Z")
	_, err = AddHydration(uid, 2600, day)
	require.NoError(t, err)

	p := GetDailyProgress(uid, day)
	assert.Equal(t, 100, p.Percent)
	assert.Equal(t, 0, p.Remaining)
}

func TestAddHydrationRejectsNonPositiveAmount(t *testing.T) {
	setupTestDB(t)

	_, err := AddHydration(5, 0, time.Now().UTC())
	assert.Error(t, err)
	_, err = AddHydration(5, -100, time.Now().UTC())
	assert.Error(t, err)
}

func TestDailyProgressIgnoresOtherDaysAndUsers(t *testing.T) {
	setupTestDB(t)
	uid := uint(6)

	day := at(t, "2026-03-10T12:00:00Z")
	_, err := AddHydration(uid, 300, day)
	require.NoError(t, err)
	_, err = AddHydration(uid, 999, day.AddDate(0, 0, -1))
	require.NoError(t, err)
	_, err = AddHydration(uid+1, 999, day)
	require.NoError(t, err)

	p := GetDailyProgress(uid, day)
	assert.Equal(t, 300, p.Total)
	assert.Len(t, p.Timeline, 1)
}

func TestWeeklyStatsAveragesDaysWithActivityOnly(t *testing.T) {
	setupTestDB(t)
	uid := uint(7)

	now := at(t, "2026-03-10T15:00:00Z")
	_, err := AddHydration(uid, 1000, now.AddDate(0, 0, -6))
	require.NoError(t, err)
	_, err = AddHydration(uid, 2000, now.AddDate(0, 0, -3))
	require.NoError(t, err)
	_, err = AddHydration(uid, 1500, now)
	require.NoError(t, err)

	stats := GetWeeklyStats(uid, now)
	require.Len(t, stats.Days, 3)
	assert.Equal(t, 1500, stats.Avg)
	assert.Equal(t, 2000, stats.Best)
}

func TestWeeklyStatsSumsMultipleEventsPerDay(t *testing.T) {
	setupTestDB(t)
	uid := uint(8)

	now := at(t, "2026-03-10T20:00:00Z")
	_, err := AddHydration(uid, 400, now.Add(-8*time.Hour))
	require.NoError(t, err)
	_, err = AddHydration(uid, 600, now.Add(-1*time.Hour))
	require.NoError(t, err)

	stats := GetWeeklyStats(uid, now)
	require.Len(t, stats.Days, 1)
	assert.Equal(t, 1000, stats.Days[0].Total)
	assert.Equal(t, 1000, stats.Avg)
	assert.Equal(t, 1000, stats.Best)
}

func TestWeeklyStatsExcludesEventsOlderThanWindow(t *testing.T) {
	setupTestDB(t)
	uid := uint(9)

	now := at(t, "2026-03-10T12:00:00Z")
	_, err := AddHydration(uid, 5000, now.AddDate(0, 0, -7))
	require.NoError(t, err)
	_, err = AddHydration(uid, 800, now)
	require.NoError(t, err)

	stats := GetWeeklyStats(uid, now)
	require.Len(t, stats.Days, 1)
	assert.Equal(t, 800, stats.Best)
}

func TestDeleteHydrationRemovesOnlyTargetRecord(t *testing.T) {
	setupTestDB(t)
	uid := uint(10)

	day := at(t, "2026-03-10T10:00:00Z")
	first, err := AddHydration(uid, 250, day)
	require.NoError(t, err)
	_, err = AddHydration(uid, 350, day.Add(time.Hour))
	require.NoError(t, err)

	require.NoError(t, DeleteHydration(uid, first.ID))

	rows, err := ListHydration(uid)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 350, rows[0].Amount)
}

func TestDeleteAllHydrationResetsProgress(t *testing.T) {
	setupTestDB(t)
	uid := uint(11)

	day := at(t, "2026-03-10T10:00:00Z")
	_, err := AddHydration(uid, 500, day)
	require.NoError(t, err)
	_, err = AddHydration(uid, 500, day.Add(time.Hour))
	require.NoError(t, err)

	require.NoError(t, DeleteAllHydration(uid))

	p := GetDailyProgress(uid, day)
	assert.Equal(t, 0, p.Total)
	assert.Equal(t, 0, p.Percent)
	assert.Empty(t, p.Timeline)

	rows, err := ListHydration(uid)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestListHydrationNewestFirst(t *testing.T) {
	setupTestDB(t)
	uid := uint(12)

	day := at(t, "2026-03-10T08:00:00Z")
	_, err := AddHydration(uid, 100, day)
	require.NoError(t, err)
	_, err = AddHydration(uid, 200, day.Add(3*time.Hour))
	require.NoError(t, err)

	rows, err := ListHydration(uid)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 200, rows[0].Amount)
	assert.Equal(t, 100, rows[1].Amount)
}
