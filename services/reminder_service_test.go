package services

import (
	"sync"
	"testing"
	"time"

	"github.com/Deycylopez14/Hidratacion/config"
	"github.com/Deycylopez14/Hidratacion/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notifyRecorder struct {
	mu    sync.Mutex
	calls []map[string]string
}

func (r *notifyRecorder) fn(userID uint, title, body string, data map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, data)
}

func (r *notifyRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func (r *notifyRecorder) last() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return nil
	}
	return r.calls[len(r.calls)-1]
}

func TestClampFrequencyBounds(t *testing.T) {
	assert.Equal(t, 10, ClampFrequency(5))
	assert.Equal(t, 10, ClampFrequency(10))
	assert.Equal(t, 60, ClampFrequency(60))
	assert.Equal(t, 180, ClampFrequency(180))
	assert.Equal(t, 180, ClampFrequency(999))
}

func TestGetReminderSettingDefaultsWhenMissing(t *testing.T) {
	setupTestDB(t)

	st, err := GetReminderSetting(21)
	require.NoError(t, err)
	assert.False(t, st.Enabled)
	assert.Equal(t, 60, st.FrequencyMin)
}

func TestSaveReminderSettingUpsertsAndClamps(t *testing.T) {
	setupTestDB(t)
	uid := uint(21)

	st, err := SaveReminderSetting(uid, true, 5, true)
	require.NoError(t, err)
	assert.Equal(t, 10, st.FrequencyMin)
	assert.True(t, st.Enabled)
	assert.True(t, st.Sound)

	st, err = SaveReminderSetting(uid, true, 45, false)
	require.NoError(t, err)
	assert.Equal(t, 45, st.FrequencyMin)
	assert.False(t, st.Sound)

	var count int64
	require.NoError(t, config.DB.Model(&models.ReminderSetting{}).Where("user_id = ?", uid).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSchedulerFiresRepeatedlyUntilStopped(t *testing.T) {
	rec := &notifyRecorder{}
	s := NewReminderScheduler(rec.fn)

	s.schedule(1, 20*time.Millisecond, true)
	time.Sleep(90 * time.Millisecond)
	s.Stop(1)

	fired := rec.count()
	assert.GreaterOrEqual(t, fired, 2)

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, fired, rec.count())

	data := rec.last()
	require.NotNil(t, data)
	assert.Equal(t, ReminderIcon, data["icon"])
	assert.Equal(t, "true", data["sound"])
}

func TestSchedulerSoundIsPayloadMetadataOnly(t *testing.T) {
	rec := &notifyRecorder{}
	s := NewReminderScheduler(rec.fn)

	s.schedule(2, 20*time.Millisecond, false)
	time.Sleep(50 * time.Millisecond)
	s.Stop(2)

	data := rec.last()
	require.NotNil(t, data)
	assert.Equal(t, "false", data["sound"])
}

func TestApplyReplacesExistingTimer(t *testing.T) {
	rec := &notifyRecorder{}
	s := NewReminderScheduler(rec.fn)
	defer s.Shutdown()

	s.Apply(3, true, 30, false)
	s.Apply(3, true, 60, true)

	s.mu.Lock()
	timers := len(s.timers)
	s.mu.Unlock()
	assert.Equal(t, 1, timers)
}

func TestApplyDisabledTearsDownTimer(t *testing.T) {
	rec := &notifyRecorder{}
	s := NewReminderScheduler(rec.fn)

	s.Apply(4, true, 30, false)
	s.Apply(4, false, 30, false)

	s.mu.Lock()
	timers := len(s.timers)
	s.mu.Unlock()
	assert.Equal(t, 0, timers)
}

func TestShutdownStopsAllTimers(t *testing.T) {
	rec := &notifyRecorder{}
	s := NewReminderScheduler(rec.fn)

	s.Apply(5, true, 30, false)
	s.Apply(6, true, 30, false)
	s.Shutdown()

	s.mu.Lock()
	timers := len(s.timers)
	s.mu.Unlock()
	assert.Equal(t, 0, timers)
}

func TestRestoreArmsEnabledSettingsOnly(t *testing.T) {
	setupTestDB(t)

	_, err := SaveReminderSetting(7, true, 30, false)
	require.NoError(t, err)
	_, err = SaveReminderSetting(8, false, 30, false)
	require.NoError(t, err)

	rec := &notifyRecorder{}
	s := NewReminderScheduler(rec.fn)
	defer s.Shutdown()
	require.NoError(t, s.Restore())

	s.mu.Lock()
	_, armed7 := s.timers[7]
	_, armed8 := s.timers[8]
	s.mu.Unlock()
	assert.True(t, armed7)
	assert.False(t, armed8)
}
