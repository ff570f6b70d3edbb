package services

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/Deycylopez14/Hidratacion/config"
	"github.com/Deycylopez14/Hidratacion/models"

	"gorm.io/gorm"
)

// Fixed notification surface (matches the PWA client).
const (
	ReminderTitle = "¡Hora de hidratarte!"
	ReminderBody  = "Recuerda beber agua para alcanzar tu meta diaria."
	ReminderIcon  = "/icons/icon-192x192.png"

	MinFrequencyMin = 10
	MaxFrequencyMin = 180
)

type NotifyFunc func(userID uint, title, body string, data map[string]string)

// ReminderScheduler runs one repeating timer per enabled user. There is a
// single parameterized timer with a sound flag; sound is payload metadata,
// never a second timer. Missed reminders are not persisted across restarts.
type ReminderScheduler struct {
	mu     sync.Mutex
	timers map[uint]chan struct{}
	notify NotifyFunc
}

func NewReminderScheduler(notify NotifyFunc) *ReminderScheduler {
	return &ReminderScheduler{
		timers: make(map[uint]chan struct{}),
		notify: notify,
	}
}

// Apply arms, re-arms or tears down the user's timer to match the setting.
// A frequency change re-arms from zero; no catch-up tick fires.
func (s *ReminderScheduler) Apply(userID uint, enabled bool, frequencyMin int, sound bool) {
	s.Stop(userID)
	if !enabled {
		return
	}
	freq := ClampFrequency(frequencyMin)
	s.schedule(userID, time.Duration(freq)*time.Minute, sound)
}

func (s *ReminderScheduler) schedule(userID uint, interval time.Duration, sound bool) {
	stop := make(chan struct{})
	s.mu.Lock()
	s.timers[userID] = stop
	s.mu.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.notify(userID, ReminderTitle, ReminderBody, map[string]string{
					"icon":  ReminderIcon,
					"sound": strconv.FormatBool(sound),
				})
			case <-stop:
				return
			}
		}
	}()
}

func (s *ReminderScheduler) Stop(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if stop, ok := s.timers[userID]; ok {
		close(stop)
		delete(s.timers, userID)
	}
}

func (s *ReminderScheduler) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, stop := range s.timers {
		close(stop)
		delete(s.timers, id)
	}
}

// Restore re-arms timers for every enabled setting, called once at startup.
func (s *ReminderScheduler) Restore() error {
	var settings []models.ReminderSetting
	if err := config.DB.Where("enabled = ?", true).Find(&settings).Error; err != nil {
		return err
	}
	for _, st := range settings {
		s.Apply(st.UserID, st.Enabled, st.FrequencyMin, st.Sound)
	}
	return nil
}

func ClampFrequency(min int) int {
	if min < MinFrequencyMin {
		return MinFrequencyMin
	}
	if min > MaxFrequencyMin {
		return MaxFrequencyMin
	}
	return min
}

func GetReminderSetting(userID uint) (*models.ReminderSetting, error) {
	var st models.ReminderSetting
	err := config.DB.Where("user_id = ?", userID).First(&st).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.ReminderSetting{UserID: userID, FrequencyMin: 60}, nil
		}
		return nil, err
	}
	return &st, nil
}

// SaveReminderSetting upserts the per-user row with a clamped frequency.
func SaveReminderSetting(userID uint, enabled bool, frequencyMin int, sound bool) (*models.ReminderSetting, error) {
	freq := ClampFrequency(frequencyMin)

	var st models.ReminderSetting
	err := config.DB.Where("user_id = ?", userID).First(&st).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		st = models.ReminderSetting{UserID: userID, Enabled: enabled, FrequencyMin: freq, Sound: sound}
		if err := config.DB.Create(&st).Error; err != nil {
			return nil, err
		}
		return &st, nil
	}
	if err != nil {
		return nil, err
	}

	st.Enabled = enabled
	st.FrequencyMin = freq
	st.Sound = sound
	if err := config.DB.Save(&st).Error; err != nil {
		return nil, err
	}
	return &st, nil
}
