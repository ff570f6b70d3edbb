package services

import (
	"encoding/json"
	"testing"

	"github.com/Deycylopez14/Hidratacion/config"
	"github.com/Deycylopez14/Hidratacion/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveWebPushSubscriptionUpsertsSingleRow(t *testing.T) {
	setupTestDB(t)
	p := &PushService{db: config.DB}
	uid := uint(31)

	first := json.RawMessage(`{"endpoint":"https://push.example/a","keys":{"p256dh":"x","auth":"y"}}`)
	sub, err := p.SaveWebPushSubscription(uid, first)
	require.NoError(t, err)
	assert.JSONEq(t, string(first), string(sub.Subscription))

	second := json.RawMessage(`{"endpoint":"https://push.example/b","keys":{"p256dh":"x2","auth":"y2"}}`)
	sub, err = p.SaveWebPushSubscription(uid, second)
	require.NoError(t, err)
	assert.JSONEq(t, string(second), string(sub.Subscription))

	var count int64
	require.NoError(t, config.DB.Model(&models.PushSubscription{}).Where("user_id = ?", uid).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSaveWebPushSubscriptionRejectsInvalidPayload(t *testing.T) {
	setupTestDB(t)
	p := &PushService{db: config.DB}

	_, err := p.SaveWebPushSubscription(32, nil)
	assert.Error(t, err)

	_, err = p.SaveWebPushSubscription(32, json.RawMessage(`{not json`))
	assert.Error(t, err)
}
