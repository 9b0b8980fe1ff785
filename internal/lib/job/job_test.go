package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/deppfellow/shrine-api/internal/model"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockMailer struct{ mock.Mock }

func (m *mockMailer) SendPrayerNotification(to string, prayerID int64, name, prayer, receivedAt string) error {
	return m.Called(to, prayerID, name, prayer, receivedAt).Error(0)
}

func (m *mockMailer) SendMassBookingNotification(to string, bookingID int64, name, intentionType, startDate string, days int32) error {
	return m.Called(to, bookingID, name, intentionType, startDate, days).Error(0)
}

func newTestJobService(m mailer) *JobService {
	logger := zerolog.Nop()
	return &JobService{mailer: m, notifyTo: "office@example.com", logger: &logger}
}

func TestNewPrayerNotificationTask(t *testing.T) {
	created := time.Date(2025, 1, 5, 9, 30, 0, 0, time.UTC)
	task, err := NewPrayerNotificationTask(&model.Prayer{ID: 4, Name: "Maria", Prayer: "peace", CreatedAt: created})
	require.NoError(t, err)

	assert.Equal(t, TaskPrayerNotification, task.Type())

	var p PrayerNotificationPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.Equal(t, int64(4), p.PrayerID)
	assert.Equal(t, "peace", p.Prayer)
	assert.True(t, created.Equal(p.ReceivedAt))
}

func TestHandlePrayerNotificationTask(t *testing.T) {
	m := &mockMailer{}
	m.On("SendPrayerNotification", "office@example.com", int64(4), "Maria", "peace", "2025-01-05 09:30").Return(nil)

	task, err := NewPrayerNotificationTask(&model.Prayer{
		ID:        4,
		Name:      "Maria",
		Prayer:    "peace",
		CreatedAt: time.Date(2025, 1, 5, 9, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.NoError(t, newTestJobService(m).handlePrayerNotificationTask(context.Background(), task))
	m.AssertExpectations(t)
}

func TestHandlePrayerNotificationTask_SendFailureRetries(t *testing.T) {
	m := &mockMailer{}
	m.On("SendPrayerNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("provider down"))

	task, err := NewPrayerNotificationTask(&model.Prayer{ID: 1, Name: "A", Prayer: "p"})
	require.NoError(t, err)

	err = newTestJobService(m).handlePrayerNotificationTask(context.Background(), task)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, asynq.SkipRetry)
}

func TestHandlePrayerNotificationTask_BadPayloadSkipsRetry(t *testing.T) {
	task := asynq.NewTask(TaskPrayerNotification, []byte("{"))

	err := newTestJobService(&mockMailer{}).handlePrayerNotificationTask(context.Background(), task)
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestHandleMassBookingNotificationTask(t *testing.T) {
	m := &mockMailer{}
	m.On("SendMassBookingNotification", "office@example.com", int64(2), "Jose", "thanksgiving", "2025-02-01", int32(3)).Return(nil)

	task, err := NewMassBookingNotificationTask(&model.MassBooking{
		ID:            2,
		Name:          "Jose",
		IntentionType: "thanksgiving",
		StartDate:     time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		NumberOfDays:  3,
	})
	require.NoError(t, err)

	require.NoError(t, newTestJobService(m).handleMassBookingNotificationTask(context.Background(), task))
	m.AssertExpectations(t)
}
