package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

// mailer sends the office notifications. *email.Client implements it.
type mailer interface {
	SendPrayerNotification(to string, prayerID int64, name, prayer, receivedAt string) error
	SendMassBookingNotification(to string, bookingID int64, name, intentionType, startDate string, days int32) error
}

func (j *JobService) handlePrayerNotificationTask(ctx context.Context, t *asynq.Task) error {
	var p PrayerNotificationPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		// A payload that cannot decode will never succeed; skip retries.
		return fmt.Errorf("failed to unmarshal prayer notification payload: %v: %w", err, asynq.SkipRetry)
	}

	logger := j.logger.With().
		Str("type", TaskPrayerNotification).
		Int64("prayer_id", p.PrayerID).
		Logger()

	logger.Info().Msg("processing prayer notification task")

	err := j.mailer.SendPrayerNotification(j.notifyTo, p.PrayerID, p.Name, p.Prayer, p.ReceivedAt.Format("2006-01-02 15:04"))
	if err != nil {
		logger.Error().Err(err).Msg("failed to send prayer notification")
		return err
	}

	logger.Info().Msg("sent prayer notification")
	return nil
}

func (j *JobService) handleMassBookingNotificationTask(ctx context.Context, t *asynq.Task) error {
	var p MassBookingNotificationPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal mass booking notification payload: %v: %w", err, asynq.SkipRetry)
	}

	logger := j.logger.With().
		Str("type", TaskMassBookingNotification).
		Int64("booking_id", p.BookingID).
		Logger()

	logger.Info().Msg("processing mass booking notification task")

	err := j.mailer.SendMassBookingNotification(j.notifyTo, p.BookingID, p.Name, p.IntentionType,
		p.StartDate.Format(time.DateOnly), p.NumberOfDays)
	if err != nil {
		logger.Error().Err(err).Msg("failed to send mass booking notification")
		return err
	}

	logger.Info().Msg("sent mass booking notification")
	return nil
}
