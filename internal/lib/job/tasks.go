package job

import (
	"encoding/json"
	"time"

	"github.com/deppfellow/shrine-api/internal/model"
	"github.com/hibiken/asynq"
)

const (
	// Asynq routes tasks to handlers by these type names.
	TaskPrayerNotification      = "email:prayer_received"
	TaskMassBookingNotification = "email:mass_booking_received"
)

// PrayerNotificationPayload is the JSON stored in Redis for a prayer
// notification. It carries what the email needs so the worker never
// reads the database.
type PrayerNotificationPayload struct {
	PrayerID   int64     `json:"prayer_id"`
	Name       string    `json:"name"`
	Prayer     string    `json:"prayer"`
	ReceivedAt time.Time `json:"received_at"`
}

type MassBookingNotificationPayload struct {
	BookingID     int64     `json:"booking_id"`
	Name          string    `json:"name"`
	IntentionType string    `json:"intention_type"`
	StartDate     time.Time `json:"start_date"`
	NumberOfDays  int32     `json:"number_of_days"`
}

// NewPrayerNotificationTask builds the task for a freshly created prayer.
//
// Options:
//   - MaxRetry(3): retry up to 3 times on failure
//   - Queue("default")
//   - Timeout(30s): kill the task if the handler runs longer
func NewPrayerNotificationTask(prayer *model.Prayer) (*asynq.Task, error) {
	payload, err := json.Marshal(PrayerNotificationPayload{
		PrayerID:   prayer.ID,
		Name:       prayer.Name,
		Prayer:     prayer.Prayer,
		ReceivedAt: prayer.CreatedAt,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(TaskPrayerNotification, payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second)), nil
}

// NewMassBookingNotificationTask goes to the critical queue: bookings need
// an answer from the office before the first mass date.
func NewMassBookingNotificationTask(booking *model.MassBooking) (*asynq.Task, error) {
	payload, err := json.Marshal(MassBookingNotificationPayload{
		BookingID:     booking.ID,
		Name:          booking.Name,
		IntentionType: booking.IntentionType,
		StartDate:     booking.StartDate,
		NumberOfDays:  booking.NumberOfDays,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(TaskMassBookingNotification, payload,
		asynq.MaxRetry(5),
		asynq.Queue("critical"),
		asynq.Timeout(30*time.Second)), nil
}
