// Package job provides background job processing using Asynq.
//
// Asynq is a Redis-backed job queue:
//   - You enqueue tasks (producer) using asynq.Client.
//   - A server runs workers that process those tasks (consumer) using asynq.Server.
package job

import (
	"context"
	"fmt"

	"github.com/deppfellow/shrine-api/internal/config"
	"github.com/deppfellow/shrine-api/internal/lib/email"
	"github.com/deppfellow/shrine-api/internal/model"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// JobService holds the Asynq client (enqueue) and server (worker execution).
type JobService struct {
	Client *asynq.Client
	server *asynq.Server

	mailer   mailer
	notifyTo string
	logger   *zerolog.Logger
}

// NewJobService creates a JobService using Redis and the notification
// settings from cfg.
//
// Queue weights give "critical" tasks the larger share of workers:
// out of 10 concurrent tasks roughly 6 critical, 3 default, 1 low.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			"critical": 6,
			"default":  3,
			"low":      1,
		},
		Logger:   asynqLogger{logger},
		LogLevel: asynq.WarnLevel,
	})

	return &JobService{
		Client:   asynq.NewClient(redisOpt),
		server:   server,
		mailer:   email.NewClient(cfg, logger),
		notifyTo: cfg.Integration.NotificationEmail,
		logger:   logger,
	}
}

// Start registers task handlers and starts the workers in the background.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskPrayerNotification, j.handlePrayerNotificationTask)
	mux.HandleFunc(TaskMassBookingNotification, j.handleMassBookingNotificationTask)

	j.logger.Info().Msg("starting background job server")

	if err := j.server.Start(mux); err != nil {
		return err
	}

	return nil
}

// Stop waits for in-flight tasks and closes the Redis connections.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	j.Client.Close()
}

// EnqueuePrayerNotification schedules the office email for a new prayer.
func (j *JobService) EnqueuePrayerNotification(ctx context.Context, prayer *model.Prayer) error {
	task, err := NewPrayerNotificationTask(prayer)
	if err != nil {
		return fmt.Errorf("failed to build prayer notification task: %w", err)
	}
	return j.enqueue(ctx, task)
}

// EnqueueMassBookingNotification schedules the office email for a new booking.
func (j *JobService) EnqueueMassBookingNotification(ctx context.Context, booking *model.MassBooking) error {
	task, err := NewMassBookingNotificationTask(booking)
	if err != nil {
		return fmt.Errorf("failed to build mass booking notification task: %w", err)
	}
	return j.enqueue(ctx, task)
}

func (j *JobService) enqueue(ctx context.Context, task *asynq.Task) error {
	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue %s: %w", task.Type(), err)
	}

	j.logger.Debug().
		Str("type", task.Type()).
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Msg("enqueued task")
	return nil
}

// asynqLogger routes asynq's internal logging through zerolog.
type asynqLogger struct {
	logger *zerolog.Logger
}

func (l asynqLogger) Debug(args ...any) { l.logger.Debug().Msg(fmt.Sprint(args...)) }
func (l asynqLogger) Info(args ...any)  { l.logger.Info().Msg(fmt.Sprint(args...)) }
func (l asynqLogger) Warn(args ...any)  { l.logger.Warn().Msg(fmt.Sprint(args...)) }
func (l asynqLogger) Error(args ...any) { l.logger.Error().Msg(fmt.Sprint(args...)) }
func (l asynqLogger) Fatal(args ...any) { l.logger.Fatal().Msg(fmt.Sprint(args...)) }
