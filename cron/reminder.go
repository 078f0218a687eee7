// File: cron/reminder.go
package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"meetcure/config"
	"meetcure/models"
	"meetcure/utils"
)

const TypeReminderSend = "reminder:send"

// ReminderPayload is the task body for an appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	DoctorID      string `json:"doctorId"`
	PatientID     string `json:"patientId"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// AsynqReminderScheduler enqueues appointment reminders for delayed
// processing. It implements appointment.ReminderScheduler.
type AsynqReminderScheduler struct {
	client *asynq.Client
}

// NewReminderScheduler creates the asynq-backed scheduler.
func NewReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{client: asynq.NewClient(redisOpts())}
}

// Schedule enqueues a reminder to fire at the given instant. Instants
// already in the past enqueue for immediate processing.
func (s *AsynqReminderScheduler) Schedule(ctx context.Context, appt *models.Appointment, at time.Time) error {
	payload, err := json.Marshal(ReminderPayload{
		AppointmentID: appt.ID,
		DoctorID:      appt.DoctorID,
		PatientID:     appt.PatientID,
		Date:          appt.Date,
		Time:          appt.Time,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeReminderSend, payload)
	opts := []asynq.Option{asynq.Queue("default"), asynq.MaxRetry(3)}
	if at.After(time.Now()) {
		opts = append(opts, asynq.ProcessAt(at))
	}
	if _, err := s.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// Close releases the underlying asynq client.
func (s *AsynqReminderScheduler) Close() error { return s.client.Close() }

// InitReminderWorker runs the reminder worker in the background.
func InitReminderWorker() {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask)

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[ReminderWorker] failed to start worker: %v", err)
		}
	}()
}

func handleReminderTask(ctx context.Context, task *asynq.Task) error {
	var p ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return fmt.Errorf("invalid reminder payload: %w", err)
	}

	// Delivery channel (email/SMS) is not wired yet; the structured log
	// line is what operations watch today.
	utils.GetLogger().Info("appointment reminder due",
		zap.String("appointmentId", p.AppointmentID),
		zap.String("patientId", p.PatientID),
		zap.String("doctorId", p.DoctorID),
		zap.String("date", p.Date),
		zap.String("time", p.Time),
	)
	return nil
}
