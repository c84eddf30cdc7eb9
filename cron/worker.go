package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"barberbook/config"
	"barberbook/services/booking"
	"barberbook/services/establishment"

	"github.com/hibiken/asynq"
)

const (
	TypeAppointmentExpire = "appointments:expire"
	TypePlanExpire        = "plans:expire"
)

// InitSweepWorker runs the background worker and its periodic scheduler. Two
// recurring tasks keep the system honest: releasing stale pending_payment
// holds and deactivating subscription plans past their expiry.
func InitSweepWorker(bookingSvc booking.BookingService, estSvc establishment.EstablishmentService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAppointmentExpire, handleAppointmentExpire(bookingSvc))
	mux.HandleFunc(TypePlanExpire, handlePlanExpire(estSvc))

	go func() {
		log.Println("[SweepWorker] Starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[SweepWorker] Failed to start worker: %v", err)
		}
	}()

	go runScheduler(redisOpts)
}

func runScheduler(redisOpts asynq.RedisClientOpt) {
	interval := time.Duration(config.AppConfig.ExpirySweepIntervalMin) * time.Minute
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	cronspec := fmt.Sprintf("@every %s", interval)

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register(cronspec, asynq.NewTask(TypeAppointmentExpire, nil)); err != nil {
		log.Fatalf("[SweepWorker] Failed to register appointment sweep: %v", err)
	}
	if _, err := scheduler.Register(cronspec, asynq.NewTask(TypePlanExpire, nil)); err != nil {
		log.Fatalf("[SweepWorker] Failed to register plan sweep: %v", err)
	}
	if err := scheduler.Run(); err != nil {
		log.Fatalf("[SweepWorker] Scheduler stopped: %v", err)
	}
}

func handleAppointmentExpire(bookingSvc booking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		ttl := time.Duration(config.AppConfig.PendingHoldTTLMin) * time.Minute
		if ttl <= 0 {
			ttl = 30 * time.Minute
		}
		released, err := bookingSvc.ExpireStalePendingAppointments(ttl)
		if err != nil {
			log.Printf("[SweepWorker] Appointment sweep failed: %v", err)
			return err
		}
		if released > 0 {
			log.Printf("[SweepWorker] Released %d stale pending appointments", released)
		}
		return nil
	}
}

func handlePlanExpire(estSvc establishment.EstablishmentService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		n, err := estSvc.DeactivateExpiredPlans()
		if err != nil {
			log.Printf("[SweepWorker] Plan sweep failed: %v", err)
			return err
		}
		if n > 0 {
			log.Printf("[SweepWorker] Deactivated %d expired plans", n)
		}
		return nil
	}
}
