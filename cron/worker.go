package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"availcal/config"
	"availcal/services/availability"

	"github.com/hibiken/asynq"
)

const TypeAvailabilityRefresh = "availability:refresh"

// RefreshPayload names the resource and month to pre-warm. An empty month
// means the current month at handling time.
type RefreshPayload struct {
	Resource string `json:"resource"`
	Month    string `json:"month,omitempty"`
}

// InitRefreshWorker runs the async pre-warm worker in background.
func InitRefreshWorker(availSvc availability.Service, loc *time.Location) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAvailabilityRefresh, handleRefreshTask(availSvc, loc))

	go func() {
		log.Println("[RefreshWorker] 🚀 Starting availability pre-warm worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[RefreshWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[RefreshWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()

	startScheduler(redisOpts, loc)
}

// startScheduler enqueues a periodic pre-warm for the configured default
// resource so the first calendar load of the month is a cache hit.
func startScheduler(redisOpts asynq.RedisClientOpt, loc *time.Location) {
	resource := config.AppConfig.DefaultResource
	if resource == "" {
		log.Println("[RefreshWorker] No DEFAULT_RESOURCE configured, skipping periodic pre-warm")
		return
	}

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{Location: loc})

	payload, err := json.Marshal(RefreshPayload{Resource: resource})
	if err != nil {
		log.Printf("[RefreshWorker] ❌ Failed to marshal refresh payload: %v", err)
		return
	}

	if _, err := scheduler.Register("@every 15m", asynq.NewTask(TypeAvailabilityRefresh, payload)); err != nil {
		log.Printf("[RefreshWorker] ❌ Failed to register pre-warm schedule: %v", err)
		return
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[RefreshWorker] ❌ Scheduler stopped: %v", err)
		}
	}()
}

func handleRefreshTask(availSvc availability.Service, loc *time.Location) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p RefreshPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[RefreshHandler] 🔴 Invalid payload: %v", err)
			return err
		}

		month := p.Month
		if month == "" {
			month = availability.MonthKey(time.Now(), loc)
		}

		log.Printf("[RefreshHandler] ⏰ Pre-warming availability for %s %s", p.Resource, month)

		if _, err := availSvc.RefreshMonth(ctx, p.Resource, month); err != nil {
			log.Printf("[RefreshHandler] ❌ Pre-warm failed: %v", err)
			return err
		}
		return nil
	}
}
