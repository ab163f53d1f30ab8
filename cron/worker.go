package cron

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"roomly/config"
	placeRepo "roomly/database/repository/place"
	"roomly/services/availability"
	"roomly/services/booking"
	"roomly/utils"
)

// TypeSnapshotWarm precomputes a place's day summaries into the Redis cache
// so calendar renders stay warm.
const TypeSnapshotWarm = "availability:snapshot"

// SnapshotPayload identifies the place and how many days ahead to precompute.
type SnapshotPayload struct {
	TaskID      string `json:"taskId"`
	PlaceID     string `json:"placeId"`
	HorizonDays int    `json:"horizonDays"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitSnapshotWorker runs the async snapshot worker in background. The
// business clock decides what "today" means for the precompute horizon.
func InitSnapshotWorker(availabilitySvc booking.AvailabilityService, clock availability.Clock) {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 4,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSnapshotWarm, handleSnapshotTask(availabilitySvc, clock))

	// Start async worker with retry logic
	go func() {
		logger.Info("snapshot worker starting")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("snapshot worker failed to start",
					zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))

				if attempts == maxAttempts {
					logger.Fatal("snapshot worker exhausted retries")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// StartSnapshotScheduler periodically enqueues one snapshot task per active
// place. The handler recomputes through the availability service, which
// writes every summary to the shared cache.
func StartSnapshotScheduler(ctx context.Context, places placeRepo.PlaceRepository) {
	logger := utils.GetLogger()
	client := asynq.NewClient(redisOpts())

	interval := time.Duration(config.AppConfig.SnapshotIntervalMin) * time.Minute
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	go func() {
		defer client.Close()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				ids, err := places.ListActiveIDs(ctx)
				if err != nil {
					logger.Error("snapshot scheduler failed to list places", zap.Error(err))
					continue
				}
				for _, placeID := range ids {
					payload, err := json.Marshal(SnapshotPayload{
						TaskID:      uuid.New().String(),
						PlaceID:     placeID,
						HorizonDays: config.AppConfig.SnapshotHorizonDays,
					})
					if err != nil {
						continue
					}
					if _, err := client.EnqueueContext(ctx, asynq.NewTask(TypeSnapshotWarm, payload)); err != nil {
						logger.Error("failed to enqueue snapshot task",
							zap.String("placeID", placeID), zap.Error(err))
					}
				}
			}
		}
	}()
}

func handleSnapshotTask(availabilitySvc booking.AvailabilityService, clock availability.Clock) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p SnapshotPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid snapshot payload", zap.Error(err))
			return err
		}
		if p.HorizonDays <= 0 {
			p.HorizonDays = 30
		}

		today, err := availability.ParseDate(clock.Now().Date)
		if err != nil {
			return err
		}
		for offset := 0; offset < p.HorizonDays; offset++ {
			date := today.AddDate(0, 0, offset).Format("2006-01-02")
			if _, err := availabilitySvc.GetDaySummary(ctx, p.PlaceID, date); err != nil {
				logger.Warn("snapshot precompute failed",
					zap.String("placeID", p.PlaceID), zap.String("date", date), zap.Error(err))
			}
		}
		return nil
	}
}
