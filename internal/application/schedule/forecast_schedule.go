package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"travel-api/internal/domain/usecase/weather"
	"travel-api/pkg/log"
	"travel-api/pkg/redis"
)

// ForecastSchedulerConfig holds configuration for the forecast scheduler
type ForecastSchedulerConfig struct {
	RefreshCron      string
	PruneCron        string
	LockTTL          time.Duration
	RefreshInterval  time.Duration
	HistoryRetention time.Duration
}

// ForecastScheduler handles scheduled forecast refreshes and weather history
// pruning with distributed locking, so only one instance runs the jobs.
type ForecastScheduler struct {
	cron        *cron.Cron
	useCase     weather.UseCase
	redisClient *redis.Client
	config      *ForecastSchedulerConfig
}

// NewForecastScheduler creates a new forecast scheduler with distributed locking support
func NewForecastScheduler(useCase weather.UseCase, redisClient *redis.Client, config ForecastSchedulerConfig) *ForecastScheduler {
	return &ForecastScheduler{
		cron:        cron.New(),
		useCase:     useCase,
		redisClient: redisClient,
		config:      &config,
	}
}

// InitForecastScheduleTasks initializes forecast schedule tasks with distributed locking
func (s *ForecastScheduler) InitForecastScheduleTasks(ctx context.Context) {
	go func() {
		lock := redis.NewScheduledTaskLock(
			s.redisClient,
			"forecast_refresh_scheduler",
			s.getLockTTL(),
			s.getRefreshInterval(),
			"weather_schedules",
		)

		err := lock.Lock(ctx)
		if err != nil {
			log.Errorf("Failed to acquire distributed lock, forecast scheduler will not be initialized: %v", err)
			return
		}

		// Keep the lock alive for as long as this instance runs the jobs
		refreshErrChan := lock.AutoRefresh(ctx)

		_, err = s.cron.AddFunc(s.config.RefreshCron, s.ExecuteForecastRefresh)
		if err != nil {
			log.Errorf("Failed to initialize forecast scheduler, cron will not be started: %v", err)
			return
		}

		if s.config.PruneCron != "" {
			_, err = s.cron.AddFunc(s.config.PruneCron, s.ExecuteHistoryPrune)
			if err != nil {
				log.Errorf("Failed to register weather history prune task: %v", err)
				return
			}
		}

		s.cron.Start()
		log.Infof("Forecast scheduler started successfully with cron expression: %s", s.config.RefreshCron)

		// Stop the scheduler if the lock refresh fails or the context ends
		err = <-refreshErrChan

		if s.cron != nil {
			cronCtx := s.cron.Stop()
			<-cronCtx.Done()
		}

		if err != nil {
			log.Errorf("Forecast scheduler stopped due to auto-refresh failure: %v", err)
		} else {
			log.Info("Forecast scheduler stopped gracefully")
		}
	}()
}

// ExecuteForecastRefresh fans out a forecast refresh for every destination
func (s *ForecastScheduler) ExecuteForecastRefresh() {
	requestID := uuid.New().String()

	log.Info("Forecast refresh scheduled task triggered", zap.String("request_id", requestID))

	if err := s.useCase.EnqueueAllForecastRefreshes(requestID); err != nil {
		log.Error("Failed to execute scheduled forecast refresh", zap.String("request_id", requestID), zap.Error(err))
		return
	}

	log.Info("Scheduled forecast refresh completed successfully", zap.String("request_id", requestID))
}

// ExecuteHistoryPrune trims old current-weather history
func (s *ForecastScheduler) ExecuteHistoryPrune() {
	log.Info("Weather history prune task triggered")

	if err := s.useCase.PruneWeatherHistory(s.getHistoryRetention()); err != nil {
		log.Error("Failed to prune weather history", zap.Error(err))
		return
	}

	log.Info("Weather history prune completed successfully")
}

// Stop gracefully stops the scheduler
func (s *ForecastScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}

func (s *ForecastScheduler) getLockTTL() time.Duration {
	if s.config.LockTTL > 0 {
		return s.config.LockTTL
	}
	return 10 * time.Minute
}

func (s *ForecastScheduler) getRefreshInterval() time.Duration {
	if s.config.RefreshInterval > 0 {
		return s.config.RefreshInterval
	}
	return 1 * time.Minute
}

func (s *ForecastScheduler) getHistoryRetention() time.Duration {
	if s.config.HistoryRetention > 0 {
		return s.config.HistoryRetention
	}
	return 7 * 24 * time.Hour
}
