package main

import (
	"context"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "travel-api/configs"
	_ "travel-api/docs"
	"travel-api/internal/application/controller"
	"travel-api/internal/application/middleware"
	"travel-api/internal/application/processor"
	"travel-api/internal/application/schedule"
	"travel-api/internal/domain/entity"
	"travel-api/internal/domain/gateway/api"
	"travel-api/internal/domain/gateway/db"
	"travel-api/internal/domain/usecase/destination"
	"travel-api/internal/domain/usecase/health"
	"travel-api/internal/domain/usecase/trip"
	"travel-api/internal/domain/usecase/user"
	"travel-api/internal/domain/usecase/weather"
	infraaws "travel-api/internal/infra/aws"
	"travel-api/internal/infra/database/gorm"
	"travel-api/pkg/http"
	"travel-api/pkg/log"
	"travel-api/pkg/msg"
	"travel-api/pkg/redis"
	"travel-api/pkg/resource"
	"travel-api/pkg/sqs"
)

// @title Travel API
// @version 1.0
// @description Travel planning API with destination weather caching
// @BasePath /travel-api
func main() {
	log.Info(msg.GetMessage("app.start"))

	ctx := context.Background()

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)
	apiGroup := e.Group(resource.GetString("app.server.context-path"))

	if err := gorm.Db.AutoMigrate(&entity.User{}, &entity.Trip{}, &entity.Destination{}, &entity.WeatherRecord{}); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	redisClient := redis.NewClient(&redis.Config{
		Host:     resource.GetString("app.redis.host"),
		Port:     resource.GetInt("app.redis.port"),
		Password: resource.GetString("app.redis.password"),
		Database: resource.GetInt("app.redis.database"),
	})

	sqsClient := infraaws.NewSqsClient()

	// Init Gateways
	weatherDB := db.NewGormWeatherGateway(gorm.Db)
	destinationDB := db.NewGormDestinationGateway(gorm.Db)
	tripDB := db.NewGormTripGateway(gorm.Db)
	healthDB := db.NewGormHealthGateway(gorm.Db)
	userDB := db.NewGormUserGateway(gorm.Db)
	queueSender := infraaws.NewSQSSenderAdapter(sqsClient)

	weatherAPI := api.NewWeatherGateway(
		resource.GetString("app.weather.base-url"),
		resource.GetString("app.weather.api-key"),
		http.ClientOptions{
			ReadTimeout:       resource.GetDuration("app.weather.request-timeout"),
			ConnectionTimeout: resource.GetDuration("app.weather.request-timeout"),
		},
	)

	// Init UseCases
	weatherUseCase := weather.NewWeatherUseCase(weather.Config{
		CacheMaxAge:      resource.GetDuration("app.weather.cache-max-age"),
		ForecastDays:     resource.GetInt("app.weather.forecast-days"),
		ForecastPointCap: resource.GetInt("app.weather.forecast-point-cap"),
		QueueName:        resource.GetString("app.weather.queue.name"),
		BatchSize:        resource.GetInt("app.weather.queue.batch-size"),
	}, weatherAPI, weatherDB, destinationDB, tripDB, queueSender)
	tripUseCase := trip.NewTripUseCase(tripDB)
	destinationUseCase := destination.NewDestinationUseCase(destinationDB, tripDB)
	healthUseCase := health.NewHealthUseCase(healthDB, redisClient)
	userUseCase := user.NewUserUseCase(userDB)

	// Init Controllers
	weatherController := controller.NewWeatherController(apiGroup, weatherUseCase)
	tripController := controller.NewTripController(apiGroup, tripUseCase)
	destinationController := controller.NewDestinationController(apiGroup, destinationUseCase)
	healthController := controller.NewHealthController(apiGroup, healthUseCase)
	userController := controller.NewUserController(apiGroup, userUseCase)

	// Init Routes
	weatherController.InitWeatherRoutes()
	tripController.InitTripRoutes()
	destinationController.InitDestinationRoutes()
	healthController.InitHealthRoutes()
	userController.InitUserRoutes()
	apiGroup.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Schedule
	forecastScheduler := schedule.NewForecastScheduler(weatherUseCase, redisClient, schedule.ForecastSchedulerConfig{
		RefreshCron:      resource.GetString("app.weather.schedule.refresh-cron"),
		PruneCron:        resource.GetString("app.weather.schedule.prune-cron"),
		LockTTL:          resource.GetDuration("app.weather.schedule.lock-ttl"),
		RefreshInterval:  resource.GetDuration("app.weather.schedule.lock-refresh-interval"),
		HistoryRetention: resource.GetDuration("app.weather.history-retention"),
	})
	forecastScheduler.InitForecastScheduleTasks(ctx)

	// Init Queue Worker
	forecastProcessor := processor.NewForecastProcessor(weatherUseCase, resource.GetInt("app.weather.forecast-days"))
	forecastWorker, err := sqs.NewWorker(sqsClient, resource.GetString("app.weather.queue.name"), forecastProcessor, &sqs.WorkerConfig{
		MaxNumberOfMessages: int32(resource.GetInt("app.weather.queue.worker.max-messages")),
		WaitTimeSeconds:     int32(resource.GetInt("app.weather.queue.worker.wait-time-seconds")),
		PoolSize:            resource.GetInt("app.weather.queue.worker.pool-size"),
		LogLevel:            sqs.ErrorLevel,
	})
	if err != nil {
		log.Fatalf("Failed to create forecast queue worker: %v", err)
	}
	go forecastWorker.Start(ctx)

	// Start Routes
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
	log.Info(msg.GetMessage("app.started"))
}
