package weather

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"travel-api/internal/domain/entity"
	"travel-api/internal/domain/gateway/api"
	"travel-api/internal/domain/gateway/db"
	"travel-api/internal/domain/gateway/queue"
	"travel-api/internal/domain/model"
	"travel-api/internal/domain/model/external"
	"travel-api/pkg/log"
	"travel-api/pkg/msg"
)

// provider forecast resolution: one point every three hours
const forecastPointsPerDay = 8

// Config holds the tunables of the fetch coordinator.
type Config struct {
	// CacheMaxAge is the freshness window for cached current weather.
	CacheMaxAge time.Duration
	// ForecastDays bounds a forecast refresh at ForecastDays * 8 points.
	ForecastDays int
	// ForecastPointCap caps the forecast series returned to callers.
	ForecastPointCap int
	// QueueName is the forecast refresh fan-out queue.
	QueueName string
	// BatchSize is the keyset page size for the fan-out.
	BatchSize int
}

type weatherUseCase struct {
	config        Config
	apiGateway    api.WeatherGateway
	weatherDB     db.WeatherGateway
	destinationDB db.DestinationGateway
	tripDB        db.TripGateway
	queueSender   queue.Sender
}

func NewWeatherUseCase(config Config, apiGateway api.WeatherGateway, weatherDB db.WeatherGateway, destinationDB db.DestinationGateway, tripDB db.TripGateway, queueSender queue.Sender) UseCase {
	if config.CacheMaxAge <= 0 {
		config.CacheMaxAge = time.Hour
	}
	if config.ForecastDays <= 0 {
		config.ForecastDays = 5
	}
	if config.ForecastPointCap <= 0 {
		config.ForecastPointCap = 40
	}
	if config.BatchSize <= 0 {
		config.BatchSize = 100
	}

	return &weatherUseCase{
		config:        config,
		apiGateway:    apiGateway,
		weatherDB:     weatherDB,
		destinationDB: destinationDB,
		tripDB:        tripDB,
		queueSender:   queueSender,
	}
}

// GetDestinationWeather assembles the full weather view of a destination.
func (uc *weatherUseCase) GetDestinationWeather(destinationID uint, forceRefresh bool) (*model.DestinationWeatherResponse, error) {
	destination, err := uc.destinationDB.FindByID(destinationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load destination %d: %w", destinationID, err)
	}
	if destination == nil {
		return nil, ErrDestinationNotFound
	}

	current, err := uc.GetOrFetchCurrent(*destination, forceRefresh)
	if err != nil {
		return nil, err
	}

	forecast, err := uc.weatherDB.ListForecast(destinationID, uc.config.ForecastPointCap)
	if err != nil {
		return nil, fmt.Errorf("failed to list forecast for destination %d: %w", destinationID, err)
	}

	return &model.DestinationWeatherResponse{
		Destination:    *destination,
		CurrentWeather: current,
		Forecast:       forecast,
	}, nil
}

// GetOrFetchCurrent serves from cache when a record is fresh enough, and
// otherwise asks the provider. A failed provider call never evicts what is
// already cached.
func (uc *weatherUseCase) GetOrFetchCurrent(destination entity.Destination, forceRefresh bool) (*entity.WeatherRecord, error) {
	if !forceRefresh {
		cached, err := uc.weatherDB.FindFreshCurrent(destination.ID, uc.config.CacheMaxAge)
		if err != nil {
			return nil, fmt.Errorf("failed to query weather cache for destination %d: %w", destination.ID, err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	data, err := uc.apiGateway.GetCurrent(destination.City, destination.Country)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch current weather for %s: %w", destination.City, err)
	}
	if data == nil {
		log.Infow("Current weather unavailable from provider",
			"destinationId", destination.ID, "city", destination.City)
		return nil, nil
	}

	record := recordFromProvider(data)
	persisted, err := uc.weatherDB.Save(destination.ID, record, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to save current weather for destination %d: %w", destination.ID, err)
	}
	return persisted, nil
}

// RefreshForecast replaces the stored forecast series of a destination.
func (uc *weatherUseCase) RefreshForecast(destinationID uint) (*model.ForecastRefreshResponse, error) {
	destination, err := uc.destinationDB.FindByID(destinationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load destination %d: %w", destinationID, err)
	}
	if destination == nil {
		return nil, ErrDestinationNotFound
	}

	records, err := uc.RefreshForecastForDestination(*destination, uc.config.ForecastDays)
	if err != nil {
		return nil, err
	}

	return &model.ForecastRefreshResponse{
		Message:   msg.GetMessage("weather.forecast.refreshed", destination.City),
		Count:     len(records),
		Forecasts: records,
	}, nil
}

// RefreshForecastForDestination fetches the provider series and swaps it into
// storage. The purge and the inserts share one transaction, so a concurrent
// reader sees either the old set or the new one, never a partial mix. When
// the provider returns fewer than days*8 points, the shorter series is stored
// as-is.
func (uc *weatherUseCase) RefreshForecastForDestination(destination entity.Destination, days int) ([]entity.WeatherRecord, error) {
	if days <= 0 {
		days = uc.config.ForecastDays
	}

	data, err := uc.apiGateway.GetForecast(destination.City, destination.Country)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast for %s: %w", destination.City, err)
	}
	if data == nil || len(data.List) == 0 {
		log.Infow("Forecast unavailable from provider",
			"destinationId", destination.ID, "city", destination.City)
		return []entity.WeatherRecord{}, nil
	}

	points := len(data.List)
	if maxPoints := days * forecastPointsPerDay; points > maxPoints {
		points = maxPoints
	}

	records := make([]entity.WeatherRecord, 0, points)
	for i := 0; i < points; i++ {
		point := data.List[i]
		record := recordFromProvider(&point)
		forecastAt := time.Unix(point.Dt, 0).UTC()
		record.ForecastAt = &forecastAt
		records = append(records, record)
	}

	persisted, err := uc.weatherDB.ReplaceForecast(destination.ID, records)
	if err != nil {
		return nil, fmt.Errorf("failed to replace forecast for destination %d: %w", destination.ID, err)
	}

	log.Infow("Forecast refreshed",
		"destinationId", destination.ID, "city", destination.City, "points", len(persisted))
	return persisted, nil
}

// GetTripWeather collects current conditions for every destination of a trip.
// Destinations are processed sequentially; provider misses leave a nil entry
// rather than failing the whole response.
func (uc *weatherUseCase) GetTripWeather(tripID uint) (*model.TripWeatherResponse, error) {
	trip, err := uc.tripDB.FindByID(tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to load trip %d: %w", tripID, err)
	}
	if trip == nil {
		return nil, ErrTripNotFound
	}

	destinations, err := uc.destinationDB.FindByTripID(tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list destinations of trip %d: %w", tripID, err)
	}

	results := make([]model.DestinationCurrentWeather, 0, len(destinations))
	for _, destination := range destinations {
		current, err := uc.GetOrFetchCurrent(destination, false)
		if err != nil {
			return nil, err
		}
		results = append(results, model.DestinationCurrentWeather{
			Destination:    destination,
			CurrentWeather: current,
		})
	}

	return &model.TripWeatherResponse{
		Trip:                *trip,
		DestinationsWeather: results,
	}, nil
}

// LookupCity queries the provider without touching storage.
func (uc *weatherUseCase) LookupCity(city string, country string) (*external.CurrentWeatherResponse, error) {
	return uc.apiGateway.GetCurrent(city, country)
}

// EnqueueAllForecastRefreshes walks all destinations with keyset pagination
// and enqueues a refresh message per destination in batches.
func (uc *weatherUseCase) EnqueueAllForecastRefreshes(requestID string) error {
	log.Info("Starting forecast refresh fan-out", zap.String("request_id", requestID))

	var lastID uint
	totalEnqueued := 0
	totalFailed := 0

	for {
		destinations, err := uc.destinationDB.FindAllWithKeysetPagination(lastID, uc.config.BatchSize)
		if err != nil {
			log.Error("Failed to fetch destinations for fan-out",
				zap.String("request_id", requestID),
				zap.Uint("last_id", lastID),
				zap.Error(err))
			return fmt.Errorf("failed to fetch destinations (lastID: %d): %w", lastID, err)
		}
		if len(destinations) == 0 {
			break
		}

		messages := make([]queue.BatchMessage, len(destinations))
		for i, destination := range destinations {
			messages[i] = queue.BatchMessage{
				MessageID: fmt.Sprintf("refresh-%s-destination-%d", requestID, destination.ID),
				Body:      destination,
			}
		}

		result, err := uc.queueSender.SendMessageBatch(uc.config.QueueName, messages)
		if err != nil {
			log.Warn("Failed to send refresh batch",
				zap.String("request_id", requestID),
				zap.Uint("starting_destination_id", lastID),
				zap.Error(err))
			totalFailed += len(destinations)
		} else {
			totalEnqueued += len(result.Successful)
			totalFailed += len(result.Failed)
		}

		lastID = destinations[len(destinations)-1].ID
	}

	log.Info("Completed forecast refresh fan-out",
		zap.String("request_id", requestID),
		zap.Int("enqueued", totalEnqueued),
		zap.Int("failed", totalFailed))
	return nil
}

// PruneWeatherHistory trims old current-weather rows; the forecast set is
// bounded by ReplaceForecast and needs no pruning.
func (uc *weatherUseCase) PruneWeatherHistory(retention time.Duration) error {
	cutoff := time.Now().UTC().Add(-retention)
	deleted, err := uc.weatherDB.DeleteOlderThan(cutoff)
	if err != nil {
		return fmt.Errorf("failed to prune weather history: %w", err)
	}

	log.Infof("Pruned %d weather history records older than %s", deleted, cutoff.Format(time.RFC3339))
	return nil
}

// recordFromProvider maps a provider payload onto the storage shape. The
// weather[] array may be empty on some provider responses.
func recordFromProvider(data *external.CurrentWeatherResponse) entity.WeatherRecord {
	record := entity.WeatherRecord{
		Temperature: data.Main.Temp,
		FeelsLike:   data.Main.FeelsLike,
		TempMin:     data.Main.TempMin,
		TempMax:     data.Main.TempMax,
		Humidity:    data.Main.Humidity,
		WindSpeed:   data.Wind.Speed,
		Clouds:      data.Clouds.All,
	}

	if len(data.Weather) > 0 {
		record.WeatherMain = data.Weather[0].Main
		record.WeatherDescription = data.Weather[0].Description
		record.Icon = data.Weather[0].Icon
	}

	return record
}
