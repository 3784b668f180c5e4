package processor

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"travel-api/internal/domain/entity"
	"travel-api/internal/domain/usecase/weather"
	"travel-api/pkg/log"
)

type ForecastProcessor struct {
	weatherUseCase weather.UseCase
	forecastDays   int
}

func NewForecastProcessor(weatherUseCase weather.UseCase, forecastDays int) *ForecastProcessor {
	return &ForecastProcessor{
		weatherUseCase: weatherUseCase,
		forecastDays:   forecastDays,
	}
}

// HandleMessage implements the sqs.Handler interface
func (p *ForecastProcessor) HandleMessage(msg *types.Message) error {
	if msg == nil || msg.Body == nil {
		return fmt.Errorf("received nil message or message body")
	}

	log.Infof("Processing forecast refresh message: %s", *msg.MessageId)

	var destination entity.Destination
	if err := json.Unmarshal([]byte(*msg.Body), &destination); err != nil {
		return fmt.Errorf("failed to unmarshal message body: %w", err)
	}
	if destination.ID == 0 {
		return fmt.Errorf("message carries no destination id")
	}

	records, err := p.weatherUseCase.RefreshForecastForDestination(destination, p.forecastDays)
	if err != nil {
		return fmt.Errorf("failed to refresh forecast for destination %d (%s): %w", destination.ID, destination.City, err)
	}

	log.Infof("Successfully refreshed forecast for destination %s with %d points", destination.City, len(records))
	return nil
}
