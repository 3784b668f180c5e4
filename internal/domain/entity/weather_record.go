package entity

import "time"

// WeatherRecord is one observation or forecast point for a destination.
//
// ForecastAt nil means the record holds current conditions at fetch time;
// non-nil means one point of a multi-day forecast. FetchedAt is always set and
// drives cache freshness. Records are never mutated after insertion; forecast
// rows are replaced wholesale on refresh while current rows accumulate as
// history.
type WeatherRecord struct {
	ID                 uint       `json:"id" gorm:"primaryKey"`
	DestinationID      uint       `json:"destinationId" gorm:"index;not null"`
	Temperature        float64    `json:"temperature"`
	FeelsLike          float64    `json:"feelsLike"`
	TempMin            float64    `json:"tempMin"`
	TempMax            float64    `json:"tempMax"`
	Humidity           int        `json:"humidity"`
	WeatherMain        string     `json:"weatherMain" gorm:"size:100"`
	WeatherDescription string     `json:"weatherDescription" gorm:"size:255"`
	Icon               string     `json:"icon" gorm:"size:10"`
	WindSpeed          float64    `json:"windSpeed"`
	Clouds             int        `json:"clouds"`
	ForecastAt         *time.Time `json:"forecastAt" gorm:"index"`
	FetchedAt          time.Time  `json:"fetchedAt" gorm:"index;not null"`
}

func (WeatherRecord) TableName() string {
	return "weather_records"
}

// IsForecast reports whether the record is a forecast point rather than a
// current-weather observation.
func (w WeatherRecord) IsForecast() bool {
	return w.ForecastAt != nil
}
