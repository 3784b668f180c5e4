package entity

import "time"

// Destination is one stop of a trip. City and country are free-text user
// input; the weather layer normalizes the country before querying the
// provider.
type Destination struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	City           string          `json:"city" gorm:"size:200;not null"`
	Country        string          `json:"country" gorm:"size:100;not null"`
	ArrivalDate    *time.Time      `json:"arrivalDate"`
	DepartureDate  *time.Time      `json:"departureDate"`
	Latitude       *float64        `json:"latitude"`
	Longitude      *float64        `json:"longitude"`
	TripID         uint            `json:"tripId" gorm:"index;not null"`
	CreatedAt      time.Time       `json:"createdDate"`
	WeatherRecords []WeatherRecord `json:"weatherRecords,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

func (Destination) TableName() string {
	return "destinations"
}
