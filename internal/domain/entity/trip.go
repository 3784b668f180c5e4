package entity

import "time"

// Trip groups the destinations a user plans to visit.
type Trip struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	Name         string        `json:"name" gorm:"size:200;not null"`
	Description  string        `json:"description" gorm:"type:text"`
	StartDate    *time.Time    `json:"startDate"`
	EndDate      *time.Time    `json:"endDate"`
	UserID       uint          `json:"userId" gorm:"index;not null"`
	CreatedAt    time.Time     `json:"createdDate"`
	UpdatedAt    time.Time     `json:"updatedDate"`
	Destinations []Destination `json:"destinations,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

func (Trip) TableName() string {
	return "trips"
}
