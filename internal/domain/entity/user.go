package entity

import "time"

// User owns trips. Account creation and credential handling live in the
// upstream auth service; this API only reads users for ownership checks.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"size:100;uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	CreatedAt time.Time `json:"createdDate"`
	Trips     []Trip    `json:"trips,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

func (User) TableName() string {
	return "users"
}
