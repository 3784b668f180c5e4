package user

import (
	"errors"

	"travel-api/internal/domain/entity"
)

// ErrUserNotFound is returned when the user does not exist.
var ErrUserNotFound = errors.New("user not found")

// UseCase reads user profiles. Account management lives in the upstream auth
// service.
type UseCase interface {
	GetProfile(userID uint) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
}
