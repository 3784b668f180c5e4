package user

import (
	"fmt"

	"travel-api/internal/domain/entity"
	"travel-api/internal/domain/gateway/db"
)

type userUseCase struct {
	userDB db.UserGateway
}

func NewUserUseCase(userDB db.UserGateway) UseCase {
	return &userUseCase{userDB: userDB}
}

func (uc *userUseCase) GetProfile(userID uint) (*entity.User, error) {
	user, err := uc.userDB.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %d: %w", userID, err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (uc *userUseCase) GetByUsername(username string) (*entity.User, error) {
	user, err := uc.userDB.FindByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %s: %w", username, err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
