package repository

import (
	"errors"

	"herdbook/entities"
)

var ErrNotFound = errors.New("ai station not found")

type StationRepository interface {
	List() ([]entities.AiStation, error)
	FindByID(id uint) (*entities.AiStation, error)
}
