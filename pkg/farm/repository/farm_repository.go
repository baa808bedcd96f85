package repository

import (
	"errors"

	"herdbook/entities"
)

var ErrNotFound = errors.New("farm not found")

type FarmRepository interface {
	List() ([]entities.Farm, error)
	FindByID(id uint) (*entities.Farm, error)
}
