package repository

import (
	"errors"

	"herdbook/entities"
)

var ErrNotFound = errors.New("status not found")

type StatusRepository interface {
	Create(s *entities.Status) error
	Update(s *entities.Status) error
	Delete(id uint) error
	FindByID(id uint) (*entities.Status, error)
	// LatestForBoar returns the entry with the greatest start_on; ties on
	// start_on break toward the highest id.
	LatestForBoar(boarID uint) (*entities.Status, error)
	RecentForBoar(boarID uint, limit int) ([]entities.Status, error)
	ListForBoar(boarID uint) ([]entities.Status, error)
}
