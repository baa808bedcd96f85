package repository

import (
	"errors"

	"herdbook/entities"
)

var (
	ErrNotFound        = errors.New("boar not found")
	ErrDuplicateTattoo = errors.New("tattoo already registered")
)

// Enrollment filter values accepted by ByEnrollment and Filter.
const (
	EnrollmentAll    = "all"
	EnrollmentAlive  = "alive_only"
	EnrollmentCulled = "culled_only"
)

type BoarRepository interface {
	Create(b *entities.Boar) error
	Update(b *entities.Boar) error
	// Delete removes the boar and its status rows in one transaction.
	Delete(id uint) error
	FindByID(id uint) (*entities.Boar, error)
	FindByTattoo(tattoo string) (*entities.Boar, error)
	List() ([]entities.Boar, error)
	ListTattoos() ([]string, error)
	BulkCreate(boars []entities.Boar) error
	InFarms(farmIDs []uint) ([]entities.Boar, error)
	ByLines(lineIDs []uint) ([]entities.Boar, error)
	ByEnrollment(status string) ([]entities.Boar, error)
	// Filter combines all three narrowing axes; an empty id slice leaves
	// that axis unconstrained.
	Filter(enrollment string, lineIDs, farmIDs []uint) ([]entities.Boar, error)
}
