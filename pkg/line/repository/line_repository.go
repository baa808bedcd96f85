package repository

import (
	"errors"

	"herdbook/entities"
)

var ErrNotFound = errors.New("line not found")

type LineRepository interface {
	List() ([]entities.Line, error)
	FindByID(id uint) (*entities.Line, error)
	FindByCode(code string) (*entities.Line, error)
}
