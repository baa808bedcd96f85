package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"herdbook/entities"
	"herdbook/pkg/line/repository"
)

type lineRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.LineRepository { return &lineRepo{db} }

func (r *lineRepo) List() ([]entities.Line, error) {
	var lines []entities.Line
	if err := r.db.Order("code").Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *lineRepo) FindByID(id uint) (*entities.Line, error) {
	var l entities.Line
	if err := r.db.First(&l, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (r *lineRepo) FindByCode(code string) (*entities.Line, error) {
	var l entities.Line
	if err := r.db.Where("code = ?", code).First(&l).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}
