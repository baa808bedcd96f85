package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"herdbook/entities"
	"herdbook/pkg/status/repository"
)

type statusRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.StatusRepository { return &statusRepo{db} }

func (r *statusRepo) Create(s *entities.Status) error { return r.db.Create(s).Error }

func (r *statusRepo) Update(s *entities.Status) error { return r.db.Save(s).Error }

func (r *statusRepo) Delete(id uint) error {
	return r.db.Delete(&entities.Status{}, id).Error
}

func (r *statusRepo) FindByID(id uint) (*entities.Status, error) {
	var s entities.Status
	if err := r.db.First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *statusRepo) LatestForBoar(boarID uint) (*entities.Status, error) {
	var s entities.Status
	err := r.db.Where("boar_id = ?", boarID).
		Order("start_on DESC").Order("id DESC").
		First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *statusRepo) RecentForBoar(boarID uint, limit int) ([]entities.Status, error) {
	var statuses []entities.Status
	err := r.db.Where("boar_id = ?", boarID).
		Order("start_on DESC").Order("id DESC").
		Limit(limit).Find(&statuses).Error
	if err != nil {
		return nil, err
	}
	return statuses, nil
}

func (r *statusRepo) ListForBoar(boarID uint) ([]entities.Status, error) {
	var statuses []entities.Status
	err := r.db.Where("boar_id = ?", boarID).
		Order("start_on DESC").Order("id DESC").
		Find(&statuses).Error
	if err != nil {
		return nil, err
	}
	return statuses, nil
}
