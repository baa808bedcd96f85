package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"herdbook/entities"
	"herdbook/pkg/station/repository"
)

type stationRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.StationRepository { return &stationRepo{db} }

func (r *stationRepo) List() ([]entities.AiStation, error) {
	var stations []entities.AiStation
	if err := r.db.Order("id").Find(&stations).Error; err != nil {
		return nil, err
	}
	return stations, nil
}

func (r *stationRepo) FindByID(id uint) (*entities.AiStation, error) {
	var s entities.AiStation
	if err := r.db.First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}
