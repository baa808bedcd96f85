package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"herdbook/entities"
	"herdbook/pkg/farm/repository"
)

type farmRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FarmRepository { return &farmRepo{db} }

func (r *farmRepo) List() ([]entities.Farm, error) {
	var farms []entities.Farm
	if err := r.db.Order("id").Find(&farms).Error; err != nil {
		return nil, err
	}
	return farms, nil
}

func (r *farmRepo) FindByID(id uint) (*entities.Farm, error) {
	var f entities.Farm
	if err := r.db.First(&f, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}
