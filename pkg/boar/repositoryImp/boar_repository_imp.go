package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"herdbook/entities"
	"herdbook/pkg/boar/repository"
)

type boarRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.BoarRepository { return &boarRepo{db} }

func (r *boarRepo) Create(b *entities.Boar) error {
	if _, err := r.FindByTattoo(b.Tattoo); err == nil {
		return repository.ErrDuplicateTattoo
	}
	return r.db.Create(b).Error
}

func (r *boarRepo) Update(b *entities.Boar) error {
	if other, err := r.FindByTattoo(b.Tattoo); err == nil && other.ID != b.ID {
		return repository.ErrDuplicateTattoo
	}
	return r.db.Save(b).Error
}

func (r *boarRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("boar_id = ?", id).Delete(&entities.Status{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Boar{}, id).Error
	})
}

func (r *boarRepo) FindByID(id uint) (*entities.Boar, error) {
	var b entities.Boar
	if err := r.db.First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *boarRepo) FindByTattoo(tattoo string) (*entities.Boar, error) {
	var b entities.Boar
	if err := r.db.Where("tattoo = ?", tattoo).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *boarRepo) List() ([]entities.Boar, error) {
	var boars []entities.Boar
	if err := r.db.Order("id").Find(&boars).Error; err != nil {
		return nil, err
	}
	return boars, nil
}

func (r *boarRepo) ListTattoos() ([]string, error) {
	var tattoos []string
	if err := r.db.Model(&entities.Boar{}).Pluck("tattoo", &tattoos).Error; err != nil {
		return nil, err
	}
	return tattoos, nil
}

func (r *boarRepo) BulkCreate(boars []entities.Boar) error {
	if len(boars) == 0 {
		return nil
	}
	return r.db.Create(&boars).Error
}

func (r *boarRepo) InFarms(farmIDs []uint) ([]entities.Boar, error) {
	return r.Filter(repository.EnrollmentAll, nil, farmIDs)
}

func (r *boarRepo) ByLines(lineIDs []uint) ([]entities.Boar, error) {
	return r.Filter(repository.EnrollmentAll, lineIDs, nil)
}

func (r *boarRepo) ByEnrollment(status string) ([]entities.Boar, error) {
	return r.Filter(status, nil, nil)
}

func (r *boarRepo) Filter(enrollment string, lineIDs, farmIDs []uint) ([]entities.Boar, error) {
	q := r.db.Model(&entities.Boar{})
	switch enrollment {
	case repository.EnrollmentAlive:
		q = q.Where("culling_on IS NULL")
	case repository.EnrollmentCulled:
		q = q.Where("culling_on IS NOT NULL")
	}
	if len(lineIDs) > 0 {
		q = q.Where("line_id IN ?", lineIDs)
	}
	if len(farmIDs) > 0 {
		q = q.Where("farm_id IN ?", farmIDs)
	}
	var boars []entities.Boar
	if err := q.Order("id").Find(&boars).Error; err != nil {
		return nil, err
	}
	return boars, nil
}
