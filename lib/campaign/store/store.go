package campaignstore

import (
	dbmodels "admission-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Campaign) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.Campaign, err error)
	GetCurrent(branch string) (rec *dbmodels.Campaign, err error)
	List(page, limit int) (list []dbmodels.Campaign, rowCount int64, err error)
	SetCurrent(id string) error
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Campaign) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Campaign{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Campaign, error) {
	rec := dbmodels.Campaign{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetCurrent(branch string) (*dbmodels.Campaign, error) {
	rec := dbmodels.Campaign{}
	err := i.db.
		Where("branch = ?", branch).
		Where("current").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(page, limit int) (list []dbmodels.Campaign, rowCount int64, err error) {
	list = []dbmodels.Campaign{}
	tx := i.db.Model(&dbmodels.Campaign{})
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err = tx.
		Order("year desc, branch").
		Offset(offset).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

// SetCurrent переносит флаг текущей кампании внутри отделения одной транзакцией,
// частичный уникальный индекс закрывает гонку параллельных переключений
func (i impl) SetCurrent(id string) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		rec := dbmodels.Campaign{}
		err := tx.Where("id = ?", id).First(&rec).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("кампания не найдена")
			}
			return err
		}
		err = tx.
			Model(&dbmodels.Campaign{}).
			Where("branch = ?", rec.Branch).
			Where("current").
			Update("current", false).
			Error
		if err != nil {
			return err
		}
		return tx.
			Model(&dbmodels.Campaign{}).
			Where("id = ?", id).
			Update("current", true).
			Error
	})
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Campaign{}).
		Error
}
