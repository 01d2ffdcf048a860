package filesdbstore

import (
	dbmodels "admission-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Save(rec dbmodels.ApplicantDoc) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (*dbmodels.ApplicantDoc, error)
	List(applicantID string) (list []dbmodels.ApplicantDoc, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.ApplicantDoc) (id string, err error) {
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
		Model(&dbmodels.ApplicantDoc{}).
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

func (i impl) GetByID(id string) (*dbmodels.ApplicantDoc, error) {
	rec := dbmodels.ApplicantDoc{}
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

func (i impl) List(applicantID string) (list []dbmodels.ApplicantDoc, err error) {
	list = []dbmodels.ApplicantDoc{}
	err = i.db.
		Model(&dbmodels.ApplicantDoc{}).
		Where("applicant_id = ?", applicantID).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
