package interviewstore

import (
	"admission-backend/models"
	dbmodels "admission-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Interview) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.Interview, err error)
	GetActiveByApplicant(applicantID string) (rec *dbmodels.Interview, err error)
	ListByCampaign(campaignID string) (list []dbmodels.Interview, err error)
	AddInterviewer(interviewID, userID string) error
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

func (i impl) Create(rec dbmodels.Interview) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
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
		Model(&dbmodels.Interview{}).
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

func (i impl) GetByID(id string) (*dbmodels.Interview, error) {
	rec := dbmodels.Interview{}
	err := i.db.
		Where("id = ?", id).
		Preload("Applicant").
		Preload("Interviewers").
		Preload("Comments").
		Preload("Comments.Author").
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

func (i impl) GetActiveByApplicant(applicantID string) (*dbmodels.Interview, error) {
	rec := dbmodels.Interview{}
	err := i.db.
		Where("applicant_id = ?", applicantID).
		Where("status <> ?", models.InterviewStatusCanceled).
		Preload("Interviewers").
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

func (i impl) ListByCampaign(campaignID string) (list []dbmodels.Interview, err error) {
	list = []dbmodels.Interview{}
	err = i.db.
		Model(&dbmodels.Interview{}).
		Joins("join applicants as a on interviews.applicant_id = a.id").
		Where("a.campaign_id = ?", campaignID).
		Preload("Applicant").
		Preload("Interviewers").
		Preload("Comments").
		Order("interviews.date").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) AddInterviewer(interviewID, userID string) error {
	rec := dbmodels.Interview{BaseModel: dbmodels.BaseModel{ID: interviewID}}
	return i.db.
		Model(&rec).
		Association("Interviewers").
		Append(&dbmodels.StaffUser{BaseModel: dbmodels.BaseModel{ID: userID}})
}

func (i impl) Delete(id string) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("interview_id = ?", id).
			Delete(&dbmodels.InterviewComment{}).
			Error
		if err != nil {
			return err
		}
		rec := dbmodels.Interview{BaseModel: dbmodels.BaseModel{ID: id}}
		err = tx.Model(&rec).Association("Interviewers").Clear()
		if err != nil {
			return err
		}
		return tx.
			Where("id = ?", id).
			Delete(&dbmodels.Interview{}).
			Error
	})
}
