package applicantstore

import (
	"admission-backend/models"
	dbmodels "admission-backend/models/db"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Applicant) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.Applicant, err error)
	List(filter dbmodels.ApplicantFilter, page, limit int) (list []dbmodels.Applicant, rowCount int64, err error)
	ListByCampaign(campaignID string) (list []dbmodels.Applicant, err error)
	ListForExport(campaignID string) (list []dbmodels.ApplicantExportRow, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Applicant) (id string, err error) {
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
		Model(&dbmodels.Applicant{}).
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

func (i impl) GetByID(id string) (*dbmodels.Applicant, error) {
	rec := dbmodels.Applicant{}
	err := i.db.
		Where("id = ?", id).
		Preload("Campaign").
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

func (i impl) List(filter dbmodels.ApplicantFilter, page, limit int) (list []dbmodels.Applicant, rowCount int64, err error) {
	list = []dbmodels.Applicant{}
	tx := i.db.
		Model(dbmodels.Applicant{}).
		Where("campaign_id = ?", filter.CampaignID)
	i.addFilter(tx, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err = tx.
		Order("last_name, first_name").
		Offset(offset).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) ListByCampaign(campaignID string) (list []dbmodels.Applicant, err error) {
	list = []dbmodels.Applicant{}
	err = i.db.
		Model(dbmodels.Applicant{}).
		Where("campaign_id = ?", campaignID).
		Order("last_name, first_name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListForExport(campaignID string) (list []dbmodels.ApplicantExportRow, err error) {
	list = []dbmodels.ApplicantExportRow{}
	err = i.db.
		Model(&dbmodels.Applicant{}).
		Select("applicants.*, i.status AS interview_status, i.date AS interview_date, (SELECT AVG(c.score) FROM interview_comments c WHERE c.interview_id = i.id) AS avg_score").
		Joins("LEFT JOIN interviews i ON i.applicant_id = applicants.id AND i.status <> ?", models.InterviewStatusCanceled).
		Where("applicants.campaign_id = ?", campaignID).
		Order("applicants.last_name, applicants.first_name").
		Scan(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) addFilter(tx *gorm.DB, filter dbmodels.ApplicantFilter) {
	if filter.Status != "" {
		tx.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		searchValue := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("LOWER(CONCAT(last_name,' ', first_name, ' ' , middle_name)) like ? or LOWER(email) like ?", searchValue, searchValue)
	}
}
