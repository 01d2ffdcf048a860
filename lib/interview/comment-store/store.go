package commentstore

import (
	dbmodels "admission-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Upsert(rec dbmodels.InterviewComment) (id string, err error)
	Delete(interviewID, authorID string) error
	ListByInterview(interviewID string) (list []dbmodels.InterviewComment, err error)
	DistinctAuthorCount(interviewID string) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Upsert - повторный комментарий того же автора обновляет запись,
// в знаменателе правила завершения автор учитывается один раз
func (i impl) Upsert(rec dbmodels.InterviewComment) (id string, err error) {
	err = i.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "interview_id"}, {Name: "author_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"score", "text", "updated_at"}),
		}).
		Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Delete(interviewID, authorID string) error {
	tx := i.db.
		Where("interview_id = ?", interviewID).
		Where("author_id = ?", authorID).
		Delete(&dbmodels.InterviewComment{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("комментарий не найден")
	}
	return nil
}

func (i impl) ListByInterview(interviewID string) (list []dbmodels.InterviewComment, err error) {
	list = []dbmodels.InterviewComment{}
	err = i.db.
		Model(&dbmodels.InterviewComment{}).
		Where("interview_id = ?", interviewID).
		Preload("Author").
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) DistinctAuthorCount(interviewID string) (count int64, err error) {
	err = i.db.
		Model(&dbmodels.InterviewComment{}).
		Where("interview_id = ?", interviewID).
		Distinct("author_id").
		Count(&count).
		Error
	return count, err
}
