package emailnotifystore

import (
	"admission-backend/models"
	dbmodels "admission-backend/models/db"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	CreateOrUpdate(rec dbmodels.EmailJob) (id string, err error)
	DeletePending(interviewID string, kinds ...models.EmailJobKind) error
	ListDue(now time.Time, limit int) (list []dbmodels.EmailJob, err error)
	MarkSent(id string, sentAt time.Time) error
	MarkFailed(id string) error
	GetPending(interviewID string, kind models.EmailJobKind) (rec *dbmodels.EmailJob, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// CreateOrUpdate - идемпотентность по (interview_id, kind):
// повторный вызов двигает время отправки, второго письма не появляется
func (i impl) CreateOrUpdate(rec dbmodels.EmailJob) (id string, err error) {
	err = i.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "interview_id"}, {Name: "kind"}},
			DoUpdates: clause.AssignmentColumns([]string{"send_at", "template", "updated_at"}),
		}).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) DeletePending(interviewID string, kinds ...models.EmailJobKind) error {
	tx := i.db.
		Where("interview_id = ?", interviewID).
		Where("sent_at IS NULL")
	if len(kinds) > 0 {
		tx = tx.Where("kind IN ?", kinds)
	}
	return tx.Delete(&dbmodels.EmailJob{}).Error
}

func (i impl) ListDue(now time.Time, limit int) (list []dbmodels.EmailJob, err error) {
	list = []dbmodels.EmailJob{}
	err = i.db.
		Model(&dbmodels.EmailJob{}).
		Where("send_at <= ?", now).
		Where("sent_at IS NULL").
		Where("NOT failed").
		Order("send_at").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) MarkSent(id string, sentAt time.Time) error {
	return i.db.
		Model(&dbmodels.EmailJob{}).
		Where("id = ?", id).
		Update("sent_at", sentAt).
		Error
}

func (i impl) MarkFailed(id string) error {
	return i.db.
		Model(&dbmodels.EmailJob{}).
		Where("id = ?", id).
		Update("failed", true).
		Error
}

func (i impl) GetPending(interviewID string, kind models.EmailJobKind) (rec *dbmodels.EmailJob, err error) {
	out := dbmodels.EmailJob{}
	err = i.db.
		Where("interview_id = ?", interviewID).
		Where("kind = ?", kind).
		Where("sent_at IS NULL").
		First(&out).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}
