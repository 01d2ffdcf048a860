package invitationstore

import (
	dbmodels "admission-backend/models/db"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.InterviewInvitation, streamIDs []string) (id string, err error)
	GetByToken(token string) (rec *dbmodels.InterviewInvitation, err error)
	GetByInterview(interviewID string) (rec *dbmodels.InterviewInvitation, err error)
	MarkUsed(id string, usedAt time.Time) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.InterviewInvitation, streamIDs []string) (id string, err error) {
	err = i.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Save(&rec).Error
		if err != nil {
			return err
		}
		streams := make([]dbmodels.InterviewStream, 0, len(streamIDs))
		for _, sid := range streamIDs {
			streams = append(streams, dbmodels.InterviewStream{BaseModel: dbmodels.BaseModel{ID: sid}})
		}
		return tx.Model(&rec).Association("Streams").Append(&streams)
	})
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByToken(token string) (*dbmodels.InterviewInvitation, error) {
	rec := dbmodels.InterviewInvitation{}
	err := i.db.
		Where("token = ?", token).
		Preload("Applicant").
		Preload("Interview").
		Preload("Streams").
		Preload("Streams.Venue").
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

func (i impl) GetByInterview(interviewID string) (*dbmodels.InterviewInvitation, error) {
	rec := dbmodels.InterviewInvitation{}
	err := i.db.
		Where("interview_id = ?", interviewID).
		Preload("Streams").
		Preload("Streams.Venue").
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

func (i impl) MarkUsed(id string, usedAt time.Time) error {
	tx := i.db.
		Model(&dbmodels.InterviewInvitation{}).
		Where("id = ?", id).
		Where("used_at IS NULL").
		Update("used_at", usedAt)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("приглашение уже использовано")
	}
	return nil
}
