package slotstore

import (
	dbmodels "admission-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	GetByID(id string) (rec *dbmodels.InterviewSlot, err error)
	ListFreeByStreams(streamIDs []string) (list []dbmodels.InterviewSlot, err error)
	Assign(slotID, interviewID string) error
	Release(interviewID string) error
	GetByInterview(interviewID string) (rec *dbmodels.InterviewSlot, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByID(id string) (*dbmodels.InterviewSlot, error) {
	rec := dbmodels.InterviewSlot{}
	err := i.db.
		Where("id = ?", id).
		Preload("Stream").
		Preload("Stream.Venue").
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

func (i impl) ListFreeByStreams(streamIDs []string) (list []dbmodels.InterviewSlot, err error) {
	list = []dbmodels.InterviewSlot{}
	err = i.db.
		Model(&dbmodels.InterviewSlot{}).
		Where("stream_id IN ?", streamIDs).
		Where("interview_id IS NULL").
		Order("start_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Assign занимает свободный слот условным UPDATE.
// При параллельных запросах побеждает ровно один, второй получает "слот уже занят".
func (i impl) Assign(slotID, interviewID string) error {
	tx := i.db.
		Model(&dbmodels.InterviewSlot{}).
		Where("id = ?", slotID).
		Where("interview_id IS NULL").
		Update("interview_id", interviewID)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("слот уже занят")
	}
	return nil
}

// Release отвязывает собеседование от слота, слот снова доступен для записи
func (i impl) Release(interviewID string) error {
	return i.db.
		Model(&dbmodels.InterviewSlot{}).
		Where("interview_id = ?", interviewID).
		Update("interview_id", nil).
		Error
}

func (i impl) GetByInterview(interviewID string) (*dbmodels.InterviewSlot, error) {
	rec := dbmodels.InterviewSlot{}
	err := i.db.
		Where("interview_id = ?", interviewID).
		Preload("Stream").
		Preload("Stream.Venue").
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
