package streamstore

import (
	dbmodels "admission-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	CreateWithSlots(rec dbmodels.InterviewStream, slots []dbmodels.InterviewSlot) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.InterviewStream, err error)
	ListByCampaign(campaignID string) (list []dbmodels.InterviewStream, err error)
	HasClaimedSlots(id string) (bool, error)
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

// CreateWithSlots сохраняет поток вместе со сгенерированными слотами одной транзакцией.
// Слоты генерируются только здесь, при создании; правки потока их не пересоздают.
func (i impl) CreateWithSlots(rec dbmodels.InterviewStream, slots []dbmodels.InterviewSlot) (id string, err error) {
	err = i.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Omit(clause.Associations).Save(&rec).Error
		if err != nil {
			return err
		}
		for idx := range slots {
			slots[idx].StreamID = rec.ID
		}
		if len(slots) > 0 {
			err = tx.Omit(clause.Associations).Create(&slots).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
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
		Model(&dbmodels.InterviewStream{}).
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

func (i impl) GetByID(id string) (*dbmodels.InterviewStream, error) {
	rec := dbmodels.InterviewStream{}
	err := i.db.
		Where("id = ?", id).
		Preload("Venue").
		Preload("Slots", func(db *gorm.DB) *gorm.DB {
			return db.Order("interview_slots.start_at")
		}).
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

func (i impl) ListByCampaign(campaignID string) (list []dbmodels.InterviewStream, err error) {
	list = []dbmodels.InterviewStream{}
	err = i.db.
		Model(&dbmodels.InterviewStream{}).
		Where("campaign_id = ?", campaignID).
		Preload("Venue").
		Order("start_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) HasClaimedSlots(id string) (bool, error) {
	var exists bool
	err := i.db.Model(&dbmodels.InterviewSlot{}).
		Select("count(*) > 0").
		Where("stream_id = ?", id).
		Where("interview_id IS NOT NULL").
		Find(&exists).
		Error
	return exists, err
}

func (i impl) Delete(id string) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("stream_id = ?", id).
			Delete(&dbmodels.InterviewSlot{}).
			Error
		if err != nil {
			return err
		}
		return tx.
			Where("id = ?", id).
			Delete(&dbmodels.InterviewStream{}).
			Error
	})
}
