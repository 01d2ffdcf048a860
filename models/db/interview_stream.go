package dbmodels

import (
	"admission-backend/models"
	"time"

	"github.com/pkg/errors"
)

type InterviewStream struct {
	BaseModel
	CampaignID string    `gorm:"type:varchar(36);index"`
	Campaign   *Campaign `gorm:"foreignKey:CampaignID"`
	VenueID    string    `gorm:"type:varchar(36)"`
	Venue      *Venue    `gorm:"foreignKey:VenueID"`
	Section    models.InterviewSection `gorm:"type:varchar(50)"`
	Format     models.InterviewFormat  `gorm:"type:varchar(50)"`
	// окно собеседований, UTC
	StartAt     time.Time
	EndAt       time.Time
	DurationMin int
	// собеседование с предварительным заданием
	WithAssignments bool
	// напоминание кандидату до начала слота
	ReminderTemplate string `gorm:"type:varchar(255)"`
	ReminderLeadMin  int

	Slots []InterviewSlot `gorm:"foreignKey:StreamID;constraint:OnDelete:CASCADE"`
}

func (s InterviewStream) Validate() error {
	if s.CampaignID == "" {
		return errors.New("не указана кампания набора")
	}
	if s.VenueID == "" {
		return errors.New("не указана площадка")
	}
	if s.DurationMin <= 0 {
		return errors.New("длительность слота должна быть положительной")
	}
	if !s.StartAt.Before(s.EndAt) {
		return errors.New("начало потока должно быть раньше окончания")
	}
	return nil
}

// GenerateSlots разбивает окно [StartAt, EndAt) на слоты по DurationMin минут.
// Неполный хвост окна отбрасывается.
func (s InterviewStream) GenerateSlots() []InterviewSlot {
	slots := []InterviewSlot{}
	step := time.Duration(s.DurationMin) * time.Minute
	if step <= 0 {
		return slots
	}
	for cursor := s.StartAt; !cursor.Add(step).After(s.EndAt); cursor = cursor.Add(step) {
		slots = append(slots, InterviewSlot{
			StreamID: s.ID,
			StartAt:  cursor,
			EndAt:    cursor.Add(step),
		})
	}
	return slots
}

type InterviewSlot struct {
	BaseModel
	StreamID string           `gorm:"type:varchar(36);index"`
	Stream   *InterviewStream `gorm:"foreignKey:StreamID"`
	// границы слота фиксируются при генерации и далее не меняются
	StartAt time.Time
	EndAt   time.Time
	// занятый слот, не более одного слота на собеседование (ux_interview_slots_interview)
	InterviewID *string    `gorm:"type:varchar(36)"`
	Interview   *Interview `gorm:"foreignKey:InterviewID"`
}

func (s InterviewSlot) IsFree() bool {
	return s.InterviewID == nil || *s.InterviewID == ""
}
