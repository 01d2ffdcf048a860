package dbmodels

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InterviewInvitation struct {
	BaseModel
	ApplicantID string     `gorm:"type:varchar(36);index"`
	Applicant   *Applicant `gorm:"foreignKey:ApplicantID"`
	// черновик собеседования создаётся вместе с приглашением
	InterviewID string     `gorm:"type:varchar(36)"`
	Interview   *Interview `gorm:"foreignKey:InterviewID"`
	Streams     []InterviewStream `gorm:"many2many:invitation_streams;"`
	Token       string     `gorm:"type:varchar(64);uniqueIndex"`
	// абсолютный срок действия, UTC
	ExpiredAt time.Time
	// приглашение использовано - слот выбран
	UsedAt *time.Time
}

func (i *InterviewInvitation) BeforeCreate(tx *gorm.DB) error {
	if i.Token == "" {
		i.Token = uuid.NewString()
	}
	return nil
}

func (i InterviewInvitation) IsExpired(now time.Time) bool {
	return !now.Before(i.ExpiredAt)
}

func (i InterviewInvitation) IsUsed() bool {
	return i.UsedAt != nil
}

// HasStream - относится ли поток к приглашению
func (i InterviewInvitation) HasStream(streamID string) bool {
	for _, s := range i.Streams {
		if s.ID == streamID {
			return true
		}
	}
	return false
}
