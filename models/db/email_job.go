package dbmodels

import (
	"admission-backend/models"
	"time"
)

// EmailJob - отложенная отправка письма кандидату.
// Не более одного письма каждого вида на собеседование (ux_email_jobs_interview_kind).
type EmailJob struct {
	BaseModel
	InterviewID string             `gorm:"type:varchar(36);index"`
	Kind        models.EmailJobKind `gorm:"type:varchar(50)"`
	Template    string             `gorm:"type:varchar(255)"`
	SendAt      time.Time          `gorm:"index"`
	SentAt      *time.Time
	Failed      bool
}

func (j EmailJob) IsPending() bool {
	return j.SentAt == nil && !j.Failed
}
