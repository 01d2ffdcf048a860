package dbmodels

import (
	"admission-backend/models"
	"time"

	"github.com/pkg/errors"
)

type Interview struct {
	BaseModel
	ApplicantID string     `gorm:"type:varchar(36);index"`
	Applicant   *Applicant `gorm:"foreignKey:ApplicantID"`
	Section     models.InterviewSection `gorm:"type:varchar(50)"`
	Status      models.InterviewStatus  `gorm:"type:varchar(50)"`
	// дата проставляется при выборе слота либо куратором вручную
	Date         time.Time
	Interviewers []StaffUser `gorm:"many2many:interview_interviewers;"`
	Comments     []InterviewComment `gorm:"foreignKey:InterviewID;constraint:OnDelete:CASCADE"`
}

// IsAllowStatusChange - допустимые ручные переходы статуса
func (r Interview) IsAllowStatusChange(newStatus models.InterviewStatus) (bool, error) {
	if r.Status == newStatus {
		return false, nil
	}
	switch r.Status {
	case models.InterviewStatusApproval:
		if newStatus == models.InterviewStatusApproved || newStatus == models.InterviewStatusCanceled {
			return true, nil
		}
	case models.InterviewStatusApproved:
		if newStatus == models.InterviewStatusCanceled || newStatus == models.InterviewStatusDeferred {
			return true, nil
		}
	case models.InterviewStatusCanceled, models.InterviewStatusDeferred:
		if newStatus == models.InterviewStatusApproval {
			return true, nil
		}
	case models.InterviewStatusCompleted:
		return false, errors.New("собеседование уже завершено")
	default:
		return false, errors.Errorf("неизвестный статус собеседования: %v", r.Status)
	}
	return false, errors.Errorf("переход %v -> %v недоступен", r.Status, newStatus)
}

func (r Interview) HasInterviewer(userID string) bool {
	for _, u := range r.Interviewers {
		if u.ID == userID {
			return true
		}
	}
	return false
}

type InterviewComment struct {
	BaseModel
	// один комментарий на собеседующего (ux_interview_comments_author)
	InterviewID string     `gorm:"type:varchar(36);index"`
	AuthorID    string     `gorm:"type:varchar(36)"`
	Author      *StaffUser `gorm:"foreignKey:AuthorID"`
	Score       int
	Text        string
}

const (
	CommentScoreMin = -2
	CommentScoreMax = 2
)

func (c InterviewComment) Validate() error {
	if c.InterviewID == "" {
		return errors.New("не указано собеседование")
	}
	if c.AuthorID == "" {
		return errors.New("не указан автор комментария")
	}
	if c.Score < CommentScoreMin || c.Score > CommentScoreMax {
		return errors.Errorf("оценка должна быть в диапазоне [%v, %v]", CommentScoreMin, CommentScoreMax)
	}
	return nil
}
