package dbmodels

import (
	"admission-backend/models"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type Applicant struct {
	BaseModel
	CampaignID string    `gorm:"type:varchar(36);index"`
	Campaign   *Campaign `gorm:"foreignKey:CampaignID"`
	Status     models.ApplicantStatus `gorm:"type:varchar(50);index"`
	FirstName  string `gorm:"type:varchar(255)"`
	LastName   string `gorm:"type:varchar(255)"`
	MiddleName string `gorm:"type:varchar(255)"`
	Email      string `gorm:"type:varchar(255)"`
	Phone      string `gorm:"type:varchar(255)"`
	University string `gorm:"type:varchar(255)"`
	Course     string `gorm:"type:varchar(100)"`
	OnlineTestScore int
	ExamScore       int
	Comment         string
}

func (a Applicant) GetFullName() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s %s", a.LastName, a.FirstName, a.MiddleName))
}

// IsAllowStatusSync - финальные статусы автоматикой не перезаписываются
func (a Applicant) IsAllowStatusSync() bool {
	return !a.Status.IsFinal()
}

type ApplicantFilter struct {
	CampaignID string                 `json:"campaign_id"`
	Status     models.ApplicantStatus `json:"status"`
	Search     string                 `json:"search"`
}

func (f ApplicantFilter) Validate() error {
	if f.CampaignID == "" {
		return errors.New("не указан идентификатор кампании")
	}
	return nil
}

// ApplicantExportRow - строка выгрузки: кандидат плюс его активное собеседование
type ApplicantExportRow struct {
	Applicant
	InterviewStatus models.InterviewStatus
	InterviewDate   *time.Time
	AvgScore        *float64
}

type ApplicantDoc struct {
	BaseModel
	ApplicantID string `gorm:"type:varchar(36);index"`
	FileName    string `gorm:"type:varchar(255)"`
	ObjectKey   string `gorm:"type:varchar(512)"`
}
