package applicantapimodels

import (
	"admission-backend/models"
	dbmodels "admission-backend/models/db"

	"github.com/pkg/errors"
)

type ApplicantData struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	MiddleName      string `json:"middle_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	University      string `json:"university"`
	Course          string `json:"course"`
	OnlineTestScore int    `json:"online_test_score"`
	ExamScore       int    `json:"exam_score"`
	Comment         string `json:"comment"`
}

type CreateRequest struct {
	CampaignID string `json:"campaign_id"`
	ApplicantData
}

func (r CreateRequest) Validate() error {
	if r.CampaignID == "" {
		return errors.New("не указана кампания")
	}
	if r.LastName == "" || r.FirstName == "" {
		return errors.New("не указаны фамилия и имя кандидата")
	}
	if r.Email == "" {
		return errors.New("не указана почта кандидата")
	}
	return nil
}

func (r CreateRequest) ToDbModel() dbmodels.Applicant {
	return dbmodels.Applicant{
		CampaignID:      r.CampaignID,
		Status:          models.ApplicantStatusNew,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		MiddleName:      r.MiddleName,
		Email:           r.Email,
		Phone:           r.Phone,
		University:      r.University,
		Course:          r.Course,
		OnlineTestScore: r.OnlineTestScore,
		ExamScore:       r.ExamScore,
		Comment:         r.Comment,
	}
}

type StatusRequest struct {
	Status models.ApplicantStatus `json:"status"`
}

type ApplicantView struct {
	ID     string                 `json:"id"`
	Status models.ApplicantStatus `json:"status"`
	ApplicantData
	FullName string `json:"full_name"`
}

func ApplicantConvert(rec dbmodels.Applicant) ApplicantView {
	return ApplicantView{
		ID:     rec.ID,
		Status: rec.Status,
		ApplicantData: ApplicantData{
			FirstName:       rec.FirstName,
			LastName:        rec.LastName,
			MiddleName:      rec.MiddleName,
			Email:           rec.Email,
			Phone:           rec.Phone,
			University:      rec.University,
			Course:          rec.Course,
			OnlineTestScore: rec.OnlineTestScore,
			ExamScore:       rec.ExamScore,
			Comment:         rec.Comment,
		},
		FullName: rec.GetFullName(),
	}
}

type ListRequest struct {
	Filter dbmodels.ApplicantFilter `json:"filter"`
	Limit  int                      `json:"limit"`
	Page   int                      `json:"page"`
}
