package applicant

import (
	"admission-backend/db"
	applicantstore "admission-backend/lib/applicant/store"
	xlsexport "admission-backend/lib/export/xls"
	"admission-backend/models"
	applicantapimodels "admission-backend/models/api/applicant"
	dbmodels "admission-backend/models/db"
	"bytes"

	"github.com/pkg/errors"
)

type Provider interface {
	Create(data applicantapimodels.CreateRequest) (id string, err error)
	Update(id string, data applicantapimodels.ApplicantData) error
	GetByID(id string) (applicantapimodels.ApplicantView, error)
	List(filter dbmodels.ApplicantFilter, page, limit int) (list []applicantapimodels.ApplicantView, rowCount int64, err error)
	SetStatus(id string, status models.ApplicantStatus) error
	ExportXls(campaignID string) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: applicantstore.NewInstance(db.DB),
	}
}

type impl struct {
	store applicantstore.Provider
}

func (i impl) Create(data applicantapimodels.CreateRequest) (id string, err error) {
	if err = data.Validate(); err != nil {
		return "", err
	}
	return i.store.Create(data.ToDbModel())
}

func (i impl) Update(id string, data applicantapimodels.ApplicantData) error {
	updMap := map[string]interface{}{
		"first_name":        data.FirstName,
		"last_name":         data.LastName,
		"middle_name":       data.MiddleName,
		"email":             data.Email,
		"phone":             data.Phone,
		"university":        data.University,
		"course":            data.Course,
		"online_test_score": data.OnlineTestScore,
		"exam_score":        data.ExamScore,
		"comment":           data.Comment,
	}
	return i.store.Update(id, updMap)
}

func (i impl) GetByID(id string) (applicantapimodels.ApplicantView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return applicantapimodels.ApplicantView{}, err
	}
	if rec == nil {
		return applicantapimodels.ApplicantView{}, errors.New("кандидат не найден")
	}
	return applicantapimodels.ApplicantConvert(*rec), nil
}

func (i impl) List(filter dbmodels.ApplicantFilter, page, limit int) (list []applicantapimodels.ApplicantView, rowCount int64, err error) {
	if err = filter.Validate(); err != nil {
		return nil, 0, err
	}
	recList, rowCount, err := i.store.List(filter, page, limit)
	if err != nil {
		return nil, 0, err
	}
	list = make([]applicantapimodels.ApplicantView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, applicantapimodels.ApplicantConvert(rec))
	}
	return list, rowCount, nil
}

// SetStatus - ручная смена статуса куратором, в тч выставление финального решения
func (i impl) SetStatus(id string, status models.ApplicantStatus) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("кандидат не найден")
	}
	if rec.Status == status {
		return nil
	}
	if rec.Status.IsFinal() {
		return errors.New("финальный статус кандидата не меняется")
	}
	return i.store.Update(id, map[string]interface{}{"status": status})
}

func (i impl) ExportXls(campaignID string) (*bytes.Buffer, error) {
	if campaignID == "" {
		return nil, errors.New("не указан идентификатор кампании")
	}
	list, err := i.store.ListForExport(campaignID)
	if err != nil {
		return nil, err
	}
	return xlsexport.Instance.ExportApplicantList(list)
}
