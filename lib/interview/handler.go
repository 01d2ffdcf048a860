package interview

import (
	"admission-backend/db"
	applicantstore "admission-backend/lib/applicant/store"
	staffstore "admission-backend/lib/auth/store"
	emailnotify "admission-backend/lib/email-notify"
	commentstore "admission-backend/lib/interview/comment-store"
	interviewstore "admission-backend/lib/interview/store"
	pdfexport "admission-backend/lib/export/pdf"
	slotstore "admission-backend/lib/stream/slot-store"
	"admission-backend/lib/utils/helpers"
	connectionhub "admission-backend/lib/ws/hub/connection-hub"
	"admission-backend/models"
	interviewapimodels "admission-backend/models/api/interview"
	dbmodels "admission-backend/models/db"
	wsmodels "admission-backend/models/ws"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	GetByID(id string) (interviewapimodels.InterviewView, error)
	ListByCampaign(campaignID string) ([]interviewapimodels.InterviewView, error)
	SetStatus(id string, newStatus models.InterviewStatus) error
	AddInterviewer(id, userID string) error
	AddComment(interviewID, authorID string, data interviewapimodels.CommentRequest) error
	DeleteComment(interviewID, authorID string) error
	Delete(id string) error
	Reconcile(id string) error
	ExportProtocol(id string) (pdfFile []byte, err error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		db:             db.DB,
		store:          interviewstore.NewInstance(db.DB),
		commentStore:   commentstore.NewInstance(db.DB),
		applicantStore: applicantstore.NewInstance(db.DB),
		staffStore:     staffstore.NewInstance(db.DB),
		slotStore:      slotstore.NewInstance(db.DB),
		emailNotify:    emailnotify.Instance,
		hub:            connectionhub.Instance,
	}
}

type impl struct {
	db             *gorm.DB
	store          interviewstore.Provider
	commentStore   commentstore.Provider
	applicantStore applicantstore.Provider
	staffStore     staffstore.Provider
	slotStore      slotstore.Provider
	emailNotify    emailnotify.Provider
	hub            connectionhub.Provider
}

// withTx собирает обработчик поверх транзакционных сторов
func (i impl) withTx(tx *gorm.DB) impl {
	scoped := i
	scoped.db = nil // вложенная транзакция не открывается
	scoped.store = interviewstore.NewInstance(tx)
	scoped.commentStore = commentstore.NewInstance(tx)
	scoped.applicantStore = applicantstore.NewInstance(tx)
	scoped.staffStore = staffstore.NewInstance(tx)
	scoped.slotStore = slotstore.NewInstance(tx)
	scoped.emailNotify = emailnotify.NewHandlerWithTx(tx)
	return scoped
}

// inTx выполняет мутацию вместе с пересчётом статусов одной транзакцией:
// при ошибке пересчёта мутация откатывается целиком
func (i impl) inTx(fn func(h impl) error) error {
	if i.db == nil {
		return fn(i)
	}
	return i.db.Transaction(func(tx *gorm.DB) error {
		return fn(i.withTx(tx))
	})
}

func (i impl) GetByID(id string) (interviewapimodels.InterviewView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return interviewapimodels.InterviewView{}, err
	}
	if rec == nil {
		return interviewapimodels.InterviewView{}, errors.New("собеседование не найдено")
	}
	return interviewapimodels.InterviewConvert(*rec), nil
}

func (i impl) ListByCampaign(campaignID string) ([]interviewapimodels.InterviewView, error) {
	list, err := i.store.ListByCampaign(campaignID)
	if err != nil {
		return nil, err
	}
	result := make([]interviewapimodels.InterviewView, 0, len(list))
	for _, rec := range list {
		result = append(result, interviewapimodels.InterviewConvert(rec))
	}
	return result, nil
}

func (i impl) SetStatus(id string, newStatus models.InterviewStatus) error {
	return i.inTx(func(h impl) error { return h.setStatus(id, newStatus) })
}

func (i impl) setStatus(id string, newStatus models.InterviewStatus) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("собеседование не найдено")
	}
	ok, err := rec.IsAllowStatusChange(newStatus)
	if err != nil || !ok {
		return err
	}
	err = i.store.Update(id, map[string]interface{}{"status": newStatus})
	if err != nil {
		return err
	}
	return i.reconcile(id)
}

func (i impl) AddInterviewer(id, userID string) error {
	return i.inTx(func(h impl) error { return h.addInterviewer(id, userID) })
}

func (i impl) addInterviewer(id, userID string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("собеседование не найдено")
	}
	if rec.HasInterviewer(userID) {
		return nil
	}
	err = i.store.AddInterviewer(id, userID)
	if err != nil {
		return err
	}
	// состав собеседующих меняет знаменатель правила завершения
	return i.reconcile(id)
}

func (i impl) AddComment(interviewID, authorID string, data interviewapimodels.CommentRequest) error {
	return i.inTx(func(h impl) error { return h.addComment(interviewID, authorID, data) })
}

func (i impl) addComment(interviewID, authorID string, data interviewapimodels.CommentRequest) error {
	logger := log.WithFields(log.Fields{
		"interview_id": interviewID,
		"author_id":    authorID,
	})
	rec, err := i.store.GetByID(interviewID)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("собеседование не найдено")
	}
	if rec.Status != models.InterviewStatusApproval && rec.Status != models.InterviewStatusApproved {
		return errors.New("комментарии доступны только для активного собеседования")
	}
	author, err := i.staffStore.GetByID(authorID)
	if err != nil {
		return err
	}
	if author == nil {
		return errors.New("автор комментария не найден")
	}
	if !rec.HasInterviewer(authorID) {
		if !author.Role.IsCurator() {
			return errors.New("комментарий может оставить только собеседующий или куратор")
		}
		// куратор добавляется в состав до пересчёта статуса,
		// чтобы правило завершения считалось по итоговому составу
		err = i.store.AddInterviewer(interviewID, authorID)
		if err != nil {
			logger.WithError(err).Error("ошибка добавления куратора в состав собеседующих")
			return err
		}
	}
	comment := dbmodels.InterviewComment{
		InterviewID: interviewID,
		AuthorID:    authorID,
		Score:       data.Score,
		Text:        data.Text,
	}
	if err = comment.Validate(); err != nil {
		return err
	}
	_, err = i.commentStore.Upsert(comment)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения комментария")
		return err
	}
	return i.reconcile(interviewID)
}

func (i impl) DeleteComment(interviewID, authorID string) error {
	return i.inTx(func(h impl) error { return h.deleteComment(interviewID, authorID) })
}

func (i impl) deleteComment(interviewID, authorID string) error {
	err := i.commentStore.Delete(interviewID, authorID)
	if err != nil {
		return err
	}
	return i.reconcile(interviewID)
}

// Delete - жёсткое удаление: слот освобождается, кандидат возвращается в очередь на запись
func (i impl) Delete(id string) error {
	return i.inTx(func(h impl) error { return h.hardDelete(id) })
}

func (i impl) hardDelete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("собеседование не найдено")
	}
	err = i.slotStore.Release(id)
	if err != nil {
		return err
	}
	err = i.emailNotify.Cancel(id)
	if err != nil {
		return err
	}
	err = i.store.Delete(id)
	if err != nil {
		return err
	}
	return i.syncApplicant(rec.Applicant, rec.ApplicantID, models.ApplicantStatusToBeScheduled)
}

// Reconcile - единственная точка пересчёта статусов после любой мутации
// собеседования или комментариев. Держит Interview.status и Applicant.status
// согласованными и управляет отложенными письмами.
func (i impl) Reconcile(id string) error {
	return i.inTx(func(h impl) error { return h.reconcile(id) })
}

func (i impl) reconcile(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("собеседование не найдено")
	}
	authorCount, err := i.commentStore.DistinctAuthorCount(id)
	if err != nil {
		return err
	}
	allCommented := len(rec.Interviewers) > 0 && authorCount == int64(len(rec.Interviewers))

	switch rec.Status {
	case models.InterviewStatusApproval, models.InterviewStatusApproved:
		if allCommented {
			err = i.store.Update(id, map[string]interface{}{"status": models.InterviewStatusCompleted})
			if err != nil {
				return err
			}
			err = i.syncApplicant(rec.Applicant, rec.ApplicantID, models.ApplicantStatusInterviewCompleted)
			if err != nil {
				return err
			}
			err = i.emailNotify.ScheduleFeedback(id)
			if err != nil {
				return err
			}
			i.notifyCurators(wsmodels.CodeInterviewCompleted, rec)
			return nil
		}
		return i.syncApplicant(rec.Applicant, rec.ApplicantID, models.ApplicantStatusInterviewScheduled)
	case models.InterviewStatusCanceled, models.InterviewStatusDeferred:
		err = i.syncApplicant(rec.Applicant, rec.ApplicantID, models.ApplicantStatusToBeScheduled)
		if err != nil {
			return err
		}
		return i.emailNotify.Cancel(id, models.EmailJobReminder, models.EmailJobFeedback)
	case models.InterviewStatusCompleted:
		if !allCommented {
			// комментарий отозван - завершённость снимается вместе с неотправленным письмом итогов
			err = i.store.Update(id, map[string]interface{}{"status": models.InterviewStatusApproved})
			if err != nil {
				return err
			}
			err = i.emailNotify.Cancel(id, models.EmailJobFeedback)
			if err != nil {
				return err
			}
			return i.syncApplicant(rec.Applicant, rec.ApplicantID, models.ApplicantStatusInterviewScheduled)
		}
		return i.emailNotify.ScheduleFeedback(id)
	}
	return errors.Errorf("неизвестный статус собеседования: %v", rec.Status)
}

func (i impl) syncApplicant(applicant *dbmodels.Applicant, applicantID string, status models.ApplicantStatus) error {
	if applicant == nil {
		loaded, err := i.applicantStore.GetByID(applicantID)
		if err != nil {
			return err
		}
		if loaded == nil {
			return errors.New("кандидат не найден")
		}
		applicant = loaded
	}
	// финальный статус кандидата автоматикой не перезаписывается
	if !applicant.IsAllowStatusSync() {
		return nil
	}
	if applicant.Status == status {
		return nil
	}
	return i.applicantStore.Update(applicant.ID, map[string]interface{}{"status": status})
}

// ExportProtocol - pdf с итогами собеседования для комиссии
func (i impl) ExportProtocol(id string) ([]byte, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("собеседование не найдено")
	}
	data := pdfexport.ProtocolData{
		Section: string(rec.Section),
		Status:  rec.Status.ToHuman(),
	}
	if rec.Applicant != nil {
		data.ApplicantName = rec.Applicant.GetFullName()
	}
	applicant, err := i.applicantStore.GetByID(rec.ApplicantID)
	if err != nil {
		return nil, err
	}
	if applicant != nil && applicant.Campaign != nil {
		data.CampaignName = applicant.Campaign.Name
	}
	slot, err := i.slotStore.GetByInterview(id)
	if err != nil {
		return nil, err
	}
	if slot != nil && slot.Stream != nil && slot.Stream.Venue != nil {
		loc := slot.Stream.Venue.Location()
		data.Date = helpers.FormatDateTime(slot.StartAt, loc)
		data.VenueName = slot.Stream.Venue.Name
	} else if !rec.Date.IsZero() {
		data.Date = helpers.FormatDateTime(rec.Date, time.UTC)
	}
	for _, u := range rec.Interviewers {
		data.Interviewers = append(data.Interviewers, u.GetFullName())
	}
	for _, c := range rec.Comments {
		item := pdfexport.ProtocolComment{
			Score: c.Score,
			Text:  c.Text,
		}
		if c.Author != nil {
			item.Author = c.Author.GetFullName()
		}
		data.Comments = append(data.Comments, item)
	}
	data.AverageScore = pdfexport.FormatAverage(data.Comments)
	return pdfexport.GenerateProtocol(data)
}

func (i impl) notifyCurators(code string, rec *dbmodels.Interview) {
	if i.hub == nil {
		return
	}
	name := ""
	if rec.Applicant != nil {
		name = rec.Applicant.GetFullName()
	}
	i.hub.NotifyCurators(code, fmt.Sprintf("Собеседование кандидата %s завершено", name))
}
