package emailnotify

import (
	"admission-backend/db"
	emailnotifystore "admission-backend/lib/email-notify/store"
	messagetemplate "admission-backend/lib/message-template"
	"admission-backend/models"
	dbmodels "admission-backend/models/db"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	ScheduleInvitation(interviewID string) error
	ScheduleReminder(interviewID string, sendAt time.Time, template string) error
	ScheduleFeedback(interviewID string) error
	Cancel(interviewID string, kinds ...models.EmailJobKind) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store: emailnotifystore.NewInstance(db.DB),
	}
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return &impl{
		store: emailnotifystore.NewInstance(tx),
	}
}

type impl struct {
	store emailnotifystore.Provider
}

func (i impl) ScheduleInvitation(interviewID string) error {
	return i.schedule(interviewID, models.EmailJobInvitation, messagetemplate.TemplateInvitation, time.Now().UTC())
}

func (i impl) ScheduleReminder(interviewID string, sendAt time.Time, template string) error {
	if template == "" {
		template = messagetemplate.TemplateReminder
	}
	if !messagetemplate.IsKnownTemplate(template) {
		return errors.Errorf("неизвестный шаблон напоминания: %s", template)
	}
	return i.schedule(interviewID, models.EmailJobReminder, template, sendAt)
}

// ScheduleFeedback идемпотентен: не более одного письма с итогами на собеседование
func (i impl) ScheduleFeedback(interviewID string) error {
	return i.schedule(interviewID, models.EmailJobFeedback, messagetemplate.TemplateFeedback, time.Now().UTC())
}

func (i impl) Cancel(interviewID string, kinds ...models.EmailJobKind) error {
	err := i.store.DeletePending(interviewID, kinds...)
	if err != nil {
		log.WithField("interview_id", interviewID).
			WithError(err).
			Error("ошибка отмены отложенных писем")
		return err
	}
	return nil
}

func (i impl) schedule(interviewID string, kind models.EmailJobKind, template string, sendAt time.Time) error {
	_, err := i.store.CreateOrUpdate(dbmodels.EmailJob{
		InterviewID: interviewID,
		Kind:        kind,
		Template:    template,
		SendAt:      sendAt,
	})
	if err != nil {
		log.WithField("interview_id", interviewID).
			WithField("kind", string(kind)).
			WithError(err).
			Error("ошибка планирования письма")
		return err
	}
	return nil
}
