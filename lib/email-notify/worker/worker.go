package emailnotifyworker

import (
	"admission-backend/config"
	"admission-backend/db"
	emailnotifystore "admission-backend/lib/email-notify/store"
	interviewstore "admission-backend/lib/interview/store"
	invitationstore "admission-backend/lib/invitation/store"
	messagetemplate "admission-backend/lib/message-template"
	"admission-backend/lib/smtp"
	slotstore "admission-backend/lib/stream/slot-store"
	baseworker "admission-backend/lib/utils/base-worker"
	"admission-backend/lib/utils/helpers"
	dbmodels "admission-backend/models/db"
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
)

const (
	workerName    = "EmailNotifyJob"
	firstRunDelay = 10 * time.Second
	runInterval   = 1 * time.Minute
	batchLimit    = 50
)

func StartWorker(ctx context.Context) {
	i := &impl{
		BaseImpl:        *baseworker.NewInstance(workerName, firstRunDelay, runInterval),
		store:           emailnotifystore.NewInstance(db.DB),
		interviewStore:  interviewstore.NewInstance(db.DB),
		invitationStore: invitationstore.NewInstance(db.DB),
		slotStore:       slotstore.NewInstance(db.DB),
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	store           emailnotifystore.Provider
	interviewStore  interviewstore.Provider
	invitationStore invitationstore.Provider
	slotStore       slotstore.Provider
}

func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	list, err := i.store.ListDue(time.Now().UTC(), batchLimit)
	if err != nil {
		logger.WithError(err).Error("ошибка получения писем к отправке")
		return
	}
	for _, job := range list {
		if helpers.IsContextDone(ctx) {
			return
		}
		i.handleJob(job)
	}
}

func (i impl) handleJob(job dbmodels.EmailJob) {
	logger := i.GetLogger().
		WithField("job_id", job.ID).
		WithField("interview_id", job.InterviewID).
		WithField("kind", string(job.Kind))
	msg, title, email, err := i.buildMessage(job)
	if err != nil {
		// данные письма не собрать - повтор не поможет
		logger.WithError(err).Error("письмо помечено ошибочным")
		if markErr := i.store.MarkFailed(job.ID); markErr != nil {
			logger.WithError(markErr).Error("ошибка пометки письма ошибочным")
		}
		return
	}
	err = smtp.Instance.SendEMail(config.Conf.Smtp.From, email, msg, title)
	if err != nil {
		// временная ошибка отправки - письмо останется в очереди до следующего прохода
		logger.WithError(err).Warn("ошибка отправки, повтор в следующем проходе")
		return
	}
	err = i.store.MarkSent(job.ID, time.Now().UTC())
	if err != nil {
		logger.WithError(err).Error("ошибка пометки письма отправленным")
	}
}

func (i impl) buildMessage(job dbmodels.EmailJob) (msg, title, email string, err error) {
	interview, err := i.interviewStore.GetByID(job.InterviewID)
	if err != nil {
		return "", "", "", err
	}
	if interview == nil {
		return "", "", "", errors.New("собеседование не найдено")
	}
	if interview.Applicant == nil || interview.Applicant.Email == "" {
		return "", "", "", errors.New("у кандидата не указана почта")
	}
	data := messagetemplate.InterviewTemplateData{
		ApplicantName: interview.Applicant.GetFullName(),
	}
	slot, err := i.slotStore.GetByInterview(job.InterviewID)
	if err != nil {
		return "", "", "", err
	}
	if slot != nil && slot.Stream != nil && slot.Stream.Venue != nil {
		loc := slot.Stream.Venue.Location()
		data.InterviewDate = helpers.FormatDateTime(slot.StartAt, loc)
		data.VenueName = slot.Stream.Venue.Name
	}
	invitation, err := i.invitationStore.GetByInterview(job.InterviewID)
	if err != nil {
		return "", "", "", err
	}
	if invitation != nil {
		data.ClaimLink = fmt.Sprintf("%s/invitation/%s", config.Conf.App.PublicURL, invitation.Token)
		loc := time.UTC
		if len(invitation.Streams) != 0 && invitation.Streams[0].Venue != nil {
			loc = invitation.Streams[0].Venue.Location()
		}
		data.ExpiredAt = helpers.FormatDateTime(invitation.ExpiredAt, loc)
	}
	msg, title, err = messagetemplate.BuildMessage(job.Template, data)
	if err != nil {
		return "", "", "", err
	}
	return msg, title, interview.Applicant.Email, nil
}
