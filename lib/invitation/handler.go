package invitation

import (
	"admission-backend/config"
	"admission-backend/db"
	applicantstore "admission-backend/lib/applicant/store"
	emailnotify "admission-backend/lib/email-notify"
	interviewhandler "admission-backend/lib/interview"
	interviewstore "admission-backend/lib/interview/store"
	invitationstore "admission-backend/lib/invitation/store"
	slotstore "admission-backend/lib/stream/slot-store"
	streamstore "admission-backend/lib/stream/store"
	"admission-backend/lib/utils/helpers"
	"admission-backend/lib/utils/lock"
	connectionhub "admission-backend/lib/ws/hub/connection-hub"
	"admission-backend/models"
	invitationapimodels "admission-backend/models/api/invitation"
	dbmodels "admission-backend/models/db"
	wsmodels "admission-backend/models/ws"
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Issue(data invitationapimodels.IssueRequest) (token string, err error)
	GetViewByToken(token string) (invitationapimodels.InvitationView, error)
	ClaimSlot(ctx context.Context, token, slotID string) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store:          invitationstore.NewInstance(db.DB),
		applicantStore: applicantstore.NewInstance(db.DB),
		interviewStore: interviewstore.NewInstance(db.DB),
		streamStore:    streamstore.NewInstance(db.DB),
		slotStore:      slotstore.NewInstance(db.DB),
		emailNotify:    emailnotify.Instance,
		interviews:     interviewhandler.Instance,
		hub:            connectionhub.Instance,
		expiredInHours: config.Conf.Invitation.ExpiredInHours,
	}
}

type impl struct {
	store          invitationstore.Provider
	applicantStore applicantstore.Provider
	interviewStore interviewstore.Provider
	streamStore    streamstore.Provider
	slotStore      slotstore.Provider
	emailNotify    emailnotify.Provider
	interviews     interviewhandler.Provider
	hub            connectionhub.Provider
	expiredInHours int
}

// ComputeExpiredAt - срок действия приглашения: now + expiredInHours,
// но не раньше локальной полуночи дня самого раннего потока,
// чтобы у кандидата оставался как минимум весь день перед собеседованием.
func ComputeExpiredAt(now time.Time, expiredInHours int, earliestStreamStart time.Time, loc *time.Location) time.Time {
	expiredAt := now.UTC().Add(time.Duration(expiredInHours) * time.Hour)
	midnight := helpers.LocalMidnight(earliestStreamStart, loc)
	if expiredAt.Before(midnight) {
		return midnight
	}
	return expiredAt
}

func (i impl) Issue(data invitationapimodels.IssueRequest) (token string, err error) {
	logger := log.WithField("applicant_id", data.ApplicantID)
	if err = data.Validate(); err != nil {
		return "", err
	}
	applicant, err := i.applicantStore.GetByID(data.ApplicantID)
	if err != nil {
		return "", err
	}
	if applicant == nil {
		return "", errors.New("кандидат не найден")
	}
	existing, err := i.interviewStore.GetActiveByApplicant(data.ApplicantID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", errors.New("у кандидата уже есть активное собеседование")
	}
	streams, err := i.loadStreams(data.StreamIDs, applicant.CampaignID)
	if err != nil {
		return "", err
	}
	earliest := streams[0]
	loc := earliest.Venue.Location()
	expiredAt := ComputeExpiredAt(time.Now(), i.expiredInHours, earliest.StartAt, loc)

	// черновик собеседования, при выборе слота останется только привязать слот
	interviewID, err := i.interviewStore.Create(dbmodels.Interview{
		ApplicantID: data.ApplicantID,
		Section:     earliest.Section,
		Status:      models.InterviewStatusApproval,
	})
	if err != nil {
		logger.WithError(err).Error("ошибка создания черновика собеседования")
		return "", err
	}
	rec := dbmodels.InterviewInvitation{
		ApplicantID: data.ApplicantID,
		InterviewID: interviewID,
		ExpiredAt:   expiredAt,
	}
	_, err = i.store.Create(rec, data.StreamIDs)
	if err != nil {
		logger.WithError(err).Error("ошибка создания приглашения")
		return "", err
	}
	created, err := i.store.GetByInterview(interviewID)
	if err != nil {
		return "", err
	}
	if applicant.IsAllowStatusSync() {
		err = i.applicantStore.Update(applicant.ID, map[string]interface{}{"status": models.ApplicantStatusToBeScheduled})
		if err != nil {
			return "", err
		}
	}
	err = i.emailNotify.ScheduleInvitation(interviewID)
	if err != nil {
		return "", err
	}
	logger.WithField("interview_id", interviewID).Info("кандидату выдано приглашение на собеседование")
	return created.Token, nil
}

func (i impl) GetViewByToken(token string) (invitationapimodels.InvitationView, error) {
	rec, err := i.store.GetByToken(token)
	if err != nil {
		return invitationapimodels.InvitationView{}, err
	}
	if rec == nil {
		return invitationapimodels.InvitationView{}, errors.New("приглашение не найдено")
	}
	now := time.Now().UTC()
	freeSlots := []dbmodels.InterviewSlot{}
	if !rec.IsUsed() && !rec.IsExpired(now) {
		streamIDs := make([]string, 0, len(rec.Streams))
		for _, s := range rec.Streams {
			streamIDs = append(streamIDs, s.ID)
		}
		freeSlots, err = i.slotStore.ListFreeByStreams(streamIDs)
		if err != nil {
			return invitationapimodels.InvitationView{}, err
		}
	}
	return invitationapimodels.InvitationConvert(*rec, freeSlots, now), nil
}

// ClaimSlot - выбор слота кандидатом по токену приглашения.
// Гонку двух кандидатов за один слот закрывает условный UPDATE в слот-сторе,
// локальный lock лишь снижает число проигравших обращений к БД.
func (i impl) ClaimSlot(ctx context.Context, token, slotID string) error {
	rec, err := i.store.GetByToken(token)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("приглашение не найдено")
	}
	now := time.Now().UTC()
	if rec.IsUsed() {
		return errors.New("приглашение уже использовано")
	}
	if rec.IsExpired(now) {
		return errors.New("срок действия приглашения истёк")
	}
	slot, err := i.slotStore.GetByID(slotID)
	if err != nil {
		return err
	}
	if slot == nil {
		return errors.New("слот не найден")
	}
	if !rec.HasStream(slot.StreamID) {
		return errors.New("слот не относится к приглашению")
	}
	if !slot.IsFree() {
		return errors.New("слот уже занят")
	}
	claimed := false
	_, err = lock.WithDelay(ctx, "slot:"+slotID, 2*time.Second, func() error {
		err := i.slotStore.Assign(slotID, rec.InterviewID)
		if err != nil {
			return err
		}
		claimed = true
		return nil
	})
	if err != nil {
		return err
	}
	if !claimed {
		return errors.New("слот уже занят")
	}
	err = i.store.MarkUsed(rec.ID, now)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"date": slot.StartAt,
	}
	if slot.Stream != nil {
		updMap["section"] = slot.Stream.Section
	}
	err = i.interviewStore.Update(rec.InterviewID, updMap)
	if err != nil {
		return err
	}
	if slot.Stream != nil {
		sendAt := slot.StartAt.Add(-time.Duration(slot.Stream.ReminderLeadMin) * time.Minute)
		err = i.emailNotify.ScheduleReminder(rec.InterviewID, sendAt, slot.Stream.ReminderTemplate)
		if err != nil {
			return err
		}
	}
	err = i.interviews.Reconcile(rec.InterviewID)
	if err != nil {
		return err
	}
	i.notifySlotClaimed(rec, slot)
	return nil
}

// loadStreams проверяет, что потоки относятся к кампании кандидата
// и все площадки в одном часовом поясе; результат отсортирован по началу
func (i impl) loadStreams(streamIDs []string, campaignID string) ([]dbmodels.InterviewStream, error) {
	streams := make([]dbmodels.InterviewStream, 0, len(streamIDs))
	for _, sid := range streamIDs {
		rec, err := i.streamStore.GetByID(sid)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, errors.Errorf("поток не найден: %s", sid)
		}
		if rec.CampaignID != campaignID {
			return nil, errors.New("поток относится к другой кампании")
		}
		if rec.Venue == nil {
			return nil, errors.New("у потока не указана площадка")
		}
		streams = append(streams, *rec)
	}
	tz := streams[0].Venue.TimeZone
	for _, s := range streams[1:] {
		if s.Venue.TimeZone != tz {
			return nil, errors.New("потоки приглашения в разных часовых поясах")
		}
	}
	sort.Slice(streams, func(a, b int) bool {
		return streams[a].StartAt.Before(streams[b].StartAt)
	})
	return streams, nil
}

func (i impl) notifySlotClaimed(rec *dbmodels.InterviewInvitation, slot *dbmodels.InterviewSlot) {
	if i.hub == nil {
		return
	}
	name := ""
	if rec.Applicant != nil {
		name = rec.Applicant.GetFullName()
	}
	i.hub.NotifyCurators(wsmodels.CodeSlotClaimed,
		fmt.Sprintf("Кандидат %s записался на собеседование %s", name, slot.StartAt.Format("02.01.2006 15:04")))
}
