package invitation

import (
	emailnotify "admission-backend/lib/email-notify"
	interviewhandler "admission-backend/lib/interview"
	interviewstore "admission-backend/lib/interview/store"
	invitationstore "admission-backend/lib/invitation/store"
	slotstore "admission-backend/lib/stream/slot-store"
	"admission-backend/models"
	dbmodels "admission-backend/models/db"
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestComputeExpiredAt(t *testing.T) {
	msk := time.FixedZone("MSK", 3*60*60)

	t.Run(`полночь дня потока позже, берётся полночь`, func(t *testing.T) {
		now := time.Date(2018, 3, 8, 13, 0, 0, 0, time.UTC)
		streamStart := time.Date(2018, 3, 10, 10, 0, 0, 0, msk)
		got := ComputeExpiredAt(now, 27, streamStart, msk)
		// 00:00 10.03.2018 MSK
		require.Equal(t, time.Date(2018, 3, 9, 21, 0, 0, 0, time.UTC), got)
	})

	t.Run(`now+часы позже полуночи, берётся now+часы`, func(t *testing.T) {
		now := time.Date(2018, 3, 8, 13, 0, 0, 0, time.UTC)
		streamStart := time.Date(2018, 3, 9, 10, 0, 0, 0, msk)
		got := ComputeExpiredAt(now, 27, streamStart, msk)
		require.Equal(t, now.Add(27*time.Hour), got)
	})

	t.Run(`поток в UTC площадке`, func(t *testing.T) {
		now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
		streamStart := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)
		got := ComputeExpiredAt(now, 27, streamStart, time.UTC)
		require.Equal(t, time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC), got)
	})
}

type fakeInvitationStore struct {
	invitationstore.Provider
	rec        *dbmodels.InterviewInvitation
	markedUsed bool
}

func (f *fakeInvitationStore) GetByToken(token string) (*dbmodels.InterviewInvitation, error) {
	if f.rec != nil && f.rec.Token == token {
		return f.rec, nil
	}
	return nil, nil
}

func (f *fakeInvitationStore) MarkUsed(id string, usedAt time.Time) error {
	f.markedUsed = true
	return nil
}

type fakeSlotStore struct {
	slotstore.Provider
	slot       *dbmodels.InterviewSlot
	assignErr  error
	assignedTo string
}

func (f *fakeSlotStore) GetByID(id string) (*dbmodels.InterviewSlot, error) {
	if f.slot != nil && f.slot.ID == id {
		return f.slot, nil
	}
	return nil, nil
}

func (f *fakeSlotStore) Assign(slotID, interviewID string) error {
	if f.assignErr != nil {
		return f.assignErr
	}
	f.assignedTo = interviewID
	return nil
}

type fakeInterviewStore struct {
	interviewstore.Provider
	updates map[string]interface{}
}

func (f *fakeInterviewStore) Update(id string, updMap map[string]interface{}) error {
	f.updates = updMap
	return nil
}

type fakeNotify struct {
	emailnotify.Provider
	reminderAt       time.Time
	reminderTemplate string
}

func (f *fakeNotify) ScheduleReminder(interviewID string, sendAt time.Time, template string) error {
	f.reminderAt = sendAt
	f.reminderTemplate = template
	return nil
}

type fakeInterviews struct {
	interviewhandler.Provider
	reconciled []string
}

func (f *fakeInterviews) Reconcile(id string) error {
	f.reconciled = append(f.reconciled, id)
	return nil
}

func TestClaimSlot(t *testing.T) {
	now := time.Now().UTC()
	makeFixture := func() (*fakeInvitationStore, *fakeSlotStore, *fakeInterviewStore, *fakeNotify, *fakeInterviews, impl) {
		stream := &dbmodels.InterviewStream{
			Section:          models.SectionDataScience,
			ReminderTemplate: "interview_reminder",
			ReminderLeadMin:  120,
		}
		stream.ID = "stream-1"
		slot := &dbmodels.InterviewSlot{
			StreamID: "stream-1",
			Stream:   stream,
			StartAt:  now.Add(48 * time.Hour),
		}
		slot.ID = "slot-1"
		rec := &dbmodels.InterviewInvitation{
			Token:       "token-1",
			InterviewID: "interview-1",
			ExpiredAt:   now.Add(24 * time.Hour),
			Streams:     []dbmodels.InterviewStream{*stream},
		}
		rec.ID = "invitation-1"
		store := &fakeInvitationStore{rec: rec}
		slots := &fakeSlotStore{slot: slot}
		interviews := &fakeInterviewStore{}
		notify := &fakeNotify{}
		handler := &fakeInterviews{}
		h := impl{
			store:          store,
			slotStore:      slots,
			interviewStore: interviews,
			emailNotify:    notify,
			interviews:     handler,
		}
		return store, slots, interviews, notify, handler, h
	}

	t.Run(`успешная запись на слот`, func(t *testing.T) {
		store, slots, interviews, notify, handler, h := makeFixture()
		err := h.ClaimSlot(context.Background(), "token-1", "slot-1")
		require.NoError(t, err)
		require.True(t, store.markedUsed)
		require.Equal(t, "interview-1", slots.assignedTo)
		require.Equal(t, slots.slot.StartAt, interviews.updates["date"])
		require.Equal(t, models.SectionDataScience, interviews.updates["section"])
		require.Equal(t, slots.slot.StartAt.Add(-120*time.Minute), notify.reminderAt)
		require.Equal(t, "interview_reminder", notify.reminderTemplate)
		require.Equal(t, []string{"interview-1"}, handler.reconciled)
	})

	t.Run(`приглашение не найдено`, func(t *testing.T) {
		_, _, _, _, _, h := makeFixture()
		err := h.ClaimSlot(context.Background(), "no-such-token", "slot-1")
		require.Error(t, err)
	})

	t.Run(`приглашение уже использовано`, func(t *testing.T) {
		store, _, _, _, _, h := makeFixture()
		usedAt := now.Add(-time.Hour)
		store.rec.UsedAt = &usedAt
		err := h.ClaimSlot(context.Background(), "token-1", "slot-1")
		require.Error(t, err)
		require.False(t, store.markedUsed)
	})

	t.Run(`срок действия истёк`, func(t *testing.T) {
		store, _, _, _, _, h := makeFixture()
		store.rec.ExpiredAt = now.Add(-time.Minute)
		err := h.ClaimSlot(context.Background(), "token-1", "slot-1")
		require.Error(t, err)
	})

	t.Run(`слот чужого потока`, func(t *testing.T) {
		_, slots, _, _, handler, h := makeFixture()
		slots.slot.StreamID = "stream-2"
		err := h.ClaimSlot(context.Background(), "token-1", "slot-1")
		require.Error(t, err)
		require.Empty(t, handler.reconciled)
	})

	t.Run(`слот уже занят`, func(t *testing.T) {
		store, slots, _, _, _, h := makeFixture()
		other := "interview-2"
		slots.slot.InterviewID = &other
		err := h.ClaimSlot(context.Background(), "token-1", "slot-1")
		require.Error(t, err)
		require.False(t, store.markedUsed)
	})

	t.Run(`проигрыш гонки за слот`, func(t *testing.T) {
		store, slots, _, _, handler, h := makeFixture()
		slots.assignErr = errors.New("слот уже занят")
		err := h.ClaimSlot(context.Background(), "token-1", "slot-1")
		require.Error(t, err)
		require.False(t, store.markedUsed)
		require.Empty(t, handler.reconciled)
	})
}

type casSlotStore struct {
	slotstore.Provider
	mu   sync.Mutex
	slot dbmodels.InterviewSlot
}

func (f *casSlotStore) GetByID(id string) (*dbmodels.InterviewSlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.slot.ID == id {
		c := f.slot
		return &c, nil
	}
	return nil, nil
}

func (f *casSlotStore) Assign(slotID, interviewID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.slot.InterviewID != nil {
		return errors.New("слот уже занят")
	}
	f.slot.InterviewID = &interviewID
	return nil
}

type raceInvitationStore struct {
	invitationstore.Provider
	mu   sync.Mutex
	recs map[string]*dbmodels.InterviewInvitation
	used int
}

func (f *raceInvitationStore) GetByToken(token string) (*dbmodels.InterviewInvitation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.recs[token], nil
}

func (f *raceInvitationStore) MarkUsed(id string, usedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.used++
	return nil
}

type raceInterviewStore struct {
	interviewstore.Provider
	mu      sync.Mutex
	updates int
}

func (f *raceInterviewStore) Update(id string, updMap map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates++
	return nil
}

type raceNotify struct {
	emailnotify.Provider
	mu        sync.Mutex
	reminders int
}

func (f *raceNotify) ScheduleReminder(interviewID string, sendAt time.Time, template string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reminders++
	return nil
}

type raceInterviews struct {
	interviewhandler.Provider
	mu         sync.Mutex
	reconciled int
}

func (f *raceInterviews) Reconcile(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reconciled++
	return nil
}

// Одновременные заявки разных кандидатов на один слот: побеждает ровно один,
// остальные получают "слот уже занят".
func TestClaimSlotConcurrent(t *testing.T) {
	now := time.Now().UTC()
	stream := dbmodels.InterviewStream{
		Section:          models.SectionDataScience,
		ReminderTemplate: "interview_reminder",
		ReminderLeadMin:  60,
	}
	stream.ID = "stream-1"
	slot := dbmodels.InterviewSlot{
		StreamID: "stream-1",
		Stream:   &stream,
		StartAt:  now.Add(48 * time.Hour),
	}
	slot.ID = "slot-1"

	const claimants = 8
	store := &raceInvitationStore{recs: map[string]*dbmodels.InterviewInvitation{}}
	for n := 0; n < claimants; n++ {
		rec := &dbmodels.InterviewInvitation{
			Token:       fmt.Sprintf("token-%d", n),
			InterviewID: fmt.Sprintf("interview-%d", n),
			ExpiredAt:   now.Add(24 * time.Hour),
			Streams:     []dbmodels.InterviewStream{stream},
		}
		rec.ID = fmt.Sprintf("invitation-%d", n)
		store.recs[rec.Token] = rec
	}
	slots := &casSlotStore{slot: slot}
	interviews := &raceInterviewStore{}
	notify := &raceNotify{}
	handler := &raceInterviews{}
	h := impl{
		store:          store,
		slotStore:      slots,
		interviewStore: interviews,
		emailNotify:    notify,
		interviews:     handler,
	}

	errCh := make(chan error, claimants)
	var wg sync.WaitGroup
	for n := 0; n < claimants; n++ {
		wg.Add(1)
		go func(token string) {
			defer wg.Done()
			errCh <- h.ClaimSlot(context.Background(), token, "slot-1")
		}(fmt.Sprintf("token-%d", n))
	}
	wg.Wait()
	close(errCh)

	success := 0
	for err := range errCh {
		if err == nil {
			success++
			continue
		}
		require.EqualError(t, err, "слот уже занят")
	}
	require.Equal(t, 1, success)
	require.Equal(t, 1, store.used)
	require.Equal(t, 1, interviews.updates)
	require.Equal(t, 1, notify.reminders)
	require.Equal(t, 1, handler.reconciled)
}
