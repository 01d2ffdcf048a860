package interview

import (
	applicantstore "admission-backend/lib/applicant/store"
	staffstore "admission-backend/lib/auth/store"
	emailnotify "admission-backend/lib/email-notify"
	commentstore "admission-backend/lib/interview/comment-store"
	interviewstore "admission-backend/lib/interview/store"
	"admission-backend/models"
	interviewapimodels "admission-backend/models/api/interview"
	dbmodels "admission-backend/models/db"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memInterviewStore struct {
	interviewstore.Provider
	rec *dbmodels.Interview
}

func (m *memInterviewStore) GetByID(id string) (*dbmodels.Interview, error) {
	if m.rec != nil && m.rec.ID == id {
		return m.rec, nil
	}
	return nil, nil
}

func (m *memInterviewStore) Update(id string, updMap map[string]interface{}) error {
	if status, ok := updMap["status"].(models.InterviewStatus); ok {
		m.rec.Status = status
	}
	return nil
}

func (m *memInterviewStore) AddInterviewer(interviewID, userID string) error {
	user := dbmodels.StaffUser{}
	user.ID = userID
	m.rec.Interviewers = append(m.rec.Interviewers, user)
	return nil
}

type memCommentStore struct {
	commentstore.Provider
	comments map[string]dbmodels.InterviewComment // key: authorID
}

func (m *memCommentStore) Upsert(rec dbmodels.InterviewComment) (string, error) {
	m.comments[rec.AuthorID] = rec
	return rec.AuthorID, nil
}

func (m *memCommentStore) Delete(interviewID, authorID string) error {
	delete(m.comments, authorID)
	return nil
}

func (m *memCommentStore) DistinctAuthorCount(interviewID string) (int64, error) {
	return int64(len(m.comments)), nil
}

type memApplicantStore struct {
	applicantstore.Provider
	rec *dbmodels.Applicant
}

func (m *memApplicantStore) GetByID(id string) (*dbmodels.Applicant, error) {
	if m.rec != nil && m.rec.ID == id {
		return m.rec, nil
	}
	return nil, nil
}

func (m *memApplicantStore) Update(id string, updMap map[string]interface{}) error {
	if status, ok := updMap["status"].(models.ApplicantStatus); ok {
		m.rec.Status = status
	}
	return nil
}

type memStaffStore struct {
	staffstore.Provider
	users map[string]*dbmodels.StaffUser
}

func (m *memStaffStore) GetByID(id string) (*dbmodels.StaffUser, error) {
	return m.users[id], nil
}

type memNotify struct {
	emailnotify.Provider
	pending  map[models.EmailJobKind]bool
	canceled []models.EmailJobKind
}

func (m *memNotify) ScheduleFeedback(interviewID string) error {
	m.pending[models.EmailJobFeedback] = true
	return nil
}

func (m *memNotify) ScheduleReminder(interviewID string, sendAt time.Time, template string) error {
	m.pending[models.EmailJobReminder] = true
	return nil
}

func (m *memNotify) Cancel(interviewID string, kinds ...models.EmailJobKind) error {
	if len(kinds) == 0 {
		kinds = []models.EmailJobKind{models.EmailJobInvitation, models.EmailJobReminder, models.EmailJobFeedback}
	}
	for _, kind := range kinds {
		delete(m.pending, kind)
		m.canceled = append(m.canceled, kind)
	}
	return nil
}

type fixture struct {
	store      *memInterviewStore
	comments   *memCommentStore
	applicants *memApplicantStore
	staff      *memStaffStore
	notify     *memNotify
	h          impl
}

func makeFixture(status models.InterviewStatus, interviewerIDs ...string) *fixture {
	applicant := &dbmodels.Applicant{Status: models.ApplicantStatusInterviewScheduled}
	applicant.ID = "applicant-1"
	rec := &dbmodels.Interview{
		ApplicantID: "applicant-1",
		Applicant:   applicant,
		Status:      status,
	}
	rec.ID = "interview-1"
	staff := &memStaffStore{users: map[string]*dbmodels.StaffUser{}}
	for _, id := range interviewerIDs {
		user := dbmodels.StaffUser{Role: models.UserRoleInterviewer}
		user.ID = id
		rec.Interviewers = append(rec.Interviewers, user)
		staff.users[id] = &user
	}
	f := &fixture{
		store:      &memInterviewStore{rec: rec},
		comments:   &memCommentStore{comments: map[string]dbmodels.InterviewComment{}},
		applicants: &memApplicantStore{rec: applicant},
		staff:      staff,
		notify:     &memNotify{pending: map[models.EmailJobKind]bool{}},
	}
	f.h = impl{
		store:          f.store,
		commentStore:   f.comments,
		applicantStore: f.applicants,
		staffStore:     f.staff,
		emailNotify:    f.notify,
	}
	return f
}

func (f *fixture) addStaff(id string, role models.UserRole) {
	user := dbmodels.StaffUser{Role: role}
	user.ID = id
	f.staff.users[id] = &user
}

func TestReconcile(t *testing.T) {
	comment := interviewapimodels.CommentRequest{Score: 1, Text: "ok"}

	t.Run(`все собеседующие оставили комментарии - собеседование завершено`, func(t *testing.T) {
		f := makeFixture(models.InterviewStatusApproved, "user-1", "user-2")
		require.NoError(t, f.h.AddComment("interview-1", "user-1", comment))
		require.Equal(t, models.InterviewStatusApproved, f.store.rec.Status)
		require.Equal(t, models.ApplicantStatusInterviewScheduled, f.applicants.rec.Status)

		require.NoError(t, f.h.AddComment("interview-1", "user-2", comment))
		require.Equal(t, models.InterviewStatusCompleted, f.store.rec.Status)
		require.Equal(t, models.ApplicantStatusInterviewCompleted, f.applicants.rec.Status)
		require.True(t, f.notify.pending[models.EmailJobFeedback])
	})

	t.Run(`повторный комментарий того же автора не завершает собеседование`, func(t *testing.T) {
		f := makeFixture(models.InterviewStatusApproved, "user-1", "user-2")
		require.NoError(t, f.h.AddComment("interview-1", "user-1", comment))
		require.NoError(t, f.h.AddComment("interview-1", "user-1", comment))
		require.Equal(t, models.InterviewStatusApproved, f.store.rec.Status)
		require.False(t, f.notify.pending[models.EmailJobFeedback])
	})

	t.Run(`без собеседующих собеседование не завершается`, func(t *testing.T) {
		f := makeFixture(models.InterviewStatusApproved)
		require.NoError(t, f.h.Reconcile("interview-1"))
		require.Equal(t, models.InterviewStatusApproved, f.store.rec.Status)
	})

	t.Run(`куратор не из состава добавляется перед пересчётом`, func(t *testing.T) {
		f := makeFixture(models.InterviewStatusApproved, "user-1", "user-2")
		f.addStaff("curator-1", models.UserRoleCurator)
		require.NoError(t, f.h.AddComment("interview-1", "user-1", comment))
		// куратор попадает в состав, знаменатель правила растёт до трёх
		require.NoError(t, f.h.AddComment("interview-1", "curator-1", comment))
		require.Len(t, f.store.rec.Interviewers, 3)
		require.Equal(t, models.InterviewStatusApproved, f.store.rec.Status)

		require.NoError(t, f.h.AddComment("interview-1", "user-2", comment))
		require.Equal(t, models.InterviewStatusCompleted, f.store.rec.Status)
	})

	t.Run(`собеседующий не из состава не может комментировать`, func(t *testing.T) {
		f := makeFixture(models.InterviewStatusApproved, "user-1")
		f.addStaff("stranger-1", models.UserRoleInterviewer)
		require.Error(t, f.h.AddComment("interview-1", "stranger-1", comment))
	})

	t.Run(`отмена снимает письма и возвращает кандидата в очередь`, func(t *testing.T) {
		f := makeFixture(models.InterviewStatusApproved, "user-1")
		f.notify.pending[models.EmailJobReminder] = true
		require.NoError(t, f.h.SetStatus("interview-1", models.InterviewStatusCanceled))
		require.Equal(t, models.InterviewStatusCanceled, f.store.rec.Status)
		require.Equal(t, models.ApplicantStatusToBeScheduled, f.applicants.rec.Status)
		require.False(t, f.notify.pending[models.EmailJobReminder])
		require.False(t, f.notify.pending[models.EmailJobFeedback])

		// повторный пересчёт в отменённом статусе письма не воскрешает
		require.NoError(t, f.h.Reconcile("interview-1"))
		require.False(t, f.notify.pending[models.EmailJobReminder])
	})

	t.Run(`отзыв комментария снимает завершённость`, func(t *testing.T) {
		f := makeFixture(models.InterviewStatusApproved, "user-1", "user-2")
		require.NoError(t, f.h.AddComment("interview-1", "user-1", comment))
		require.NoError(t, f.h.AddComment("interview-1", "user-2", comment))
		require.Equal(t, models.InterviewStatusCompleted, f.store.rec.Status)

		require.NoError(t, f.h.DeleteComment("interview-1", "user-2"))
		require.Equal(t, models.InterviewStatusApproved, f.store.rec.Status)
		require.Equal(t, models.ApplicantStatusInterviewScheduled, f.applicants.rec.Status)
		require.False(t, f.notify.pending[models.EmailJobFeedback])
	})

	t.Run(`финальный статус кандидата не перезаписывается`, func(t *testing.T) {
		f := makeFixture(models.InterviewStatusApproved, "user-1")
		f.applicants.rec.Status = models.ApplicantStatusAccept
		require.NoError(t, f.h.AddComment("interview-1", "user-1", comment))
		require.Equal(t, models.InterviewStatusCompleted, f.store.rec.Status)
		require.Equal(t, models.ApplicantStatusAccept, f.applicants.rec.Status)
	})

	t.Run(`комментарий к завершённому собеседованию недоступен`, func(t *testing.T) {
		f := makeFixture(models.InterviewStatusCompleted, "user-1")
		require.Error(t, f.h.AddComment("interview-1", "user-1", comment))
	})

	t.Run(`оценка вне диапазона отклоняется`, func(t *testing.T) {
		f := makeFixture(models.InterviewStatusApproved, "user-1")
		bad := interviewapimodels.CommentRequest{Score: 5}
		require.Error(t, f.h.AddComment("interview-1", "user-1", bad))
	})
}

func TestSetStatus(t *testing.T) {
	t.Run(`ручной перевод согласованного в отложенное`, func(t *testing.T) {
		f := makeFixture(models.InterviewStatusApproved, "user-1")
		require.NoError(t, f.h.SetStatus("interview-1", models.InterviewStatusDeferred))
		require.Equal(t, models.InterviewStatusDeferred, f.store.rec.Status)
		require.Equal(t, models.ApplicantStatusToBeScheduled, f.applicants.rec.Status)
	})

	t.Run(`возврат отменённого на согласование`, func(t *testing.T) {
		f := makeFixture(models.InterviewStatusCanceled, "user-1")
		require.NoError(t, f.h.SetStatus("interview-1", models.InterviewStatusApproval))
		require.Equal(t, models.InterviewStatusApproval, f.store.rec.Status)
	})

	t.Run(`завершённое вручную не меняется`, func(t *testing.T) {
		f := makeFixture(models.InterviewStatusCompleted, "user-1")
		require.Error(t, f.h.SetStatus("interview-1", models.InterviewStatusCanceled))
		require.Equal(t, models.InterviewStatusCompleted, f.store.rec.Status)
	})
}

func TestMutationTxScope(t *testing.T) {
	t.Run(`скоуп подменяет все пишущие сторы`, func(t *testing.T) {
		base := impl{db: &gorm.DB{}}
		scoped := base.withTx(&gorm.DB{})
		// внутри скоупа вложенная транзакция не открывается
		require.Nil(t, scoped.db)
		require.NotNil(t, scoped.store)
		require.NotNil(t, scoped.commentStore)
		require.NotNil(t, scoped.applicantStore)
		require.NotNil(t, scoped.staffStore)
		require.NotNil(t, scoped.slotStore)
		require.NotNil(t, scoped.emailNotify)
	})

	t.Run(`без соединения мутация идёт на своих сторах`, func(t *testing.T) {
		f := makeFixture(models.InterviewStatusApproved, "user-1")
		called := false
		err := f.h.inTx(func(h impl) error {
			called = true
			require.Same(t, f.h.store, h.store)
			require.Same(t, f.h.commentStore, h.commentStore)
			return nil
		})
		require.NoError(t, err)
		require.True(t, called)
	})
}
