package dbmodels

import (
	"admission-backend/models"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInterviewStatusChange(t *testing.T) {
	t.Run(`допустимые переходы`, func(t *testing.T) {
		cases := []struct {
			from models.InterviewStatus
			to   models.InterviewStatus
		}{
			{models.InterviewStatusApproval, models.InterviewStatusApproved},
			{models.InterviewStatusApproval, models.InterviewStatusCanceled},
			{models.InterviewStatusApproved, models.InterviewStatusCanceled},
			{models.InterviewStatusApproved, models.InterviewStatusDeferred},
			{models.InterviewStatusCanceled, models.InterviewStatusApproval},
			{models.InterviewStatusDeferred, models.InterviewStatusApproval},
		}
		for _, c := range cases {
			rec := Interview{Status: c.from}
			ok, err := rec.IsAllowStatusChange(c.to)
			require.NoError(t, err)
			require.True(t, ok, "переход %v -> %v должен быть доступен", c.from, c.to)
		}
	})

	t.Run(`завершённое собеседование не меняется вручную`, func(t *testing.T) {
		rec := Interview{Status: models.InterviewStatusCompleted}
		ok, err := rec.IsAllowStatusChange(models.InterviewStatusCanceled)
		require.Error(t, err)
		require.False(t, ok)
	})

	t.Run(`переход в тот же статус игнорируется`, func(t *testing.T) {
		rec := Interview{Status: models.InterviewStatusApproved}
		ok, err := rec.IsAllowStatusChange(models.InterviewStatusApproved)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run(`запрещённый переход`, func(t *testing.T) {
		rec := Interview{Status: models.InterviewStatusApproval}
		ok, err := rec.IsAllowStatusChange(models.InterviewStatusDeferred)
		require.Error(t, err)
		require.False(t, ok)
	})
}

func TestCommentValidate(t *testing.T) {
	valid := InterviewComment{
		InterviewID: "interview-1",
		AuthorID:    "user-1",
		Score:       2,
	}

	t.Run(`корректный комментарий`, func(t *testing.T) {
		require.NoError(t, valid.Validate())
		lowest := valid
		lowest.Score = -2
		require.NoError(t, lowest.Validate())
	})

	t.Run(`оценка вне диапазона`, func(t *testing.T) {
		c := valid
		c.Score = 3
		require.Error(t, c.Validate())
		c.Score = -3
		require.Error(t, c.Validate())
	})

	t.Run(`не указан автор`, func(t *testing.T) {
		c := valid
		c.AuthorID = ""
		require.Error(t, c.Validate())
	})
}

func TestApplicantStatusSync(t *testing.T) {
	t.Run(`финальные статусы не перезаписываются`, func(t *testing.T) {
		for _, status := range []models.ApplicantStatus{
			models.ApplicantStatusAccept,
			models.ApplicantStatusAcceptIf,
			models.ApplicantStatusVolunteer,
			models.ApplicantStatusRejectedByInterview,
			models.ApplicantStatusTheyRefused,
		} {
			rec := Applicant{Status: status}
			require.False(t, rec.IsAllowStatusSync(), "статус %v финальный", status)
		}
	})

	t.Run(`промежуточные статусы синхронизируются`, func(t *testing.T) {
		for _, status := range []models.ApplicantStatus{
			models.ApplicantStatusNew,
			models.ApplicantStatusToBeScheduled,
			models.ApplicantStatusInterviewScheduled,
			models.ApplicantStatusInterviewCompleted,
		} {
			rec := Applicant{Status: status}
			require.True(t, rec.IsAllowStatusSync(), "статус %v не финальный", status)
		}
	})
}
