package messagetemplate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildMessage(t *testing.T) {
	data := InterviewTemplateData{
		ApplicantName: "Иванов Иван",
		InterviewDate: "10.03.2026 13:00",
		VenueName:     "Кампус СПб",
		ClaimLink:     "http://localhost:8080/invitation/token-1",
		ExpiredAt:     "09.03.2026 00:00",
	}

	t.Run(`приглашение содержит ссылку и срок действия`, func(t *testing.T) {
		msg, title, err := BuildMessage(TemplateInvitation, data)
		require.NoError(t, err)
		require.NotEmpty(t, title)
		require.Contains(t, msg, data.ClaimLink)
		require.Contains(t, msg, data.ExpiredAt)
		require.Contains(t, msg, data.ApplicantName)
	})

	t.Run(`напоминание содержит дату и площадку`, func(t *testing.T) {
		msg, _, err := BuildMessage(TemplateReminder, data)
		require.NoError(t, err)
		require.Contains(t, msg, data.InterviewDate)
		require.Contains(t, msg, data.VenueName)
	})

	t.Run(`напоминание без площадки`, func(t *testing.T) {
		noVenue := data
		noVenue.VenueName = ""
		msg, _, err := BuildMessage(TemplateReminder, noVenue)
		require.NoError(t, err)
		require.NotContains(t, msg, "площадка")
	})

	t.Run(`неизвестный шаблон`, func(t *testing.T) {
		_, _, err := BuildMessage("no_such_template", data)
		require.Error(t, err)
	})

	t.Run(`известность шаблона`, func(t *testing.T) {
		require.True(t, IsKnownTemplate(TemplateFeedback))
		require.False(t, IsKnownTemplate("no_such_template"))
	})
}
