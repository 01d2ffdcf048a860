package messagetemplate

import (
	"bytes"
	"text/template"

	"github.com/pkg/errors"
)

const (
	TemplateInvitation = "interview_invitation"
	TemplateReminder   = "interview_reminder"
	TemplateFeedback   = "interview_feedback"
)

const (
	invitationTitle = "Приглашение на собеседование"
	reminderTitle   = "Напоминание о собеседовании"
	feedbackTitle   = "Итоги собеседования"
)

type InterviewTemplateData struct {
	ApplicantName string
	InterviewDate string // локальное время площадки
	VenueName     string
	ClaimLink     string
	ExpiredAt     string
}

var staticTemplates = map[string]string{
	TemplateInvitation: `Здравствуйте, {{.ApplicantName}}!

Приглашаем вас на собеседование. Выберите удобный слот по ссылке:
{{.ClaimLink}}

Приглашение действует до {{.ExpiredAt}}.`,
	TemplateReminder: `Здравствуйте, {{.ApplicantName}}!

Напоминаем: ваше собеседование назначено на {{.InterviewDate}}{{if .VenueName}}, площадка {{.VenueName}}{{end}}.`,
	TemplateFeedback: `Здравствуйте, {{.ApplicantName}}!

Собеседование завершено, все собеседующие оставили отзывы.
Итоговое решение придёт отдельным письмом после заседания комиссии.`,
}

var templateTitles = map[string]string{
	TemplateInvitation: invitationTitle,
	TemplateReminder:   reminderTitle,
	TemplateFeedback:   feedbackTitle,
}

func BuildMessage(templateName string, data InterviewTemplateData) (msg, title string, err error) {
	text, ok := staticTemplates[templateName]
	if !ok {
		return "", "", errors.Errorf("неизвестный шаблон письма: %s", templateName)
	}
	tpl, err := template.New(templateName).Parse(text)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка разбора шаблона письма")
	}
	buf := new(bytes.Buffer)
	err = tpl.Execute(buf, data)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка сборки письма по шаблону")
	}
	return buf.String(), templateTitles[templateName], nil
}

func IsKnownTemplate(templateName string) bool {
	_, ok := staticTemplates[templateName]
	return ok
}
