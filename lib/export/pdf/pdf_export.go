package pdfexport

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

type ProtocolComment struct {
	Author string
	Score  int
	Text   string
}

type ProtocolData struct {
	ApplicantName string
	CampaignName  string
	Section       string
	Status        string
	Date          string
	VenueName     string
	Interviewers  []string
	Comments      []ProtocolComment
	AverageScore  string
}

const protocolBodyTemplate = `<b>Протокол собеседования</b><br><br>` +
	`Кандидат: {{.ApplicantName}}<br>` +
	`Кампания: {{.CampaignName}}<br>` +
	`{{if .Section}}Секция: {{.Section}}<br>{{end}}` +
	`Статус: {{.Status}}<br>` +
	`{{if .Date}}Дата: {{.Date}}<br>{{end}}` +
	`{{if .VenueName}}Площадка: {{.VenueName}}<br>{{end}}` +
	`<br><b>Собеседующие</b><br>` +
	`{{range .Interviewers}}{{.}}<br>{{end}}` +
	`<br><b>Комментарии</b><br>` +
	`{{range .Comments}}{{.Author}} (оценка {{.Score}}): {{.Text}}<br>{{end}}` +
	`{{if .AverageScore}}<br>Средняя оценка: {{.AverageScore}}{{end}}`

func GenerateProtocol(data ProtocolData) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateProtocol panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	pdf.AddUTF8Font("Arial", "I", "Arial Italic.ttf")
	pdf.AddUTF8Font("Arial", "BI", "Arial Bold Italic.ttf")
	pdf.SetFont("Arial", "", 14)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	tpl, err := template.New("protocol_body").Parse(protocolBodyTemplate)
	if err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	err = tpl.Execute(buf, data)
	if err != nil {
		return nil, err
	}

	_, lineHt := pdf.GetFontSize()
	html := pdf.HTMLBasicNew()
	html.Write(lineHt, buf.String())

	out := new(bytes.Buffer)
	err = pdf.Output(out)
	if err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func FormatAverage(comments []ProtocolComment) string {
	if len(comments) == 0 {
		return ""
	}
	sum := 0
	for _, c := range comments {
		sum += c.Score
	}
	return fmt.Sprintf("%.2f", float64(sum)/float64(len(comments)))
}
