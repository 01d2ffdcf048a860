package interviewapimodels

import (
	"admission-backend/models"
	dbmodels "admission-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type StatusRequest struct {
	Status models.InterviewStatus `json:"status"`
}

func (r StatusRequest) Validate() error {
	if r.Status == "" {
		return errors.New("не указан статус")
	}
	return nil
}

type CommentRequest struct {
	Score int    `json:"score"`
	Text  string `json:"text"`
}

type InterviewerView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CommentView struct {
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Score      int       `json:"score"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

type InterviewView struct {
	ID            string                  `json:"id"`
	ApplicantID   string                  `json:"applicant_id"`
	ApplicantName string                  `json:"applicant_name,omitempty"`
	Section       models.InterviewSection `json:"section"`
	Status        models.InterviewStatus  `json:"status"`
	Date          time.Time               `json:"date"`
	Interviewers  []InterviewerView       `json:"interviewers"`
	Comments      []CommentView           `json:"comments"`
	AverageScore  float64                 `json:"average_score"`
}

func InterviewConvert(rec dbmodels.Interview) InterviewView {
	view := InterviewView{
		ID:          rec.ID,
		ApplicantID: rec.ApplicantID,
		Section:     rec.Section,
		Status:      rec.Status,
		Date:        rec.Date,
	}
	if rec.Applicant != nil {
		view.ApplicantName = rec.Applicant.GetFullName()
	}
	view.Interviewers = make([]InterviewerView, 0, len(rec.Interviewers))
	for _, u := range rec.Interviewers {
		view.Interviewers = append(view.Interviewers, InterviewerView{
			ID:   u.ID,
			Name: u.GetFullName(),
		})
	}
	view.Comments = make([]CommentView, 0, len(rec.Comments))
	scoreSum := 0
	for _, c := range rec.Comments {
		item := CommentView{
			AuthorID:  c.AuthorID,
			Score:     c.Score,
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
		}
		if c.Author != nil {
			item.AuthorName = c.Author.GetFullName()
		}
		view.Comments = append(view.Comments, item)
		scoreSum += c.Score
	}
	if len(rec.Comments) > 0 {
		view.AverageScore = float64(scoreSum) / float64(len(rec.Comments))
	}
	return view
}
