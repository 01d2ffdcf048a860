package streamapimodels

import (
	"admission-backend/models"
	dbmodels "admission-backend/models/db"
	"time"
)

type StreamData struct {
	CampaignID       string                  `json:"campaign_id"`
	VenueID          string                  `json:"venue_id"`
	Section          models.InterviewSection `json:"section"`
	Format           models.InterviewFormat  `json:"format"`
	StartAt          time.Time               `json:"start_at"`
	EndAt            time.Time               `json:"end_at"`
	DurationMin      int                     `json:"duration_min"`
	WithAssignments  bool                    `json:"with_assignments"`
	ReminderTemplate string                  `json:"reminder_template"`
	ReminderLeadMin  int                     `json:"reminder_lead_min"`
}

func (d StreamData) ToDbModel() dbmodels.InterviewStream {
	return dbmodels.InterviewStream{
		CampaignID:       d.CampaignID,
		VenueID:          d.VenueID,
		Section:          d.Section,
		Format:           d.Format,
		StartAt:          d.StartAt.UTC(),
		EndAt:            d.EndAt.UTC(),
		DurationMin:      d.DurationMin,
		WithAssignments:  d.WithAssignments,
		ReminderTemplate: d.ReminderTemplate,
		ReminderLeadMin:  d.ReminderLeadMin,
	}
}

type StreamView struct {
	ID string `json:"id"`
	StreamData
	VenueName  string `json:"venue_name,omitempty"`
	SlotsTotal int    `json:"slots_total"`
	SlotsFree  int    `json:"slots_free"`
}

func StreamConvert(rec dbmodels.InterviewStream) StreamView {
	view := StreamView{
		ID: rec.ID,
		StreamData: StreamData{
			CampaignID:       rec.CampaignID,
			VenueID:          rec.VenueID,
			Section:          rec.Section,
			Format:           rec.Format,
			StartAt:          rec.StartAt,
			EndAt:            rec.EndAt,
			DurationMin:      rec.DurationMin,
			WithAssignments:  rec.WithAssignments,
			ReminderTemplate: rec.ReminderTemplate,
			ReminderLeadMin:  rec.ReminderLeadMin,
		},
	}
	if rec.Venue != nil {
		view.VenueName = rec.Venue.Name
	}
	view.SlotsTotal = len(rec.Slots)
	for _, slot := range rec.Slots {
		if slot.IsFree() {
			view.SlotsFree++
		}
	}
	return view
}

type SlotView struct {
	ID      string    `json:"id"`
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
	Free    bool      `json:"free"`
}

func SlotConvert(rec dbmodels.InterviewSlot) SlotView {
	return SlotView{
		ID:      rec.ID,
		StartAt: rec.StartAt,
		EndAt:   rec.EndAt,
		Free:    rec.IsFree(),
	}
}
