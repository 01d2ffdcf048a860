package campaignapimodels

import (
	"admission-backend/models"
	dbmodels "admission-backend/models/db"
	"time"
)

type CampaignData struct {
	Branch                 models.CampaignBranch `json:"branch"`
	Year                   int                   `json:"year"`
	Name                   string                `json:"name"`
	ApplicationOpenAt      time.Time             `json:"application_open_at"`
	ApplicationCloseAt     time.Time             `json:"application_close_at"`
	OnlineTestPassingScore int                   `json:"online_test_passing_score"`
	ExamPassingScore       int                   `json:"exam_passing_score"`
}

type CampaignView struct {
	ID string `json:"id"`
	CampaignData
	Current bool `json:"current"`
}

func (d CampaignData) ToDbModel() dbmodels.Campaign {
	return dbmodels.Campaign{
		Branch:                 d.Branch,
		Year:                   d.Year,
		Name:                   d.Name,
		ApplicationOpenAt:      d.ApplicationOpenAt,
		ApplicationCloseAt:     d.ApplicationCloseAt,
		OnlineTestPassingScore: d.OnlineTestPassingScore,
		ExamPassingScore:       d.ExamPassingScore,
	}
}

func CampaignConvert(rec dbmodels.Campaign) CampaignView {
	return CampaignView{
		ID: rec.ID,
		CampaignData: CampaignData{
			Branch:                 rec.Branch,
			Year:                   rec.Year,
			Name:                   rec.Name,
			ApplicationOpenAt:      rec.ApplicationOpenAt,
			ApplicationCloseAt:     rec.ApplicationCloseAt,
			OnlineTestPassingScore: rec.OnlineTestPassingScore,
			ExamPassingScore:       rec.ExamPassingScore,
		},
		Current: rec.Current,
	}
}

type VenueData struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	TimeZone string `json:"time_zone"`
}

type VenueView struct {
	ID string `json:"id"`
	VenueData
}

func (d VenueData) ToDbModel() dbmodels.Venue {
	return dbmodels.Venue{
		Name:     d.Name,
		Address:  d.Address,
		City:     d.City,
		TimeZone: d.TimeZone,
	}
}

func VenueConvert(rec dbmodels.Venue) VenueView {
	return VenueView{
		ID: rec.ID,
		VenueData: VenueData{
			Name:     rec.Name,
			Address:  rec.Address,
			City:     rec.City,
			TimeZone: rec.TimeZone,
		},
	}
}
