package campaign

import (
	"admission-backend/db"
	campaignstore "admission-backend/lib/campaign/store"
	venuestore "admission-backend/lib/venue/store"
	campaignapimodels "admission-backend/models/api/campaign"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(data campaignapimodels.CampaignData) (id string, err error)
	Update(id string, data campaignapimodels.CampaignData) error
	GetByID(id string) (campaignapimodels.CampaignView, error)
	List(page, limit int) (list []campaignapimodels.CampaignView, rowCount int64, err error)
	SetCurrent(id string) error
	Delete(id string) error

	CreateVenue(data campaignapimodels.VenueData) (id string, err error)
	ListVenues() ([]campaignapimodels.VenueView, error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store:      campaignstore.NewInstance(db.DB),
		venueStore: venuestore.NewInstance(db.DB),
	}
}

type impl struct {
	store      campaignstore.Provider
	venueStore venuestore.Provider
}

func (i impl) Create(data campaignapimodels.CampaignData) (id string, err error) {
	rec := data.ToDbModel()
	if err = rec.Validate(); err != nil {
		return "", err
	}
	id, err = i.store.Create(rec)
	if err != nil {
		log.WithError(err).Error("ошибка создания кампании")
		return "", err
	}
	return id, nil
}

func (i impl) Update(id string, data campaignapimodels.CampaignData) error {
	rec := data.ToDbModel()
	if err := rec.Validate(); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"name":                      rec.Name,
		"application_open_at":       rec.ApplicationOpenAt,
		"application_close_at":      rec.ApplicationCloseAt,
		"online_test_passing_score": rec.OnlineTestPassingScore,
		"exam_passing_score":        rec.ExamPassingScore,
	}
	return i.store.Update(id, updMap)
}

func (i impl) GetByID(id string) (campaignapimodels.CampaignView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return campaignapimodels.CampaignView{}, err
	}
	if rec == nil {
		return campaignapimodels.CampaignView{}, errors.New("кампания не найдена")
	}
	return campaignapimodels.CampaignConvert(*rec), nil
}

func (i impl) List(page, limit int) (list []campaignapimodels.CampaignView, rowCount int64, err error) {
	recList, rowCount, err := i.store.List(page, limit)
	if err != nil {
		return nil, 0, err
	}
	list = make([]campaignapimodels.CampaignView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, campaignapimodels.CampaignConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) SetCurrent(id string) error {
	err := i.store.SetCurrent(id)
	if err != nil {
		log.WithField("campaign_id", id).
			WithError(err).
			Error("ошибка смены текущей кампании")
		return err
	}
	return nil
}

func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}

func (i impl) CreateVenue(data campaignapimodels.VenueData) (id string, err error) {
	rec := data.ToDbModel()
	if err = rec.Validate(); err != nil {
		return "", err
	}
	return i.venueStore.Create(rec)
}

func (i impl) ListVenues() ([]campaignapimodels.VenueView, error) {
	recList, err := i.venueStore.List()
	if err != nil {
		return nil, err
	}
	list := make([]campaignapimodels.VenueView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, campaignapimodels.VenueConvert(rec))
	}
	return list, nil
}
