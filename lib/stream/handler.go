package stream

import (
	"admission-backend/db"
	campaignstore "admission-backend/lib/campaign/store"
	streamstore "admission-backend/lib/stream/store"
	venuestore "admission-backend/lib/venue/store"
	streamapimodels "admission-backend/models/api/stream"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(data streamapimodels.StreamData) (id string, err error)
	Update(id string, data streamapimodels.StreamData) error
	GetByID(id string) (streamapimodels.StreamView, error)
	ListByCampaign(campaignID string) ([]streamapimodels.StreamView, error)
	ListSlots(id string) ([]streamapimodels.SlotView, error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store:         streamstore.NewInstance(db.DB),
		campaignStore: campaignstore.NewInstance(db.DB),
		venueStore:    venuestore.NewInstance(db.DB),
	}
}

type impl struct {
	store         streamstore.Provider
	campaignStore campaignstore.Provider
	venueStore    venuestore.Provider
}

// Create сохраняет поток и сразу генерирует его слоты.
// Слоты создаются ровно один раз, последующие правки потока их не трогают.
func (i impl) Create(data streamapimodels.StreamData) (id string, err error) {
	rec := data.ToDbModel()
	if err = rec.Validate(); err != nil {
		return "", err
	}
	campaign, err := i.campaignStore.GetByID(rec.CampaignID)
	if err != nil {
		return "", err
	}
	if campaign == nil {
		return "", errors.New("кампания не найдена")
	}
	venue, err := i.venueStore.GetByID(rec.VenueID)
	if err != nil {
		return "", err
	}
	if venue == nil {
		return "", errors.New("площадка не найдена")
	}
	slots := rec.GenerateSlots()
	if len(slots) == 0 {
		return "", errors.New("окно потока короче одного слота")
	}
	id, err = i.store.CreateWithSlots(rec, slots)
	if err != nil {
		log.WithError(err).Error("ошибка создания потока собеседований")
		return "", err
	}
	log.WithField("stream_id", id).
		WithField("slot_count", len(slots)).
		Info("создан поток собеседований")
	return id, nil
}

func (i impl) Update(id string, data streamapimodels.StreamData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("поток не найден")
	}
	upd := data.ToDbModel()
	if err = upd.Validate(); err != nil {
		return err
	}
	timeChanged := !upd.StartAt.Equal(rec.StartAt) || !upd.EndAt.Equal(rec.EndAt) || upd.DurationMin != rec.DurationMin
	if timeChanged {
		claimed, err := i.store.HasClaimedSlots(id)
		if err != nil {
			return err
		}
		if claimed {
			return errors.New("нельзя менять расписание потока с занятыми слотами")
		}
	}
	updMap := map[string]interface{}{
		"section":           upd.Section,
		"format":            upd.Format,
		"with_assignments":  upd.WithAssignments,
		"reminder_template": upd.ReminderTemplate,
		"reminder_lead_min": upd.ReminderLeadMin,
	}
	return i.store.Update(id, updMap)
}

func (i impl) GetByID(id string) (streamapimodels.StreamView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return streamapimodels.StreamView{}, err
	}
	if rec == nil {
		return streamapimodels.StreamView{}, errors.New("поток не найден")
	}
	return streamapimodels.StreamConvert(*rec), nil
}

func (i impl) ListByCampaign(campaignID string) ([]streamapimodels.StreamView, error) {
	list, err := i.store.ListByCampaign(campaignID)
	if err != nil {
		return nil, err
	}
	result := make([]streamapimodels.StreamView, 0, len(list))
	for _, rec := range list {
		result = append(result, streamapimodels.StreamConvert(rec))
	}
	return result, nil
}

func (i impl) ListSlots(id string) ([]streamapimodels.SlotView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("поток не найден")
	}
	result := make([]streamapimodels.SlotView, 0, len(rec.Slots))
	for _, slot := range rec.Slots {
		result = append(result, streamapimodels.SlotConvert(slot))
	}
	return result, nil
}

func (i impl) Delete(id string) error {
	claimed, err := i.store.HasClaimedSlots(id)
	if err != nil {
		return err
	}
	if claimed {
		return errors.New("нельзя удалить поток с занятыми слотами")
	}
	return i.store.Delete(id)
}
