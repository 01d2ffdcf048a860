package stream

import (
	campaignstore "admission-backend/lib/campaign/store"
	streamstore "admission-backend/lib/stream/store"
	venuestore "admission-backend/lib/venue/store"
	"admission-backend/models"
	streamapimodels "admission-backend/models/api/stream"
	dbmodels "admission-backend/models/db"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeStreamStore struct {
	streamstore.Provider
	rec         *dbmodels.InterviewStream
	claimed     bool
	createdRec  *dbmodels.InterviewStream
	createdSlot []dbmodels.InterviewSlot
	updMap      map[string]interface{}
	deletedID   string
}

func (f *fakeStreamStore) CreateWithSlots(rec dbmodels.InterviewStream, slots []dbmodels.InterviewSlot) (string, error) {
	f.createdRec = &rec
	f.createdSlot = slots
	return "stream-1", nil
}

func (f *fakeStreamStore) GetByID(id string) (*dbmodels.InterviewStream, error) {
	if f.rec != nil && f.rec.ID == id {
		return f.rec, nil
	}
	return nil, nil
}

func (f *fakeStreamStore) HasClaimedSlots(id string) (bool, error) {
	return f.claimed, nil
}

func (f *fakeStreamStore) Update(id string, updMap map[string]interface{}) error {
	f.updMap = updMap
	return nil
}

func (f *fakeStreamStore) Delete(id string) error {
	f.deletedID = id
	return nil
}

type fakeCampaignStore struct {
	campaignstore.Provider
	rec *dbmodels.Campaign
}

func (f *fakeCampaignStore) GetByID(id string) (*dbmodels.Campaign, error) {
	if f.rec != nil && f.rec.ID == id {
		return f.rec, nil
	}
	return nil, nil
}

type fakeVenueStore struct {
	venuestore.Provider
	rec *dbmodels.Venue
}

func (f *fakeVenueStore) GetByID(id string) (*dbmodels.Venue, error) {
	if f.rec != nil && f.rec.ID == id {
		return f.rec, nil
	}
	return nil, nil
}

func testStreamData() streamapimodels.StreamData {
	return streamapimodels.StreamData{
		CampaignID:       "campaign-1",
		VenueID:          "venue-1",
		Section:          models.SectionDataScience,
		Format:           models.InterviewFormatOffline,
		StartAt:          time.Date(2018, 3, 10, 10, 0, 0, 0, time.UTC),
		EndAt:            time.Date(2018, 3, 10, 12, 0, 0, 0, time.UTC),
		DurationMin:      30,
		ReminderTemplate: "interview_reminder",
		ReminderLeadMin:  120,
	}
}

func newTestImpl(store *fakeStreamStore) impl {
	return impl{
		store:         store,
		campaignStore: &fakeCampaignStore{rec: &dbmodels.Campaign{BaseModel: dbmodels.BaseModel{ID: "campaign-1"}}},
		venueStore:    &fakeVenueStore{rec: &dbmodels.Venue{BaseModel: dbmodels.BaseModel{ID: "venue-1"}}},
	}
}

func TestCreateStream(t *testing.T) {
	t.Run("успешное создание генерирует слоты", func(t *testing.T) {
		store := &fakeStreamStore{}
		h := newTestImpl(store)

		id, err := h.Create(testStreamData())
		require.NoError(t, err)
		require.Equal(t, "stream-1", id)
		require.Len(t, store.createdSlot, 4)
		require.Equal(t, time.Date(2018, 3, 10, 10, 0, 0, 0, time.UTC), store.createdSlot[0].StartAt)
		require.Equal(t, time.Date(2018, 3, 10, 12, 0, 0, 0, time.UTC), store.createdSlot[3].EndAt)
	})

	t.Run("окно короче одного слота", func(t *testing.T) {
		store := &fakeStreamStore{}
		h := newTestImpl(store)

		data := testStreamData()
		data.EndAt = data.StartAt.Add(20 * time.Minute)
		_, err := h.Create(data)
		require.EqualError(t, err, "окно потока короче одного слота")
		require.Nil(t, store.createdRec)
	})

	t.Run("кампания не найдена", func(t *testing.T) {
		store := &fakeStreamStore{}
		h := newTestImpl(store)

		data := testStreamData()
		data.CampaignID = "missing"
		_, err := h.Create(data)
		require.EqualError(t, err, "кампания не найдена")
	})

	t.Run("площадка не найдена", func(t *testing.T) {
		store := &fakeStreamStore{}
		h := newTestImpl(store)

		data := testStreamData()
		data.VenueID = "missing"
		_, err := h.Create(data)
		require.EqualError(t, err, "площадка не найдена")
	})

	t.Run("невалидная длительность", func(t *testing.T) {
		store := &fakeStreamStore{}
		h := newTestImpl(store)

		data := testStreamData()
		data.DurationMin = 0
		_, err := h.Create(data)
		require.EqualError(t, err, "длительность слота должна быть положительной")
	})
}

func TestUpdateStream(t *testing.T) {
	existing := func() *dbmodels.InterviewStream {
		data := testStreamData()
		rec := data.ToDbModel()
		rec.ID = "stream-1"
		return &rec
	}

	t.Run("смена расписания при занятых слотах запрещена", func(t *testing.T) {
		store := &fakeStreamStore{rec: existing(), claimed: true}
		h := newTestImpl(store)

		data := testStreamData()
		data.DurationMin = 45
		err := h.Update("stream-1", data)
		require.EqualError(t, err, "нельзя менять расписание потока с занятыми слотами")
		require.Nil(t, store.updMap)
	})

	t.Run("правка без смены расписания проходит при занятых слотах", func(t *testing.T) {
		store := &fakeStreamStore{rec: existing(), claimed: true}
		h := newTestImpl(store)

		data := testStreamData()
		data.Section = models.SectionRobotics
		data.ReminderLeadMin = 60
		err := h.Update("stream-1", data)
		require.NoError(t, err)
		require.Equal(t, models.SectionRobotics, store.updMap["section"])
		require.Equal(t, 60, store.updMap["reminder_lead_min"])
	})

	t.Run("слоты не пересоздаются при правке", func(t *testing.T) {
		store := &fakeStreamStore{rec: existing()}
		h := newTestImpl(store)

		err := h.Update("stream-1", testStreamData())
		require.NoError(t, err)
		require.NotContains(t, store.updMap, "start_at")
		require.NotContains(t, store.updMap, "end_at")
		require.NotContains(t, store.updMap, "duration_min")
	})

	t.Run("поток не найден", func(t *testing.T) {
		store := &fakeStreamStore{}
		h := newTestImpl(store)

		err := h.Update("missing", testStreamData())
		require.EqualError(t, err, "поток не найден")
	})
}

func TestDeleteStream(t *testing.T) {
	t.Run("удаление потока без занятых слотов", func(t *testing.T) {
		store := &fakeStreamStore{}
		h := newTestImpl(store)

		require.NoError(t, h.Delete("stream-1"))
		require.Equal(t, "stream-1", store.deletedID)
	})

	t.Run("поток с занятыми слотами не удаляется", func(t *testing.T) {
		store := &fakeStreamStore{claimed: true}
		h := newTestImpl(store)

		err := h.Delete("stream-1")
		require.EqualError(t, err, "нельзя удалить поток с занятыми слотами")
		require.Empty(t, store.deletedID)
	})
}
