package dbmodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateSlots(t *testing.T) {
	day := func(h, m int) time.Time {
		return time.Date(2026, 3, 10, h, m, 0, 0, time.UTC)
	}

	t.Run(`окно с неполным хвостом, хвост отбрасывается`, func(t *testing.T) {
		stream := InterviewStream{
			StartAt:     day(13, 0),
			EndAt:       day(15, 10),
			DurationMin: 30,
		}
		slots := stream.GenerateSlots()
		require.Len(t, slots, 4)
		require.Equal(t, day(13, 0), slots[0].StartAt)
		require.Equal(t, day(13, 30), slots[0].EndAt)
		require.Equal(t, day(14, 30), slots[3].StartAt)
		require.Equal(t, day(15, 0), slots[3].EndAt)
	})

	t.Run(`окно делится без остатка`, func(t *testing.T) {
		stream := InterviewStream{
			StartAt:     day(10, 0),
			EndAt:       day(12, 0),
			DurationMin: 40,
		}
		slots := stream.GenerateSlots()
		require.Len(t, slots, 3)
		require.Equal(t, day(12, 0), slots[2].EndAt)
	})

	t.Run(`слоты не перекрываются и идут подряд`, func(t *testing.T) {
		stream := InterviewStream{
			StartAt:     day(9, 0),
			EndAt:       day(11, 0),
			DurationMin: 25,
		}
		slots := stream.GenerateSlots()
		require.NotEmpty(t, slots)
		for idx := 1; idx < len(slots); idx++ {
			require.Equal(t, slots[idx-1].EndAt, slots[idx].StartAt)
		}
	})

	t.Run(`окно короче одного слота`, func(t *testing.T) {
		stream := InterviewStream{
			StartAt:     day(13, 0),
			EndAt:       day(13, 20),
			DurationMin: 30,
		}
		require.Empty(t, stream.GenerateSlots())
	})

	t.Run(`нулевая длительность не зацикливается`, func(t *testing.T) {
		stream := InterviewStream{
			StartAt:     day(13, 0),
			EndAt:       day(15, 0),
			DurationMin: 0,
		}
		require.Empty(t, stream.GenerateSlots())
	})
}

func TestStreamValidate(t *testing.T) {
	valid := InterviewStream{
		CampaignID:  "campaign-1",
		VenueID:     "venue-1",
		StartAt:     time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC),
		EndAt:       time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC),
		DurationMin: 30,
	}

	t.Run(`корректный поток`, func(t *testing.T) {
		require.NoError(t, valid.Validate())
	})

	t.Run(`нулевая длительность слота`, func(t *testing.T) {
		stream := valid
		stream.DurationMin = 0
		require.Error(t, stream.Validate())
	})

	t.Run(`начало не раньше окончания`, func(t *testing.T) {
		stream := valid
		stream.EndAt = stream.StartAt
		require.Error(t, stream.Validate())
	})

	t.Run(`не указана кампания`, func(t *testing.T) {
		stream := valid
		stream.CampaignID = ""
		require.Error(t, stream.Validate())
	})
}

func TestSlotIsFree(t *testing.T) {
	slot := InterviewSlot{}
	require.True(t, slot.IsFree())

	interviewID := "interview-1"
	slot.InterviewID = &interviewID
	require.False(t, slot.IsFree())
}
