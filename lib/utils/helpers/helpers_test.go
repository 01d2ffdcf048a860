package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLocalMidnight(t *testing.T) {
	msk := time.FixedZone("MSK", 3*60*60)

	t.Run(`полночь московской даты в UTC`, func(t *testing.T) {
		day := time.Date(2018, 3, 10, 9, 30, 0, 0, msk)
		got := LocalMidnight(day, msk)
		require.Equal(t, time.Date(2018, 3, 9, 21, 0, 0, 0, time.UTC), got)
	})

	t.Run(`момент в UTC переводится в дату пояса площадки`, func(t *testing.T) {
		// 23:00 UTC 9 марта - это уже 10 марта по Москве
		day := time.Date(2018, 3, 9, 23, 0, 0, 0, time.UTC)
		got := LocalMidnight(day, msk)
		require.Equal(t, time.Date(2018, 3, 9, 21, 0, 0, 0, time.UTC), got)
	})

	t.Run(`UTC пояс`, func(t *testing.T) {
		day := time.Date(2018, 3, 10, 15, 0, 0, 0, time.UTC)
		got := LocalMidnight(day, time.UTC)
		require.Equal(t, time.Date(2018, 3, 10, 0, 0, 0, 0, time.UTC), got)
	})
}
