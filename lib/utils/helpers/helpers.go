package helpers

import (
	"context"
	"time"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

// LocalMidnight - полночь даты day в часовом поясе loc, результат в UTC
func LocalMidnight(day time.Time, loc *time.Location) time.Time {
	local := day.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return midnight.UTC()
}

func FormatDateTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("02.01.2006 15:04")
}

func FormatDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("02.01.2006")
}
