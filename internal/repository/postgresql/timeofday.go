package postgresql

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Time-of-day columns are stored as TIME and cross this boundary as
// wall-clock carriers: only the hour, minute and second fields of the
// time.Time are meaningful, pinned to a fixed date in UTC.

func timeOfDayValue(t time.Time) pgtype.Time {
	secs := int64(t.Hour()*3600 + t.Minute()*60 + t.Second())
	return pgtype.Time{Microseconds: secs * 1_000_000, Valid: true}
}

func timeOfDayPtrValue(t *time.Time) pgtype.Time {
	if t == nil {
		return pgtype.Time{}
	}
	return timeOfDayValue(*t)
}

func timeOfDay(v pgtype.Time) time.Time {
	secs := v.Microseconds / 1_000_000
	return time.Date(0, time.January, 1, int(secs/3600), int(secs/60%60), int(secs%60), 0, time.UTC)
}
