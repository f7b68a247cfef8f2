package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var jakarta = time.FixedZone("WIB", 7*3600)

func at(hour, min, sec int) time.Time {
	return time.Date(2025, 6, 10, hour, min, sec, 0, jakarta) // a Tuesday
}

func TestBeforeEarliestCheckIn(t *testing.T) {
	assert.True(t, BeforeEarliestCheckIn(at(5, 59, 59)))
	assert.False(t, BeforeEarliestCheckIn(at(6, 0, 0)))
	assert.False(t, BeforeEarliestCheckIn(at(7, 30, 0)))
}

func TestDetermineCheckInStatus(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want CheckInStatus
	}{
		{"early morning is on time", at(6, 0, 0), CheckInOnTime},
		{"last on-time second", at(8, 0, 59), CheckInOnTime},
		{"deadline itself is late", at(8, 1, 0), CheckInLate},
		{"afternoon is late", at(14, 30, 0), CheckInLate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineCheckInStatus(tt.now))
		})
	}
}

func TestCheckInRequiresOvertime(t *testing.T) {
	assert.False(t, CheckInRequiresOvertime(at(16, 59, 59)))
	assert.True(t, CheckInRequiresOvertime(at(17, 0, 0)))
	assert.True(t, CheckInRequiresOvertime(at(20, 15, 0)))
}

func TestBeforeCheckOutOpens(t *testing.T) {
	assert.True(t, BeforeCheckOutOpens(at(16, 59, 59)))
	assert.False(t, BeforeCheckOutOpens(at(17, 0, 0)))
}

func TestIsMissedCheckOut(t *testing.T) {
	assert.False(t, IsMissedCheckOut(at(17, 59, 59)))
	assert.True(t, IsMissedCheckOut(at(18, 0, 0)))
	assert.True(t, IsMissedCheckOut(at(22, 0, 0)))
}

func TestAfterTimeOfDay(t *testing.T) {
	end := time.Date(0, 1, 1, 21, 0, 0, 0, time.UTC)

	assert.False(t, AfterTimeOfDay(at(20, 59, 59), end))
	assert.True(t, AfterTimeOfDay(at(21, 0, 0), end))
	assert.True(t, AfterTimeOfDay(at(21, 0, 1), end))
}

func TestDetermineDateStatus(t *testing.T) {
	monday := time.Date(2025, 6, 9, 9, 0, 0, 0, jakarta)
	friday := time.Date(2025, 6, 13, 9, 0, 0, 0, jakarta)
	saturday := time.Date(2025, 6, 14, 9, 0, 0, 0, jakarta)
	sunday := time.Date(2025, 6, 15, 9, 0, 0, 0, jakarta)

	assert.Equal(t, DateWeekday, DetermineDateStatus(monday))
	assert.Equal(t, DateWeekday, DetermineDateStatus(friday))
	assert.Equal(t, DateWeekend, DetermineDateStatus(saturday))
	assert.Equal(t, DateWeekend, DetermineDateStatus(sunday))
}
