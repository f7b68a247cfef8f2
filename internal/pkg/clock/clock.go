package clock

import "time"

// Clock supplies the current time in the company's reference timezone.
// All attendance rules compare wall-clock times in that zone, never the
// server's local zone.
type Clock interface {
	Now() time.Time
}

type zonedClock struct {
	loc *time.Location
}

// NewZoned returns a Clock pinned to the named IANA timezone.
func NewZoned(name string) (Clock, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, err
	}
	return &zonedClock{loc: loc}, nil
}

func (c *zonedClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Static is a fixed-time Clock for tests.
type Static struct {
	T time.Time
}

func (s Static) Now() time.Time {
	return s.T
}

// DateOf truncates t to midnight in its own location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
