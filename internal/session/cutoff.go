package session

import (
	"fmt"
	"time"
)

// DefaultCutoff is the local time at which a daily session ends.
var DefaultCutoff = Cutoff{Hour: 23, Minute: 58}

type Cutoff struct {
	Hour   int
	Minute int
}

// ParseCutoff parses "HH:MM".
func ParseCutoff(s string) (Cutoff, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return Cutoff{}, fmt.Errorf("invalid cutoff %q: %w", s, err)
	}
	return Cutoff{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// Reached reports whether t's wall clock is at or past the cutoff.
func (c Cutoff) Reached(t time.Time) bool {
	return t.Hour()*60+t.Minute() >= c.Hour*60+c.Minute
}

func (c Cutoff) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
