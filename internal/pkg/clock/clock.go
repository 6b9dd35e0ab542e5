// Package clock supplies the current time in the lab's local time zone.
// Business code receives a Clock instead of calling time.Now.
package clock

import (
	"fmt"
	"time"
)

// DefaultZone is the lab's home zone (SE Asia, UTC+7).
const DefaultZone = "Asia/Ho_Chi_Minh"

const defaultOffset = 7 * 60 * 60

// Clock returns the current timestamp in the lab time zone.
type Clock interface {
	Now() time.Time
}

// LabClock reads the wall clock and converts it to the configured zone.
type LabClock struct {
	loc *time.Location
}

// NewLabClock resolves zone through the tz database. An empty zone selects
// DefaultZone; when DefaultZone itself is missing from the host's tz database
// a fixed UTC+7 zone is used.
func NewLabClock(zone string) (LabClock, error) {
	if zone == "" {
		zone = DefaultZone
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		if zone != DefaultZone {
			return LabClock{}, fmt.Errorf("load time zone %q: %w", zone, err)
		}
		loc = time.FixedZone("SEA", defaultOffset)
	}

	return LabClock{loc: loc}, nil
}

func (c LabClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Location returns the zone timestamps are reported in.
func (c LabClock) Location() *time.Location {
	return c.loc
}

// Fixed is a Clock frozen at a settable instant. Tests use it to assert exact timestamps.
type Fixed struct {
	at time.Time
}

func NewFixed(at time.Time) *Fixed {
	return &Fixed{at: at}
}

func (f *Fixed) Now() time.Time {
	return f.at
}

// Advance moves the clock forward by d.
func (f *Fixed) Advance(d time.Duration) {
	f.at = f.at.Add(d)
}
