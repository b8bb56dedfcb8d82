// Package alerttime resolves the relative timestamp and duration of a
// ZCZC header into absolute issue and purge instants.
//
// The header carries no year, so the issue instant is anchored to the
// current calendar year at invocation time unless the caller supplies an
// explicit year. The timestamp itself is always UTC on the wire; the
// timezone mode only affects which wall clock the purge time is spoken in.
package alerttime

import (
	"errors"
	"fmt"
	"time"

	"github.com/easforge/emnet-splicer/internal/header"
)

// Options selects the timezone policy for resolution.
// Local and Zone are mutually exclusive.
type Options struct {
	Local bool   // interpret in the system's local timezone, DST included
	Zone  string // fixed-offset timezone abbreviation, e.g. "EST"; empty = UTC
	Year  int    // override for the implied year; 0 = current year
}

// Resolved holds the absolute instants derived from a header.
// Purge - Issue always equals the header's purge duration exactly.
type Resolved struct {
	Issue time.Time
	Purge time.Time
}

// ErrConflictingModes is returned when both local time and a manual
// timezone override are requested. The CLI rejects this combination as a
// usage error; Resolve enforces it again defensively.
var ErrConflictingModes = errors.New("local time and timezone override are mutually exclusive")

// UnknownZoneError reports an unrecognized timezone abbreviation.
type UnknownZoneError struct {
	Code string
}

func (e *UnknownZoneError) Error() string {
	return fmt.Sprintf("unknown timezone code %q", e.Code)
}

// zoneOffsets maps recognized US timezone abbreviations to their UTC
// offset in hours. Standard and daylight variants are distinct codes;
// the caller picks the one in effect.
var zoneOffsets = map[string]int{
	"UTC": 0,
	"EST": -5,
	"EDT": -4,
	"CST": -6,
	"CDT": -5,
	"MST": -7,
	"MDT": -6,
	"PST": -8,
	"PDT": -7,
}

// Resolve computes the absolute issue and purge instants for a header
// under the given timezone policy.
func Resolve(rec header.Record, opts Options) (Resolved, error) {
	if opts.Local && opts.Zone != "" {
		return Resolved{}, ErrConflictingModes
	}

	loc := time.UTC
	switch {
	case opts.Local:
		loc = time.Local
	case opts.Zone != "":
		offset, ok := zoneOffsets[opts.Zone]
		if !ok {
			return Resolved{}, &UnknownZoneError{Code: opts.Zone}
		}
		loc = time.FixedZone(opts.Zone, offset*3600)
	}

	year := opts.Year
	if year == 0 {
		year = clock.Now().UTC().Year()
	}

	// Day-of-year arithmetic through AddDate: day 366 of a non-leap year
	// rolls into January 1 of the following year.
	issue := time.Date(year, time.January, 1, rec.IssueHour, rec.IssueMinute, 0, 0, time.UTC).
		AddDate(0, 0, rec.IssueDay-1).
		In(loc)

	return Resolved{
		Issue: issue,
		Purge: issue.Add(time.Duration(rec.PurgeMinutes) * time.Minute),
	}, nil
}
