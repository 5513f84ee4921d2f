package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"dayplan/internal/backend"
)

// CanonicalLayout is the stored representation of an event's start time:
// a timezone-naive local wall-clock string. The fields the user selected
// are the fields that get stored and later displayed; no zone offset is
// ever applied to this value.
const CanonicalLayout = "2006-01-02T15:04:05"

// timeOfDayPattern matches a well-formed HH:MM selection. Field ranges
// are checked separately so 25:00 fails with a useful message.
var timeOfDayPattern = regexp.MustCompile(`^([0-9]{2}):([0-9]{2})$`)

// Combine builds the canonical datetime for a calendar day and an HH:MM
// time-of-day selection. The day's own year, month and day fields are
// used verbatim, whatever location the day value carries, so the result
// is independent of the running environment's zone.
func Combine(day time.Time, timeOfDay string) (string, error) {
	hour, minute, err := parseTimeOfDay(timeOfDay)
	if err != nil {
		return "", err
	}

	year, month, dom := day.Date()
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:00", year, int(month), dom, hour, minute), nil
}

// Extract is the inverse of Combine. It parses the canonical value's
// textual fields and returns the calendar day (at midnight UTC, so two
// extracted days compare with Equal) and the HH:MM time-of-day.
// Extract(Combine(d, t)) returns (d, t) for every valid pair.
func Extract(canonical string) (time.Time, string, error) {
	t, err := ParseWallClock(canonical)
	if err != nil {
		return time.Time{}, "", err
	}

	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day, fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()), nil
}

// BucketHour returns the hour-of-day bucket (0-23) for a canonical
// datetime. It always agrees with the hour component Extract reports.
func BucketHour(canonical string) (int, error) {
	t, err := ParseWallClock(canonical)
	if err != nil {
		return 0, err
	}
	return t.Hour(), nil
}

// SameDay reports whether a canonical datetime falls on the given
// calendar day. Only the year, month and day fields are compared; the
// day value's location is irrelevant, so the answer never shifts with
// the viewing environment's zone.
func SameDay(canonical string, day time.Time) bool {
	t, err := ParseWallClock(canonical)
	if err != nil {
		return false
	}

	y1, m1, d1 := t.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// FormatForDisplay renders the time-of-day of a canonical datetime for
// display, in 24-hour or 12-hour form. Formatting only; the canonical
// value is never re-derived or converted.
func FormatForDisplay(canonical string, use24h bool) (string, error) {
	t, err := ParseWallClock(canonical)
	if err != nil {
		return "", err
	}

	if use24h {
		return t.Format("15:04"), nil
	}
	return t.Format("3:04 PM"), nil
}

// ParseWallClock parses a canonical datetime as bare wall-clock fields.
// The returned value carries UTC solely as a neutral placeholder zone;
// only its textual fields are meaningful. This is the parse used for
// event datetimes.
func ParseWallClock(canonical string) (time.Time, error) {
	t, err := time.Parse(CanonicalLayout, canonical)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse wall-clock datetime %q: %w", canonical, err)
	}
	return t, nil
}

// ParseInstant parses an RFC 3339 timestamp as an absolute instant.
// This is the parse used for email received_at values, which are real
// instants; it must not be used for event datetimes.
func ParseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse instant %q: %w", s, err)
	}
	return t, nil
}

func parseTimeOfDay(timeOfDay string) (hour, minute int, err error) {
	m := timeOfDayPattern.FindStringSubmatch(timeOfDay)
	if m == nil {
		return 0, 0, &backend.ValidationError{Detail: fmt.Sprintf("time of day %q is not in HH:MM form", timeOfDay)}
	}

	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])

	if hour > 23 {
		return 0, 0, &backend.ValidationError{Detail: fmt.Sprintf("hour %02d is out of range", hour)}
	}
	if minute > 59 {
		return 0, 0, &backend.ValidationError{Detail: fmt.Sprintf("minute %02d is out of range", minute)}
	}

	return hour, minute, nil
}
