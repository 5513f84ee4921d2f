package calendar

import (
	"fmt"
	"sort"
	"time"

	"dayplan/internal/events"
	"dayplan/internal/schedule"
)

// Settings holds the display preferences consumed by the view model.
// They affect formatting only; the canonical stored datetime is never
// touched by them.
type Settings struct {
	Timezone string
	Use24h   bool
}

// DefaultSettings returns the stock display settings.
func DefaultSettings() Settings {
	return Settings{Timezone: "US/Eastern", Use24h: false}
}

// Location resolves the settings timezone, falling back to UTC if the
// identifier is unknown. Used only to display email instants; event
// wall-clock values never pass through it.
func (s Settings) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Selection is the transient calendar selection: one day, or a day range.
// Only single-day selections produce a selected-events list.
type Selection struct {
	start  time.Time
	end    time.Time
	ranged bool
}

// SelectDay builds a single-day selection.
func SelectDay(day time.Time) Selection {
	return Selection{start: day, end: day}
}

// SelectRange builds a day-range selection.
func SelectRange(start, end time.Time) Selection {
	return Selection{start: start, end: end, ranged: true}
}

// IsRange reports whether the selection covers more than a single day.
func (s Selection) IsRange() bool {
	return s.ranged
}

// Day returns the selected day of a single-day selection.
func (s Selection) Day() time.Time {
	return s.start
}

// HourBucket is one row of the day view.
type HourBucket struct {
	Hour   int
	Label  string
	Events []events.Event
}

// DayView is the hour-bucketed rendering of one calendar day. Buckets is
// always all 24 hours; an hour without events keeps its empty bucket so
// the fixed 24-row layout survives.
type DayView struct {
	Day     time.Time
	Buckets [24]HourBucket
}

// MonthView is the derivation consumed by the month grid: which days
// carry events, and the events of the selected day.
type MonthView struct {
	// Marked holds a key (see DateKey) for every day with at least one event.
	Marked map[string]struct{}

	// Selected holds the selected day's events in start-time order. Empty
	// for range selections.
	Selected []events.Event
}

// DateKey returns the textual key a day is marked under. Year, month and
// day fields only, so marking never shifts with the runtime zone.
func DateKey(day time.Time) string {
	year, month, dom := day.Date()
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), dom)
}

// Derive recomputes the month view from the event collection and the
// current selection. Pure; call it on every cache or selection change.
func Derive(evs []events.Event, sel Selection) MonthView {
	view := MonthView{Marked: make(map[string]struct{}, len(evs))}

	for _, ev := range evs {
		day, _, err := schedule.Extract(ev.DateTime)
		if err != nil {
			continue
		}
		view.Marked[DateKey(day)] = struct{}{}
	}

	if !sel.IsRange() {
		view.Selected = EventsOn(evs, sel.Day())
	}

	return view
}

// HasEvents reports whether the view marks the given day.
func (v MonthView) HasEvents(day time.Time) bool {
	_, ok := v.Marked[DateKey(day)]
	return ok
}

// EventsOn returns the events falling on the given calendar day, ordered
// by start time. The match compares local calendar-day fields, never
// instants, so an evening event stays on its own day in every zone.
func EventsOn(evs []events.Event, day time.Time) []events.Event {
	var out []events.Event
	for _, ev := range evs {
		if schedule.SameDay(ev.DateTime, day) {
			out = append(out, ev)
		}
	}

	// The canonical layout sorts chronologically as text.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DateTime < out[j].DateTime
	})

	return out
}

// NewDayView buckets one day's events by hour. Bucket assignment is a
// pure function of the event's reconciled local time; every matching
// event lands in exactly one bucket.
func NewDayView(evs []events.Event, day time.Time, settings Settings) DayView {
	view := DayView{Day: day}
	for hour := range view.Buckets {
		view.Buckets[hour] = HourBucket{
			Hour:  hour,
			Label: hourLabel(hour, settings.Use24h),
		}
	}

	for _, ev := range EventsOn(evs, day) {
		hour, err := schedule.BucketHour(ev.DateTime)
		if err != nil {
			continue
		}
		view.Buckets[hour].Events = append(view.Buckets[hour].Events, ev)
	}

	return view
}

func hourLabel(hour int, use24h bool) string {
	if use24h {
		return fmt.Sprintf("%02d:00", hour)
	}

	switch {
	case hour == 0:
		return "12 AM"
	case hour < 12:
		return fmt.Sprintf("%d AM", hour)
	case hour == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", hour-12)
	}
}
