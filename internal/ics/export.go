package ics

import (
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"dayplan/internal/events"
	"dayplan/internal/schedule"
)

// icsLayout is the iCalendar floating local-time form. No trailing "Z":
// the exported times are wall-clock values, same as the canonical store.
const icsLayout = "20060102T150405"

// defaultDuration pads zero-length events so calendar apps render them.
const defaultDuration = time.Hour

// Export writes the given events as an iCalendar document. Event start
// times are emitted as floating local times; converting them to an
// instant here would undo the engine's no-conversion invariant.
func Export(w io.Writer, evs []events.Event) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//dayplan//EN")

	for _, ev := range evs {
		start, err := schedule.ParseWallClock(ev.DateTime)
		if err != nil {
			return fmt.Errorf("failed to export event %d: %w", ev.ID, err)
		}

		vevent := cal.AddEvent(fmt.Sprintf("%s@dayplan", uuid.NewString()))
		vevent.SetProperty(ical.ComponentPropertyDtStart, start.Format(icsLayout))
		vevent.SetProperty(ical.ComponentPropertyDtEnd, start.Add(defaultDuration).Format(icsLayout))
		vevent.SetSummary(ev.Title)
		if ev.Description != "" {
			vevent.SetDescription(ev.Description)
		}
		vevent.SetDtStampTime(time.Now().UTC())
	}

	return cal.SerializeTo(w)
}
