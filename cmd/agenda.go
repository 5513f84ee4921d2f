package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"dayplan/internal/calendar"
	"dayplan/internal/events"
	"dayplan/internal/ics"
	"dayplan/internal/schedule"
)

func newAgendaCmd() *cobra.Command {
	var date, exportPath string

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Show the day view for a date",
		Long: `Fetch events from the backend and render the hourly day view for the
given date. All 24 hour rows are shown, empty hours included, so the
shape of the day is visible at a glance.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine(nil)
			if err != nil {
				return err
			}

			day, err := resolveDay(date)
			if err != nil {
				return err
			}

			evs, err := eng.store.Refresh(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to refresh events: %w", err)
			}

			if exportPath != "" {
				return exportDay(exportPath, evs, day)
			}

			view := calendar.NewDayView(evs, day, eng.settings)
			eng.metrics.RecordRecomputation(cmd.Context(), "day_view")
			renderDayView(cmd.OutOrStdout(), view, eng.settings)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to show (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&exportPath, "export", "", "Write the day's events to an iCalendar file instead of rendering")
	return cmd
}

func renderDayView(w io.Writer, view calendar.DayView, settings calendar.Settings) {
	fmt.Fprintf(w, "%s\n\n", view.Day.Format("Monday, January 2 2006"))

	for _, bucket := range view.Buckets {
		if len(bucket.Events) == 0 {
			fmt.Fprintf(w, "%7s |\n", bucket.Label)
			continue
		}
		for i, ev := range bucket.Events {
			label := bucket.Label
			if i > 0 {
				label = ""
			}
			start, err := schedule.FormatForDisplay(ev.DateTime, settings.Use24h)
			if err != nil {
				start = "?"
			}
			line := ev.Title
			if ev.Description != "" {
				line += " · " + strings.SplitN(ev.Description, "\n", 2)[0]
			}
			fmt.Fprintf(w, "%7s | %s  %s\n", label, start, line)
		}
	}
}

// exportDay writes the day's events as an iCalendar file. Times are
// exported as floating local times, matching how the backend stores
// them.
func exportDay(path string, evs []events.Event, day time.Time) error {
	selected := calendar.EventsOn(evs, day)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := ics.Export(f, selected); err != nil {
		return fmt.Errorf("failed to export calendar: %w", err)
	}
	return nil
}
