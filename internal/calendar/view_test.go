package calendar

import (
	"testing"
	"time"

	"dayplan/internal/events"
)

func sampleEvents() []events.Event {
	return []events.Event{
		{ID: 1, Title: "Standup", DateTime: "2024-03-10T09:30:00"},
		{ID: 2, Title: "Lunch", DateTime: "2024-03-10T12:00:00"},
		{ID: 3, Title: "Late sync", DateTime: "2024-03-10T23:30:00"},
		{ID: 4, Title: "Planning", DateTime: "2024-03-15T10:00:00"},
	}
}

func TestDerive_MarkedDates(t *testing.T) {
	view := Derive(sampleEvents(), SelectDay(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)))

	if len(view.Marked) != 2 {
		t.Errorf("Expected 2 marked days, got %d", len(view.Marked))
	}
	if !view.HasEvents(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Error("Expected 2024-03-10 marked")
	}
	if !view.HasEvents(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Error("Expected 2024-03-15 marked")
	}
	if view.HasEvents(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)) {
		t.Error("Expected 2024-03-11 unmarked")
	}
}

func TestDerive_MarkedDatesZoneIndependent(t *testing.T) {
	// A 23:30 event must mark its own calendar day even when the grid's
	// day values carry an extreme zone offset.
	evs := []events.Event{{ID: 1, Title: "Late", DateTime: "2024-03-10T23:30:00"}}

	for _, loc := range []*time.Location{time.UTC, time.FixedZone("UTC+14", 14*3600), time.FixedZone("UTC-12", -12*3600)} {
		view := Derive(evs, SelectDay(time.Date(2024, 3, 10, 0, 0, 0, 0, loc)))
		if !view.HasEvents(time.Date(2024, 3, 10, 0, 0, 0, 0, loc)) {
			t.Errorf("Expected 2024-03-10 marked in %v", loc)
		}
		if len(view.Selected) != 1 {
			t.Errorf("Expected the event selected in %v, got %d", loc, len(view.Selected))
		}
	}
}

func TestDerive_SelectedOrderedByTime(t *testing.T) {
	view := Derive(sampleEvents(), SelectDay(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)))

	if len(view.Selected) != 3 {
		t.Fatalf("Expected 3 selected events, got %d", len(view.Selected))
	}
	for i, wantID := range []int64{1, 2, 3} {
		if view.Selected[i].ID != wantID {
			t.Errorf("Expected event %d at position %d, got %d", wantID, i, view.Selected[i].ID)
		}
	}
}

func TestDerive_RangeSelectionYieldsNoSelectedEvents(t *testing.T) {
	sel := SelectRange(
		time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC),
	)

	view := Derive(sampleEvents(), sel)
	if len(view.Selected) != 0 {
		t.Errorf("Expected empty selected events for range selection, got %d", len(view.Selected))
	}
	// Marking is unaffected by the selection kind
	if len(view.Marked) != 2 {
		t.Errorf("Expected marked days regardless of selection, got %d", len(view.Marked))
	}
}

func TestNewDayView_FixedTwentyFourBuckets(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	view := NewDayView(sampleEvents(), day, DefaultSettings())

	if len(view.Buckets) != 24 {
		t.Fatalf("Expected 24 buckets, got %d", len(view.Buckets))
	}

	for hour, bucket := range view.Buckets {
		if bucket.Hour != hour {
			t.Errorf("Bucket %d carries hour %d", hour, bucket.Hour)
		}
	}

	// Each event of the day is in exactly one bucket, at its local hour
	if len(view.Buckets[9].Events) != 1 || view.Buckets[9].Events[0].ID != 1 {
		t.Errorf("Expected event 1 in bucket 9, got %+v", view.Buckets[9].Events)
	}
	if len(view.Buckets[12].Events) != 1 || view.Buckets[12].Events[0].ID != 2 {
		t.Errorf("Expected event 2 in bucket 12, got %+v", view.Buckets[12].Events)
	}
	if len(view.Buckets[23].Events) != 1 || view.Buckets[23].Events[0].ID != 3 {
		t.Errorf("Expected event 3 in bucket 23, got %+v", view.Buckets[23].Events)
	}

	// Hours without events keep their empty buckets
	total := 0
	for _, bucket := range view.Buckets {
		total += len(bucket.Events)
	}
	if total != 3 {
		t.Errorf("Expected 3 bucketed events, got %d", total)
	}
}

func TestNewDayView_ExcludesOtherDays(t *testing.T) {
	view := NewDayView(sampleEvents(), time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), DefaultSettings())

	if len(view.Buckets[10].Events) != 1 || view.Buckets[10].Events[0].ID != 4 {
		t.Errorf("Expected only event 4 in bucket 10, got %+v", view.Buckets[10].Events)
	}
	if len(view.Buckets[9].Events) != 0 {
		t.Errorf("Expected no 2024-03-10 events, got %+v", view.Buckets[9].Events)
	}
}

func TestHourLabels(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	twelve := NewDayView(nil, day, Settings{Use24h: false})
	if twelve.Buckets[0].Label != "12 AM" {
		t.Errorf("Expected '12 AM', got %q", twelve.Buckets[0].Label)
	}
	if twelve.Buckets[9].Label != "9 AM" {
		t.Errorf("Expected '9 AM', got %q", twelve.Buckets[9].Label)
	}
	if twelve.Buckets[12].Label != "12 PM" {
		t.Errorf("Expected '12 PM', got %q", twelve.Buckets[12].Label)
	}
	if twelve.Buckets[23].Label != "11 PM" {
		t.Errorf("Expected '11 PM', got %q", twelve.Buckets[23].Label)
	}

	twentyFour := NewDayView(nil, day, Settings{Use24h: true})
	if twentyFour.Buckets[0].Label != "00:00" {
		t.Errorf("Expected '00:00', got %q", twentyFour.Buckets[0].Label)
	}
	if twentyFour.Buckets[23].Label != "23:00" {
		t.Errorf("Expected '23:00', got %q", twentyFour.Buckets[23].Label)
	}
}

func TestSettings_LocationFallback(t *testing.T) {
	s := Settings{Timezone: "Not/AZone"}
	if s.Location() != time.UTC {
		t.Error("Expected UTC fallback for unknown timezone")
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.Timezone != "US/Eastern" {
		t.Errorf("Expected default timezone US/Eastern, got %s", s.Timezone)
	}
	if s.Use24h {
		t.Error("Expected 12-hour display by default")
	}
}
