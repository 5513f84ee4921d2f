package schedule

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"dayplan/internal/backend"
)

func TestCombine(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	got, err := Combine(day, "09:30")
	if err != nil {
		t.Fatalf("Combine returned error: %v", err)
	}
	if got != "2024-03-10T09:30:00" {
		t.Errorf("Expected '2024-03-10T09:30:00', got %s", got)
	}
}

func TestCombine_IgnoresDayLocation(t *testing.T) {
	// The same calendar day expressed in different zones must combine to
	// the same canonical value: only wall-clock fields matter.
	locations := []*time.Location{
		time.UTC,
		time.FixedZone("UTC+12", 12*60*60),
		time.FixedZone("UTC-11", -11*60*60),
	}

	for _, loc := range locations {
		day := time.Date(2024, 3, 10, 0, 0, 0, 0, loc)
		got, err := Combine(day, "09:30")
		if err != nil {
			t.Fatalf("Combine in %v returned error: %v", loc, err)
		}
		if got != "2024-03-10T09:30:00" {
			t.Errorf("Combine in %v = %s, expected 2024-03-10T09:30:00", loc, got)
		}
	}
}

func TestCombine_RejectsMalformedTimeOfDay(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		timeOfDay string
	}{
		{name: "empty", timeOfDay: ""},
		{name: "missing minutes", timeOfDay: "09"},
		{name: "single digit hour", timeOfDay: "9:30"},
		{name: "hour out of range", timeOfDay: "24:00"},
		{name: "minute out of range", timeOfDay: "12:60"},
		{name: "trailing garbage", timeOfDay: "09:30:00"},
		{name: "not numeric", timeOfDay: "ab:cd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Combine(day, tt.timeOfDay)
			if err == nil {
				t.Fatalf("Expected error for %q", tt.timeOfDay)
			}
			var verr *backend.ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("Expected ValidationError, got %T: %v", err, err)
			}
		})
	}
}

func TestExtractCombineRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		day       time.Time
		timeOfDay string
	}{
		{
			name:      "ordinary day",
			day:       time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			timeOfDay: "14:45",
		},
		{
			// US DST spring-forward happened on this date; the wall-clock
			// selection must survive it untouched.
			name:      "DST transition day",
			day:       time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			timeOfDay: "09:30",
		},
		{
			name:      "midnight",
			day:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			timeOfDay: "00:00",
		},
		{
			name:      "last minute of day",
			day:       time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			timeOfDay: "23:59",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canonical, err := Combine(tt.day, tt.timeOfDay)
			if err != nil {
				t.Fatalf("Combine returned error: %v", err)
			}

			day, timeOfDay, err := Extract(canonical)
			if err != nil {
				t.Fatalf("Extract returned error: %v", err)
			}

			if !day.Equal(tt.day) {
				t.Errorf("Extract day = %v, expected %v", day, tt.day)
			}
			if timeOfDay != tt.timeOfDay {
				t.Errorf("Extract timeOfDay = %s, expected %s", timeOfDay, tt.timeOfDay)
			}
		})
	}
}

func TestExtract_Malformed(t *testing.T) {
	if _, _, err := Extract("2024-03-10 09:30"); err == nil {
		t.Error("Expected error for non-canonical layout")
	}
	if _, _, err := Extract(""); err == nil {
		t.Error("Expected error for empty string")
	}
}

func TestBucketHour(t *testing.T) {
	tests := []struct {
		canonical string
		want      int
	}{
		{canonical: "2024-03-10T00:00:00", want: 0},
		{canonical: "2024-03-10T09:30:00", want: 9},
		{canonical: "2024-03-10T23:59:00", want: 23},
	}

	for _, tt := range tests {
		got, err := BucketHour(tt.canonical)
		if err != nil {
			t.Fatalf("BucketHour(%s) returned error: %v", tt.canonical, err)
		}
		if got != tt.want {
			t.Errorf("BucketHour(%s) = %d, expected %d", tt.canonical, got, tt.want)
		}
	}
}

func TestBucketHour_AgreesWithExtract(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	for hour := 0; hour < 24; hour++ {
		canonical, err := Combine(day, fmtHour(hour))
		if err != nil {
			t.Fatalf("Combine returned error: %v", err)
		}

		bucket, err := BucketHour(canonical)
		if err != nil {
			t.Fatalf("BucketHour returned error: %v", err)
		}

		_, timeOfDay, err := Extract(canonical)
		if err != nil {
			t.Fatalf("Extract returned error: %v", err)
		}

		extractedHour, err := strconv.Atoi(timeOfDay[:2])
		if err != nil {
			t.Fatalf("unexpected time of day %q: %v", timeOfDay, err)
		}
		if bucket != extractedHour {
			t.Errorf("BucketHour = %d disagrees with Extract time %s", bucket, timeOfDay)
		}
	}
}

func fmtHour(h int) string {
	return time.Date(2024, 1, 1, h, 15, 0, 0, time.UTC).Format("15:04")
}

func TestSameDay(t *testing.T) {
	canonical := "2024-03-10T09:30:00"

	if !SameDay(canonical, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Error("Expected SameDay true for matching day")
	}
	if SameDay(canonical, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)) {
		t.Error("Expected SameDay false for next day")
	}
	if SameDay("garbage", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Error("Expected SameDay false for malformed canonical value")
	}
}

func TestSameDay_ZoneIndependent(t *testing.T) {
	// An event late in the evening matches its own calendar day even when
	// the day value is expressed in a zone where that instant would fall
	// on the next day. Textual comparison, never instant comparison.
	canonical := "2024-03-10T23:30:00"

	locations := []*time.Location{
		time.UTC,
		time.FixedZone("UTC+14", 14*60*60),
		time.FixedZone("UTC-12", -12*60*60),
	}

	for _, loc := range locations {
		day := time.Date(2024, 3, 10, 0, 0, 0, 0, loc)
		if !SameDay(canonical, day) {
			t.Errorf("Expected SameDay true in %v", loc)
		}
	}
}

func TestFormatForDisplay(t *testing.T) {
	tests := []struct {
		name      string
		canonical string
		use24h    bool
		want      string
	}{
		{name: "morning 12h", canonical: "2024-03-10T09:30:00", use24h: false, want: "9:30 AM"},
		{name: "morning 24h", canonical: "2024-03-10T09:30:00", use24h: true, want: "09:30"},
		{name: "afternoon 12h", canonical: "2024-03-10T15:05:00", use24h: false, want: "3:05 PM"},
		{name: "afternoon 24h", canonical: "2024-03-10T15:05:00", use24h: true, want: "15:05"},
		{name: "midnight 12h", canonical: "2024-03-10T00:00:00", use24h: false, want: "12:00 AM"},
		{name: "midnight 24h", canonical: "2024-03-10T00:00:00", use24h: true, want: "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatForDisplay(tt.canonical, tt.use24h)
			if err != nil {
				t.Fatalf("FormatForDisplay returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("FormatForDisplay = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestParseInstant(t *testing.T) {
	got, err := ParseInstant("2024-03-10T09:30:00Z")
	if err != nil {
		t.Fatalf("ParseInstant returned error: %v", err)
	}
	if !got.Equal(time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)) {
		t.Errorf("ParseInstant = %v, expected 2024-03-10T09:30:00Z", got)
	}

	// The naive canonical layout is not a valid instant
	if _, err := ParseInstant("2024-03-10T09:30:00"); err == nil {
		t.Error("Expected error parsing a zone-less value as an instant")
	}
}
