package domain

import (
	"testing"
	"time"

	"mindflow/internal/platform/calendar"
)

func TestFormatHM(t *testing.T) {
	t.Parallel()
	cases := map[time.Duration]string{
		0:                            "0h 0m",
		59 * time.Second:             "0h 0m",
		61 * time.Minute:             "1h 1m",
		3*time.Hour + 59*time.Minute: "3h 59m",
		-time.Minute:                 "0h 0m",
	}
	for in, want := range cases {
		if got := FormatHM(in); got != want {
			t.Fatalf("FormatHM(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestReadingAddsOpenInterval(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	st := ScreenTime{Total: 30 * time.Minute, SessionStart: start, Tracking: true}

	if got := st.Reading(start.Add(15 * time.Minute)); got != 45*time.Minute {
		t.Fatalf("expected 45m, got %s", got)
	}
	if got := st.Reading(start.Add(-time.Hour)); got != 30*time.Minute {
		t.Fatalf("clock behind session start must not subtract, got %s", got)
	}
	st.Tracking = false
	if got := st.Reading(start.Add(time.Hour)); got != 30*time.Minute {
		t.Fatalf("idle reading must equal total, got %s", got)
	}
}

func TestNeedsRollover(t *testing.T) {
	t.Parallel()
	today := calendar.Date{Year: 2026, Month: time.January, Day: 5}
	if !(ScreenTime{}).NeedsRollover(today) {
		t.Fatalf("missing marker must roll over")
	}
	if (ScreenTime{Date: today, HasDate: true}).NeedsRollover(today) {
		t.Fatalf("same day must not roll over")
	}
	if !(ScreenTime{Date: today.AddDays(-1), HasDate: true}).NeedsRollover(today) {
		t.Fatalf("previous day must roll over")
	}
}
