package engine

import (
	"testing"
	"time"
)

func TestDayKeyUsesReferenceZone(t *testing.T) {
	// 18:31 UTC is 00:01 the next day at UTC+05:30.
	at := time.Date(2026, 3, 2, 18, 31, 0, 0, time.UTC)
	if got := DayKey(at); got != "2026-03-03" {
		t.Fatalf("DayKey = %q, want 2026-03-03", got)
	}
	// One minute earlier is still the same day.
	at = time.Date(2026, 3, 2, 18, 29, 0, 0, time.UTC)
	if got := DayKey(at); got != "2026-03-02" {
		t.Fatalf("DayKey = %q, want 2026-03-02", got)
	}
}

func TestWeekdayOf(t *testing.T) {
	// 2026-03-02 is a Monday in the reference zone.
	at := time.Date(2026, 3, 2, 12, 0, 0, 0, ReferenceZone)
	if got := WeekdayOf(at); got != 1 {
		t.Fatalf("WeekdayOf = %d, want 1 (Monday)", got)
	}
	// 19:00 UTC Monday is already Tuesday at UTC+05:30.
	at = time.Date(2026, 3, 2, 19, 0, 0, 0, time.UTC)
	if got := WeekdayOf(at); got != 2 {
		t.Fatalf("WeekdayOf = %d, want 2 (Tuesday)", got)
	}
}

func TestParseDayKeyRoundTrip(t *testing.T) {
	d, err := parseDayKey("2026-03-02")
	if err != nil {
		t.Fatalf("parseDayKey: %v", err)
	}
	if got := DayKey(d); got != "2026-03-02" {
		t.Fatalf("round trip = %q, want 2026-03-02", got)
	}
	if _, err := parseDayKey("garbage"); err == nil {
		t.Fatal("parseDayKey accepted garbage")
	}
}
