package engine

import "time"

// ReferenceZone is the fixed reference zone (UTC+5:30) used for all day
// boundary and eligibility computations. A fixed offset keeps day keys
// deterministic across hosts with different tz databases.
var ReferenceZone = time.FixedZone("UTC+05:30", 5*3600+30*60)

const dayKeyLayout = "2006-01-02"

// Clock supplies "now". The engine takes it as an interface so rollover
// behavior is testable at controlled instants.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// DayKey returns the calendar day of t in the reference zone.
func DayKey(t time.Time) string {
	return t.In(ReferenceZone).Format(dayKeyLayout)
}

// WeekdayOf returns the weekday index of t in the reference zone
// (0=Sunday..6=Saturday).
func WeekdayOf(t time.Time) int {
	return int(t.In(ReferenceZone).Weekday())
}

func parseDayKey(key string) (time.Time, error) {
	return time.ParseInLocation(dayKeyLayout, key, ReferenceZone)
}

// FormatClockTime renders an instant as a reference-zone wall clock time
// for display.
func FormatClockTime(t time.Time) string {
	return t.In(ReferenceZone).Format("3:04 PM")
}
