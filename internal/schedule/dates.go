package schedule

import "time"

const dateKeyLayout = "2006-01-02"

// DateKey formats t as the canonical YYYY-MM-DD key using t's own calendar
// day, not the UTC day. A value at 23:00 local time keys to the local date.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// ParseDateKey returns midnight of the keyed day in local time.
func ParseDateKey(key string) (time.Time, error) {
	return time.ParseInLocation(dateKeyLayout, key, time.Local)
}

// StartOfWeek returns midnight of the Monday at or before t, in t's location.
func StartOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	y, m, d := t.AddDate(0, 0, -(weekday - 1)).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// WeekKeys returns the seven date keys of the week containing t, Monday first.
func WeekKeys(t time.Time) []string {
	start := StartOfWeek(t)
	keys := make([]string, 7)
	for i := 0; i < 7; i++ {
		keys[i] = DateKey(AddDays(start, i))
	}
	return keys
}
