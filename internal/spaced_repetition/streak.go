package spaced_repetition

import "time"

// CivilDay returns the calendar date of t in loc as midnight UTC.
// Two civil days are always a whole number of 24h apart, regardless of DST.
func CivilDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts calendar days from a to b in loc
func DaysBetween(a, b time.Time, loc *time.Location) int {
	return int(CivilDay(b, loc).Sub(CivilDay(a, loc)).Hours() / 24)
}

// NextStreak returns the streak after a review at now.
// Reviews on the same day keep the streak, a review the day after the last
// session extends it, anything else starts over at 1.
func NextStreak(lastSession *time.Time, current int, now time.Time, loc *time.Location) int {
	if lastSession == nil {
		return 1
	}
	switch DaysBetween(*lastSession, now, loc) {
	case 0:
		return current
	case 1:
		return current + 1
	default:
		return 1
	}
}
