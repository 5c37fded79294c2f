// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const (
	secondsInAMinute = 60
	secondsInAnHour  = 3600
	minutesInAnHour  = 60
)

// KeyLayout is the fixed-width layout used to persist timestamps so that
// they sort chronologically as text.
const KeyLayout = "2006-01-02 15:04:05.000000000"

type Period string

const (
	PeriodAllTime   Period = "all-time"
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	Period7Days     Period = "7days"
	Period14Days    Period = "14days"
	Period30Days    Period = "30days"
	Period90Days    Period = "90days"
	Period180Days   Period = "180days"
	Period365Days   Period = "365days"
)

var Range = map[Period]int{
	PeriodAllTime:   0,
	PeriodToday:     0,
	PeriodYesterday: -1,
	Period7Days:     -6,
	Period14Days:    -13,
	Period30Days:    -29,
	Period90Days:    -89,
	Period180Days:   -179,
	Period365Days:   -364,
}

var PeriodCollection = []Period{
	PeriodAllTime,
	PeriodToday,
	PeriodYesterday,
	Period7Days,
	Period14Days,
	Period30Days,
	Period90Days,
	Period180Days,
	Period365Days,
}

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = int(math.Floor(float64(val) / float64(minutesInAnHour)))
	mins = val % minutesInAnHour

	return
}

// SplitHMS breaks a duration into whole hours, minutes and seconds.
// Negative durations are treated as zero.
func SplitHMS(d time.Duration) (h, m, s int) {
	total := int(d / time.Second)
	if total < 0 {
		total = 0
	}

	h = total / secondsInAnHour
	m = total % secondsInAnHour / secondsInAMinute
	s = total % secondsInAMinute

	return
}

// JoinHMS is the inverse of SplitHMS.
func JoinHMS(h, m, s int) time.Duration {
	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second
}

// FormatHMS renders a duration as HH:MM:SS.
func FormatHMS(d time.Duration) string {
	h, m, s := SplitHMS(d)

	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the last nanosecond of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		int(time.Second-time.Nanosecond),
		t.Location(),
	)
}

func DayFormat(t time.Time) int {
	d := fmt.Sprintf("%d%02d%02d", t.Year(), t.Month(), t.Day())

	i, _ := strconv.Atoi(d)

	return i
}

// ToKey converts a time value to its persisted text form.
func ToKey(t time.Time) string {
	return t.UTC().Format(KeyLayout)
}

// FromKey parses a value produced by ToKey and returns it in local time.
func FromKey(s string) (time.Time, error) {
	t, err := time.ParseInLocation(KeyLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}

	return t.Local(), nil
}

// FromStrAt parses an absolute or relative date such as "yesterday" or
// "3 days ago", resolving relative dates against now.
func FromStrAt(s string, now time.Time) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime:     now,
		DefaultTimezone: now.Location(),
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, err
	}

	return dt.Time, nil
}

// PeriodBounds returns the start and end of a named reporting period.
func PeriodBounds(p Period, now time.Time) (start, end time.Time) {
	end = RoundToEnd(now)

	if p == PeriodAllTime {
		return time.Time{}, end
	}

	start = RoundToStart(now.AddDate(0, 0, Range[p]))

	if p == PeriodYesterday {
		end = RoundToEnd(start)
	}

	return start, end
}
