package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitHMS(t *testing.T) {
	cases := []struct {
		name    string
		d       time.Duration
		h, m, s int
	}{
		{"zero", 0, 0, 0, 0},
		{"default working period", 900 * time.Second, 0, 15, 0},
		{"mixed", 3*time.Hour + 25*time.Minute + 9*time.Second, 3, 25, 9},
		{"sub-second truncated", 1500 * time.Millisecond, 0, 0, 1},
		{"negative", -5 * time.Second, 0, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, m, s := SplitHMS(tc.d)

			assert.Equal(t, []int{tc.h, tc.m, tc.s}, []int{h, m, s})
		})
	}
}

func TestJoinHMS(t *testing.T) {
	assert.Equal(t, 3*time.Hour+25*time.Minute+9*time.Second, JoinHMS(3, 25, 9))
	assert.Equal(t, time.Duration(0), JoinHMS(0, 0, 0))
}

func TestFormatHMS(t *testing.T) {
	assert.Equal(t, "00:15:00", FormatHMS(15*time.Minute))
	assert.Equal(t, "01:02:03", FormatHMS(time.Hour+2*time.Minute+3*time.Second))
	assert.Equal(t, "00:00:00", FormatHMS(0))
}

func TestKeyRoundTrip(t *testing.T) {
	in := time.Date(2026, 10, 18, 9, 30, 0, 123, time.Local)

	key := ToKey(in)

	out, err := FromKey(key)
	require.NoError(t, err)

	assert.True(t, in.Equal(out))
}

func TestKeysSortChronologically(t *testing.T) {
	a := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	b := a.Add(500 * time.Millisecond)
	c := a.Add(10 * time.Hour)

	assert.Less(t, ToKey(a), ToKey(b))
	assert.Less(t, ToKey(b), ToKey(c))
}

func TestFromKeyInvalid(t *testing.T) {
	_, err := FromKey("yesterday")
	assert.Error(t, err)
}

func TestPeriodBounds(t *testing.T) {
	now := time.Date(2026, 10, 18, 14, 0, 0, 0, time.UTC)

	start, end := PeriodBounds(Period7Days, now)
	assert.Equal(t, time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 10, 18, 23, 59, 59, 999999999, time.UTC), end)

	start, end = PeriodBounds(PeriodYesterday, now)
	assert.Equal(t, time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 10, 17, 23, 59, 59, 999999999, time.UTC), end)

	start, _ = PeriodBounds(PeriodAllTime, now)
	assert.True(t, start.IsZero())
}

func TestRoundToEndCoversLastSecond(t *testing.T) {
	late := time.Date(2026, 10, 18, 23, 59, 59, 500000000, time.UTC)

	end := RoundToEnd(late)
	assert.False(t, late.After(end))
	assert.Less(t, ToKey(late), ToKey(end))
	assert.Equal(t, RoundToStart(late).AddDate(0, 0, 1), end.Add(time.Nanosecond))
}

func TestDayFormat(t *testing.T) {
	assert.Equal(t, 20261018, DayFormat(time.Date(2026, 10, 18, 1, 0, 0, 0, time.UTC)))
}

func TestFromStrAtUsesLocationOfNow(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	now := time.Date(2026, 10, 18, 1, 30, 0, 0, loc)

	cases := []struct {
		in   string
		want time.Time
	}{
		{in: "2026-10-17", want: time.Date(2026, 10, 17, 0, 0, 0, 0, loc)},
		{in: "yesterday", want: time.Date(2026, 10, 17, 0, 0, 0, 0, loc)},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := FromStrAt(tc.in, now)
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(RoundToStart(got)), "got %s", got)
		})
	}
}
