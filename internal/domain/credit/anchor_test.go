//go:build unit

package credit_test

import (
	"testing"
	"time"

	"clubhouse/internal/domain/credit"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsAnniversary(t *testing.T) {
	jan31 := date(2023, time.January, 31)

	tests := []struct {
		name  string
		start time.Time
		today time.Time
		want  bool
	}{
		{name: "same day of month", start: date(2024, time.March, 15), today: date(2024, time.July, 15), want: true},
		{name: "different day of month", start: date(2024, time.March, 15), today: date(2024, time.July, 16), want: false},
		{name: "31st anchor on feb 28 non-leap", start: jan31, today: date(2025, time.February, 28), want: true},
		{name: "31st anchor on feb 29 leap", start: jan31, today: date(2024, time.February, 29), want: true},
		{name: "31st anchor not on feb 28 leap", start: jan31, today: date(2024, time.February, 28), want: false},
		{name: "31st anchor on apr 30", start: jan31, today: date(2024, time.April, 30), want: true},
		{name: "31st anchor on jun 30", start: jan31, today: date(2024, time.June, 30), want: true},
		{name: "31st anchor on mar 31", start: jan31, today: date(2024, time.March, 31), want: true},
		{name: "31st anchor not on mar 30", start: jan31, today: date(2024, time.March, 30), want: false},
		{name: "30th anchor on feb 28", start: date(2024, time.January, 30), today: date(2025, time.February, 28), want: true},
		{name: "30th anchor not on mar 31", start: date(2024, time.January, 30), today: date(2024, time.March, 31), want: false},
		{name: "start day itself", start: jan31, today: jan31, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, credit.IsAnniversary(tt.start, tt.today))
		})
	}
}

func TestIsAnniversary_Jan31FiresOncePerMonth(t *testing.T) {
	start := date(2024, time.January, 31)
	fired := map[time.Month]int{}

	for d := date(2024, time.February, 1); d.Year() == 2024; d = d.AddDate(0, 0, 1) {
		if credit.IsAnniversary(start, d) {
			fired[d.Month()]++
			assert.Equal(t, 1, d.AddDate(0, 0, 1).Day(), "expected last day of month, got %s", d.Format(time.DateOnly))
		}
	}

	for m := time.February; m <= time.December; m++ {
		assert.Equal(t, 1, fired[m], "month %s", m)
	}
}

func TestNextAnchor(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		from  time.Time
		want  time.Time
	}{
		{name: "regular month", start: date(2024, time.March, 15), from: date(2024, time.July, 15), want: date(2024, time.August, 15)},
		{name: "clamped into february", start: date(2024, time.January, 31), from: date(2025, time.January, 31), want: date(2025, time.February, 28)},
		{name: "restored after short month", start: date(2024, time.January, 31), from: date(2025, time.February, 28), want: date(2025, time.March, 31)},
		{name: "year rollover", start: date(2024, time.March, 10), from: date(2024, time.December, 10), want: date(2025, time.January, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, credit.NextAnchor(tt.start, tt.from))
		})
	}
}
