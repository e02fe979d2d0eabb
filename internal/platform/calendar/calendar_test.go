package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindflow/internal/platform/calendar"
)

func TestParseDateRoundTrip(t *testing.T) {
	t.Parallel()

	d, err := calendar.ParseDate("2024-03-09")
	require.NoError(t, err)
	assert.Equal(t, calendar.Date{Year: 2024, Month: time.March, Day: 9}, d)
	assert.Equal(t, "2024-03-09", d.String())

	_, err = calendar.ParseDate("09/03/2024")
	assert.Error(t, err)
}

func TestDateOrdering(t *testing.T) {
	t.Parallel()

	a := calendar.Date{Year: 2024, Month: time.December, Day: 31}
	b := a.AddDays(1)
	assert.Equal(t, calendar.Date{Year: 2025, Month: time.January, Day: 1}, b)
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Equal(b))
	assert.Equal(t, a, b.AddDays(-1))
}

func TestDateOfUsesLocation(t *testing.T) {
	t.Parallel()

	tokyo := time.FixedZone("JST", 9*3600)
	instant := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-05-01", calendar.DateOf(instant).String())
	assert.Equal(t, "2024-05-02", calendar.DateOf(instant.In(tokyo)).String())
}

func TestNextDayStartAcrossDST(t *testing.T) {
	t.Parallel()

	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// 2024-03-10 is 23 hours long in New York.
	noon := time.Date(2024, 3, 10, 12, 0, 0, 0, loc)
	next := calendar.NextDayStart(noon)
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, loc), next)
	assert.Equal(t, 23*time.Hour, next.Sub(calendar.DayStart(noon)))
}

func TestNextLocalTime(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), calendar.NextLocalTime(now, 0, 0))

	midnight := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), calendar.NextLocalTime(midnight, 0, 0))

	assert.Equal(t, time.Date(2024, 6, 2, 9, 30, 0, 0, time.UTC), calendar.NextLocalTime(midnight, 9, 30))
}
