package domain_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindflow/internal/modules/streak/domain"
	"mindflow/internal/platform/calendar"
)

func TestDeriveStatusScenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		previous domain.State
		fresh    domain.State
		want     domain.Status
	}{
		{name: "increase", previous: domain.State{CurrentStreak: 3}, fresh: domain.State{CurrentStreak: 4}, want: domain.StatusIncreased},
		{name: "break", previous: domain.State{CurrentStreak: 5}, fresh: domain.State{CurrentStreak: 0}, want: domain.StatusBroken},
		{name: "no streak", previous: domain.State{}, fresh: domain.State{}, want: domain.StatusNoStreak},
		{name: "decrease", previous: domain.State{CurrentStreak: 4}, fresh: domain.State{CurrentStreak: 2}, want: domain.StatusDecreased},
		{name: "first mirror of live streak", previous: domain.State{}, fresh: domain.State{CurrentStreak: 7}, want: domain.StatusIncreased},
		{
			name:     "equal keeps reported label",
			previous: domain.State{CurrentStreak: 6, Status: domain.StatusIncreased},
			fresh:    domain.State{CurrentStreak: 6, Status: domain.StatusDecreased},
			want:     domain.StatusDecreased,
		},
		{
			name:     "equal keeps previous label when report is unknown",
			previous: domain.State{CurrentStreak: 6, Status: domain.StatusDecreased},
			fresh:    domain.State{CurrentStreak: 6, Status: "mystery"},
			want:     domain.StatusDecreased,
		},
		{
			name:     "equal without any label",
			previous: domain.State{CurrentStreak: 2},
			fresh:    domain.State{CurrentStreak: 2},
			want:     domain.StatusIncreased,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, domain.DeriveStatus(tt.previous, tt.fresh))
		})
	}
}

func TestCompletionPercentGuard(t *testing.T) {
	t.Parallel()

	got := domain.CompletionPercent(0, 0)
	assert.Zero(t, got)
	assert.False(t, math.IsNaN(got))
	assert.Zero(t, domain.CompletionPercent(3, 0))
	assert.InDelta(t, 66.666, domain.CompletionPercent(2, 3), 0.01)
	assert.Equal(t, 100.0, domain.CompletionPercent(5, 3))
	assert.Zero(t, domain.State{TodayCompleted: 1}.Percent())
}

func TestInconsistencies(t *testing.T) {
	t.Parallel()

	assert.Empty(t, domain.Inconsistencies(domain.State{CurrentStreak: 2, LongestStreak: 2, TodayCompleted: 1, TodayTotal: 3}))
	assert.Len(t, domain.Inconsistencies(domain.State{CurrentStreak: 3, LongestStreak: 1, TodayCompleted: 4, TodayTotal: 3}), 2)
}

func TestThemeCoversEveryStatus(t *testing.T) {
	t.Parallel()

	tones := map[domain.Status]domain.Tone{
		domain.StatusIncreased: domain.TonePositive,
		domain.StatusDecreased: domain.ToneCaution,
		domain.StatusBroken:    domain.ToneAlert,
		domain.StatusNoStreak:  domain.ToneMuted,
	}
	for status, tone := range tones {
		msg, got := domain.Theme(status)
		assert.NotEmpty(t, msg)
		assert.Equal(t, tone, got, status)
	}
}

func TestGardenFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, domain.StageSeedling, domain.GardenFor(0).Stage)
	assert.Equal(t, domain.StageSeedling, domain.GardenFor(-3).Stage)
	assert.Equal(t, domain.StageLeaves, domain.GardenFor(5).Stage)
	assert.Equal(t, domain.StageBranches, domain.GardenFor(12).Stage)
	assert.Equal(t, domain.StageFlowers, domain.GardenFor(15).Stage)

	fruit := domain.GardenFor(45)
	assert.Equal(t, domain.StageFruit, fruit.Stage)
	assert.True(t, fruit.Leaves && fruit.Branches && fruit.Flowers && fruit.Fruit)
	assert.Equal(t, 1.0, fruit.Progress)
	assert.InDelta(t, 0.5, domain.GardenFor(15).Progress, 1e-9)
}

func TestCalendar(t *testing.T) {
	t.Parallel()

	today := calendar.Date{Year: 2026, Month: time.March, Day: 1}
	completed := []calendar.Date{today.AddDays(-1), today.AddDays(-3), today.AddDays(-40), today}

	days := domain.Calendar(today, completed)
	require.Len(t, days, domain.CalendarDays)
	assert.Equal(t, today.AddDays(-29), days[0].Date)
	assert.Equal(t, domain.DayToday, days[29].Status)
	assert.Equal(t, domain.DayCompleted, days[28].Status)
	assert.Equal(t, domain.DayRest, days[27].Status)
	assert.Equal(t, domain.DayCompleted, days[26].Status)
}
