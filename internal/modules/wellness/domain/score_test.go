package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mindflow/internal/modules/wellness/domain"
)

func TestScoreKnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		focus, screen float64
		notifications int
		want          int
	}{
		{name: "fresh day", want: 60},
		{name: "saturated focus only", focus: 120, want: 100},
		{name: "focus beyond saturation", focus: 500, want: 100},
		{name: "all penalties saturated", focus: 0, screen: 180, notifications: 50, want: 0},
		{name: "penalties beyond saturation", screen: 600, notifications: 400, want: 0},
		{name: "half of everything", focus: 60, screen: 90, notifications: 25, want: 50},
		{name: "rounds half up", focus: 1.5, want: 61},
		{name: "negative inputs count as zero", focus: -10, screen: -10, notifications: -3, want: 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, domain.Score(tt.focus, tt.screen, tt.notifications))
		})
	}
}

func TestScoreBoundsAndMonotonicity(t *testing.T) {
	t.Parallel()

	for focus := 0.0; focus <= 240; focus += 15 {
		for screen := 0.0; screen <= 300; screen += 20 {
			for n := 0; n <= 80; n += 8 {
				s := domain.Score(focus, screen, n)
				assert.GreaterOrEqual(t, s, 0)
				assert.LessOrEqual(t, s, 100)

				assert.GreaterOrEqual(t, domain.Score(focus+15, screen, n), s, "more focus must not lower the score")
				assert.LessOrEqual(t, domain.Score(focus, screen+20, n), s, "more screen time must not raise the score")
				assert.LessOrEqual(t, domain.Score(focus, screen, n+8), s, "more notifications must not raise the score")
			}
		}
	}
}

func TestParseHM(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, domain.ParseHM("0h 0m"))
	assert.Equal(t, 150, domain.ParseHM("2h 30m"))
	assert.Equal(t, 61, domain.ParseHM("1h   1m"))
	assert.Equal(t, 0, domain.ParseHM("ninety minutes"))
	assert.Equal(t, 0, domain.ParseHM(""))
}

func TestBandOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, domain.BandGood, domain.BandOf(80))
	assert.Equal(t, domain.BandFair, domain.BandOf(79))
	assert.Equal(t, domain.BandFair, domain.BandOf(60))
	assert.Equal(t, domain.BandLow, domain.BandOf(59))
}
