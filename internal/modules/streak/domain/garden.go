package domain

import (
	"math"

	"mindflow/internal/platform/calendar"
)

const (
	gardenFullGrowthDays = 30
	CalendarDays         = 30
)

type Stage string

const (
	StageSeedling Stage = "seedling"
	StageLeaves   Stage = "leaves"
	StageBranches Stage = "branches"
	StageFlowers  Stage = "flowers"
	StageFruit    Stage = "fruit"
)

// Garden is the plant grown by a streak.
type Garden struct {
	Streak   int
	Stage    Stage
	Progress float64
	Leaves   bool
	Branches bool
	Flowers  bool
	Fruit    bool
}

func GardenFor(streak int) Garden {
	if streak < 0 {
		streak = 0
	}
	g := Garden{
		Streak:   streak,
		Progress: math.Min(float64(streak)/gardenFullGrowthDays, 1),
		Leaves:   streak >= 5,
		Branches: streak >= 10,
		Flowers:  streak >= 15,
		Fruit:    streak >= 20,
	}
	switch {
	case g.Fruit:
		g.Stage = StageFruit
	case g.Flowers:
		g.Stage = StageFlowers
	case g.Branches:
		g.Stage = StageBranches
	case g.Leaves:
		g.Stage = StageLeaves
	default:
		g.Stage = StageSeedling
	}
	return g
}

type DayStatus string

const (
	DayToday     DayStatus = "today"
	DayCompleted DayStatus = "completed"
	DayRest      DayStatus = "rest_day"
)

type CalendarDay struct {
	Date   calendar.Date
	Status DayStatus
}

// Calendar lays out the CalendarDays days ending today, oldest first.
func Calendar(today calendar.Date, completed []calendar.Date) []CalendarDay {
	done := make(map[calendar.Date]bool, len(completed))
	for _, d := range completed {
		done[d] = true
	}
	days := make([]CalendarDay, 0, CalendarDays)
	for i := CalendarDays - 1; i >= 0; i-- {
		d := today.AddDays(-i)
		status := DayRest
		switch {
		case i == 0:
			status = DayToday
		case done[d]:
			status = DayCompleted
		}
		days = append(days, CalendarDay{Date: d, Status: status})
	}
	return days
}
