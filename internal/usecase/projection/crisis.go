package projection

import (
	"math"

	"github.com/simaogato/wealthflow-advisor/internal/domain"
)

// crisisEvent is a scripted drawdown followed by a recovery window (all in trading days)
type crisisEvent struct {
	start      int
	duration   int
	dropPerDay float64
	recovery   int
}

// crisisEvents places the two scripted crises at 30% and 70% of the horizon
// An event whose start falls outside (0, totalDays) is dropped whole
func crisisEvents(totalDays int) []crisisEvent {
	candidates := []crisisEvent{
		{
			start:      int(math.Floor(float64(totalDays) * 0.3)),
			duration:   5,
			dropPerDay: 0.05,
			recovery:   3 * domain.TradingDaysPerYear,
		},
		{
			start:      int(math.Floor(float64(totalDays) * 0.7)),
			duration:   5,
			dropPerDay: 0.03,
			recovery:   2 * domain.TradingDaysPerYear,
		},
	}

	events := make([]crisisEvent, 0, len(candidates))
	for _, c := range candidates {
		if c.start > 0 && c.start < totalDays {
			events = append(events, c)
		}
	}
	return events
}

func (c crisisEvent) inCrisis(day int) bool {
	return day >= c.start && day < c.start+c.duration
}

func (c crisisEvent) inRecovery(day int) bool {
	end := c.start + c.duration
	return day >= end && day < end+c.recovery
}

// crisisPolicy applies the scripted events; a crisis day wins over any recovery window
func crisisPolicy(events []crisisEvent) dayPolicy {
	return func(day int) dayStep {
		for _, c := range events {
			if c.inCrisis(day) {
				return dayStep{kind: stepCrisis, drop: c.dropPerDay}
			}
		}
		for _, c := range events {
			if c.inRecovery(day) {
				return dayStep{kind: stepRecovery}
			}
		}
		return dayStep{kind: stepNormal}
	}
}

