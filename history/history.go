// Copyright (c) 2025 Yusuke Miyake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package history

import (
	"math"
	"time"

	"github.com/ymiyake/manpokei/models"
)

// Day is one entry in the rendered history window.
type Day struct {
	Date     string
	Steps    int
	Goal     int
	Achieved bool
}

// Summary aggregates a fixed window of daily records, newest first.
type Summary struct {
	Days     []Day
	Total    int
	Average  int
	Achieved int
}

// Build assembles a Summary for the window ending at today. Server
// records are matched by date; today always shows the live counter so
// unsynced steps are visible immediately. Dates with no record become
// zero placeholders carrying the live goal. The average divides by
// days that actually have steps, not by the window size.
func Build(records []models.DailyStepRecord, today time.Time, days, liveSteps, liveGoal int) Summary {
	byDate := make(map[string]models.DailyStepRecord, len(records))
	for _, r := range records {
		byDate[r.Date] = r
	}

	todayKey := today.Format(models.DateLayout)

	var s Summary
	s.Days = make([]Day, 0, days)

	total := 0
	withData := 0
	for i := 0; i < days; i++ {
		date := today.AddDate(0, 0, -i).Format(models.DateLayout)

		var d Day
		switch {
		case date == todayKey:
			d = Day{Date: date, Steps: liveSteps, Goal: liveGoal}
		default:
			if r, ok := byDate[date]; ok {
				d = Day{Date: date, Steps: r.Steps, Goal: r.Goal}
			} else {
				d = Day{Date: date, Goal: liveGoal}
			}
		}

		d.Achieved = d.Goal > 0 && d.Steps >= d.Goal
		if d.Achieved {
			s.Achieved++
		}
		if d.Steps > 0 {
			total += d.Steps
			withData++
		}
		s.Days = append(s.Days, d)
	}

	s.Total = total
	if withData > 0 {
		s.Average = int(math.Round(float64(total) / float64(withData)))
	}
	return s
}
