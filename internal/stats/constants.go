package stats

import "time"

// Rolling windows for period stats
const (
	WeekWindow  = 7 * 24 * time.Hour
	MonthWindow = 30 * 24 * time.Hour
)
