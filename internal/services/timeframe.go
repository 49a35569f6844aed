package services

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	TimeframeThisMonth = "thisMonth"
	TimeframeLastMonth = "lastMonth"
	TimeframeThisYear  = "thisYear"
	TimeframeLastYear  = "lastYear"
)

// timeframeRange maps a symbolic timeframe to an inclusive [start, end]
// window around now. Month and year windows end on the last instant of the
// period (23:59:59.999). ok is false for unrecognized timeframes, which the
// analytics queries treat as "no filter".
func timeframeRange(now time.Time, timeframe string) (start, end time.Time, ok bool) {
	year, month := now.Year(), now.Month()
	loc := now.Location()

	switch timeframe {
	case TimeframeThisMonth:
		start = time.Date(year, month, 1, 0, 0, 0, 0, loc)
	case TimeframeLastMonth:
		start = time.Date(year, month, 1, 0, 0, 0, 0, loc).AddDate(0, -1, 0)
	case TimeframeThisYear:
		start = time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	case TimeframeLastYear:
		start = time.Date(year-1, time.January, 1, 0, 0, 0, 0, loc)
	default:
		return time.Time{}, time.Time{}, false
	}

	switch timeframe {
	case TimeframeThisMonth, TimeframeLastMonth:
		end = start.AddDate(0, 1, 0).Add(-time.Millisecond)
	default:
		end = start.AddDate(1, 0, 0).Add(-time.Millisecond)
	}
	return start, end, true
}

// timeframeFilter builds the orderDate match for a timeframe, or an empty
// filter (all orders) when the timeframe is unknown or absent.
func timeframeFilter(now time.Time, timeframe string) bson.M {
	start, end, ok := timeframeRange(now, timeframe)
	if !ok {
		return bson.M{}
	}
	return bson.M{"orderDate": bson.M{"$gte": start, "$lte": end}}
}

// comparisonTimeframe picks the window a percentage change is computed
// against: thisYear compares to lastYear, everything else to lastMonth.
func comparisonTimeframe(timeframe string) string {
	if timeframe == TimeframeThisYear {
		return TimeframeLastYear
	}
	return TimeframeLastMonth
}

// percentageChange returns (current-previous)/previous*100, defined as 100
// when growing from zero and 0 when both values are zero.
func percentageChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}
