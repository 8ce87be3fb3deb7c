package biashara

import (
	"time"

	"github.com/etnz/biashara/date"
)

// TrendPoint is the revenue and profit of the sales of one day.
type TrendPoint struct {
	Day     date.Date
	Revenue Money
	Profit  Money
}

// Trend returns one point per calendar day for the last days days up to the
// day of now, oldest first. Sales are bucketed by their day in the location
// of now, so that today and the sales of today use the same clock.
func Trend(s State, now time.Time, days int) []TrendPoint {
	if days <= 0 {
		return nil
	}
	loc := now.Location()
	period := date.Last(days, date.Of(now))
	index := make(map[date.Date]int, days)
	points := make([]TrendPoint, 0, days)
	for day := range period.Days() {
		index[day] = len(points)
		points = append(points, TrendPoint{Day: day})
	}
	for _, r := range s.Sales {
		day, ok := saleDay(r.Date, loc)
		if !ok {
			continue
		}
		if i, ok := index[day]; ok {
			points[i].Revenue = points[i].Revenue.Add(r.TotalPrice)
			points[i].Profit = points[i].Profit.Add(r.Profit)
		}
	}
	return points
}

// saleDay returns the calendar day of a record timestamp in loc. Timestamps
// without a clock keep their written date.
func saleDay(ts string, loc *time.Location) (date.Date, bool) {
	if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
		return date.Of(t.In(loc)), true
	}
	d, err := date.FromTimestamp(ts)
	return d, err == nil
}
