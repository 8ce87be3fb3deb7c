package date

import "iter"

// Range represents a range of dates.
type Range struct{ From, To Date }

// NewRange return the period that contains d.
func NewRange(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d.EndOf(period)}
}

// Last returns the range of n days ending on 'on' (included).
func Last(n int, on Date) Range {
	if n < 1 {
		n = 1
	}
	return Range{From: on.Add(1 - n), To: on}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return (!date.Before(r.From) && !date.After(r.To)) }

// Days iterates over every day of the range in chronological order.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Len returns the number of days of the range, boundaries included.
func (r Range) Len() int {
	n := 0
	for range r.Days() {
		n++
	}
	return n
}

// UpTo returns the range of period containing on, cut at on.
func UpTo(on Date, period Period) Range {
	return Range{From: on.StartOf(period), To: on}
}
