package date

import (
	"slices"
	"testing"
	"time"
)

func TestNewRange(t *testing.T) {
	wednesday := New(2025, time.September, 10)
	testCases := []struct {
		name   string
		period Period
		want   Range
	}{
		{"daily", Daily, Range{From: wednesday, To: wednesday}},
		{"weekly", Weekly, Range{From: New(2025, time.September, 8), To: New(2025, time.September, 14)}},
		{"monthly", Monthly, Range{From: New(2025, time.September, 1), To: New(2025, time.September, 30)}},
		{"yearly", Yearly, Range{From: New(2025, time.January, 1), To: New(2025, time.December, 31)}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewRange(wednesday, tc.period); got != tc.want {
				t.Errorf("NewRange(%v, %v) = %v, want %v", wednesday, tc.period, got, tc.want)
			}
		})
	}
}

func TestLast(t *testing.T) {
	today := New(2025, time.March, 2)
	r := Last(7, today)
	days := slices.Collect(r.Days())
	if len(days) != 7 {
		t.Fatalf("Last(7).Days() has %d days, want 7", len(days))
	}
	if days[0] != New(2025, time.February, 24) {
		t.Errorf("first day = %v, want 2025-02-24", days[0])
	}
	if days[6] != today {
		t.Errorf("last day = %v, want %v", days[6], today)
	}
	if !r.Contains(today) || r.Contains(today.Add(1)) {
		t.Errorf("Last(7) boundaries are wrong: %v", r)
	}
}

func TestParsePeriod(t *testing.T) {
	testCases := []struct {
		in      string
		want    Period
		wantErr bool
	}{
		{"day", Daily, false},
		{"Weekly", Weekly, false},
		{"month", Monthly, false},
		{"year", Yearly, false},
		{" M ", Monthly, false},
		{"fortnight", Daily, true},
	}
	for _, tc := range testCases {
		got, err := ParsePeriod(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePeriod(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePeriod(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestUpTo(t *testing.T) {
	wednesday := New(2025, time.September, 10)
	testCases := []struct {
		period Period
		want   int
	}{
		{Daily, 1},
		{Weekly, 3},
		{Monthly, 10},
		{Yearly, 253},
	}
	for _, tc := range testCases {
		r := UpTo(wednesday, tc.period)
		if r.To != wednesday {
			t.Errorf("UpTo(%v).To = %v, want %v", tc.period, r.To, wednesday)
		}
		if got := r.Len(); got != tc.want {
			t.Errorf("UpTo(%v).Len() = %d, want %d", tc.period, got, tc.want)
		}
	}
}

func TestStartOfWeekOnSunday(t *testing.T) {
	sunday := New(2025, time.September, 14)
	if got, want := sunday.StartOf(Weekly), New(2025, time.September, 8); got != want {
		t.Errorf("StartOf(Weekly) = %v, want %v", got, want)
	}
	if got := Period(9).String(); got != "Period(9)" {
		t.Errorf("Period(9).String() = %q", got)
	}
}
