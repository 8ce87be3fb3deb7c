package biashara

import "github.com/shopspring/decimal"

// GrowthRate is the yearly growth assumed by Projection.
var GrowthRate = decimal.RequireFromString("0.10")

// ProjectionYears is the horizon shown by default.
const ProjectionYears = 30

// ProjectionPoint is the projected value of the business at the end of a year.
type ProjectionPoint struct {
	Year  int
	Value Money // rounded to the unit
}

// Projection compounds a monthly net profit reinvested every year at
// GrowthRate. Year 0 is worth nothing; each following year adds twelve
// months of profit and grows the balance.
func Projection(monthly Money, years int) []ProjectionPoint {
	if years < 0 {
		years = 0
	}
	growth := decimal.NewFromInt(1).Add(GrowthRate)
	points := make([]ProjectionPoint, 0, years+1)
	var balance Money
	for year := 0; year <= years; year++ {
		if year > 0 {
			balance = balance.Add(monthly.Mul(12)).Scale(growth)
		}
		points = append(points, ProjectionPoint{Year: year, Value: balance.Round()})
	}
	return points
}
