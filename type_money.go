package biashara

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the shop currency. Amounts in the state carry no currency of
// their own, every figure is in Kenyan shillings.
const Currency = money.KES

// displayFormatter renders whole shillings the way receipts and reports do: "KES 1,500".
var displayFormatter = money.NewFormatter(0, ".", ",", "KES ", "$1")

// Money represents a monetary amount in the shop currency.
//
// It is persisted as a plain JSON number so that stored states remain
// readable by any JSON tool.
type Money struct {
	value decimal.Decimal
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// ParseMoney parses a decimal amount like "1500" or "99.50".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{value: d}, nil
}

// String returns the amount formatted with the currency minor units, e.g. "KSh1,500.00".
func (m Money) String() string {
	cur := *money.New(0, Currency).Currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// Display returns the amount rounded to whole shillings, e.g. "KES 1,500".
func (m Money) Display() string {
	return displayFormatter.Format(m.value.Round(0).IntPart())
}

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money               { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money               { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(q int) Money                 { return Money{value: m.value.Mul(decimal.NewFromInt(int64(q)))} }
func (m Money) Scale(f decimal.Decimal) Money   { return Money{value: m.value.Mul(f)} }
func (m Money) Round() Money                    { return Money{value: m.value.Round(0)} }

// Min returns the smallest of m and n.
func (m Money) Min(n Money) Money {
	if n.LessThan(m) {
		return n
	}
	return m
}

// Ratio returns m/n as a float, 0 when n is zero.
func (m Money) Ratio(n Money) float64 {
	if n.IsZero() {
		return 0
	}
	return m.value.Div(n.value).InexactFloat64()
}

// Decimal exposes the underlying value.
func (m Money) Decimal() decimal.Decimal { return m.value }

// Float is the approximate value, for charts and prompts only.
func (m Money) Float() float64 { return m.value.InexactFloat64() }

// Sum adds up the amounts returned by f for every element of list.
func Sum[T any](list []T, f func(T) Money) Money {
	var total Money
	for _, e := range list {
		total = total.Add(f(e))
	}
	return total
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.String()), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	// decimal accepts both 1500 and "1500", older states stored form inputs verbatim.
	return m.value.UnmarshalJSON(b)
}
