package foundation

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in one of the ledger currencies.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   Currency
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency Currency) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
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
	default:
		panic("unsupported type")
	}
}

// currency returns the money's full go-money currency.
func (m Money) currency() money.Currency {
	// calling the go-money constructor is the way to get a never-nil currency.
	return *money.New(0, string(m.cur)).Currency()
}

// String returns the string representation of the money value.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() Currency               { return m.cur }
func (m Money) Amount() decimal.Decimal          { return m.value }
func (m Money) Equal(n Money) bool               { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                     { return m.value.IsZero() }
func (m Money) IsPositive() bool                 { return m.value.IsPositive() }
func (m Money) IsNegative() bool                 { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool            { return m.value.LessThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool  { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                       { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) MulRatio(r decimal.Decimal) Money { return Money{value: m.value.Mul(r), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) Currency {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch " + string(A.cur) + "!=" + string(B.cur))
	}
	return A.cur
}

// StringFixed returns the plain decimal value with a fixed number of digits,
// without currency decoration. Mimic labels use it for their ISO amount.
func (m Money) StringFixed(places int32) string { return m.value.StringFixed(places) }
