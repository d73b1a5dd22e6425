package foundation

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Tension is the accumulated friction metric of the ledger. Its value is
// floor-clamped at zero; MaxLimit is descriptive metadata only and is never
// enforced on the high end.
type Tension struct {
	Value        decimal.Decimal
	MaxLimit     decimal.Decimal
	IncreaseRate decimal.Decimal
}

// newTension returns the tension record of a fresh state.
func newTension() Tension {
	return Tension{
		Value:        decimal.Zero,
		MaxLimit:     decimal.NewFromFloat(0.5),
		IncreaseRate: decimal.NewFromFloat(0.00001),
	}
}

// add returns the tension after applying delta, clamped at a floor of zero.
// delta may be negative (a relief effect).
func (t Tension) add(delta decimal.Decimal) Tension {
	t.Value = t.Value.Add(delta)
	if t.Value.IsNegative() {
		t.Value = decimal.Zero
	}
	return t
}

func (t Tension) Equal(o Tension) bool {
	return t.Value.Equal(o.Value) &&
		t.MaxLimit.Equal(o.MaxLimit) &&
		t.IncreaseRate.Equal(o.IncreaseRate)
}

// MarshalJSON encodes the record with bare JSON numbers.
func (t Tension) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Number("value", t.Value)
	w.Number("max_limit", t.MaxLimit)
	w.Number("increase_rate", t.IncreaseRate)
	return w.MarshalJSON()
}

func (t *Tension) UnmarshalJSON(data []byte) error {
	var raw struct {
		Value        decimal.Decimal `json:"value"`
		MaxLimit     decimal.Decimal `json:"max_limit"`
		IncreaseRate decimal.Decimal `json:"increase_rate"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t.Value = raw.Value
	t.MaxLimit = raw.MaxLimit
	t.IncreaseRate = raw.IncreaseRate
	return nil
}
