package foundation

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestJSONObjectWriter_OrderAndNumbers(t *testing.T) {
	var w jsonObjectWriter
	w.Append("b", "second")
	w.Append("a", "first")
	w.Number("n", decimal.NewFromFloat(12.5))
	w.Optional("skipped", "")

	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() failed: %v", err)
	}
	want := `{"b":"second","a":"first","n":12.5}`
	if string(got) != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}
	if !json.Valid(got) {
		t.Errorf("MarshalJSON() produced invalid JSON: %s", got)
	}
}
