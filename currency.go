package foundation

import (
	"fmt"

	"github.com/Rhymond/go-money"
)

// Currency is a typed code from the ledger's fixed currency set.
type Currency string

// The fixed set of currencies every account carries a balance for.
const (
	USD   Currency = "USD"
	JPY   Currency = "JPY"
	EUR   Currency = "EUR"
	BTC   Currency = "BTC"
	ETH   Currency = "ETH"
	MATIC Currency = "MATIC"
)

// Currencies lists the fixed set in canonical order. Encoders iterate this
// slice so that persisted snapshots are stable and diffable.
var Currencies = []Currency{USD, JPY, EUR, BTC, ETH, MATIC}

func init() {
	// go-money only ships ISO currencies. Register the crypto ones so that
	// formatting metadata always resolves.
	money.AddCurrency("BTC", "₿", "$1", ".", ",", 8)
	money.AddCurrency("ETH", "Ξ", "$1", ".", ",", 8)
	money.AddCurrency("MATIC", "MATIC", "1 $", ".", ",", 8)
}

// ParseCurrency parses a string into a Currency from the fixed set.
func ParseCurrency(s string) (Currency, error) {
	for _, c := range Currencies {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown currency: %q", s)
}
