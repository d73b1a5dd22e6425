package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/msgai/foundation"
	"github.com/shopspring/decimal"
)

type transferCmd struct {
	from     string
	to       string
	amount   string
	currency string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "move an amount between accounts (no fee, no tension)" }
func (*transferCmd) Usage() string {
	return `msgai transfer -from <account> -to <recipient> -a <amount> [-c <currency>]

  Runs the basic transfer primitive. When the recipient is a known ledger
  account the amount is credited to it; otherwise the funds leave the
  tracked ledger entirely.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Sender account.")
	f.StringVar(&c.to, "to", "", "Recipient, internal or external.")
	f.StringVar(&c.amount, "a", "", "Amount to transfer.")
	f.StringVar(&c.currency, "c", "USD", "Currency of the transfer.")
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" || c.to == "" || c.amount == "" {
		return fail(fmt.Errorf("-from, -to and -a are required"))
	}
	cur, err := foundation.ParseCurrency(c.currency)
	if err != nil {
		return fail(err)
	}
	value, err := decimal.NewFromString(c.amount)
	if err != nil {
		return fail(fmt.Errorf("invalid amount %q: %w", c.amount, err))
	}

	store, closer, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer closer()

	if _, err := store.Transfer(c.from, c.to, foundation.M(value, cur)); err != nil {
		return fail(err)
	}
	fmt.Printf("transferred %s %s from %s to %s\n", c.amount, cur, c.from, c.to)
	fmt.Printf("%s now holds %s\n", c.from, store.Balance(c.from, cur))
	return subcommands.ExitSuccess
}
