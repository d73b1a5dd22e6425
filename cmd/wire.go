package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/msgai/foundation"
	"github.com/shopspring/decimal"
)

type wireCmd struct {
	from   string
	to     string
	amount string
	mode   string
}

func (*wireCmd) Name() string     { return "wire" }
func (*wireCmd) Synopsis() string { return "run the universal transfer act (USD, fee and tension)" }
func (*wireCmd) Usage() string {
	return `msgai wire -from <account> -to <recipient> -a <amount> [-m <mode>]

  Runs the universal transfer act in USD. Mode is INTERNAL, EXTERNAL or
  ATM. Non-internal modes split a 10% tax to the Tax_Archive account and
  produce a mimic label for the external rail.
`
}

func (c *wireCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Sender account.")
	f.StringVar(&c.to, "to", "", "Recipient, internal or external.")
	f.StringVar(&c.amount, "a", "", "USD amount to transfer.")
	f.StringVar(&c.mode, "m", string(foundation.Internal), "Transfer mode (INTERNAL, EXTERNAL, ATM).")
}

func (c *wireCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" || c.to == "" || c.amount == "" {
		return fail(fmt.Errorf("-from, -to and -a are required"))
	}
	mode, err := foundation.ParseTransferMode(c.mode)
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

	receipt, err := store.UniversalTransfer(c.from, c.to, foundation.M(value, foundation.USD), mode)
	if err != nil {
		return fail(err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n- net value: **%s**\n- tax value: **%s**\n- tension: **%s**\n",
		receipt.Message, receipt.NetValue, receipt.TaxValue, store.Tension().Value)
	if receipt.MimicData != nil {
		label, err := json.MarshalIndent(receipt.MimicData, "", "  ")
		if err != nil {
			return fail(err)
		}
		fmt.Fprintf(&b, "\n```json\n%s\n```\n", label)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
