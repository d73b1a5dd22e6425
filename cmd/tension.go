package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type tensionCmd struct {
	add string
}

func (*tensionCmd) Name() string     { return "tension" }
func (*tensionCmd) Synopsis() string { return "show or adjust the tension accumulator" }
func (*tensionCmd) Usage() string {
	return `msgai tension [-add <delta>]

  Shows the tension record. With -add, applies a delta first; a negative
  delta is a relief, and the value never goes below zero.
`
}

func (c *tensionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Delta to apply before showing, may be negative.")
}

func (c *tensionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closer, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer closer()

	if c.add != "" {
		delta, err := decimal.NewFromString(c.add)
		if err != nil {
			return fail(fmt.Errorf("invalid delta %q: %w", c.add, err))
		}
		if err := store.AddTension(delta); err != nil {
			return fail(err)
		}
	}

	t := store.Tension()
	fmt.Printf("tension %s (limit %s, rate %s)\n", t.Value, t.MaxLimit, t.IncreaseRate)
	return subcommands.ExitSuccess
}
