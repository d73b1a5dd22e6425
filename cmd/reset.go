package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type resetCmd struct{}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "erase all data and reinitialize the fresh state" }
func (*resetCmd) Usage() string {
	return `msgai reset

  Discards the persisted snapshot and all balances, and reinitializes the
  canonical fresh state.
`
}

func (*resetCmd) SetFlags(f *flag.FlagSet) {}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closer, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer closer()

	if err := store.Reset(); err != nil {
		return fail(err)
	}
	fmt.Println("state erased, core back to fresh")
	return subcommands.ExitSuccess
}
