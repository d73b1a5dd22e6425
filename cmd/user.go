package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type userCmd struct{}

func (*userCmd) Name() string     { return "user" }
func (*userCmd) Synopsis() string { return "set the active user" }
func (*userCmd) Usage() string {
	return `msgai user <account>

  Sets the active-user pointer to a known account and persists the state.
`
}

func (*userCmd) SetFlags(f *flag.FlagSet) {}

func (c *userCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail(fmt.Errorf("expected exactly one account name"))
	}
	store, closer, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer closer()

	if err := store.SetActiveUser(f.Arg(0)); err != nil {
		return fail(err)
	}
	fmt.Printf("active user is now %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}
