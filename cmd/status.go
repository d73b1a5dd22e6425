package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type statusCmd struct{}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "show the core status, active user and tension" }
func (*statusCmd) Usage() string {
	return `msgai status

  Shows the status message, the active user and the tension record.
`
}

func (*statusCmd) SetFlags(f *flag.FlagSet) {}

func (c *statusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closer, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer closer()

	t := store.Tension()
	md := fmt.Sprintf("# %s\n\n- active user: **%s**\n- tension: **%s** (limit %s, rate %s)\n",
		store.StatusMessage(), store.ActiveUser(), t.Value, t.MaxLimit, t.IncreaseRate)
	printMarkdown(md)
	return subcommands.ExitSuccess
}
