package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/msgai/foundation"
)

type balanceCmd struct {
	user string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display all balances of an account" }
func (*balanceCmd) Usage() string {
	return `msgai balance [-u <account>]

  Displays the per-currency balances of the given account, or of the
  active user by default.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "u", "", "Account to display. Defaults to the active user.")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closer, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer closer()

	user := c.user
	if user == "" {
		user = store.ActiveUser()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n| currency | balance |\n|---|---|\n", user)
	for _, cur := range foundation.Currencies {
		fmt.Fprintf(&b, "| %s | %s |\n", cur, store.Balance(user, cur))
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
