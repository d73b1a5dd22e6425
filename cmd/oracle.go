package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/msgai/foundation/oracle"
	"google.golang.org/genai"
)

type oracleCmd struct {
	send bool
}

func (*oracleCmd) Name() string     { return "oracle" }
func (*oracleCmd) Synopsis() string { return "reflect the ledger state into a system instruction" }
func (*oracleCmd) Usage() string {
	return `msgai oracle [-send] [prompt...]

  Builds the system instruction from the current power, tension and tone.
  With -send, also sends the prompt to the configured model and prints the
  reply.
`
}

func (c *oracleCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.send, "send", false, "Send the prompt to the model and print the reply.")
}

func (c *oracleCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closer, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer closer()

	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}

	o := oracle.New(store, oracle.Solar{})
	o.Model = cfg.Model

	prompt := strings.Join(f.Args(), " ")
	dialogue, err := o.Act(prompt)
	if err != nil {
		return fail(err)
	}

	printMarkdown(fmt.Sprintf("```\n%s\n```\n", dialogue.Instruction))

	if !c.send {
		return subcommands.ExitSuccess
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}
	reply, err := o.Ask(ctx, client, prompt)
	if err != nil {
		return fail(err)
	}
	printMarkdown(reply)
	return subcommands.ExitSuccess
}
