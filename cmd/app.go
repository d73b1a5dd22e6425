// Package cmd implements the CLI application to drive the foundation.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/msgai/foundation"
	"github.com/msgai/foundation/kv"
)

// Commands lists the subcommands a main package registers.
var Commands = []subcommands.Command{
	&statusCmd{},
	&balanceCmd{},
	&userCmd{},
	&transferCmd{},
	&wireCmd{},
	&tensionCmd{},
	&resetCmd{},
	&oracleCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var statePath = flag.String("state", "", "Path to the state database (overrides msgai.yaml)")

// openStore opens the key-value store and restores (or initializes) the
// foundation state. The returned closer must be called before exit.
func openStore() (*foundation.Store, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	path := cfg.State
	if *statePath != "" {
		path = *statePath
	}

	kvs, err := kv.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open state database %q: %w", path, err)
	}

	store, err := foundation.Open(foundation.NewGateway(kvs))
	if err != nil {
		kvs.Close()
		return nil, nil, err
	}
	return store, func() { kvs.Close() }, nil
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when no renderer can be built.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail prints the error and returns the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
