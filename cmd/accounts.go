package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/qif/renderer"
	"github.com/google/subcommands"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list the accounts defined in the file" }
func (*accountsCmd) Usage() string {
	return `qcs [-f <file>] accounts

  Lists every account with its type, description and record count.
`
}

func (*accountsCmd) SetFlags(f *flag.FlagSet) {}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	doc, err := decodeDocument()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Accounts(doc))
	return subcommands.ExitSuccess
}
