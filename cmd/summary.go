package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/qif/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	currency string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display per-category totals" }
func (*summaryCmd) Usage() string {
	return `qcs [-f <file>] summary [-currency <code>]

  Displays the total amount booked against each category across every
  account, and the net total. Transfers between accounts are excluded.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "USD", "ISO 4217 currency code used to format totals.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	doc, err := decodeDocument()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Summary(doc, c.currency))
	return subcommands.ExitSuccess
}
