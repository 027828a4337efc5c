package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/qif/renderer"
	"github.com/google/subcommands"
)

type catCmd struct{}

func (*catCmd) Name() string     { return "cat" }
func (*catCmd) Synopsis() string { return "list the categories defined in the file" }
func (*catCmd) Usage() string {
	return `qcs [-f <file>] cat

  Lists every category with its description, expense/income kind and
  tax flag.
`
}

func (*catCmd) SetFlags(f *flag.FlagSet) {}

func (c *catCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	doc, err := decodeDocument()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Categories(doc))
	return subcommands.ExitSuccess
}
