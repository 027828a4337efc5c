package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/qif"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	check bool
	write bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrite the file into its canonical form"
}
func (*fmtCmd) Usage() string {
	return `qcs [-f <file>] fmt [-check | -w]

  Parses the file and writes it back in canonical form: one line per
  populated field, grouping commas dropped from amounts, dates in the
  layout they were read with. With -check, writes nothing and fails if
  the file is not already canonical. With -w, rewrites the file in
  place; the default prints to stdout.

Usage Examples:
# Print the canonical form.
$ qcs -f export.qif fmt

# Fail in CI when the file drifted.
$ qcs -f export.qif fmt -check
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.check, "check", false, "Exit with failure if the file is not canonical.")
	f.BoolVar(&p.write, "w", false, "Rewrite the file in place instead of printing.")
}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	raw, err := os.ReadFile(*qifFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	doc, err := decodeDocument()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	canonical := doc.String()

	if p.check {
		if canonical != qif.Normalize(string(raw)) {
			fmt.Fprintf(os.Stderr, "%s is not canonical\n", *qifFile)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	if p.write {
		if err := os.WriteFile(*qifFile, []byte(canonical), 0644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	fmt.Print(canonical)
	return subcommands.ExitSuccess
}
