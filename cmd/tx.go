package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/qif"
	"github.com/etnz/qif/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	account string
	head    int
	tail    int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the register records of an account" }
func (*txCmd) Usage() string {
	return `qcs [-f <file>] tx [-a <account>] [-head <n>] [-tail <n>]

  Lists register records, one table per register. Without -a, every
  account is listed, followed by the records that belong to no account.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.account, "a", "", "Only list this account's registers.")
	f.IntVar(&p.head, "head", 0, "Show only the first N records per register.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N records per register.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	doc, err := decodeDocument()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	layout := doc.DateLayout()
	var b strings.Builder

	accounts := doc.Accounts()
	if p.account != "" {
		accounts = doc.Accounts(p.account)
		if len(accounts) == 0 {
			fmt.Fprintf(os.Stderr, "Error: no account named %q.\n", p.account)
			return subcommands.ExitFailure
		}
	}

	for _, a := range accounts {
		for _, h := range a.Headers() {
			title := fmt.Sprintf("%s (%s)", a.Name, strings.TrimPrefix(h, "!Type:"))
			b.WriteString(renderer.Transactions(title, p.limit(a.Entries(h)), layout))
			b.WriteString("\n")
		}
	}
	if p.account == "" {
		for _, g := range doc.TransactionGroups() {
			title := strings.TrimPrefix(g.Header, "!Type:")
			b.WriteString(renderer.Transactions(title, p.limit(g.Entries), layout))
			b.WriteString("\n")
		}
	}

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

func (p *txCmd) limit(entries []qif.Entry) []qif.Entry {
	if p.head > 0 && len(entries) > p.head {
		return entries[:p.head]
	}
	if p.tail > 0 && len(entries) > p.tail {
		return entries[len(entries)-p.tail:]
	}
	return entries
}
