package cmd

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/qif"
	"github.com/google/subcommands"
)

type exportCmd struct {
	outputFile string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the register records as CSV" }
func (*exportCmd) Usage() string {
	return `qcs [-f <file>] export [-o <output.csv>]

  Writes every register record as one CSV row: account, register type,
  date, num, payee, category or [transfer account], memo and amount.
  Splits become one row each, carrying their own category and amount.
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.outputFile, "o", "", "File to write to. Writes to stdout by default.")
}

func (p *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	doc, err := decodeDocument()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	out := os.Stdout
	if p.outputFile != "" {
		out, err = os.Create(p.outputFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}

	w := csv.NewWriter(out)
	if err := w.WriteAll(csvRecords(doc)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

var csvHeader = []string{"account", "register", "date", "num", "payee", "category", "memo", "amount"}

// csvRecords flattens the document's registers into CSV rows, header
// row first.
func csvRecords(doc *qif.Qif) [][]string {
	layout := doc.DateLayout()
	rows := [][]string{csvHeader}

	appendEntry := func(account, register string, e qif.Entry) {
		t, ok := e.(*qif.Transaction)
		if !ok {
			return
		}
		date := t.Date.Format(layout)
		if len(t.Splits) > 0 {
			for _, s := range t.Splits {
				rows = append(rows, []string{
					account, register, date, t.Num, t.Payee,
					csvDestination(s.Category, s.ToAccount), s.Memo, s.Amount.String(),
				})
			}
			return
		}
		rows = append(rows, []string{
			account, register, date, t.Num, t.Payee,
			csvDestination(t.Category, t.ToAccount), t.Memo, t.Amount.String(),
		})
	}

	for _, a := range doc.Accounts() {
		for _, h := range a.Headers() {
			for _, e := range a.Entries(h) {
				appendEntry(a.Name, h, e)
			}
		}
	}
	for _, g := range doc.TransactionGroups() {
		for _, e := range g.Entries {
			appendEntry("", g.Header, e)
		}
	}
	return rows
}

func csvDestination(category, toAccount string) string {
	if toAccount != "" {
		return "[" + toAccount + "]"
	}
	return category
}
