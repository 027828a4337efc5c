package renderer

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/Rhymond/go-money"
	"github.com/etnz/qif"
	md "github.com/nao1215/markdown"
)

// Summary renders per-category totals across every account register,
// formatted in the given ISO 4217 currency. Transfers move value
// between accounts of the same document, so they are excluded from the
// totals; splits contribute their own amounts instead of the parent's.
func Summary(doc *qif.Qif, currency string) string {
	totals := make(map[string]qif.Amount)
	var grand qif.Amount

	add := func(category string, a qif.Amount) {
		if category == "" || !a.Valid() {
			return
		}
		totals[category] = totals[category].Add(a)
		grand = grand.Add(a)
	}
	collect := func(e qif.Entry) {
		t, ok := e.(*qif.Transaction)
		if !ok {
			return
		}
		if len(t.Splits) > 0 {
			for _, s := range t.Splits {
				add(s.Category, s.Amount)
			}
			return
		}
		add(t.Category, t.Amount)
	}

	for _, a := range doc.Accounts() {
		for _, h := range a.Headers() {
			for _, e := range a.Entries(h) {
				collect(e)
			}
		}
	}
	for _, g := range doc.TransactionGroups() {
		if g.Header == "!Type:Memorized" {
			continue // templates, not movements
		}
		for _, e := range g.Entries {
			collect(e)
		}
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	out := md.NewMarkdown(&buf)

	out.H1("Summary by category")

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Category", "Total"},
		Rows:      [][]string{},
	}
	for _, name := range names {
		table.Rows = append(table.Rows, []string{name, formatMoney(totals[name], currency)})
	}
	out.Table(table)
	out.PlainText(fmt.Sprintf("Net total: %s", formatMoney(grand, currency)))

	return out.String()
}

// formatMoney renders an amount with the currency's own grouping and
// symbol rules.
func formatMoney(a qif.Amount, code string) string {
	// calling the constructor is the way to get a never nil currency
	cur := *money.New(0, code).Currency()
	minor := a.Decimal().Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}
