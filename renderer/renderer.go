// Package renderer turns a parsed document into markdown reports.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/qif"
	md "github.com/nao1215/markdown"
)

// Accounts renders the account list to a markdown string.
func Accounts(doc *qif.Qif) string {
	var buf bytes.Buffer
	out := md.NewMarkdown(&buf)

	out.H1("Accounts")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Name", "Type", "Description", "Records"},
		Rows:   [][]string{},
	}
	for _, a := range doc.Accounts() {
		n := 0
		for _, h := range a.Headers() {
			n += len(a.Entries(h))
		}
		table.Rows = append(table.Rows, []string{
			a.Name,
			a.Type,
			a.Description,
			fmt.Sprintf("%d", n),
		})
	}
	out.Table(table)

	return out.String()
}

// Categories renders the category list to a markdown string.
func Categories(doc *qif.Qif) string {
	var buf bytes.Buffer
	out := md.NewMarkdown(&buf)

	out.H1("Categories")

	table := md.TableSet{
		Header: []string{"Name", "Description", "Kind", "Tax"},
		Rows:   [][]string{},
	}
	for _, c := range doc.Categories() {
		kind := "expense"
		if c.Income {
			kind = "income"
		}
		tax := ""
		if c.TaxRelated {
			tax = "yes"
		}
		table.Rows = append(table.Rows, []string{c.Name, c.Description, kind, tax})
	}
	out.Table(table)

	return out.String()
}

// Transactions renders a register's records to a markdown string. The
// layout is used to format dates, typically [qif.Qif.DateLayout].
func Transactions(title string, entries []qif.Entry, layout string) string {
	var buf bytes.Buffer
	out := md.NewMarkdown(&buf)

	out.H1(title)

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "Payee", "Category", "Amount"},
		Rows:   [][]string{},
	}
	for _, e := range entries {
		table.Rows = append(table.Rows, entryRow(e, layout))
	}
	out.Table(table)

	return out.String()
}

func entryRow(e qif.Entry, layout string) []string {
	switch v := e.(type) {
	case *qif.Transaction:
		return []string{v.Date.Format(layout), v.Payee, destination(v.Category, v.ToAccount), v.Amount.String()}
	case *qif.MemorizedTransaction:
		return []string{"(memorized)", v.Payee, destination(v.Category, v.ToAccount), v.Amount.String()}
	case *qif.Investment:
		return []string{v.Date.Format(layout), v.Action + " " + v.Security, destination("", v.ToAccount), v.Amount.String()}
	default:
		return []string{"", "", "", ""}
	}
}

// destination renders the category-or-transfer cell the way registers
// display it, transfer accounts in brackets.
func destination(category, toAccount string) string {
	if toAccount != "" {
		return "[" + toAccount + "]"
	}
	return category
}
