package qif

import (
	"bufio"
	"io"
	"strings"
)

// lineWriter emits tagged field lines, eliding absent values and
// carrying the first write error.
type lineWriter struct {
	w   *bufio.Writer
	err error
}

func (lw *lineWriter) raw(s string) {
	if lw.err != nil {
		return
	}
	if _, err := lw.w.WriteString(s); err != nil {
		lw.err = err
		return
	}
	lw.err = lw.w.WriteByte('\n')
}

// field writes a tagged line when the value is present.
func (lw *lineWriter) field(tag byte, v string) {
	if v != "" {
		lw.raw(string(tag) + v)
	}
}

// flag writes a bare tag line when on.
func (lw *lineWriter) flag(tag byte, on bool) {
	if on {
		lw.raw(string(tag))
	}
}

func (lw *lineWriter) amount(tag byte, a Amount) {
	if a.Valid() {
		lw.raw(string(tag) + a.String())
	}
}

func (lw *lineWriter) date(tag byte, d Date, layout string) {
	if !d.IsZero() {
		lw.raw(string(tag) + d.Format(layout))
	}
}

// transfer writes the category-or-account line: transfer destinations
// are bracket-wrapped, plain categories are not.
func (lw *lineWriter) transfer(tag byte, category, toAccount string) {
	switch {
	case toAccount != "":
		lw.raw(string(tag) + "[" + toAccount + "]")
	case category != "":
		lw.raw(string(tag) + category)
	}
}

// lines writes one tagged line per value, empty values included:
// address blocks carry meaningful blank lines.
func (lw *lineWriter) lines(tag byte, values []string) {
	for _, v := range values {
		lw.raw(string(tag) + v)
	}
}

// end terminates a record.
func (lw *lineWriter) end() { lw.raw("^") }

// Encode writes the document back to its textual form: for each entity
// in insertion order, the header line if any, one line per populated
// field using the tag characters consumed during parsing, and the
// single-character terminator. For inputs that round-trip, the output
// equals the input with per-line trailing whitespace stripped and a
// single trailing newline.
func (q *Qif) Encode(w io.Writer) error {
	layout := q.DateLayout()
	bw := bufio.NewWriter(w)
	lw := &lineWriter{w: bw}

	if len(q.categories) > 0 {
		lw.raw(typeHeader + "Cat")
		for _, c := range q.categories {
			c.encode(lw)
			lw.end()
		}
	}
	if len(q.classes) > 0 {
		lw.raw(typeHeader + "Class")
		for _, c := range q.classes {
			c.encode(lw)
			lw.end()
		}
	}
	if len(q.tags) > 0 {
		lw.raw(typeHeader + "Tag")
		for _, t := range q.tags {
			t.encode(lw)
			lw.end()
		}
	}

	// The auto-switch directives bracket the first flagged account, so
	// that on re-parse exactly one directive precedes it. Files carrying
	// several directive blocks collapse to this form.
	firstSwitch := -1
	for i, a := range q.accounts {
		if a.AutoSwitch {
			firstSwitch = i
			break
		}
	}
	for i, a := range q.accounts {
		if i == firstSwitch {
			lw.raw("!Option:AutoSwitch")
		}
		lw.raw("!Account")
		a.encode(lw, layout)
		lw.end()
		if i == firstSwitch {
			lw.raw("!Clear:AutoSwitch")
		}
		for _, h := range a.groups.headers {
			lw.raw(h)
			for _, e := range a.groups.byHeader[h] {
				e.encode(lw, layout)
				lw.end()
			}
		}
	}

	for _, h := range q.detached.headers {
		lw.raw(h)
		for _, e := range q.detached.byHeader[h] {
			e.encode(lw, layout)
			lw.end()
		}
	}

	if lw.err != nil {
		return lw.err
	}
	return bw.Flush()
}

// String returns the serialized document.
func (q *Qif) String() string {
	var b strings.Builder
	q.Encode(&b) // writes to a strings.Builder cannot fail
	return b.String()
}

// Normalize strips per-line trailing whitespace from text and ensures a
// single trailing newline. This is the textual equivalence under which
// Encode is the inverse of parsing.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	return strings.Join(lines, "\n") + "\n"
}

func (c *Category) encode(lw *lineWriter) {
	lw.field('N', c.Name)
	lw.field('D', c.Description)
	lw.flag('T', c.TaxRelated)
	// I before E: an I line clears the expense flag on parse, so this
	// order reparses to the same flags whatever their combination
	lw.flag('I', c.Income)
	lw.flag('E', c.Expense)
	lw.amount('B', c.BudgetAmount)
	lw.field('R', c.TaxScheduleInfo)
}

func (c *Class) encode(lw *lineWriter) {
	lw.field('N', c.Name)
	lw.field('D', c.Description)
}

func (t *Tag) encode(lw *lineWriter) {
	lw.field('N', t.Name)
	lw.field('D', t.Description)
}

func (a *Account) encode(lw *lineWriter, layout string) {
	lw.field('N', a.Name)
	lw.field('T', a.Type)
	lw.field('D', a.Description)
	lw.field('L', a.CreditLimit)
	lw.date('/', a.BalanceDate, layout)
	lw.field('$', a.BalanceAmount)
}

func (s *AmountSplit) encode(lw *lineWriter) {
	// the S line delimits the split even when it names nothing
	if s.ToAccount != "" {
		lw.raw("S[" + s.ToAccount + "]")
	} else {
		lw.raw("S" + s.Category)
	}
	lw.field('E', s.Memo)
	lw.lines('A', s.Address)
	lw.amount('$', s.Amount)
}

func (t *Transaction) encode(lw *lineWriter, layout string) {
	lw.date('D', t.Date, layout)
	lw.amount('U', t.UAmount)
	lw.amount('T', t.Amount)
	lw.field('C', t.Cleared)
	lw.field('N', t.Num)
	lw.field('P', t.Payee)
	lw.field('M', t.Memo)
	lw.lines('A', t.Address)
	lw.transfer('L', t.Category, t.ToAccount)
	lw.field('1', t.FirstPaymentDate)
	lw.field('2', t.YearsOfLoan)
	lw.field('3', t.NumPaymentsDone)
	lw.field('4', t.PeriodsPerYear)
	lw.field('5', t.InterestRate)
	lw.field('6', t.CurrentLoanBalance)
	lw.field('7', t.OriginalLoanAmount)
	for _, s := range t.Splits {
		s.encode(lw)
	}
}

func (m *MemorizedTransaction) encode(lw *lineWriter, _ string) {
	lw.field('K', m.MType)
	lw.amount('U', m.UAmount)
	lw.amount('T', m.Amount)
	lw.field('C', m.Cleared)
	lw.field('N', m.Num)
	lw.field('P', m.Payee)
	lw.field('M', m.Memo)
	lw.lines('A', m.Address)
	lw.transfer('L', m.Category, m.ToAccount)
	lw.field('1', m.FirstPaymentDate)
	lw.field('2', m.YearsOfLoan)
	lw.field('3', m.NumPaymentsDone)
	lw.field('4', m.PeriodsPerYear)
	lw.field('5', m.InterestRate)
	lw.field('6', m.CurrentLoanBalance)
	lw.field('7', m.OriginalLoanAmount)
	for _, s := range m.Splits {
		s.encode(lw)
	}
}

func (v *Investment) encode(lw *lineWriter, layout string) {
	lw.date('D', v.Date, layout)
	lw.field('N', v.Action)
	lw.field('Y', v.Security)
	lw.amount('I', v.Price)
	lw.amount('Q', v.Quantity)
	lw.amount('T', v.Amount)
	lw.field('C', v.Cleared)
	lw.field('P', v.FirstLine)
	lw.field('M', v.Memo)
	lw.amount('O', v.Commission)
	if v.ToAccount != "" {
		lw.raw("L[" + v.ToAccount + "]")
	}
	lw.amount('$', v.AmountTransfer)
}
