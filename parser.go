package qif

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"
)

// Errors returned by Parse. All of them abort the whole parse: the
// format has no resynchronization point other than the record boundary,
// and a partially filled document must not escape.
var (
	ErrEmptyInput         = errors.New("empty input")
	ErrUnrecognizedHeader = errors.New("section header not recognized")
	ErrDanglingSplitField = errors.New("split field without a split")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidAmount      = errors.New("invalid amount")
)

const typeHeader = "!Type:"

// DefaultAccountType is the canonical account type an obfuscated type
// value is rewritten to.
const DefaultAccountType = "Cash"

// nonInvestmentHeaders are the documented type headers of non-investment
// registers. Both Ccard spellings are real: the producer emits either.
var nonInvestmentHeaders = []string{
	typeHeader + DefaultAccountType,
	typeHeader + "Bank",
	typeHeader + "Ccard",
	typeHeader + "Oth A",
	typeHeader + "Oth L",
	typeHeader + "Invoice", // business editions only
	typeHeader + "CCard",
}

// isObfuscatedType reports whether a type value looks like producer
// noise: at least two of its characters fall outside the printable range
// '!'..'}'. In practice those are control characters or tildes. Why some
// producer versions emit such values is unknown; this check is a
// best-effort guess and intentionally loose.
func isObfuscatedType(s string) bool {
	n := 0
	for _, r := range s {
		if r < 33 || r > 125 {
			n++
		}
	}
	return n >= 2
}

func isObfuscatedTypeHeader(line string) bool {
	return strings.HasPrefix(line, typeHeader) && isObfuscatedType(line[len(typeHeader):])
}

// Diagnostics receives advisory notices about field lines the parser
// skipped. Notices never abort the parse.
type Diagnostics interface {
	// SkippedLine is called with the record kind being parsed and the
	// full line that carried an unrecognized field tag.
	SkippedLine(kind, line string)
}

// logDiagnostics writes notices to the standard logger.
type logDiagnostics struct{}

func (logDiagnostics) SkippedLine(kind, line string) {
	log.Printf("skipping unknown line of %s: %q", kind, line)
}

// recordKind classifies a chunk of the input file.
type recordKind int

const (
	kindNone recordKind = iota
	kindAccount
	kindTransaction
	kindInvestment
	kindMemorized
	kindCategory
	kindClass
	kindTag
)

func (k recordKind) String() string {
	switch k {
	case kindAccount:
		return "account"
	case kindTransaction:
		return "transaction"
	case kindInvestment:
		return "investment"
	case kindMemorized:
		return "memorized transaction"
	case kindCategory:
		return "category"
	case kindClass:
		return "class"
	case kindTag:
		return "tag"
	default:
		return "unknown"
	}
}

// Parser parses a complete document. The zero value is ready to use: no
// explicit date layout (the placement heuristic applies) and std-log
// diagnostics. A Parser holds no state across calls, so distinct parses
// never interfere, including concurrent ones.
type Parser struct {
	// DateLayout, when set, is the time layout applied to every date
	// token in the file. Leave empty to let the parser guess the
	// placement; pass it whenever the locale is known.
	DateLayout string

	// Diagnostics receives a notice per unrecognized field line. Nil
	// means the standard logger.
	Diagnostics Diagnostics
}

// Parse reads a whole document from r with a default Parser.
func Parse(r io.Reader) (*Qif, error) { return (&Parser{}).Parse(r) }

// ParseFile reads a whole document from the named file, applying the
// given date layout (empty for the heuristic).
func ParseFile(name, layout string) (*Qif, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p := &Parser{DateLayout: layout}
	return p.Parse(f)
}

// parseState is the context carried from one chunk to the next: the
// kind and header of the last classified chunk, the account records
// attach to, and the running count of auto-switch directive lines. It
// is a local value of one Parse call.
type parseState struct {
	kind         recordKind
	header       string
	account      *Account
	autoSwitches int
}

// Parse reads a whole document from r.
//
// Chunks are processed strictly in input order: classification and
// attachment depend on state carried from the immediately preceding
// chunk, so no reordering is valid.
func (p *Parser) Parse(r io.Reader) (*Qif, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	q := &Qif{dateLayout: p.DateLayout}
	state := parseState{kind: kindNone}
	for _, chunk := range strings.Split(text, "\n^\n") {
		if chunk == "" {
			continue
		}
		state, err = p.parseChunk(q, chunk, state)
		if err != nil {
			return nil, err
		}
	}
	return q, nil
}

func (p *Parser) parseChunk(q *Qif, chunk string, state parseState) (parseState, error) {
	lines := strings.Split(strings.TrimSuffix(chunk, "\n"), "\n")

	kind, header, switches, err := classify(lines, state.autoSwitches)
	if err != nil {
		return state, err
	}
	state.autoSwitches = switches
	if kind != kindNone {
		state.kind = kind
	}
	if header != "" {
		state.header = header
	}

	diag := p.Diagnostics
	if diag == nil {
		diag = logDiagnostics{}
	}

	switch state.kind {
	case kindAccount:
		a, err := p.parseAccount(lines, state.autoSwitches, diag)
		if err != nil {
			return state, err
		}
		q.AddAccount(a)
		state.account = a

	case kindMemorized:
		m, err := p.parseMemorized(lines, diag)
		if err != nil {
			return state, err
		}
		// memorized records are templates, never owned by an account
		state.account = nil
		q.AddTransaction(state.header, m)

	case kindTransaction:
		t, err := p.parseTransaction(lines, diag)
		if err != nil {
			return state, err
		}
		if state.account != nil {
			state.account.AddEntry(state.header, t)
		} else {
			q.AddTransaction(state.header, t)
		}

	case kindInvestment:
		v, err := p.parseInvestment(lines, diag)
		if err != nil {
			return state, err
		}
		if state.account != nil {
			state.account.AddEntry(state.header, v)
		} else {
			q.AddTransaction(state.header, v)
		}

	case kindCategory:
		c, err := parseCategory(lines, diag)
		if err != nil {
			return state, err
		}
		q.AddCategory(c)

	case kindClass:
		q.AddClass(parseClass(lines, diag))

	case kindTag:
		q.AddTag(parseTag(lines, diag))

	default:
		// records before any header have nothing to attach to
		return state, fmt.Errorf("%w: %q", ErrUnrecognizedHeader, lines[0])
	}
	return state, nil
}

// classify inspects the chunk's first significant line and returns the
// record kind and the header line to attach, if any. Leading auto-switch
// directive lines are skipped, each skip incrementing the carried
// counter. A kindNone result with a nil error means the chunk has no
// header and the previous kind and header stay in effect.
func classify(lines []string, autoSwitches int) (recordKind, string, int, error) {
	i := 0
	first := strings.TrimSpace(lines[i])
	for first == "!Clear:AutoSwitch" || first == "!Option:AutoSwitch" {
		i++
		autoSwitches++
		if i >= len(lines) {
			return kindNone, "", autoSwitches, nil
		}
		first = strings.TrimSpace(lines[i])
	}

	switch {
	case first == "!Account":
		return kindAccount, "", autoSwitches, nil
	case first == typeHeader+"Cat":
		return kindCategory, "", autoSwitches, nil
	case slices.Contains(nonInvestmentHeaders, first):
		return kindTransaction, first, autoSwitches, nil
	case first == typeHeader+"Invst":
		return kindInvestment, first, autoSwitches, nil
	case first == typeHeader+"Class":
		return kindClass, "", autoSwitches, nil
	case first == typeHeader+"Memorized":
		return kindMemorized, first, autoSwitches, nil
	case isObfuscatedTypeHeader(first):
		// undocumented producer quirk: treat as a generic cash register
		return kindTransaction, typeHeader + DefaultAccountType, autoSwitches, nil
	case first == typeHeader+"Tag":
		return kindTag, "", autoSwitches, nil
	case strings.HasPrefix(first, "!"):
		return kindNone, "", autoSwitches, fmt.Errorf("%w: %q", ErrUnrecognizedHeader, first)
	}
	return kindNone, "", autoSwitches, nil
}

// skipLine reports whether a dispatcher ignores this line entirely:
// blank lines, the type header itself, and auto-switch directives the
// classifier already counted.
func skipLine(line string) bool {
	return line == "" || strings.HasPrefix(line, typeHeader) ||
		line == "!Clear:AutoSwitch" || line == "!Option:AutoSwitch"
}

// splitCategory interprets an L or S field value: a bracket-wrapped
// value names a transfer destination account, anything else is a plain
// category name. The two are mutually exclusive per line.
func splitCategory(v string) (category, toAccount string) {
	if strings.HasPrefix(v, "[") {
		return "", strings.TrimSuffix(strings.TrimPrefix(v, "["), "]")
	}
	return v, ""
}

func parseCategory(lines []string, diag Diagnostics) (*Category, error) {
	c := &Category{Expense: true} // expense unless the file says otherwise
	for _, line := range lines {
		if skipLine(line) {
			continue
		}
		rest := line[1:]
		switch line[0] {
		case 'N':
			c.Name = rest
		case 'D':
			c.Description = rest
		case 'T':
			c.TaxRelated = true
		case 'E':
			c.Expense = true
		case 'I':
			c.Income = true
			c.Expense = false
		case 'B':
			a, err := ParseAmount(rest)
			if err != nil {
				return nil, err
			}
			c.BudgetAmount = a
		case 'R':
			c.TaxScheduleInfo = rest
		default:
			diag.SkippedLine(kindCategory.String(), line)
		}
	}
	return c, nil
}

func parseClass(lines []string, diag Diagnostics) *Class {
	c := &Class{}
	for _, line := range lines {
		if skipLine(line) {
			continue
		}
		switch line[0] {
		case 'N':
			c.Name = line[1:]
		case 'D':
			c.Description = line[1:]
		default:
			diag.SkippedLine(kindClass.String(), line)
		}
	}
	return c
}

func parseTag(lines []string, diag Diagnostics) *Tag {
	t := &Tag{}
	for _, line := range lines {
		if skipLine(line) {
			continue
		}
		switch line[0] {
		case 'N':
			t.Name = line[1:]
		case 'D':
			t.Description = line[1:]
		default:
			diag.SkippedLine(kindTag.String(), line)
		}
	}
	return t
}

func (p *Parser) parseAccount(lines []string, autoSwitches int, diag Diagnostics) (*Account, error) {
	a := &Account{AutoSwitch: autoSwitches == 1}
	for _, line := range lines {
		if line == "" || strings.HasPrefix(line, "!Account") ||
			line == "!Clear:AutoSwitch" || line == "!Option:AutoSwitch" {
			continue
		}
		rest := line[1:]
		switch line[0] {
		case 'N':
			a.Name = rest
		case 'D':
			a.Description = rest
		case 'T':
			if isObfuscatedType(rest) {
				// trades exact reproduction for a readable default
				a.Type = DefaultAccountType
			} else {
				a.Type = rest
			}
		case 'L':
			a.CreditLimit = rest
		case '/':
			d, err := parseQifDate(rest, p.DateLayout)
			if err != nil {
				return nil, err
			}
			a.BalanceDate = d
		case '$':
			a.BalanceAmount = rest
		default:
			diag.SkippedLine(kindAccount.String(), line)
		}
	}
	return a, nil
}

func (p *Parser) parseTransaction(lines []string, diag Diagnostics) (*Transaction, error) {
	t := &Transaction{}
	for _, line := range lines {
		if skipLine(line) {
			continue
		}
		rest := line[1:]
		var err error
		switch line[0] {
		case 'D':
			t.Date, err = parseQifDate(rest, p.DateLayout)
		case 'N':
			t.Num = rest
		case 'T':
			t.Amount, err = ParseAmount(rest)
		case 'U':
			t.UAmount, err = ParseAmount(rest)
		case 'C':
			t.Cleared = rest
		case 'P':
			t.Payee = rest
		case 'M':
			t.Memo = rest
		case '1':
			t.FirstPaymentDate = rest
		case '2':
			t.YearsOfLoan = rest
		case '3':
			t.NumPaymentsDone = rest
		case '4':
			t.PeriodsPerYear = rest
		case '5':
			t.InterestRate = rest
		case '6':
			t.CurrentLoanBalance = rest
		case '7':
			t.OriginalLoanAmount = rest
		case 'A':
			t.Address = append(t.Address, rest)
		case 'L':
			t.Category, t.ToAccount = splitCategory(rest)
		case 'S':
			s := &AmountSplit{}
			s.Category, s.ToAccount = splitCategory(rest)
			t.Splits = append(t.Splits, s)
		case 'E':
			if len(t.Splits) == 0 {
				return nil, fmt.Errorf("%w: %q", ErrDanglingSplitField, line)
			}
			t.Splits[len(t.Splits)-1].Memo = rest
		case '$':
			if len(t.Splits) == 0 {
				return nil, fmt.Errorf("%w: %q", ErrDanglingSplitField, line)
			}
			t.Splits[len(t.Splits)-1].Amount, err = ParseAmount(rest)
		default:
			diag.SkippedLine(kindTransaction.String(), line)
		}
		if err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (p *Parser) parseMemorized(lines []string, diag Diagnostics) (*MemorizedTransaction, error) {
	m := &MemorizedTransaction{}
	for _, line := range lines {
		if skipLine(line) {
			continue
		}
		rest := line[1:]
		var err error
		switch line[0] {
		case 'K':
			m.MType = rest
		case 'T':
			m.Amount, err = ParseAmount(rest)
		case 'U':
			m.UAmount, err = ParseAmount(rest)
		case 'C':
			m.Cleared = rest
		case 'N':
			m.Num = rest
		case 'P':
			m.Payee = rest
		case 'M':
			m.Memo = rest
		case '1':
			m.FirstPaymentDate = rest
		case '2':
			m.YearsOfLoan = rest
		case '3':
			m.NumPaymentsDone = rest
		case '4':
			m.PeriodsPerYear = rest
		case '5':
			m.InterestRate = rest
		case '6':
			m.CurrentLoanBalance = rest
		case '7':
			m.OriginalLoanAmount = rest
		case 'A':
			m.Address = append(m.Address, rest)
		case 'L':
			m.Category, m.ToAccount = splitCategory(rest)
		case 'S':
			s := &AmountSplit{}
			s.Category, s.ToAccount = splitCategory(rest)
			m.Splits = append(m.Splits, s)
		case 'E':
			if len(m.Splits) == 0 {
				return nil, fmt.Errorf("%w: %q", ErrDanglingSplitField, line)
			}
			m.Splits[len(m.Splits)-1].Memo = rest
		case '$':
			if len(m.Splits) == 0 {
				return nil, fmt.Errorf("%w: %q", ErrDanglingSplitField, line)
			}
			m.Splits[len(m.Splits)-1].Amount, err = ParseAmount(rest)
		default:
			diag.SkippedLine(kindMemorized.String(), line)
		}
		if err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (p *Parser) parseInvestment(lines []string, diag Diagnostics) (*Investment, error) {
	v := &Investment{}
	for _, line := range lines {
		if skipLine(line) {
			continue
		}
		rest := line[1:]
		var err error
		switch line[0] {
		case 'D':
			v.Date, err = parseQifDate(rest, p.DateLayout)
		case 'T':
			v.Amount, err = ParseAmount(rest)
		case 'N':
			v.Action = rest
		case 'Y':
			v.Security = rest
		case 'I':
			v.Price, err = ParseAmount(rest)
		case 'Q':
			v.Quantity, err = ParseAmount(rest)
		case 'C':
			v.Cleared = rest
		case 'M':
			v.Memo = rest
		case 'P':
			v.FirstLine = rest
		case 'L':
			// always a transfer account, written bracket-wrapped
			v.ToAccount = strings.TrimSuffix(strings.TrimPrefix(rest, "["), "]")
		case '$':
			v.AmountTransfer, err = ParseAmount(rest)
		case 'O':
			v.Commission, err = ParseAmount(rest)
		default:
			diag.SkippedLine(kindInvestment.String(), line)
		}
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}
