package qif

import "slices"

// entryGroups is an insertion-ordered multimap from header line to
// register records.
type entryGroups struct {
	headers  []string
	byHeader map[string][]Entry
}

func (g *entryGroups) add(header string, e Entry) {
	if g.byHeader == nil {
		g.byHeader = make(map[string][]Entry)
	}
	if _, ok := g.byHeader[header]; !ok {
		g.headers = append(g.headers, header)
	}
	g.byHeader[header] = append(g.byHeader[header], e)
}

// Qif is the in-memory document: ordered accounts, categories, classes
// and tags, plus detached register records that were parsed outside any
// account context, grouped by the header line they appeared under.
//
// A document is built once by [Parser.Parse] and owns every entity
// transitively; entities are never shared between documents.
type Qif struct {
	accounts   []*Account
	categories []*Category
	classes    []*Class
	tags       []*Tag

	detached entryGroups

	// dateLayout is the layout dates are written back with. Empty means
	// DefaultDateLayout.
	dateLayout string
}

// AddAccount appends an account to the document.
func (q *Qif) AddAccount(a *Account) { q.accounts = append(q.accounts, a) }

// AddCategory appends a category to the document.
func (q *Qif) AddCategory(c *Category) { q.categories = append(q.categories, c) }

// AddClass appends a class to the document.
func (q *Qif) AddClass(c *Class) { q.classes = append(q.classes, c) }

// AddTag appends a tag to the document.
func (q *Qif) AddTag(t *Tag) { q.tags = append(q.tags, t) }

// AddTransaction appends a detached record under the given header line.
// Records attached this way belong to the document, not to any account.
func (q *Qif) AddTransaction(header string, e Entry) { q.detached.add(header, e) }

// Accounts returns all accounts, or only those matching one of the
// given names when names are provided. Several accounts may share a
// name; all of them are returned.
func (q *Qif) Accounts(names ...string) []*Account {
	if len(names) == 0 {
		return slices.Clone(q.accounts)
	}
	var out []*Account
	for _, a := range q.accounts {
		if slices.Contains(names, a.Name) {
			out = append(out, a)
		}
	}
	return out
}

// DateLayout returns the layout dates in this document are written
// with: the layout the parser was given, or [DefaultDateLayout].
func (q *Qif) DateLayout() string {
	if q.dateLayout == "" {
		return DefaultDateLayout
	}
	return q.dateLayout
}

// Categories returns all categories in file order.
func (q *Qif) Categories() []*Category { return slices.Clone(q.categories) }

// Classes returns all classes in file order.
func (q *Qif) Classes() []*Class { return slices.Clone(q.classes) }

// Tags returns all tags in file order.
func (q *Qif) Tags() []*Tag { return slices.Clone(q.tags) }

// TransactionGroup is one detached group: records parsed outside any
// account, keyed by the header line under which they appeared.
type TransactionGroup struct {
	Header  string
	Entries []Entry
}

// TransactionGroups returns the detached groups in order of first
// appearance. Memorized transactions always end up here: they are never
// owned by an account.
func (q *Qif) TransactionGroups() []TransactionGroup {
	out := make([]TransactionGroup, 0, len(q.detached.headers))
	for _, h := range q.detached.headers {
		out = append(out, TransactionGroup{Header: h, Entries: slices.Clone(q.detached.byHeader[h])})
	}
	return out
}
