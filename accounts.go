package qif

import "slices"

// Account groups register records under the literal type-header line
// they were parsed with. The header text is the map key on purpose: one
// account's record stream may interleave kinds sharing a header, and the
// exact line must be written back verbatim on serialization.
type Account struct {
	Name          string
	Description   string
	Type          string
	CreditLimit   string // kept verbatim, grouping commas included
	BalanceDate   Date
	BalanceAmount string
	AutoSwitch    bool // true iff exactly one auto-switch directive preceded it

	groups entryGroups
}

// AddEntry appends e under the given header line, creating the group on
// first use and preserving the order groups first appeared in.
func (a *Account) AddEntry(header string, e Entry) { a.groups.add(header, e) }

// Headers returns the type-header lines seen for this account, in order
// of first appearance.
func (a *Account) Headers() []string { return slices.Clone(a.groups.headers) }

// Entries returns the records attached under the given header line.
func (a *Account) Entries(header string) []Entry {
	return slices.Clone(a.groups.byHeader[header])
}
