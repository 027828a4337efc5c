package qif

// Category is a named income or expense bucket. The expense flag
// defaults to true; the dispatcher applies the file's E and I lines in
// order, last write wins, and an I line clears the expense flag.
type Category struct {
	Name            string
	Description     string
	TaxRelated      bool
	Expense         bool
	Income          bool
	BudgetAmount    Amount
	TaxScheduleInfo string
}

// Class is a named classification applied to records.
type Class struct {
	Name        string
	Description string
}

// Tag is a named label applied to records.
type Tag struct {
	Name        string
	Description string
}
