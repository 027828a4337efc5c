package qif

// Entry is one register record parsed from a chunk and attached under a
// type-header line: a bank [Transaction], an [Investment], or a
// [MemorizedTransaction].
type Entry interface {
	// encode writes the record's field lines, without the terminator.
	encode(lw *lineWriter, layout string)
}

// AmountSplit divides its parent record's amount across several
// categories or transfer destinations. Category and ToAccount are
// mutually exclusive: a bracket-wrapped value on the originating line
// names a destination account instead of a category.
type AmountSplit struct {
	Category  string
	ToAccount string
	Memo      string
	Address   []string
	Amount    Amount
}

// Transaction is a non-investment register record.
type Transaction struct {
	Date    Date
	Amount  Amount
	UAmount Amount // undocumented duplicate of Amount, preserved as read
	Cleared string
	Num     string
	Payee   string
	Memo    string
	Address []string

	Category  string
	ToAccount string

	// Loan fields, kept as written.
	FirstPaymentDate   string
	YearsOfLoan        string
	NumPaymentsDone    string
	PeriodsPerYear     string
	InterestRate       string
	CurrentLoanBalance string
	OriginalLoanAmount string

	Splits []*AmountSplit
}

// MemorizedTransaction is a transaction template without a date,
// carrying a single-character memorized kind code instead (C check,
// D deposit, E electronic payee, I investment, P payment).
type MemorizedTransaction struct {
	MType   string
	Amount  Amount
	UAmount Amount
	Cleared string
	Num     string
	Payee   string
	Memo    string
	Address []string

	Category  string
	ToAccount string

	// Amortization fields, kept as written.
	FirstPaymentDate   string
	YearsOfLoan        string
	NumPaymentsDone    string
	PeriodsPerYear     string
	InterestRate       string
	CurrentLoanBalance string
	OriginalLoanAmount string

	Splits []*AmountSplit
}

// Investment is an investment-account register record.
type Investment struct {
	Date           Date
	Action         string
	Security       string
	Price          Amount
	Quantity       Amount
	Amount         Amount
	Cleared        string
	Memo           string
	FirstLine      string
	ToAccount      string
	AmountTransfer Amount
	Commission     Amount
}
