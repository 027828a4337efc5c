// Package qif reads and writes the legacy line-oriented personal-finance
// interchange format.
//
// A file is a sequence of records, each terminated by a single "^" line.
// A "!"-prefixed header line identifies the kind of the records that
// follow; well-formed files omit the header on consecutive records of the
// same kind, so the parser carries the last seen kind across records.
// Parsing produces a [Qif] document that owns accounts, categories,
// classes, tags and detached register records; [Qif.Encode] regenerates
// the original text.
//
// The format has no formal grammar. Field values are kept as the raw
// strings that were read, except dates and amounts which carry defined
// semantics and are converted at parse time ([Date], [Amount]).
package qif
