package qif

import (
	"os"
	"strings"
	"testing"
)

func TestEncode_RoundTrip(t *testing.T) {
	raw, err := os.ReadFile("testdata/file.qif")
	if err != nil {
		t.Fatal(err)
	}
	doc, err := ParseFile("testdata/file.qif", "2/1/2006")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := doc.String(), Normalize(string(raw)); got != want {
		t.Errorf("round trip mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestEncode_Idempotent(t *testing.T) {
	doc, err := ParseFile("testdata/file.qif", "2/1/2006")
	if err != nil {
		t.Fatal(err)
	}
	first := doc.String()
	p := &Parser{DateLayout: "2/1/2006"}
	again, err := p.Parse(strings.NewReader(first))
	if err != nil {
		t.Fatal(err)
	}
	if second := again.String(); second != first {
		t.Errorf("second pass differs:\n--- first ---\n%s\n--- second ---\n%s", first, second)
	}
}

func TestEncode_HeuristicRoundTrip(t *testing.T) {
	// heuristic dates reserialize identically when the token already has
	// the default placement
	in := "!Type:Bank\n" +
		"D10/10/99\n" +
		"T-20.00\n" +
		"PShop\n" +
		"^\n"
	doc, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.String(); got != in {
		t.Errorf("String() = %q, want %q", got, in)
	}
}

func TestEncode_EmptySplitLine(t *testing.T) {
	// a split that names no category still needs its S delimiter back
	in := "!Type:Bank\n" +
		"D10/10/99\n" +
		"T-20.00\n" +
		"S\n" +
		"$-20.00\n" +
		"^\n"
	doc, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.String(); got != in {
		t.Errorf("String() = %q, want %q", got, in)
	}
}

func TestEncode_CategoryFlagsRoundTrip(t *testing.T) {
	// income then expense leaves both flags set; the encoder must
	// preserve that combination through a reparse
	in := "!Type:Cat\n" +
		"NOdd\n" +
		"I\n" +
		"E\n" +
		"^\n"
	doc, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.String(); got != in {
		t.Fatalf("String() = %q, want %q", got, in)
	}
	again, err := Parse(strings.NewReader(doc.String()))
	if err != nil {
		t.Fatal(err)
	}
	c := again.Categories()[0]
	if !c.Income || !c.Expense {
		t.Errorf("reparse flags = (income=%v, expense=%v), want both set", c.Income, c.Expense)
	}
}

func TestEncode_CommaAmountsNotReproduced(t *testing.T) {
	// comma separators are normalized away, so those files do not
	// round-trip byte for byte
	in := "!Type:Bank\n" +
		"D10/10/99\n" +
		"T-20,000.00\n" +
		"^\n"
	doc, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.String(); !strings.Contains(got, "T-20000.00\n") {
		t.Errorf("String() = %q, want the comma stripped", got)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trailing spaces", "NFoo  \nD Bar\t\n^\n", "NFoo\nD Bar\n^\n"},
		{"missing final newline", "NFoo\n^", "NFoo\n^\n"},
		{"extra final newlines", "NFoo\n^\n\n\n", "NFoo\n^\n"},
		{"crlf", "NFoo\r\n^\r\n", "NFoo\n^\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEncode_DefaultDateLayout(t *testing.T) {
	doc := &Qif{}
	tx := &Transaction{Date: NewDate(1999, 10, 10)}
	tx.Amount, _ = ParseAmount("-20.00")
	doc.AddTransaction("!Type:Bank", tx)
	want := "!Type:Bank\nD10/10/99\nT-20.00\n^\n"
	if got := doc.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
