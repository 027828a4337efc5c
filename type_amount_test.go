package qif

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string // String() of the parsed amount
		err   bool
	}{
		{"1,234.00", "1234.00", false},
		{"-45.00", "-45.00", false},
		{"100,000.00", "100000.00", false},
		{"1,000,000.00", "1000000.00", false},
		{"0.00", "0.00", false},
		{"12.375", "12.375", false},
		{"", "", true},
		{"abc", "", true},
		{"12..0", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if (err != nil) != tt.err {
				t.Fatalf("ParseAmount(%q) error = %v, wantErr %v", tt.input, err, tt.err)
			}
			if tt.err {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Errorf("ParseAmount(%q) error = %v, want ErrInvalidAmount", tt.input, err)
				}
				return
			}
			if got.String() != tt.want {
				t.Errorf("ParseAmount(%q).String() = %q, want %q", tt.input, got.String(), tt.want)
			}
			if !got.Valid() {
				t.Errorf("ParseAmount(%q) should be valid", tt.input)
			}
		})
	}
}

func TestParseAmount_Exact(t *testing.T) {
	got, err := ParseAmount("1,234.00")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Decimal().Equal(decimal.RequireFromString("1234")) {
		t.Errorf("ParseAmount(\"1,234.00\") = %v, want 1234", got.Decimal())
	}
}

func TestAmount_StringKeepsScale(t *testing.T) {
	// trailing zeros are significant: dropping them breaks the
	// serializer's inverse property
	tests := []struct{ input, want string }{
		{"-45.00", "-45.00"},
		{"3.00", "3.00"},
		{"2.50", "2.50"},
		{"12.375", "12.375"},
		{"100", "100"},
		{"1,500.00", "1500.00"},
	}
	for _, tt := range tests {
		a, err := ParseAmount(tt.input)
		if err != nil {
			t.Fatal(err)
		}
		if got := a.String(); got != tt.want {
			t.Errorf("ParseAmount(%q).String() = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestAmount_ZeroValue(t *testing.T) {
	var a Amount
	if a.Valid() {
		t.Error("zero Amount should not be valid")
	}
	if a.String() != "" {
		t.Errorf("zero Amount String() = %q, want empty", a.String())
	}
}

func TestAmount_Add(t *testing.T) {
	a, _ := ParseAmount("-80.00")
	b, _ := ParseAmount("-40.00")
	sum := a.Add(b)
	if sum.String() != "-120.00" {
		t.Errorf("Add() = %q, want %q", sum.String(), "-120.00")
	}
	// absent counts as zero
	var zero Amount
	if got := zero.Add(a); got.String() != "-80.00" {
		t.Errorf("Add() from zero = %q, want %q", got.String(), "-80.00")
	}
}
