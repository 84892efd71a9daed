package export

import (
	"strings"
	"testing"
)

type row struct {
	Name  string
	Email string
}

var cols = []Column[row]{
	{Header: "Name", Value: func(r row) string { return r.Name }},
	{Header: "Email", Value: func(r row) string { return r.Email }},
}

// TestCSV_HeaderPlusRows verifies N records produce N+1 lines in column order.
func TestCSV_HeaderPlusRows(t *testing.T) {
	out, err := CSV([]row{
		{Name: "Ada", Email: "ada@example.com"},
		{Name: "Ben", Email: "ben@example.com"},
	}, cols)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), lines)
	}
	if lines[0] != "Name,Email" {
		t.Errorf("bad header: %q", lines[0])
	}
	if lines[1] != "Ada,ada@example.com" {
		t.Errorf("bad first row: %q", lines[1])
	}
}

// TestCSV_Empty verifies an empty collection yields ErrNoRows and no bytes.
func TestCSV_Empty(t *testing.T) {
	out, err := CSV(nil, cols)
	if err != ErrNoRows {
		t.Fatalf("expected ErrNoRows, got: %v", err)
	}
	if out != nil {
		t.Errorf("expected no output, got %q", out)
	}
}

// TestCSV_QuotesCommaFields verifies fields containing commas are quoted.
func TestCSV_QuotesCommaFields(t *testing.T) {
	out, err := CSV([]row{{Name: "Okafor, Chidi", Email: "c@example.com"}}, cols)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), `"Okafor, Chidi"`) {
		t.Errorf("comma field not quoted: %q", out)
	}
}

// TestCSV_EscapesEmbeddedQuotes verifies embedded quotes are doubled per RFC 4180.
func TestCSV_EscapesEmbeddedQuotes(t *testing.T) {
	out, err := CSV([]row{{Name: `The "Chief"`, Email: "x@example.com"}}, cols)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), `"The ""Chief"""`) {
		t.Errorf("embedded quotes not escaped: %q", out)
	}
}
