package pricing

import "testing"

func TestResolve(t *testing.T) {
	table := Table{
		"CUT":     50000,
		"PERM":    110000,
		"DEFAULT": 10000,
	}

	tests := []struct {
		name        string
		description string
		expected    string
	}{
		{"prefix and quantity", "AB: CUT X 3", "150,000"},
		{"prefix only", "AB: PERM", "110,000"},
		{"quantity only", "CUT X 2", "100,000"},
		{"plain name", "CUT", "50,000"},
		{"lowercase quantity marker", "CUT x 4", "200,000"},
		{"quantity one explicit", "PERM X 1", "110,000"},
		{"unknown falls back to default", "UNKNOWN ITEM", "10,000"},
		{"unknown with quantity", "UNKNOWN X 3", "30,000"},
		{"surrounding whitespace", "  CUT  ", "50,000"},
		{"prefix with whitespace", "AB:  PERM ", "110,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Resolve(tt.description, table)
			if result != tt.expected {
				t.Errorf("Resolve(%q) = %q, expected %q", tt.description, result, tt.expected)
			}
		})
	}
}

func TestResolveNoDefault(t *testing.T) {
	table := Table{"CUT": 50000}

	if got := Resolve("UNKNOWN ITEM", table); got != "0" {
		t.Errorf("Resolve without DEFAULT = %q, expected %q", got, "0")
	}
	if got := Resolve("UNKNOWN X 5", table); got != "0" {
		t.Errorf("Resolve without DEFAULT with quantity = %q, expected %q", got, "0")
	}
}

func TestResolveEmptyTable(t *testing.T) {
	if got := Resolve("AB: CUT X 3", Table{}); got != "0" {
		t.Errorf("Resolve with empty table = %q, expected %q", got, "0")
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		expected string
	}{
		{"zero", 0, "0"},
		{"three digits", 999, "999"},
		{"four digits", 1000, "1,000"},
		{"six digits", 110000, "110,000"},
		{"seven digits", 1234567, "1,234,567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAmount(tt.n); got != tt.expected {
				t.Errorf("FormatAmount(%d) = %q, expected %q", tt.n, got, tt.expected)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		expected int
	}{
		{"grouped", "110,000", 110000},
		{"plain", "5000", 5000},
		{"whitespace", " 1,000 ", 1000},
		{"garbage", "abc", 0},
		{"empty", "", 0},
		{"trailing garbage", "12abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseAmount(tt.s); got != tt.expected {
				t.Errorf("ParseAmount(%q) = %d, expected %d", tt.s, got, tt.expected)
			}
		})
	}
}
