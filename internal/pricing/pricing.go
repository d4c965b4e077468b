// Package pricing resolves raw product descriptions to formatted total
// amounts using a static price table.
package pricing

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultKey is the fallback entry used when a product has no exact match.
const DefaultKey = "DEFAULT"

// Table maps a normalized product name to a unit price in whole currency
// units. Lookups are exact-string-match; no fuzzy matching.
type Table map[string]int

// quantityPattern matches a trailing quantity marker such as " X 3".
var quantityPattern = regexp.MustCompile(`(?i)\s*X\s*(\d+)\s*$`)

// LoadTable reads a price table from a YAML file. The table is loaded fresh
// each run and treated as an immutable snapshot.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read price table: %w", err)
	}

	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse price table: %w", err)
	}

	return table, nil
}

// Resolve maps a raw product description to a formatted total amount.
//
// The description may carry a category prefix ("AB: CUT") and a trailing
// quantity marker ("CUT X 3"). Both are stripped before lookup. Unknown
// products fall back to the DEFAULT entry, then to zero. Resolve never
// fails; absence of data degrades to "0".
func Resolve(description string, table Table) string {
	name := description

	// Keep only the part after the category prefix.
	if idx := strings.Index(name, ": "); idx != -1 {
		name = name[idx+2:]
	}

	quantity := 1
	if m := quantityPattern.FindStringSubmatch(name); m != nil {
		// The pattern only admits digits, so Atoi cannot fail here.
		quantity, _ = strconv.Atoi(m[1])
		name = name[:len(name)-len(m[0])]
	}

	name = strings.TrimSpace(name)

	unit, ok := table[name]
	if !ok {
		unit = table[DefaultKey]
	}

	return FormatAmount(unit * quantity)
}

// FormatAmount formats an integer with comma separators.
func FormatAmount(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var result []byte
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	return string(result)
}

// ParseAmount converts a formatted amount string back to an integer.
// Grouping separators are stripped; non-numeric input degrades to zero.
func ParseAmount(s string) int {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
