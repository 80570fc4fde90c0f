package dates

import (
	"fmt"
	"sort"
	"strings"
)

// monthNames maps English and French month names, full and abbreviated,
// with and without diacritics, to month numbers.
var monthNames = map[string]int{
	// English
	"jan": 1, "january": 1,
	"feb": 2, "february": 2,
	"mar": 3, "march": 3,
	"apr": 4, "april": 4,
	"may": 5,
	"jun": 6, "june": 6,
	"jul": 7, "july": 7,
	"aug": 8, "august": 8,
	"sep": 9, "september": 9,
	"oct": 10, "october": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,

	// French
	"janv": 1, "janvier": 1,
	"févr": 2, "février": 2, "fev": 2, "fevrier": 2,
	"mars": 3,
	"avr": 4, "avril": 4,
	"mai": 5,
	"juin": 6,
	"juil": 7, "juillet": 7,
	"août": 8, "aout": 8,
	"sept": 9, "septembre": 9,
	"déc": 12, "décembre": 12, "decembre": 12,
}

// sortedMonthKeys gives prefix matching a deterministic order.
var sortedMonthKeys = func() []string {
	keys := make([]string, 0, len(monthNames))
	for k := range monthNames {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}()

// MonthNumber maps an English or French month name to 1-12. An unknown name
// is a hard failure for the current pattern attempt.
func MonthNumber(name string) (int, error) {
	cleaned := strings.Trim(strings.ToLower(strings.TrimSpace(name)), ".,")
	if cleaned == "" {
		return 1, nil
	}

	if month, ok := monthNames[cleaned]; ok {
		return month, nil
	}

	// Tolerate abbreviated forms not in the table ("janvi", "septem").
	for _, key := range sortedMonthKeys {
		if strings.HasPrefix(key, cleaned) || strings.HasPrefix(cleaned, key) {
			return monthNames[key], nil
		}
	}

	return 0, fmt.Errorf("unknown month name %q", name)
}
