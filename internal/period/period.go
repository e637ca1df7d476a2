// Package period labels simulated months. Periods are 1-based: period 1 is
// month 1 of year 1.
package period

import (
	"fmt"
	"strconv"
	"strings"
)

// Format returns a label like "Y02M05" for a 1-based period index.
func Format(p int) string {
	if p < 1 {
		return fmt.Sprintf("Y00M%02d", p)
	}
	year := (p-1)/12 + 1
	month := (p-1)%12 + 1
	return fmt.Sprintf("Y%02dM%02d", year, month)
}

// Parse converts a "Y02M05" label back into a 1-based period index.
func Parse(label string) (int, error) {
	rest, ok := strings.CutPrefix(label, "Y")
	if !ok {
		return 0, fmt.Errorf("invalid period label: %q", label)
	}
	yearStr, monthStr, ok := strings.Cut(rest, "M")
	if !ok {
		return 0, fmt.Errorf("invalid period label: %q", label)
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return 0, fmt.Errorf("invalid year in period label %q: %w", label, err)
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return 0, fmt.Errorf("invalid month in period label %q: %w", label, err)
	}
	if year < 1 || month < 1 || month > 12 {
		return 0, fmt.Errorf("period label out of range: %q", label)
	}
	return (year-1)*12 + month, nil
}
