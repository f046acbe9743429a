// Package format renders numbers and dates for documents. Values are
// stored at full precision; only display output rounds.
package format

import (
	"fmt"
	"time"
)

// Currency formats a value with two decimal places and a currency
// suffix, e.g. "1500.00 Kz".
func Currency(value float64, suffix string) string {
	return fmt.Sprintf("%.2f %s", value, suffix)
}

// Number formats a quantity without trailing zeros, e.g. "2" or "2.5".
func Number(value float64) string {
	return fmt.Sprintf("%g", value)
}

// Percent formats a percentage rate without trailing zeros, e.g. "14%".
func Percent(value float64) string {
	return fmt.Sprintf("%g%%", value)
}

// Date renders a timestamp as dd/MM/yyyy, the pt-AO display form.
func Date(t time.Time) string {
	return t.Format("02/01/2006")
}
