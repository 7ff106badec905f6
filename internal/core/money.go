// Package core holds the compliance domain model: money, dates, categories,
// transaction records, reporting periods, and the assembled report.
//
// Amounts are integer cents everywhere. The only place currency leaves that
// representation is Dollars(), which renders by integer division so every
// cent value round-trips exactly.
package core

import "fmt"

// Dollars renders cents as a decimal dollar string with exactly two fraction
// digits: 1050 -> "10.50", 5 -> "0.05". No floating point is involved.
func (m Money) Dollars() string {
	cents := m.Cents
	neg := cents < 0
	if neg {
		cents = -cents
	}
	s := fmt.Sprintf("%d.%02d", cents/100, cents%100)
	if neg {
		return "-" + s
	}
	return s
}
