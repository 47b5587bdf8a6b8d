package domain

import (
	"github.com/govalues/decimal"
)

// Money is an amount in minor currency units (cents). All arithmetic
// stays on the integer; Display is formatting only.
type Money int64

// Display renders the amount in major units with two decimal places,
// e.g. Money(1050).Display() == "10.50".
func (m Money) Display() string {
	d, err := decimal.New(int64(m), 2)
	if err != nil {
		return "0.00"
	}
	return d.String()
}
