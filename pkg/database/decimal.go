package database

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CompareDecimal compares two decimal texts exactly and returns -1, 0 or +1. It backs the deccmp
// SQL function, since CAST(... AS REAL) loses digits past double precision.
func CompareDecimal(a, b string) (int, error) {
	x, err := decimal.NewFromString(a)
	if err != nil {
		return 0, fmt.Errorf("deccmp: invalid decimal %q: %w", a, err)
	}
	y, err := decimal.NewFromString(b)
	if err != nil {
		return 0, fmt.Errorf("deccmp: invalid decimal %q: %w", b, err)
	}
	return x.Cmp(y), nil
}
