package seva

import (
	"fmt"
	"strconv"
)

// Money is an amount in paise.
type Money int64

func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON renders rupees as a JSON number with two decimals.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	if f < 0 {
		*m = Money(f*100 - 0.5)
		return nil
	}
	*m = Money(f*100 + 0.5)
	return nil
}

func sumAmount(total Money, amount *Money) Money {
	if amount == nil {
		return total
	}
	return total + *amount
}
