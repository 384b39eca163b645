package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type Formatter struct {
}

// GetPrecision counts significant decimals of an exchange step ("0.00100000" -> 3, "1" -> 0).
func (m *Formatter) GetPrecision(step float64) int {
	if step <= 0 {
		return 0
	}

	split := strings.Split(strconv.FormatFloat(step, 'f', -1, 64), ".")
	if len(split) < 2 {
		return 0
	}

	return len(strings.TrimRight(split[1], "0"))
}

func (m *Formatter) ToFixed(num float64, precision int) float64 {
	return decimal.NewFromFloat(num).Round(int32(precision)).InexactFloat64()
}

func (m *Formatter) FormatDecimal(num float64) string {
	return strconv.FormatFloat(num, 'f', -1, 64)
}

func (m *Formatter) ParseDecimal(value string) (float64, error) {
	if value == "" {
		return 0, nil
	}

	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return 0, fmt.Errorf("can't parse decimal %q: %w", value, err)
	}

	return parsed.InexactFloat64(), nil
}
