package settlement

import "github.com/shopspring/decimal"

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T int | string](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case int:
		return decimal.NewFromInt(int64(v))
	default:
		return decimal.RequireFromString(v.(string))
	}
}
