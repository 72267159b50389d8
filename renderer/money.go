package renderer

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// bounds of the cents amounts go-money can format.
var (
	maxCents = decimal.NewFromInt(math.MaxInt64)
	minCents = maxCents.Neg()
)

// usd formats a trade amount as US dollars, rounded to the cent.
func usd(amount decimal.Decimal) string {
	cur := money.GetCurrency(money.USD)
	cents := amount.Shift(int32(cur.Fraction)).Round(0)
	if cents.GreaterThanOrEqual(minCents) && cents.LessThanOrEqual(maxCents) {
		return cur.Formatter().Format(cents.IntPart())
	}
	return format(cur, amount)
}

// format formats amount like the currency formatter does, without the int64
// limit.
func format(cur *money.Currency, amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(int32(cur.Fraction))
	integer, fraction, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for k, digit := range integer {
		if k > 0 && (len(integer)-k)%3 == 0 {
			b.WriteString(cur.Thousand)
		}
		b.WriteRune(digit)
	}
	if fraction != "" {
		b.WriteString(cur.Decimal)
		b.WriteString(fraction)
	}

	result := strings.Replace(cur.Template, "1", b.String(), 1)
	result = strings.Replace(result, "$", cur.Grapheme, 1)
	if amount.IsNegative() {
		result = "-" + result
	}
	return result
}
