package settlement

import (
	"testing"

	"github.com/etnz/settlement/date"
)

var (
	august14 = date.New(2017, 8, 14)
	august15 = date.New(2017, 8, 15)
)

// happyPath returns a Builder for a valid instruction worth 240.
func happyPath() Builder {
	return NewBuilder().
		WithEntityType(Oil).
		WithDirection(Buy).
		WithAgreedFxRate(newDecimal(".50")).
		WithCurrency("GBP").
		WithInstructionDate(date.New(2017, 8, 10)).
		WithSettlementDate(august14).
		WithUnits(10).
		WithPricePerUnit(newDecimal("48"))
}

// mustBuild builds b or fails the test.
func mustBuild(t *testing.T, b Builder) Instruction {
	t.Helper()
	i, err := b.Build()
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	return i
}

// fixture returns, for each direction, four instructions settling on
// 2017-08-14 worth 240, 300, 366 and 400 (total 1306), plus instructions that
// settle on other days.
func fixture(t *testing.T) []Instruction {
	t.Helper()
	var list []Instruction
	for _, d := range []Direction{Buy, Sell} {
		b := happyPath().WithDirection(d)
		list = append(list,
			// 122 * 0.25 * 12 = 366
			mustBuild(t, b.WithEntityType(Gold).WithCurrency("EUR").WithPricePerUnit(newDecimal("122")).WithAgreedFxRate(newDecimal("0.25")).WithUnits(12)),
			// 40 * 0.5 * 20 = 400, Monday for a Friday-Saturday weekend
			mustBuild(t, b.WithEntityType(Silver).WithCurrency("AED").WithPricePerUnit(newDecimal("40")).WithUnits(20)),
			// 48 * 0.5 * 10 = 240, Saturday moved to Monday
			mustBuild(t, b.WithSettlementDate(date.New(2017, 8, 12))),
			// 100 * 0.3 * 10 = 300, Sunday moved to Monday
			mustBuild(t, b.WithEntityType(Currency).WithCurrency("SGD").WithPricePerUnit(newDecimal("100")).WithAgreedFxRate(newDecimal("0.3")).WithSettlementDate(date.New(2017, 8, 13))),
			// settles on other days
			mustBuild(t, b.WithSettlementDate(august15).WithUnits(1000)),
			mustBuild(t, b.WithCurrency("SAR").WithSettlementDate(date.New(2017, 8, 10))),
		)
	}
	return list
}
