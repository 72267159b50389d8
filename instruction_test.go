package settlement

import (
	"errors"
	"testing"

	"github.com/etnz/settlement/date"
	"github.com/shopspring/decimal"
)

func TestBuilder_Build(t *testing.T) {
	i, err := happyPath().Build()
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	if i.EntityType() != Oil || i.Direction() != Buy || i.Currency() != "GBP" || i.Units() != 10 {
		t.Errorf("Build() = %v, fields do not match the builder", i)
	}
	if want := date.New(2017, 8, 10); i.InstructionDate() != want {
		t.Errorf("InstructionDate() = %v, want %v", i.InstructionDate(), want)
	}
	if !i.AgreedFx().Equal(newDecimal("0.5")) || !i.PricePerUnit().Equal(newDecimal("48")) {
		t.Errorf("Build() = %v, decimals do not match the builder", i)
	}
}

func TestBuilder_Missing(t *testing.T) {
	testCases := []struct {
		field  string
		change func(Builder) Builder
	}{
		{"entity type", func(b Builder) Builder { return b.WithEntityType("") }},
		{"direction", func(b Builder) Builder { return b.WithDirection("") }},
		{"agreed fx rate", func(b Builder) Builder { b.agreedFx = decimal.NullDecimal{}; return b }},
		{"currency", func(b Builder) Builder { return b.WithCurrency("") }},
		{"currency", func(b Builder) Builder { return b.WithCurrency("  ") }},
		{"instruction date", func(b Builder) Builder { return b.WithInstructionDate(date.Date{}) }},
		{"settlement date", func(b Builder) Builder { return b.WithSettlementDate(date.Date{}) }},
		{"price per unit", func(b Builder) Builder { b.pricePerUnit = decimal.NullDecimal{}; return b }},
	}
	for _, tc := range testCases {
		t.Run(tc.field, func(t *testing.T) {
			i, err := tc.change(happyPath()).Build()
			if !errors.Is(err, ErrMissingField) {
				t.Fatalf("Build() error = %v, want ErrMissingField", err)
			}
			var fe *FieldError
			if !errors.As(err, &fe) || fe.Field != tc.field {
				t.Errorf("Build() error = %v, want field %q", err, tc.field)
			}
			if !i.Equal(Instruction{}) {
				t.Errorf("Build() returned a partial instruction %v", i)
			}
		})
	}
}

func TestBuilder_Invalid(t *testing.T) {
	testCases := []struct {
		name   string
		field  string
		change func(Builder) Builder
	}{
		{"zero rate", "agreed fx rate", func(b Builder) Builder { return b.WithAgreedFxRate(decimal.Zero) }},
		{"negative rate", "agreed fx rate", func(b Builder) Builder { return b.WithAgreedFxRate(newDecimal(-1)) }},
		{"zero units", "units", func(b Builder) Builder { return b.WithUnits(0) }},
		{"negative units", "units", func(b Builder) Builder { return b.WithUnits(-1) }},
		{"zero price", "price per unit", func(b Builder) Builder { return b.WithPricePerUnit(decimal.Zero) }},
		{"negative price", "price per unit", func(b Builder) Builder { return b.WithPricePerUnit(newDecimal(-1)) }},
		{"unknown entity", "entity type", func(b Builder) Builder { return b.WithEntityType("WHEAT") }},
		{"unknown direction", "direction", func(b Builder) Builder { return b.WithDirection("HOLD") }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.change(happyPath()).Build()
			if !errors.Is(err, ErrInvalidValue) {
				t.Fatalf("Build() error = %v, want ErrInvalidValue", err)
			}
			var fe *FieldError
			if !errors.As(err, &fe) || fe.Field != tc.field {
				t.Errorf("Build() error = %v, want field %q", err, tc.field)
			}
		})
	}
}

// TestBuilder_FirstFailure checks that the first failing field is reported.
func TestBuilder_FirstFailure(t *testing.T) {
	_, err := NewBuilder().WithUnits(-1).Build()
	var fe *FieldError
	if !errors.As(err, &fe) || fe.Field != "entity type" {
		t.Errorf("Build() error = %v, want the entity type first", err)
	}
	if got, want := err.Error(), `missing required field "entity type"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	_, err = happyPath().WithUnits(0).Build()
	if got, want := err.Error(), `invalid value for "units": must be greater than zero`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestInstruction_SettlementDate(t *testing.T) {
	testCases := []struct {
		name     string
		currency string
		in       date.Date
		want     date.Date
	}{
		{"USD sunday", "USD", date.New(2017, 8, 13), date.New(2017, 8, 14)},
		{"USD saturday", "USD", date.New(2017, 8, 12), date.New(2017, 8, 14)},
		{"GBP friday", "GBP", date.New(2017, 8, 11), date.New(2017, 8, 11)},
		{"SAR friday", "SAR", date.New(2017, 8, 11), date.New(2017, 8, 13)},
		{"SAR saturday", "SAR", date.New(2017, 8, 12), date.New(2017, 8, 13)},
		{"AED friday", "AED", date.New(2017, 8, 11), date.New(2017, 8, 13)},
		{"AED saturday", "AED", date.New(2017, 8, 12), date.New(2017, 8, 13)},
		{"aed lower case", "aed", date.New(2017, 8, 11), date.New(2017, 8, 13)},
		{"Sar mixed case", "Sar", date.New(2017, 8, 12), date.New(2017, 8, 13)},
		{"AED sunday", "AED", date.New(2017, 8, 13), date.New(2017, 8, 13)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			i := mustBuild(t, happyPath().WithCurrency(tc.currency).WithSettlementDate(tc.in))
			if got := i.SettlementDate(); got != tc.want {
				t.Errorf("SettlementDate() = %v, want %v", got, tc.want)
			}
			if i.Currency() != tc.currency {
				t.Errorf("Currency() = %q, want it as given %q", i.Currency(), tc.currency)
			}
		})
	}
}

func TestInstruction_TradeAmount(t *testing.T) {
	i := mustBuild(t, happyPath())
	want := newDecimal("240.00")
	if got := i.TradeAmount(); !got.Equal(want) {
		t.Errorf("TradeAmount() = %v, want %v", got, want)
	}
	if got := i.TradeAmount().StringFixed(2); got != "240.00" {
		t.Errorf("TradeAmount() = %s, want 240.00", got)
	}

	// no rounding drift where float64 would have some.
	i = mustBuild(t, happyPath().WithPricePerUnit(newDecimal("0.1")).WithAgreedFxRate(newDecimal("0.2")).WithUnits(3))
	if got, want := i.TradeAmount(), newDecimal("0.06"); !got.Equal(want) {
		t.Errorf("TradeAmount() = %v, want %v", got, want)
	}
}

func TestInstruction_Equal(t *testing.T) {
	a := mustBuild(t, happyPath())
	b := mustBuild(t, happyPath().WithAgreedFxRate(newDecimal("0.5000")))
	if !a.Equal(b) {
		t.Errorf("%v and %v should be equal", a, b)
	}
	if a.Key() != b.Key() {
		t.Errorf("equal instructions have different keys %q and %q", a.Key(), b.Key())
	}

	// both requested dates resolve to the same settlement date.
	c := mustBuild(t, happyPath().WithSettlementDate(date.New(2017, 8, 12)))
	if !a.Equal(c) {
		t.Errorf("%v and %v should be equal once resolved", a, c)
	}

	for _, other := range []Builder{
		happyPath().WithDirection(Sell),
		happyPath().WithCurrency("gbp"),
		happyPath().WithUnits(11),
		happyPath().WithSettlementDate(august15),
	} {
		d := mustBuild(t, other)
		if a.Equal(d) || a.Key() == d.Key() {
			t.Errorf("%v and %v should differ", a, d)
		}
	}

	set := map[string]Instruction{a.Key(): a}
	if _, ok := set[c.Key()]; !ok {
		t.Error("Key() cannot be used to find an equal instruction")
	}
}

func TestParseEntityType(t *testing.T) {
	for in, want := range map[string]EntityType{"oil": Oil, "Gold": Gold, " SILVER ": Silver, "currency": Currency} {
		got, err := ParseEntityType(in)
		if err != nil || got != want {
			t.Errorf("ParseEntityType(%q) = %v, %v want %v", in, got, err, want)
		}
	}
	if _, err := ParseEntityType("wheat"); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("ParseEntityType(wheat) error = %v, want ErrInvalidValue", err)
	}
	if _, err := ParseDirection("hold"); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("ParseDirection(hold) error = %v, want ErrInvalidValue", err)
	}
	if d, err := ParseDirection("sell"); err != nil || d != Incoming {
		t.Errorf("ParseDirection(sell) = %v, %v want %v", d, err, Incoming)
	}
}
