package settlement

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/settlement/date"
	"github.com/shopspring/decimal"
)

// Instruction is a validated order to buy or sell units of a traded entity.
//
// Instructions are immutable, the zero value is not a valid instruction. Use
// a Builder to create one.
type Instruction struct {
	entity          EntityType
	direction       Direction
	agreedFx        decimal.Decimal // USD to currency rate
	currency        string
	instructionDate date.Date
	settlementDate  date.Date // resolved to a business day
	units           int
	pricePerUnit    decimal.Decimal
}

func (i Instruction) EntityType() EntityType     { return i.entity }
func (i Instruction) Direction() Direction       { return i.direction }
func (i Instruction) AgreedFx() decimal.Decimal  { return i.agreedFx }
func (i Instruction) Currency() string           { return i.currency }
func (i Instruction) InstructionDate() date.Date { return i.instructionDate }
func (i Instruction) Units() int                 { return i.units }
func (i Instruction) PricePerUnit() decimal.Decimal {
	return i.pricePerUnit
}

// SettlementDate returns the settlement date moved to the next business day
// of the instruction's currency.
func (i Instruction) SettlementDate() date.Date { return i.settlementDate }

// TradeAmount returns the USD amount of the trade: price per unit times agreed
// fx times units.
func (i Instruction) TradeAmount() decimal.Decimal {
	return i.pricePerUnit.Mul(i.agreedFx).Mul(newDecimal(i.units))
}

// Equal returns true if both instructions hold the same values.
func (i Instruction) Equal(j Instruction) bool {
	return i.entity == j.entity &&
		i.direction == j.direction &&
		i.agreedFx.Equal(j.agreedFx) &&
		i.currency == j.currency &&
		i.instructionDate == j.instructionDate &&
		i.settlementDate == j.settlementDate &&
		i.units == j.units &&
		i.pricePerUnit.Equal(j.pricePerUnit)
}

// Key returns a canonical representation of the instruction values.
// Two equal instructions have the same key, so it can be used as a map key.
func (i Instruction) Key() string {
	return strings.Join([]string{
		string(i.entity),
		string(i.direction),
		i.agreedFx.String(),
		i.currency,
		i.instructionDate.String(),
		i.settlementDate.String(),
		fmt.Sprint(i.units),
		i.pricePerUnit.String(),
	}, "|")
}

func (i Instruction) String() string {
	return fmt.Sprintf("%s %d %s @ %s %s (fx %s) settling %s", i.direction, i.units, i.entity, i.pricePerUnit, i.currency, i.agreedFx, i.settlementDate)
}

// Builder collects the fields of an instruction. Each With method returns a
// modified copy, so a partially filled Builder can be reused as a template.
type Builder struct {
	entity          EntityType
	direction       Direction
	agreedFx        decimal.NullDecimal
	currency        string
	instructionDate date.Date
	settlementDate  date.Date
	units           int
	pricePerUnit    decimal.NullDecimal
}

// NewBuilder returns an empty Builder.
func NewBuilder() Builder { return Builder{} }

func (b Builder) WithEntityType(e EntityType) Builder { b.entity = e; return b }
func (b Builder) WithDirection(d Direction) Builder   { b.direction = d; return b }
func (b Builder) WithCurrency(c string) Builder       { b.currency = c; return b }
func (b Builder) WithUnits(n int) Builder             { b.units = n; return b }

func (b Builder) WithAgreedFxRate(rate decimal.Decimal) Builder {
	b.agreedFx = decimal.NewNullDecimal(rate)
	return b
}

func (b Builder) WithPricePerUnit(price decimal.Decimal) Builder {
	b.pricePerUnit = decimal.NewNullDecimal(price)
	return b
}

// WithInstructionDate sets the date the instruction was sent. The zero Date
// unsets it.
func (b Builder) WithInstructionDate(d date.Date) Builder { b.instructionDate = d; return b }

// WithSettlementDate sets the requested settlement date. The zero Date unsets
// it.
func (b Builder) WithSettlementDate(d date.Date) Builder { b.settlementDate = d; return b }

// Build validates the fields and returns the instruction. It stops at the
// first invalid field and returns an error wrapping ErrMissingField or
// ErrInvalidValue.
func (b Builder) Build() (Instruction, error) {
	switch {
	case b.entity == "":
		return Instruction{}, missing("entity type")
	case !b.entity.Known():
		return Instruction{}, invalid("entity type", "unknown entity "+string(b.entity))
	case b.direction == "":
		return Instruction{}, missing("direction")
	case !b.direction.Known():
		return Instruction{}, invalid("direction", "unknown direction "+string(b.direction))
	case !b.agreedFx.Valid:
		return Instruction{}, missing("agreed fx rate")
	case !b.agreedFx.Decimal.IsPositive():
		return Instruction{}, invalid("agreed fx rate", "must be greater than zero")
	case strings.TrimSpace(b.currency) == "":
		return Instruction{}, missing("currency")
	case b.instructionDate.IsZero():
		return Instruction{}, missing("instruction date")
	case b.settlementDate.IsZero():
		return Instruction{}, missing("settlement date")
	case b.units <= 0:
		return Instruction{}, invalid("units", "must be greater than zero")
	case !b.pricePerUnit.Valid:
		return Instruction{}, missing("price per unit")
	case !b.pricePerUnit.Decimal.IsPositive():
		return Instruction{}, invalid("price per unit", "must be greater than zero")
	}

	settled, err := date.NextAllowable(b.settlementDate, PolicyFor(b.currency))
	if errors.Is(err, date.ErrInvalidArgument) {
		return Instruction{}, missing("settlement date")
	}
	if err != nil {
		return Instruction{}, fmt.Errorf("cannot resolve settlement date: %w", err)
	}

	return Instruction{
		entity:          b.entity,
		direction:       b.direction,
		agreedFx:        b.agreedFx.Decimal,
		currency:        b.currency,
		instructionDate: b.instructionDate,
		settlementDate:  settled,
		units:           b.units,
		pricePerUnit:    b.pricePerUnit.Decimal,
	}, nil
}
