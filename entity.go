package settlement

import (
	"strings"
)

// EntityType is the tag of the traded entity.
type EntityType string

// Known traded entities.
const (
	Oil      EntityType = "OIL"
	Gold     EntityType = "GOLD"
	Silver   EntityType = "SILVER"
	Currency EntityType = "CURRENCY"
)

var entityTypes = []EntityType{Oil, Gold, Silver, Currency}

// Known returns true if e is one of the known entity types.
func (e EntityType) Known() bool {
	for _, k := range entityTypes {
		if e == k {
			return true
		}
	}
	return false
}

// ParseEntityType returns the entity type for s, ignoring case.
func ParseEntityType(s string) (EntityType, error) {
	e := EntityType(strings.ToUpper(strings.TrimSpace(s)))
	if !e.Known() {
		return "", invalid("entity type", "unknown entity "+s)
	}
	return e, nil
}

// Direction tells whether an instruction buys or sells.
type Direction string

const (
	Buy  Direction = "BUY"
	Sell Direction = "SELL"
)

// Incoming and Outgoing name the directions as seen by reports.
const (
	Incoming = Sell
	Outgoing = Buy
)

// Known returns true for Buy and Sell.
func (d Direction) Known() bool { return d == Buy || d == Sell }

// ParseDirection returns the direction for s, ignoring case.
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToUpper(strings.TrimSpace(s)))
	if !d.Known() {
		return "", invalid("direction", "unknown direction "+s)
	}
	return d, nil
}
