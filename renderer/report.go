package renderer

import (
	"fmt"
	"time"

	"github.com/etnz/settlement"
	"github.com/etnz/settlement/date"
	"github.com/shopspring/decimal"
)

// SettlementReport is the printable view of the incoming and outgoing
// settlements over a range of days.
type SettlementReport struct {
	Title     string
	Generated string
	Count     int
	Totals    []Total // one per day of the range
	Incoming  string  // grand total
	Outgoing  string  // grand total
	Days      []Day   // only the days with settlements
}

// Total is a row of the summary table.
type Total struct {
	On                 string
	Incoming, Outgoing string
}

// Day lists the settlements of a single day. A side is nil when nothing
// settles in that direction.
type Day struct {
	On       string
	Incoming *Side
	Outgoing *Side
}

// Side is the ranking of one direction on a day.
type Side struct {
	Label string
	Total string
	Rows  []Row
}

// Row is a ranked instruction.
type Row struct {
	Rank     int
	Entity   string
	Units    int
	Price    string
	Currency string
	Fx       string
	Amount   string
}

// NewSettlementReport computes the report view for every day of the range.
// generated is the date printed as the generation date.
func NewSettlementReport(r *settlement.Report, days date.Range, generated date.Date) (*SettlementReport, error) {
	daily, err := r.Daily(days)
	if err != nil {
		return nil, err
	}
	v := &SettlementReport{
		Title:     days.String(),
		Generated: generated.String(),
		Count:     r.Len(),
	}
	in, out := decimal.Zero, decimal.Zero
	for _, d := range daily {
		in, out = in.Add(d.Incoming), out.Add(d.Outgoing)
		v.Totals = append(v.Totals, Total{On: dayName(d.On), Incoming: usd(d.Incoming), Outgoing: usd(d.Outgoing)})

		incoming, err := newSide("Incoming", r, d.On, settlement.Incoming, d.Incoming)
		if err != nil {
			return nil, err
		}
		outgoing, err := newSide("Outgoing", r, d.On, settlement.Outgoing, d.Outgoing)
		if err != nil {
			return nil, err
		}
		if incoming != nil || outgoing != nil {
			v.Days = append(v.Days, Day{On: dayName(d.On), Incoming: incoming, Outgoing: outgoing})
		}
	}
	v.Incoming, v.Outgoing = usd(in), usd(out)
	return v, nil
}

func newSide(label string, r *settlement.Report, on date.Date, d settlement.Direction, total decimal.Decimal) (*Side, error) {
	ranked, err := r.Rank(on, d)
	if err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		return nil, nil
	}
	s := &Side{Label: fmt.Sprintf("%s (%s)", label, d), Total: usd(total)}
	for _, i := range ranked {
		s.Rows = append(s.Rows, Row{
			Rank:     i.Rank,
			Entity:   string(i.EntityType()),
			Units:    i.Units(),
			Price:    i.PricePerUnit().String(),
			Currency: i.Currency(),
			Fx:       i.AgreedFx().String(),
			Amount:   usd(i.TradeAmount()),
		})
	}
	return s, nil
}

// dayName formats a date with its short weekday, e.g. "2017-08-14 Mon".
func dayName(d date.Date) string {
	return d.String() + " " + d.Weekday().String()[:3]
}

// Settle is the printable view of a settlement date adjustment.
type Settle struct {
	Requested    string
	RequestedDay time.Weekday
	Currency     string
	Weekend      string
	Settles      string
	SettlesDay   time.Weekday
}

// NewSettle returns the adjustment of the requested date for currency.
func NewSettle(requested date.Date, currency string) (*Settle, error) {
	policy := settlement.PolicyFor(currency)
	settles, err := date.NextAllowable(requested, policy)
	if err != nil {
		return nil, err
	}
	return &Settle{
		Requested:    requested.String(),
		RequestedDay: requested.Weekday(),
		Currency:     currency,
		Weekend:      policy.String(),
		Settles:      settles.String(),
		SettlesDay:   settles.Weekday(),
	}, nil
}
