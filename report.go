package settlement

import (
	"iter"
	"slices"

	"github.com/etnz/settlement/date"
	"github.com/shopspring/decimal"
)

// Report computes totals and rankings over a snapshot of instructions.
//
// A Report never modifies the instructions it was created with, so it is
// safe for concurrent use as long as the caller does not modify the slice
// either.
type Report struct {
	instructions []Instruction
}

// NewReport returns a Report on instructions. A nil slice is rejected, an
// empty one is a valid, empty, report.
func NewReport(instructions []Instruction) (*Report, error) {
	if instructions == nil {
		return nil, missing("instructions")
	}
	return &Report{instructions: instructions}, nil
}

// Len returns the number of instructions in the report.
func (r *Report) Len() int { return len(r.instructions) }

// settled iterates over instructions in direction d which settle on day on.
func (r *Report) settled(on date.Date, d Direction) iter.Seq[Instruction] {
	return func(yield func(Instruction) bool) {
		for _, i := range r.instructions {
			if i.direction != d || i.settlementDate != on {
				continue
			}
			if !yield(i) {
				return
			}
		}
	}
}

func checkQuery(on date.Date, d Direction) error {
	if on.IsZero() {
		return missing("settled date")
	}
	if d == "" {
		return missing("direction")
	}
	if !d.Known() {
		return invalid("direction", "unknown direction "+string(d))
	}
	return nil
}

// Total returns the sum of trade amounts of instructions in direction d
// settled on day on. It is zero if there are none.
func (r *Report) Total(on date.Date, d Direction) (decimal.Decimal, error) {
	if err := checkQuery(on, d); err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for i := range r.settled(on, d) {
		total = total.Add(i.TradeAmount())
	}
	return total, nil
}

// Sorted returns instructions in direction d settled on day on, by ascending
// trade amount. Instructions with the same amount keep their report order.
func (r *Report) Sorted(on date.Date, d Direction) ([]Instruction, error) {
	if err := checkQuery(on, d); err != nil {
		return nil, err
	}
	list := make([]Instruction, 0)
	for i := range r.settled(on, d) {
		list = append(list, i)
	}
	slices.SortStableFunc(list, func(a, b Instruction) int {
		return a.TradeAmount().Cmp(b.TradeAmount())
	})
	return list, nil
}

// TotalIncoming returns the total amount sold on day on.
func (r *Report) TotalIncoming(on date.Date) (decimal.Decimal, error) { return r.Total(on, Incoming) }

// TotalOutgoing returns the total amount bought on day on.
func (r *Report) TotalOutgoing(on date.Date) (decimal.Decimal, error) { return r.Total(on, Outgoing) }

// SortedIncoming returns the sales settled on day on by ascending amount.
func (r *Report) SortedIncoming(on date.Date) ([]Instruction, error) { return r.Sorted(on, Incoming) }

// SortedOutgoing returns the purchases settled on day on by ascending amount.
func (r *Report) SortedOutgoing(on date.Date) ([]Instruction, error) { return r.Sorted(on, Outgoing) }

// SettlementDates returns the distinct settlement dates of the report in
// chronological order.
func (r *Report) SettlementDates() []date.Date {
	seen := make(map[date.Date]struct{})
	dates := make([]date.Date, 0)
	for _, i := range r.instructions {
		if _, exists := seen[i.settlementDate]; exists {
			continue
		}
		seen[i.settlementDate] = struct{}{}
		dates = append(dates, i.settlementDate)
	}
	slices.SortFunc(dates, func(a, b date.Date) int {
		switch {
		case a.Before(b):
			return -1
		case a.After(b):
			return 1
		default:
			return 0
		}
	})
	return dates
}

// DailyTotal holds the incoming and outgoing totals of a single day.
type DailyTotal struct {
	On       date.Date
	Incoming decimal.Decimal
	Outgoing decimal.Decimal
}

// Daily returns the totals for every day of the range, including days where
// nothing settles.
func (r *Report) Daily(days date.Range) ([]DailyTotal, error) {
	if days.From.IsZero() {
		return nil, missing("from date")
	}
	if days.To.IsZero() {
		return nil, missing("to date")
	}
	if days.To.Before(days.From) {
		return nil, invalid("to date", "must not be before "+days.From.String())
	}
	totals := make([]DailyTotal, 0)
	for on := range days.Days() {
		in, err := r.TotalIncoming(on)
		if err != nil {
			return nil, err
		}
		out, err := r.TotalOutgoing(on)
		if err != nil {
			return nil, err
		}
		totals = append(totals, DailyTotal{On: on, Incoming: in, Outgoing: out})
	}
	return totals, nil
}

// Ranked is an instruction with its rank, 1 being the largest trade amount.
type Ranked struct {
	Rank int
	Instruction
}

// Rank returns instructions in direction d settled on day on by descending
// trade amount. Instructions with the same amount share the same rank and the
// next amount gets the next rank.
func (r *Report) Rank(on date.Date, d Direction) ([]Ranked, error) {
	sorted, err := r.Sorted(on, d)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(sorted, func(a, b Instruction) int {
		return b.TradeAmount().Cmp(a.TradeAmount())
	})
	ranked := make([]Ranked, 0, len(sorted))
	rank := 0
	var previous decimal.Decimal
	for _, i := range sorted {
		amount := i.TradeAmount()
		if rank == 0 || !amount.Equal(previous) {
			rank++
			previous = amount
		}
		ranked = append(ranked, Ranked{Rank: rank, Instruction: i})
	}
	return ranked, nil
}
