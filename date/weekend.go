package date

import (
	"fmt"
	"strings"
	"time"
)

// WeekendPolicy is the pair of weekdays that are not business days.
//
// The zero value is not a policy, it marks an absent one.
type WeekendPolicy struct {
	name string
	days [2]time.Weekday
}

// Weekend policies in use.
var (
	SatSun = WeekendPolicy{name: "SAT_SUN", days: [2]time.Weekday{time.Saturday, time.Sunday}}
	FriSat = WeekendPolicy{name: "FRI_SAT", days: [2]time.Weekday{time.Friday, time.Saturday}}
)

// IsZero returns true for the zero policy.
func (p WeekendPolicy) IsZero() bool { return p.name == "" }

// IsWeekend reports whether day is one of the policy's weekend days.
func (p WeekendPolicy) IsWeekend(day time.Weekday) bool {
	if p.IsZero() {
		return false
	}
	return day == p.days[0] || day == p.days[1]
}

// Days returns the weekend days.
func (p WeekendPolicy) Days() []time.Weekday {
	if p.IsZero() {
		return nil
	}
	return []time.Weekday{p.days[0], p.days[1]}
}

func (p WeekendPolicy) String() string { return p.name }

// ParseWeekendPolicy returns the policy named s, ignoring case.
func ParseWeekendPolicy(s string) (WeekendPolicy, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case SatSun.name:
		return SatSun, nil
	case FriSat.name:
		return FriSat, nil
	default:
		return WeekendPolicy{}, fmt.Errorf("unknown weekend policy %q", s)
	}
}
