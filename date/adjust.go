package date

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a required argument is absent.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError names the absent argument.
type ArgumentError struct {
	Name string
}

func (e *ArgumentError) Error() string { return fmt.Sprintf("%s should not be absent", e.Name) }

func (e *ArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

// NextAllowable returns the first date on or after d that is not a weekend
// day under policy p.
//
// It fails when d is the zero Date or p the zero policy.
func NextAllowable(d Date, p WeekendPolicy) (Date, error) {
	if d.IsZero() {
		return Date{}, &ArgumentError{Name: "date"}
	}
	if p.IsZero() {
		return Date{}, &ArgumentError{Name: "weekend"}
	}
	for p.IsWeekend(d.Weekday()) {
		d = d.Add(1)
	}
	return d, nil
}
