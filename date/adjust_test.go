package date

import (
	"errors"
	"testing"
	"time"
)

func TestNextAllowable(t *testing.T) {
	testCases := []struct {
		name   string
		in     Date
		policy WeekendPolicy
		want   Date
	}{
		{"weekday is kept", New(2017, time.August, 15), SatSun, New(2017, time.August, 15)},
		{"sunday to monday", New(2017, time.August, 13), SatSun, New(2017, time.August, 14)},
		{"saturday to monday", New(2017, time.August, 12), SatSun, New(2017, time.August, 14)},
		{"friday is a business day", New(2017, time.August, 11), SatSun, New(2017, time.August, 11)},
		{"friday to sunday", New(2017, time.August, 11), FriSat, New(2017, time.August, 13)},
		{"saturday to sunday", New(2017, time.August, 12), FriSat, New(2017, time.August, 13)},
		{"sunday is a business day", New(2017, time.August, 13), FriSat, New(2017, time.August, 13)},
		{"across month end", New(2017, time.September, 30), SatSun, New(2017, time.October, 2)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NextAllowable(tc.in, tc.policy)
			if err != nil {
				t.Fatalf("NextAllowable(%v, %v) error = %v", tc.in, tc.policy, err)
			}
			if got != tc.want {
				t.Errorf("NextAllowable(%v, %v) = %v, want %v", tc.in, tc.policy, got, tc.want)
			}
			again, _ := NextAllowable(got, tc.policy)
			if again != got {
				t.Errorf("NextAllowable is not idempotent: %v then %v", got, again)
			}
		})
	}
}

// TestNextAllowable_EveryDay checks the weekday offsets over four full weeks.
func TestNextAllowable_EveryDay(t *testing.T) {
	offsets := map[WeekendPolicy]map[time.Weekday]int{
		SatSun: {time.Saturday: 2, time.Sunday: 1},
		FriSat: {time.Friday: 2, time.Saturday: 1},
	}
	start := New(2017, time.August, 1)
	for policy, offset := range offsets {
		for i := range 28 {
			d := start.Add(i)
			got, err := NextAllowable(d, policy)
			if err != nil {
				t.Fatalf("NextAllowable(%v) error = %v", d, err)
			}
			if want := d.Add(offset[d.Weekday()]); got != want {
				t.Errorf("%v: NextAllowable(%v) = %v, want %v", policy, d, got, want)
			}
		}
	}
}

func TestNextAllowable_Absent(t *testing.T) {
	testCases := []struct {
		name   string
		in     Date
		policy WeekendPolicy
	}{
		{"date", Date{}, SatSun},
		{"weekend", New(2017, time.August, 13), WeekendPolicy{}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NextAllowable(tc.in, tc.policy)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("NextAllowable() error = %v, want ErrInvalidArgument", err)
			}
			var argErr *ArgumentError
			if !errors.As(err, &argErr) || argErr.Name != tc.name {
				t.Errorf("NextAllowable() error = %v, want argument %q", err, tc.name)
			}
		})
	}
}
