package settlement

import (
	"strings"

	"github.com/etnz/settlement/date"
)

// weekends maps upper case currency codes to their weekend when it is not
// Saturday and Sunday.
var weekends = map[string]date.WeekendPolicy{
	"AED": date.FriSat,
	"SAR": date.FriSat,
}

// PolicyFor returns the weekend policy that applies to settlements in
// currency. Currency codes are matched ignoring case, unlisted currencies
// settle on a Saturday and Sunday weekend.
func PolicyFor(currency string) date.WeekendPolicy {
	if p, ok := weekends[strings.ToUpper(strings.TrimSpace(currency))]; ok {
		return p
	}
	return date.SatSun
}
