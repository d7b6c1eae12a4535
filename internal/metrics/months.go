package metrics

import (
	"fmt"
	"time"
)

// MonthOption is a selectable billing period.
type MonthOption struct {
	Value string `json:"value"` // YYYY-MM
	Label string `json:"label"` // e.g. "March 2024"
}

// MonthOptions returns the trailing six calendar months including the
// one containing now, most recent first. Deterministic for a fixed
// now, so billing-period menus and reminder defaults are testable.
func MonthOptions(now time.Time) []MonthOption {
	options := make([]MonthOption, 0, 6)
	for i := 0; i < 6; i++ {
		// Normalizing to the first of the month avoids day-overflow
		// surprises when stepping back from e.g. the 31st.
		d := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		options = append(options, MonthOption{
			Value: fmt.Sprintf("%04d-%02d", d.Year(), int(d.Month())),
			Label: fmt.Sprintf("%s %d", d.Month(), d.Year()),
		})
	}
	return options
}

// CurrentMonth returns the YYYY-MM token for the month containing now.
func CurrentMonth(now time.Time) string {
	return fmt.Sprintf("%04d-%02d", now.Year(), int(now.Month()))
}
