// utils/dates.go
package utils

import "time"

// FormatDisplayDate renders a date the way the dashboard tables show it,
// e.g. "10/9/2024".
func FormatDisplayDate(t time.Time) string {
	return t.Format("1/2/2006")
}
