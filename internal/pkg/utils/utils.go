package utils

import "fmt"

// ConvertMinutesToDuration convert minutes to duration format string
// Example: 125 -> "2h 5m"
func ConvertMinutesToDuration(durationInMinutes int64) string {
	if durationInMinutes < 0 {
		durationInMinutes = 0
	}

	h := durationInMinutes / 60
	m := durationInMinutes % 60

	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}

	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}

	return fmt.Sprintf("%dh %dm", h, m)
}
