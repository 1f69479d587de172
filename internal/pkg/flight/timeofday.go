package flight

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/ijalalfrz/flight-selection-service/internal/app/dto"
)

var (
	twelveHourPattern     = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(AM|PM)`)
	twentyFourHourPattern = regexp.MustCompile(`(\d{1,2})[:.](\d{2})`)
)

// Categorize maps a departure time to its time-of-day bucket. Both 12-hour
// ("2:30 PM") and 24-hour ("14:30", "14.30") clocks are accepted and the clock
// may be embedded in a longer string such as "2025-05-10 14:30".
// Strings without a usable clock are reported and categorized as unknown.
func Categorize(ctx context.Context, timeStr string) dto.TimeBucket {
	hour, ok := parseHour(timeStr)
	if !ok {
		slog.WarnContext(ctx, "invalid departure time format", slog.String("time", timeStr))
		return dto.TimeBucketUnknown
	}

	switch {
	case hour < 6:
		return dto.TimeBucketEarlyMorning
	case hour < 12:
		return dto.TimeBucketMorning
	case hour < 18:
		return dto.TimeBucketAfternoon
	default:
		return dto.TimeBucketNight
	}
}

// parseHour returns the 24-hour clock hour of s.
func parseHour(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	upper := strings.ToUpper(s)
	if strings.Contains(upper, "AM") || strings.Contains(upper, "PM") {
		return parseTwelveHour(s)
	}

	match := twentyFourHourPattern.FindStringSubmatch(s)
	if match == nil {
		return 0, false
	}

	hour, minute := atoi(match[1]), atoi(match[2])
	if hour > 23 || minute > 59 {
		return 0, false
	}

	return hour, true
}

func parseTwelveHour(s string) (int, bool) {
	match := twelveHourPattern.FindStringSubmatch(s)
	if match == nil {
		return 0, false
	}

	hour, minute := atoi(match[1]), atoi(match[2])
	if hour < 1 || hour > 12 || minute > 59 {
		return 0, false
	}

	switch strings.ToUpper(match[3]) {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		if hour == 12 {
			hour = 0
		}
	}

	return hour, true
}

// atoi is only called on regexp digit groups.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
