package flight

import (
	"context"
	"testing"

	"github.com/ijalalfrz/flight-selection-service/internal/app/dto"
	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	categorizeRequest := func(timeStr string, want dto.TimeBucket) func(t *testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, want, Categorize(context.Background(), timeStr))
		}
	}

	t.Run("midnight_24h", categorizeRequest("00:00", dto.TimeBucketEarlyMorning))
	t.Run("before_six", categorizeRequest("05:59", dto.TimeBucketEarlyMorning))
	t.Run("six_is_morning", categorizeRequest("06:00", dto.TimeBucketMorning))
	t.Run("before_noon", categorizeRequest("11:59", dto.TimeBucketMorning))
	t.Run("noon_is_afternoon", categorizeRequest("12:00", dto.TimeBucketAfternoon))
	t.Run("before_six_pm", categorizeRequest("17:59", dto.TimeBucketAfternoon))
	t.Run("six_pm_is_night", categorizeRequest("18:00", dto.TimeBucketNight))
	t.Run("late_night", categorizeRequest("23:59", dto.TimeBucketNight))
	t.Run("dot_separator", categorizeRequest("14.30", dto.TimeBucketAfternoon))
	t.Run("embedded_in_date", categorizeRequest("2025-05-10 14:30", dto.TimeBucketAfternoon))

	t.Run("12_am_is_midnight", categorizeRequest("12:15 AM", dto.TimeBucketEarlyMorning))
	t.Run("12_pm_is_noon", categorizeRequest("12:15 PM", dto.TimeBucketAfternoon))
	t.Run("pm_afternoon", categorizeRequest("2:30 PM", dto.TimeBucketAfternoon))
	t.Run("pm_night", categorizeRequest("6:00 pm", dto.TimeBucketNight))
	t.Run("am_morning", categorizeRequest("9:05AM", dto.TimeBucketMorning))
	t.Run("am_early", categorizeRequest("5:59 AM", dto.TimeBucketEarlyMorning))

	t.Run("empty", categorizeRequest("", dto.TimeBucketUnknown))
	t.Run("placeholder", categorizeRequest("N/A", dto.TimeBucketUnknown))
	t.Run("no_clock", categorizeRequest("tomorrow", dto.TimeBucketUnknown))
	t.Run("13_pm_is_invalid", categorizeRequest("13:00 PM", dto.TimeBucketUnknown))
	t.Run("hour_out_of_range", categorizeRequest("25:00", dto.TimeBucketUnknown))
	t.Run("minute_out_of_range", categorizeRequest("10:75", dto.TimeBucketUnknown))
}

func TestCategorize_BucketsPartitionTheDay(t *testing.T) {
	seen := map[dto.TimeBucket]int{}

	for hour := 0; hour < 24; hour++ {
		timeStr := []byte("00:00")
		timeStr[0] = byte('0' + hour/10)
		timeStr[1] = byte('0' + hour%10)

		bucket := Categorize(context.Background(), string(timeStr))
		assert.NotEqual(t, dto.TimeBucketUnknown, bucket, "hour %d", hour)
		seen[bucket]++
	}

	assert.Equal(t, map[dto.TimeBucket]int{
		dto.TimeBucketEarlyMorning: 6,
		dto.TimeBucketMorning:      6,
		dto.TimeBucketAfternoon:    6,
		dto.TimeBucketNight:        6,
	}, seen)
}
