package utils

import "testing"

func TestConvertMinutesToDuration(t *testing.T) {
	convertRequest := func(minutes int64, want string) func(t *testing.T) {
		return func(t *testing.T) {
			if got := ConvertMinutesToDuration(minutes); got != want {
				t.Fatalf("expected %s, got %s", want, got)
			}
		}
	}

	t.Run("hours_and_minutes", convertRequest(125, "2h 5m"))
	t.Run("whole_hours", convertRequest(120, "2h"))
	t.Run("minutes_only", convertRequest(45, "45m"))
	t.Run("zero", convertRequest(0, "0m"))
	t.Run("negative", convertRequest(-10, "0m"))
	t.Run("long_haul", convertRequest(570, "9h 30m"))
}
