package tally

import (
	"os"
	"testing"
	"time"
)

func TestMain(t *testing.M) {
	code := t.Run()

	os.Exit(code)
}

func fixedNowFunc() time.Time {
	return time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
}

// stepNowFunc returns a clock that starts at the given time and advances by
// step on every reading.
func stepNowFunc(start time.Time, step time.Duration) NowFunc {
	current := start
	return func() time.Time {
		now := current
		current = current.Add(step)
		return now
	}
}
