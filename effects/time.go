package effects

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

type TimeSpan = timespan.TimeSpan

// Since returns the span from start up to now.
func Since(start time.Time) TimeSpan {
	return timespan.BetweenTimes(start, time.Now())
}
