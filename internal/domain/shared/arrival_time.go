package shared

import (
	"fmt"
	"strings"
	"time"
)

// ArrivalTime is an upstream ISO8601 instant: a nav arrival, a cooldown expiry
// or a contract deadline. The dashboard only ever asks how far away it is.
type ArrivalTime struct {
	at time.Time
}

// NewArrivalTime parses an RFC3339 timestamp from the API
func NewArrivalTime(timestamp string) (*ArrivalTime, error) {
	if timestamp == "" {
		return nil, fmt.Errorf("arrival time timestamp cannot be empty")
	}

	at, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return nil, fmt.Errorf("invalid arrival time format: %w", err)
	}

	return &ArrivalTime{at: at.UTC()}, nil
}

// Remaining returns the time left until the instant, truncated to whole seconds.
// Instants in the past yield zero.
func (a *ArrivalTime) Remaining(clock Clock) time.Duration {
	d := a.at.Sub(clock.Now()).Truncate(time.Second)
	if d < 0 {
		return 0
	}
	return d
}

// HasArrived checks if the instant is in the past
func (a *ArrivalTime) HasArrived(clock Clock) bool {
	return a.Remaining(clock) == 0
}

// Time returns the parsed instant
func (a *ArrivalTime) Time() time.Time {
	return a.at
}

func (a *ArrivalTime) String() string {
	return fmt.Sprintf("ArrivalTime(%s)", a.at.Format(time.RFC3339))
}

// FromNow renders the time left until timestamp as "1d 2h 3m 4s".
// Unparseable timestamps render as-is; past instants render as "0s".
func FromNow(timestamp string, clock Clock) string {
	at, err := NewArrivalTime(timestamp)
	if err != nil {
		return timestamp
	}
	return FormatDuration(at.Remaining(clock))
}

// FormatDuration renders a duration with day/hour/minute/second units,
// omitting zero units.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return "0s"
	}

	secs := int64(d / time.Second)
	units := []struct {
		suffix string
		size   int64
	}{
		{"d", 86400},
		{"h", 3600},
		{"m", 60},
		{"s", 1},
	}

	var parts []string
	for _, u := range units {
		if n := secs / u.size; n > 0 {
			parts = append(parts, fmt.Sprintf("%d%s", n, u.suffix))
			secs -= n * u.size
		}
	}
	return strings.Join(parts, " ")
}
