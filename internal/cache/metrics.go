package cache

import "time"

// EvictReason says why an entry left the cache
type EvictReason int

const (
	// EvictExpired: a lookup found the entry past its TTL
	EvictExpired EvictReason = iota
	// EvictSwept: the background sweep removed an expired entry
	EvictSwept
)

func (r EvictReason) String() string {
	switch r {
	case EvictExpired:
		return "expired"
	case EvictSwept:
		return "swept"
	default:
		return "unknown"
	}
}

// Metrics receives cache activity. Implementations must be safe for concurrent use.
type Metrics interface {
	Hit()
	Miss()
	// Coalesced is reported by callers that joined an in-flight fetch
	Coalesced()
	Fetched(d time.Duration, err error)
	Evict(reason EvictReason)
	Size(entries int)
}

// NoopMetrics discards everything. It is the default.
type NoopMetrics struct{}

func (NoopMetrics) Hit()                         {}
func (NoopMetrics) Miss()                        {}
func (NoopMetrics) Coalesced()                   {}
func (NoopMetrics) Fetched(time.Duration, error) {}
func (NoopMetrics) Evict(EvictReason)            {}
func (NoopMetrics) Size(int)                     {}

var _ Metrics = NoopMetrics{}
