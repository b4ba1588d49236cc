// Package status tracks cross-game statistics for the running process.
package status

import "sync/atomic"

// Well-known metric keys
const (
	KeyGames      = "games"
	KeyPlacements = "placements"
	KeyLines      = "lines"
	KeyRejected   = "rejected"
	KeyBestScore  = "best"
	KeySession    = "session"
	KeyPolicy     = "policy"
)

// Registry is the central metrics facade
// Writers cache pointers from Int/Text; readers may call from any goroutine
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Int returns the counter for key
func (r *Registry) Int(key string) *atomic.Int64 {
	return r.Ints.Get(key)
}

// Text returns the string metric for key
func (r *Registry) Text(key string) *AtomicString {
	return r.Strings.Get(key)
}

// Max raises the counter for key to v if v is larger, returns true when raised
func (r *Registry) Max(key string, v int64) bool {
	ptr := r.Ints.Get(key)
	for {
		cur := ptr.Load()
		if v <= cur {
			return false
		}
		if ptr.CompareAndSwap(cur, v) {
			return true
		}
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Strings.Count()
}

// Dump returns a point-in-time copy of every counter
func (r *Registry) Dump() map[string]int64 {
	out := make(map[string]int64, r.Ints.Count())
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		out[key] = ptr.Load()
	})
	return out
}
