package metrics

import (
	"net/http"
	"sync/atomic"
	"time"
)

// Collector keeps process-lifetime counters for /metrics.
type Collector struct {
	totalRequests   atomic.Uint64
	errorRequests   atomic.Uint64
	rateLimited     atomic.Uint64
	unauthorized    atomic.Uint64
	totalDurationMs atomic.Uint64
	sourceFetches   atomic.Uint64
	sourceFailures  atomic.Uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	c.totalRequests.Add(1)
	switch {
	case status >= http.StatusInternalServerError:
		c.errorRequests.Add(1)
	case status == http.StatusTooManyRequests:
		c.rateLimited.Add(1)
	case status == http.StatusUnauthorized:
		c.unauthorized.Add(1)
	}
	c.totalDurationMs.Add(uint64(duration.Milliseconds()))
}

// RecordFetch counts one round trip to the employee source.
func (c *Collector) RecordFetch(err error) {
	c.sourceFetches.Add(1)
	if err != nil {
		c.sourceFailures.Add(1)
	}
}

func (c *Collector) Snapshot() map[string]any {
	total := c.totalRequests.Load()
	totalMs := c.totalDurationMs.Load()
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":       total,
		"errorsTotal":         c.errorRequests.Load(),
		"rateLimitedTotal":    c.rateLimited.Load(),
		"unauthorizedTotal":   c.unauthorized.Load(),
		"avgDurationMs":       avg,
		"totalDurationMs":     totalMs,
		"sourceFetchesTotal":  c.sourceFetches.Load(),
		"sourceFailuresTotal": c.sourceFailures.Load(),
	}
}
