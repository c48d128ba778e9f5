// Package ratelimit provides per-client token bucket rate limiting for the
// API server.
package ratelimit

import (
	"strings"
	"sync"
	"time"
)

// EndpointConfig is the rate limit for one endpoint. A Path ending in "/"
// prefix-matches.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int           // Requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity, defaults to Limit
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Endpoints       []EndpointConfig
}

// DefaultConfig tiers the endpoints: headless-Chrome PDF export and document
// parsing are expensive, store writes are moderate, reads fall through to
// the default, health is unlimited.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    600,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Endpoints: []EndpointConfig{
			{Path: "/api/export/pdf", Method: "POST", Limit: 10, Window: time.Minute, Burst: 3},
			{Path: "/api/autofill", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
			{Path: "/api/analyze", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
			{Path: "/api/jobs", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
			{Path: "/api/jobs/", Method: "DELETE", Limit: 60, Window: time.Minute, Burst: 10},
			{Path: "/api/profiles/", Method: "PUT", Limit: 60, Window: time.Minute, Burst: 10},
		},
	}
}

// Info reports the limit state attached to one decision.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// bucket is one token bucket; tokens refill continuously.
type bucket struct {
	mu         sync.Mutex
	capacity   float64
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	lastAccess time.Time
}

func (b *bucket) refill(now time.Time) {
	b.tokens += now.Sub(b.lastRefill).Seconds() * b.refillRate
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.lastRefill = now
}

// take consumes one token when available and reports the bucket state.
func (b *bucket) take(now time.Time) (allowed bool, remaining int, reset time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refill(now)
	b.lastAccess = now
	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		allowed = true
	}
	remaining = int(b.tokens)
	reset = now
	if b.tokens < b.capacity {
		secondsUntilFull := (b.capacity - b.tokens) / b.refillRate
		reset = now.Add(time.Duration(secondsUntilFull * float64(time.Second)))
	}
	return allowed, remaining, reset
}

// Limiter manages one bucket per client+endpoint+method.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	config  *Config
	ticker  *time.Ticker
	stop    chan struct{}
}

// NewLimiter creates a limiter; nil config means DefaultConfig.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}
	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
	}
	if config.Enabled && config.CleanupInterval > 0 {
		l.ticker = time.NewTicker(config.CleanupInterval)
		l.stop = make(chan struct{})
		go l.cleanupLoop()
	}
	return l
}

// Allow decides whether one request from clientID may proceed.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	ec := l.match(path, method)
	if ec == nil || ec.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	key := clientID + ":" + ec.Path + ":" + method
	b := l.getBucket(key, ec)

	allowed, remaining, reset := b.take(time.Now())
	info := Info{
		Allowed:   allowed,
		Limit:     ec.Limit,
		Remaining: remaining,
		ResetTime: reset,
	}
	if !allowed {
		if retry := time.Until(reset); retry > 0 {
			info.RetryAfter = retry
		}
	}
	return allowed, info
}

// match finds the endpoint config for a path: health is unlimited, exact
// matches win over prefix matches, nothing matched falls back to the
// default limit.
func (l *Limiter) match(path, method string) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return nil
	}
	for i := range l.config.Endpoints {
		ec := &l.config.Endpoints[i]
		if ec.Method == method && ec.Path == path {
			return ec
		}
	}
	for i := range l.config.Endpoints {
		ec := &l.config.Endpoints[i]
		if ec.Method == method && strings.HasSuffix(ec.Path, "/") && strings.HasPrefix(path, ec.Path) {
			return ec
		}
	}
	return &EndpointConfig{
		Path:   path,
		Method: method,
		Limit:  l.config.DefaultLimit,
		Window: l.config.DefaultWindow,
	}
}

func (l *Limiter) getBucket(key string, ec *EndpointConfig) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[key]; ok {
		return b
	}
	capacity := ec.Burst
	if capacity <= 0 {
		capacity = ec.Limit
	}
	now := time.Now()
	b := &bucket{
		capacity:   float64(capacity),
		refillRate: float64(ec.Limit) / ec.Window.Seconds(),
		tokens:     float64(capacity),
		lastRefill: now,
		lastAccess: now,
	}
	l.buckets[key] = b
	return b
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.ticker.C:
			l.removeStale(time.Now().Add(-time.Hour))
		case <-l.stop:
			return
		}
	}
}

// removeStale drops buckets idle since before cutoff.
func (l *Limiter) removeStale(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		b.mu.Lock()
		idle := b.lastAccess.Before(cutoff)
		b.mu.Unlock()
		if idle {
			delete(l.buckets, key)
		}
	}
}

// Stop halts the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.ticker != nil {
		l.ticker.Stop()
	}
	if l.stop != nil {
		close(l.stop)
	}
}
