package logify

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore manages per-key rate limiters: meter scope or client ip -> rate limiter
type RateLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[key] = limiter
	}
	return limiter
}

func (s *RateLimiterStore) SetLimiter(key string, keyRate rate.Limit, keyBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[key] = rate.NewLimiter(keyRate, keyBurst)
}

// Allow is nil-safe: a store that was never configured lets everything through.
func (s *RateLimiterStore) Allow(key string) bool {
	if s == nil {
		return true
	}
	return s.GetLimiter(key).Allow()
}

func MeterScopeKey(meterType string) string {
	return "meter:" + meterType
}

func ElectricityScopeKey(meterID string) string {
	return "electricity:" + meterID
}

func LoginScopeKey(clientIP string) string {
	return "login:" + clientIP
}
