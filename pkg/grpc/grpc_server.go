package grpc

import (
	"golang.org/x/time/rate"
	"liyu1981.xyz/logify-service/pkg/logify"
)

type MeterServer struct {
	Logify           *logify.Logify
	RateLimiterStore *logify.RateLimiterStore
}

func (s *MeterServer) GetLimiter(key string) *rate.Limiter {
	if s.RateLimiterStore == nil {
		return nil
	} else {
		return s.RateLimiterStore.GetLimiter(key)
	}
}

func (s *MeterServer) CheckLimiter(key string) bool {
	limiter := s.GetLimiter(key)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}
