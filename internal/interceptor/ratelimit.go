package interceptor

import (
	"context"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// tokenBucket implements a simple token bucket rate limiter.
type tokenBucket struct {
	mu       sync.Mutex
	tokens   float64
	max      float64
	rate     float64 // tokens per second
	lastTime time.Time
	now      func() time.Time
}

func newTokenBucket(rps int) *tokenBucket {
	return &tokenBucket{
		tokens:   float64(rps),
		max:      float64(rps),
		rate:     float64(rps),
		lastTime: time.Now(),
		now:      time.Now,
	}
}

func (tb *tokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := tb.now()
	elapsed := now.Sub(tb.lastTime).Seconds()
	tb.lastTime = now

	tb.tokens = min(tb.tokens+elapsed*tb.rate, tb.max)
	if tb.tokens < 1 {
		return false
	}
	tb.tokens--
	return true
}

// RateLimit returns unary and stream interceptors that draw from one shared
// bucket of rps requests per second.
func RateLimit(rps int) (grpc.UnaryServerInterceptor, grpc.StreamServerInterceptor) {
	bucket := newTokenBucket(rps)
	unary := func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !bucket.allow() {
			return nil, status.Error(codes.ResourceExhausted, "rate limit exceeded")
		}
		return handler(ctx, req)
	}
	stream := func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if !bucket.allow() {
			return status.Error(codes.ResourceExhausted, "rate limit exceeded")
		}
		return handler(srv, ss)
	}
	return unary, stream
}
