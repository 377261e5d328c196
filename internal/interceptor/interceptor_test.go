package interceptor

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var unaryInfo = &grpc.UnaryServerInfo{FullMethod: "/trustanchor.v1.DeviceAuth/Sign"}

func okHandler(context.Context, any) (any, error) { return "ok", nil }

func withToken(token string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", token))
}

func TestAuthUnary(t *testing.T) {
	auth := AuthUnary("secret", "/trustanchor.v1.DeviceAuth/AuthenticateDevice")

	tests := []struct {
		name string
		ctx  context.Context
		info *grpc.UnaryServerInfo
		code codes.Code
	}{
		{"valid", withToken("Bearer secret"), unaryInfo, codes.OK},
		{"wrong token", withToken("Bearer nope"), unaryInfo, codes.Unauthenticated},
		{"missing scheme", withToken("secret"), unaryInfo, codes.Unauthenticated},
		{"no metadata", context.Background(), unaryInfo, codes.Unauthenticated},
		{"no header", metadata.NewIncomingContext(context.Background(), metadata.MD{}), unaryInfo, codes.Unauthenticated},
		{"public method", context.Background(), &grpc.UnaryServerInfo{FullMethod: "/trustanchor.v1.DeviceAuth/AuthenticateDevice"}, codes.OK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth(tt.ctx, nil, tt.info, okHandler)
			if got := status.Code(err); got != tt.code {
				t.Fatalf("code: got %s, want %s", got, tt.code)
			}
		})
	}
}

type fakeStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (f fakeStream) Context() context.Context { return f.ctx }

func TestAuthStream(t *testing.T) {
	auth := AuthStream("secret")
	info := &grpc.StreamServerInfo{FullMethod: "/trustanchor.v1.Audit/StreamAudit"}
	called := false
	handler := func(any, grpc.ServerStream) error { called = true; return nil }

	if err := auth(nil, fakeStream{ctx: withToken("Bearer wrong")}, info, handler); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}
	if called {
		t.Fatal("handler should not run without a valid token")
	}
	if err := auth(nil, fakeStream{ctx: withToken("Bearer secret")}, info, handler); err != nil {
		t.Fatalf("valid token rejected: %v", err)
	}
	if !called {
		t.Fatal("handler should run with a valid token")
	}

	public := AuthStream("secret", "/grpc.reflection.v1.ServerReflection/ServerReflectionInfo")
	reflectionInfo := &grpc.StreamServerInfo{FullMethod: "/grpc.reflection.v1.ServerReflection/ServerReflectionInfo"}
	if err := public(nil, fakeStream{ctx: context.Background()}, reflectionInfo, handler); err != nil {
		t.Fatalf("public stream rejected: %v", err)
	}
	if err := public(nil, fakeStream{ctx: context.Background()}, info, handler); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("non-public stream should still need a token, got %v", err)
	}
}

func TestTokenBucket(t *testing.T) {
	now := time.Unix(0, 0)
	tb := newTokenBucket(2)
	tb.lastTime = now
	tb.now = func() time.Time { return now }

	if !tb.allow() || !tb.allow() {
		t.Fatal("burst of 2 should be allowed")
	}
	if tb.allow() {
		t.Fatal("third request should be limited")
	}

	now = now.Add(500 * time.Millisecond)
	if !tb.allow() {
		t.Fatal("one token should refill after half a second")
	}
	if tb.allow() {
		t.Fatal("bucket should be empty again")
	}

	now = now.Add(time.Hour)
	for range 2 {
		if !tb.allow() {
			t.Fatal("bucket should refill to max")
		}
	}
	if tb.allow() {
		t.Fatal("refill must not exceed max")
	}
}

func TestRateLimitShared(t *testing.T) {
	unary, stream := RateLimit(1)
	if _, err := unary(context.Background(), nil, unaryInfo, okHandler); err != nil {
		t.Fatalf("first call: %v", err)
	}
	err := stream(nil, fakeStream{ctx: context.Background()}, &grpc.StreamServerInfo{}, func(any, grpc.ServerStream) error { return nil })
	if status.Code(err) != codes.ResourceExhausted {
		t.Fatalf("stream should share the exhausted bucket, got %v", err)
	}
}

func TestRecoveryUnary(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	_, err := RecoveryUnary(logger)(context.Background(), nil, unaryInfo, func(context.Context, any) (any, error) {
		panic("boom")
	})
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected Internal, got %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("panic recovered")) {
		t.Fatalf("panic not logged: %s", buf.String())
	}
}

func TestRecoveryStream(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
	err := RecoveryStream(logger)(nil, fakeStream{ctx: context.Background()}, &grpc.StreamServerInfo{}, func(any, grpc.ServerStream) error {
		panic("boom")
	})
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected Internal, got %v", err)
	}
}

func TestLoggingUnary(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	_, err := LoggingUnary(logger)(context.Background(), nil, unaryInfo, func(context.Context, any) (any, error) {
		return nil, status.Error(codes.Unavailable, "element unreachable")
	})
	if status.Code(err) != codes.Unavailable {
		t.Fatalf("error should pass through, got %v", err)
	}

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if line["level"] != "ERROR" || line["code"] != "Unavailable" || line["method"] != unaryInfo.FullMethod {
		t.Fatalf("unexpected log line: %v", line)
	}
	if line["request_id"] == "" || line["error"] != "element unreachable" {
		t.Fatalf("missing fields: %v", line)
	}
}
