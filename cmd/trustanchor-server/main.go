package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/reflection"

	pb "github.com/glinharesb/trustanchor-go/gen/trustanchor/v1"
	"github.com/glinharesb/trustanchor-go/internal/audit"
	"github.com/glinharesb/trustanchor-go/internal/authn"
	"github.com/glinharesb/trustanchor-go/internal/backend"
	"github.com/glinharesb/trustanchor-go/internal/config"
	"github.com/glinharesb/trustanchor-go/internal/interceptor"
	"github.com/glinharesb/trustanchor-go/internal/server"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	auditLogger := audit.NewLogger(cfg.AuditBuffer, os.Stdout)
	defer auditLogger.Close()

	provider, release, err := backend.Open(backend.FromConfig(cfg))
	if err != nil {
		slog.Error("open backend", "backend", cfg.Backend, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := release(); err != nil {
			slog.Error("release backend", "error", err)
		}
	}()

	rateUnary, rateStream := interceptor.RateLimit(cfg.RateLimitRPS)
	unary := []grpc.UnaryServerInterceptor{
		interceptor.RecoveryUnary(logger),
		interceptor.LoggingUnary(logger),
		rateUnary,
	}
	stream := []grpc.StreamServerInterceptor{
		interceptor.RecoveryStream(logger),
		interceptor.LoggingStream(logger),
		rateStream,
	}
	if cfg.AuthToken != "" {
		unary = append(unary, interceptor.AuthUnary(cfg.AuthToken, cfg.AuthPublic...))
		stream = append(stream, interceptor.AuthStream(cfg.AuthToken, cfg.AuthPublic...))
		if len(cfg.AuthPublic) > 0 {
			slog.Info("methods served without authentication", "methods", cfg.AuthPublic)
		}
	} else {
		slog.Warn("TA_AUTH_TOKEN not set, serving without authentication")
	}

	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(unary...),
		grpc.ChainStreamInterceptor(stream...),
	}
	if cfg.TLSCert != "" {
		creds, err := credentials.NewServerTLSFromFile(cfg.TLSCert, cfg.TLSKey)
		if err != nil {
			slog.Error("load tls", "error", err)
			os.Exit(1)
		}
		opts = append(opts, grpc.Creds(creds))
	}
	srv := grpc.NewServer(opts...)

	authOpts := authn.Options{KeyIndex: cfg.AuthKeyIndex, CertIndex: cfg.AuthCertIndex}
	pb.RegisterDeviceAuthServer(srv, server.NewDeviceAuthServer(provider, auditLogger, authOpts))
	pb.RegisterAuditServer(srv, server.NewAuditServer(auditLogger))
	reflection.Register(srv)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		slog.Error("listen", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", cfg.GRPCAddr, "backend", cfg.Backend, "tls", cfg.TLSCert != "")
		if err := srv.Serve(lis); err != nil {
			slog.Error("serve", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	// Graceful shutdown with 10s timeout
	done := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("shutdown complete")
	case <-time.After(10 * time.Second):
		slog.Warn("graceful shutdown timed out, forcing stop")
		srv.Stop()
	}
}
