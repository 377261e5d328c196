package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/glinharesb/trustanchor-go/internal/optiga"
)

// Backend names accepted in TA_BACKEND.
const (
	BackendSimulator = "simulator"
	BackendEmulator  = "emulator"
	BackendPKCS11    = "pkcs11"
)

type Config struct {
	GRPCAddr     string
	TLSCert      string
	TLSKey       string
	AuthToken    string
	AuthPublic   []string
	AuditBuffer  int
	RateLimitRPS int
	LogLevel     slog.Level

	Backend       string
	EmulatorImage string
	PKCS11Lib     string
	PKCS11Pin     string
	PKCS11Slot    uint

	AuthKeyIndex  uint8
	AuthCertIndex uint8
}

func Load() Config {
	return Config{
		GRPCAddr:      envOr("TA_GRPC_ADDR", ":50061"),
		TLSCert:       os.Getenv("TA_TLS_CERT"),
		TLSKey:        os.Getenv("TA_TLS_KEY"),
		AuthToken:     os.Getenv("TA_AUTH_TOKEN"),
		AuthPublic:    envList("TA_AUTH_PUBLIC"),
		AuditBuffer:   envInt("TA_AUDIT_BUFFER", 1024),
		RateLimitRPS:  envInt("TA_RATE_LIMIT_RPS", 20),
		LogLevel:      envLevel("TA_LOG_LEVEL", slog.LevelInfo),
		Backend:       envOr("TA_BACKEND", BackendSimulator),
		EmulatorImage: os.Getenv("TA_EMULATOR_IMAGE"),
		PKCS11Lib:     os.Getenv("TA_PKCS11_LIB"),
		PKCS11Pin:     os.Getenv("TA_PKCS11_PIN"),
		PKCS11Slot:    uint(envInt("TA_PKCS11_SLOT", 0)),
		AuthKeyIndex:  envUint8("TA_AUTH_KEY_INDEX", 0),
		AuthCertIndex: envUint8("TA_AUTH_CERT_INDEX", 1),
	}
}

// Validate reports every problem with c at once.
func (c Config) Validate() error {
	var errs []error
	if c.AuditBuffer <= 0 {
		errs = append(errs, fmt.Errorf("TA_AUDIT_BUFFER must be positive, got %d", c.AuditBuffer))
	}
	if c.RateLimitRPS <= 0 {
		errs = append(errs, fmt.Errorf("TA_RATE_LIMIT_RPS must be positive, got %d", c.RateLimitRPS))
	}
	if (c.TLSCert == "") != (c.TLSKey == "") {
		errs = append(errs, errors.New("TA_TLS_CERT and TA_TLS_KEY must be set together"))
	}
	for _, m := range c.AuthPublic {
		svc, method, ok := strings.Cut(strings.TrimPrefix(m, "/"), "/")
		if !strings.HasPrefix(m, "/") || !ok || svc == "" || method == "" {
			errs = append(errs, fmt.Errorf("TA_AUTH_PUBLIC entry %q is not a full method name", m))
		}
	}
	switch c.Backend {
	case BackendSimulator, BackendEmulator:
	case BackendPKCS11:
		if c.PKCS11Lib == "" {
			errs = append(errs, errors.New("TA_PKCS11_LIB is required for the pkcs11 backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown TA_BACKEND %q", c.Backend))
	}
	if c.AuthKeyIndex >= optiga.MaxKeySlots {
		errs = append(errs, fmt.Errorf("TA_AUTH_KEY_INDEX %d out of range", c.AuthKeyIndex))
	}
	if c.AuthCertIndex >= optiga.MaxCertSlots {
		errs = append(errs, fmt.Errorf("TA_AUTH_CERT_INDEX %d out of range", c.AuthCertIndex))
	}
	return errors.Join(errs...)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envList splits a comma-separated variable, dropping empty items.
func envList(key string) []string {
	var out []string
	for item := range strings.SplitSeq(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envUint8(key string, fallback uint8) uint8 {
	n, err := strconv.ParseUint(os.Getenv(key), 10, 8)
	if err != nil {
		return fallback
	}
	return uint8(n)
}

func envLevel(key string, fallback slog.Level) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(os.Getenv(key))); err != nil {
		return fallback
	}
	return level
}
