// Package backend assembles the hsm.Provider a binary runs against.
package backend

import (
	"fmt"
	"log/slog"

	"github.com/glinharesb/trustanchor-go/internal/config"
	"github.com/glinharesb/trustanchor-go/internal/emulator"
	"github.com/glinharesb/trustanchor-go/internal/hsm"
	"github.com/glinharesb/trustanchor-go/internal/optiga"
	"github.com/glinharesb/trustanchor-go/internal/p11"
)

// Options selects and configures a backend.
type Options struct {
	Kind          string
	EmulatorImage string
	PKCS11        p11.Config
	KeyIndex      uint8
	CertIndex     uint8
}

// FromConfig extracts backend options from the daemon configuration.
func FromConfig(cfg config.Config) Options {
	return Options{
		Kind:          cfg.Backend,
		EmulatorImage: cfg.EmulatorImage,
		PKCS11: p11.Config{
			Library: cfg.PKCS11Lib,
			Pin:     cfg.PKCS11Pin,
			Slot:    cfg.PKCS11Slot,
		},
		KeyIndex:  cfg.AuthKeyIndex,
		CertIndex: cfg.AuthCertIndex,
	}
}

// Open returns the provider named by opts.Kind and a function releasing it.
func Open(opts Options) (hsm.Provider, func() error, error) {
	noop := func() error { return nil }

	switch opts.Kind {
	case config.BackendSimulator, "":
		sim, err := hsm.NewSimulator()
		if err != nil {
			return nil, nil, err
		}
		slog.Info("using simulated trust anchor")
		return sim, noop, nil

	case config.BackendEmulator:
		if opts.KeyIndex >= optiga.MaxKeySlots || opts.CertIndex >= optiga.MaxCertSlots {
			return nil, nil, fmt.Errorf("%w: key slot %d, certificate slot %d", hsm.ErrInvalidSlot, opts.KeyIndex, opts.CertIndex)
		}
		var store emulator.Store
		if opts.EmulatorImage != "" {
			ps, err := emulator.NewPersistentStore(opts.EmulatorImage)
			if err != nil {
				return nil, nil, err
			}
			store = ps
		} else {
			store = emulator.NewMemoryStore()
		}
		created, err := emulator.EnsureProvisioned(store, opts.KeyIndex, opts.CertIndex, "trustanchor emulated device")
		if err != nil {
			return nil, nil, fmt.Errorf("provision emulator: %w", err)
		}
		slog.Info("using emulated secure element",
			"image", opts.EmulatorImage,
			"provisioned", created,
		)
		return hsm.NewElement(emulator.NewTransport(store)), noop, nil

	case config.BackendPKCS11:
		t, err := p11.Open(opts.PKCS11)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("using pkcs11 token", "library", opts.PKCS11.Library, "slot", opts.PKCS11.Slot)
		return hsm.NewElement(t), t.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown backend %q", opts.Kind)
	}
}
