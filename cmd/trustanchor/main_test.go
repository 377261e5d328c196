package main

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"encoding/pem"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
	"google.golang.org/grpc"

	pb "github.com/glinharesb/trustanchor-go/gen/trustanchor/v1"
	"github.com/glinharesb/trustanchor-go/internal/audit"
	"github.com/glinharesb/trustanchor-go/internal/authn"
	"github.com/glinharesb/trustanchor-go/internal/crypto"
	"github.com/glinharesb/trustanchor-go/internal/emulator"
	"github.com/glinharesb/trustanchor-go/internal/hsm"
	"github.com/glinharesb/trustanchor-go/internal/interceptor"
	"github.com/glinharesb/trustanchor-go/internal/server"
)

const testChallenge = "21f3d40e63c304d0312f62eb824113efd72ba1ee02bef6777e7f8a7b6f67ba16"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &bytes.Buffer{}
	err := app.Run(context.Background(), append([]string{"trustanchor"}, args...))
	return out.String(), err
}

func TestAppCommands(t *testing.T) {
	app := newApp()
	require.Equal(t, "trustanchor", app.Name)

	var names []string
	for _, c := range app.Commands {
		names = append(names, c.Name)
	}
	require.Equal(t, []string{"sign", "cert", "authenticate", "verify", "audit", "element"}, names)

	var hasRemote, hasFormat bool
	for _, flag := range app.Flags {
		if f, ok := flag.(*cli.StringFlag); ok {
			hasRemote = hasRemote || f.Name == "remote"
			hasFormat = hasFormat || f.Name == "format"
		}
	}
	require.True(t, hasRemote)
	require.True(t, hasFormat)
}

func TestAuthenticateAndVerify(t *testing.T) {
	for _, format := range []string{formatJSON, formatCBOR} {
		t.Run(format, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "proof."+format)

			_, err := run(t, "--format", format, "authenticate", "--challenge", testChallenge, "--out", path)
			require.NoError(t, err)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			doc, err := readProof(data)
			require.NoError(t, err)
			require.Equal(t, testChallenge, hex.EncodeToString(doc.Challenge))

			out, err := run(t, "verify", "--proof", path)
			require.NoError(t, err)
			require.Contains(t, out, `"Trezor Safe 3"`)
		})
	}
}

func TestVerifyRejectsTamperedProof(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proof.json")
	_, err := run(t, "--format", "json", "authenticate", "--out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc, err := readProof(data)
	require.NoError(t, err)
	doc.Challenge[0] ^= 0xFF
	tampered, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, tampered, 0600))

	_, err = run(t, "verify", "--proof", path)
	require.ErrorIs(t, err, authn.ErrInvalidProof)
}

func TestSign(t *testing.T) {
	sim, err := hsm.NewSimulator()
	require.NoError(t, err)

	out, err := run(t, "sign", "--message", "hello")
	require.NoError(t, err)
	sig, err := hex.DecodeString(strings.TrimSpace(out))
	require.NoError(t, err)

	digest := sha256.Sum256([]byte("hello"))
	require.True(t, crypto.VerifyDigest(sim.Public(), digest[:], sig))

	again, err := run(t, "sign", "--digest", hex.EncodeToString(digest[:]))
	require.NoError(t, err)
	require.Equal(t, out, again)

	_, err = run(t, "sign")
	require.Error(t, err)
	_, err = run(t, "sign", "--digest", "00", "--message", "x")
	require.Error(t, err)
	_, err = run(t, "sign", "--digest", "abcd")
	require.ErrorIs(t, err, hsm.ErrInvalidDigest)
}

func TestCertPEM(t *testing.T) {
	out, err := run(t, "cert", "--pem")
	require.NoError(t, err)
	block, _ := pem.Decode([]byte(out))
	require.NotNil(t, block)
	require.Equal(t, "CERTIFICATE", block.Type)
	require.Len(t, block.Bytes, 414)
}

func TestEmulatorBackend(t *testing.T) {
	image := filepath.Join(t.TempDir(), "element.json")
	path := filepath.Join(t.TempDir(), "proof.cbor")

	_, err := run(t, "--backend", "emulator", "--emulator-image", image, "--format", "cbor",
		"authenticate", "--out", path)
	require.NoError(t, err)

	out, err := run(t, "verify", "--proof", path)
	require.NoError(t, err)
	require.Contains(t, out, "trustanchor emulated device")

	_, err = run(t, "--backend", "emulator", "--emulator-image", image, "--key-index", "7", "sign", "--message", "x")
	require.ErrorIs(t, err, hsm.ErrInvalidSlot)
}

func TestElementCommands(t *testing.T) {
	image := filepath.Join(t.TempDir(), "element.json")
	emulated := []string{"--backend", "emulator", "--emulator-image", image}

	_, err := run(t, append(emulated, "element", "objects")...)
	require.Error(t, err, "objects needs an existing image")

	_, err = run(t, append(emulated, "cert")...)
	require.NoError(t, err)

	out, err := run(t, append(emulated, "element", "objects")...)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	var cert struct {
		OID    string            `json:"oid"`
		Kind   string            `json:"kind"`
		State  string            `json:"state"`
		Labels map[string]string `json:"labels"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &cert))
	require.Equal(t, "0xE0E1", cert.OID)
	require.Equal(t, "OPERATIONAL", cert.State)
	require.Equal(t, "0xE0F0", cert.Labels["key"])

	out, err = run(t, append(emulated, "element", "objects", "--kind", "key")...)
	require.NoError(t, err)
	require.Contains(t, out, `"oid":"0xE0F0"`)
	require.NotContains(t, out, "0xE0E1")

	// A key with a chained certificate is kept unless forced.
	_, err = run(t, append(emulated, "element", "remove", "--oid", "0xE0F0")...)
	require.ErrorContains(t, err, "0xE0E1")

	out, err = run(t, append(emulated, "element", "terminate", "--oid", "0xE0E1")...)
	require.NoError(t, err)
	require.Equal(t, "0xE0E1 TERMINATION\n", out)

	_, err = run(t, append(emulated, "cert")...)
	require.ErrorIs(t, err, hsm.ErrTransport)
	require.ErrorIs(t, err, emulator.ErrTerminated)

	_, err = run(t, append(emulated, "element", "remove", "--oid", "0xE0E1")...)
	require.NoError(t, err)
	_, err = run(t, append(emulated, "element", "remove", "--oid", "0xE0E1")...)
	require.Error(t, err)

	out, err = run(t, append(emulated, "element", "objects")...)
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(out, "\n"))
}

func startRemote(t *testing.T, token string) string {
	t.Helper()
	sim, err := hsm.NewSimulator()
	require.NoError(t, err)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	logger := audit.NewLogger(16, nil)
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(interceptor.AuthUnary(token)),
		grpc.ChainStreamInterceptor(interceptor.AuthStream(token)),
	)
	pb.RegisterDeviceAuthServer(srv, server.NewDeviceAuthServer(sim, logger, authn.DefaultOptions()))
	pb.RegisterAuditServer(srv, server.NewAuditServer(logger))
	go srv.Serve(lis)
	t.Cleanup(func() {
		srv.Stop()
		logger.Close()
	})
	return lis.Addr().String()
}

func TestRemote(t *testing.T) {
	addr := startRemote(t, "secret")

	out, err := run(t, "--remote", addr, "--token", "secret", "--format", "json", "authenticate", "--challenge", testChallenge)
	require.NoError(t, err)
	doc, err := readProof([]byte(out))
	require.NoError(t, err)
	_, err = authn.VerifyProof(doc.proof(), doc.Challenge)
	require.NoError(t, err)

	_, err = run(t, "--remote", addr, "--token", "wrong", "cert")
	require.Error(t, err)

	require.Eventually(t, func() bool {
		out, err := run(t, "--remote", addr, "--token", "secret", "audit", "--operation", "AuthenticateDevice")
		return err == nil && strings.Contains(out, `"object":"0xE0F0"`)
	}, 2*time.Second, 20*time.Millisecond)

	_, err = run(t, "audit")
	require.Error(t, err)
}
