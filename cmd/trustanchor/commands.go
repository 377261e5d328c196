package main

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/urfave/cli/v3"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/glinharesb/trustanchor-go/gen/trustanchor/v1"
	"github.com/glinharesb/trustanchor-go/internal/authn"
	"github.com/glinharesb/trustanchor-go/internal/backend"
	"github.com/glinharesb/trustanchor-go/internal/config"
	"github.com/glinharesb/trustanchor-go/internal/p11"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "trustanchor",
		Usage: "Device trust anchor client",
		Flags: globalFlags(),
		Commands: []*cli.Command{
			signCommand(),
			certCommand(),
			authenticateCommand(),
			verifyCommand(),
			auditCommand(),
			elementCommand(),
		},
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "backend",
			Usage:   "local backend: simulator, emulator or pkcs11",
			Value:   config.BackendSimulator,
			Sources: cli.EnvVars("TA_BACKEND"),
		},
		&cli.StringFlag{
			Name:    "emulator-image",
			Usage:   "JSON image file of the emulated element (in-memory when empty)",
			Sources: cli.EnvVars("TA_EMULATOR_IMAGE"),
		},
		&cli.StringFlag{
			Name:    "pkcs11-lib",
			Usage:   "path to the PKCS#11 module",
			Sources: cli.EnvVars("TA_PKCS11_LIB"),
		},
		&cli.StringFlag{
			Name:    "pkcs11-pin",
			Usage:   "user PIN of the PKCS#11 token",
			Sources: cli.EnvVars("TA_PKCS11_PIN"),
		},
		&cli.UintFlag{
			Name:    "pkcs11-slot",
			Usage:   "PKCS#11 slot ID",
			Sources: cli.EnvVars("TA_PKCS11_SLOT"),
		},
		&cli.StringFlag{
			Name:    "remote",
			Usage:   "address of a trustanchor-server; the local backend is not used when set",
			Sources: cli.EnvVars("TA_REMOTE"),
		},
		&cli.StringFlag{
			Name:    "token",
			Usage:   "bearer token for the remote server",
			Sources: cli.EnvVars("TA_AUTH_TOKEN"),
		},
		&cli.BoolFlag{
			Name:  "tls",
			Usage: "use TLS to reach the remote server",
		},
		&cli.UintFlag{
			Name:    "key-index",
			Usage:   "signing key slot",
			Value:   0,
			Sources: cli.EnvVars("TA_AUTH_KEY_INDEX"),
		},
		&cli.UintFlag{
			Name:    "cert-index",
			Usage:   "certificate slot",
			Value:   1,
			Sources: cli.EnvVars("TA_AUTH_CERT_INDEX"),
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: "output format: hex, json or cbor",
			Value: formatHex,
		},
	}
}

func signCommand() *cli.Command {
	return &cli.Command{
		Name:  "sign",
		Usage: "Sign a SHA-256 digest with a key slot",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "digest", Usage: "hex-encoded 32-byte digest"},
			&cli.StringFlag{Name: "message", Usage: "message to hash with SHA-256 and sign"},
		},
		Action: runSign,
	}
}

func certCommand() *cli.Command {
	return &cli.Command{
		Name:  "cert",
		Usage: "Read the certificate in a certificate slot",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "pem", Usage: "print PEM instead of --format"},
		},
		Action: runCert,
	}
}

func authenticateCommand() *cli.Command {
	return &cli.Command{
		Name:  "authenticate",
		Usage: "Ask the device to prove its authenticity",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "challenge", Usage: "hex-encoded challenge (32 random bytes when empty)"},
			&cli.StringFlag{Name: "out", Usage: "write the proof to this file instead of stdout"},
		},
		Action: runAuthenticate,
	}
}

func verifyCommand() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "Check a proof written by authenticate in json or cbor format",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "proof", Usage: "proof file", Required: true},
		},
		Action: runVerify,
	}
}

func auditCommand() *cli.Command {
	return &cli.Command{
		Name:  "audit",
		Usage: "Query the audit log of a remote server",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "operation", Usage: "only entries for this RPC"},
			&cli.StringFlag{Name: "object", Usage: "only entries for this data object, such as 0xE0F0"},
			&cli.DurationFlag{Name: "since", Usage: "only entries newer than this"},
			&cli.IntFlag{Name: "limit", Usage: "maximum number of entries", Value: 50},
		},
		Action: runAudit,
	}
}

func output(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func slotFlag(cmd *cli.Command, name string) (uint8, error) {
	v := cmd.Uint(name)
	if v > math.MaxUint8 {
		return 0, fmt.Errorf("--%s %d out of range", name, v)
	}
	return uint8(v), nil
}

func openDevice(cmd *cli.Command) (device, error) {
	if addr := cmd.String("remote"); addr != "" {
		return dialRemote(addr, cmd.String("token"), cmd.Bool("tls"))
	}

	keyIndex, err := slotFlag(cmd, "key-index")
	if err != nil {
		return nil, err
	}
	certIndex, err := slotFlag(cmd, "cert-index")
	if err != nil {
		return nil, err
	}
	provider, release, err := backend.Open(backend.Options{
		Kind:          cmd.String("backend"),
		EmulatorImage: cmd.String("emulator-image"),
		PKCS11: p11.Config{
			Library: cmd.String("pkcs11-lib"),
			Pin:     cmd.String("pkcs11-pin"),
			Slot:    uint(cmd.Uint("pkcs11-slot")),
		},
		KeyIndex:  keyIndex,
		CertIndex: certIndex,
	})
	if err != nil {
		return nil, err
	}
	return &localDevice{
		provider: provider,
		opts:     authn.Options{KeyIndex: keyIndex, CertIndex: certIndex},
		release:  release,
	}, nil
}

func runSign(ctx context.Context, cmd *cli.Command) error {
	digestHex := cmd.String("digest")
	message := cmd.String("message")
	if (digestHex == "") == (message == "") {
		return errors.New("exactly one of --digest or --message must be provided")
	}

	var digest []byte
	if message != "" {
		sum := sha256.Sum256([]byte(message))
		digest = sum[:]
	} else {
		var err error
		if digest, err = hex.DecodeString(digestHex); err != nil {
			return fmt.Errorf("decode --digest: %w", err)
		}
	}

	keyIndex, err := slotFlag(cmd, "key-index")
	if err != nil {
		return err
	}
	dev, err := openDevice(cmd)
	if err != nil {
		return err
	}
	defer dev.Close()

	sig, err := dev.Sign(ctx, keyIndex, digest)
	if err != nil {
		return fmt.Errorf("sign: %w", err)
	}
	return writeBytes(output(cmd), cmd.String("format"), sig)
}

func runCert(ctx context.Context, cmd *cli.Command) error {
	certIndex, err := slotFlag(cmd, "cert-index")
	if err != nil {
		return err
	}
	dev, err := openDevice(cmd)
	if err != nil {
		return err
	}
	defer dev.Close()

	cert, err := dev.Certificate(ctx, certIndex)
	if err != nil {
		return fmt.Errorf("read certificate: %w", err)
	}
	if cmd.Bool("pem") {
		return pem.Encode(output(cmd), &pem.Block{Type: "CERTIFICATE", Bytes: cert})
	}
	return writeBytes(output(cmd), cmd.String("format"), cert)
}

func runAuthenticate(ctx context.Context, cmd *cli.Command) error {
	var challenge []byte
	if h := cmd.String("challenge"); h != "" {
		var err error
		if challenge, err = hex.DecodeString(h); err != nil {
			return fmt.Errorf("decode --challenge: %w", err)
		}
	} else {
		challenge = make([]byte, 32)
		if _, err := rand.Read(challenge); err != nil {
			return fmt.Errorf("generate challenge: %w", err)
		}
	}

	dev, err := openDevice(cmd)
	if err != nil {
		return err
	}
	defer dev.Close()

	proof, err := dev.Authenticate(ctx, challenge)
	if err != nil {
		return fmt.Errorf("authenticate: %w", err)
	}
	doc := newProofDocument(challenge, proof)

	out := cmd.String("out")
	if out == "" {
		return writeProof(output(cmd), cmd.String("format"), doc)
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := writeProof(f, cmd.String("format"), doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func runVerify(_ context.Context, cmd *cli.Command) error {
	data, err := os.ReadFile(cmd.String("proof"))
	if err != nil {
		return err
	}
	doc, err := readProof(data)
	if err != nil {
		return err
	}
	cert, err := authn.VerifyProof(doc.proof(), doc.Challenge)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(output(cmd), "OK: signed by %q (serial %s, issuer %q)\n",
		cert.Subject.CommonName, cert.SerialNumber, cert.Issuer.CommonName)
	return err
}

func runAudit(ctx context.Context, cmd *cli.Command) error {
	addr := cmd.String("remote")
	if addr == "" {
		return errors.New("audit needs --remote")
	}
	dev, err := dialRemote(addr, cmd.String("token"), cmd.Bool("tls"))
	if err != nil {
		return err
	}
	defer dev.Close()

	req := &pb.QueryAuditRequest{
		Operation: cmd.String("operation"),
		Object:    cmd.String("object"),
		Limit:     int32(cmd.Int("limit")),
	}
	if since := cmd.Duration("since"); since > 0 {
		req.StartTime = timestamppb.New(time.Now().Add(-since))
	}
	entries, err := dev.QueryAudit(ctx, req)
	if err != nil {
		return fmt.Errorf("query audit: %w", err)
	}

	enc := json.NewEncoder(output(cmd))
	for _, e := range entries {
		line := struct {
			ID          string            `json:"id"`
			Timestamp   string            `json:"timestamp"`
			Operation   string            `json:"operation"`
			Object      string            `json:"object,omitempty"`
			Status      string            `json:"status"`
			PeerAddress string            `json:"peer_address,omitempty"`
			Metadata    map[string]string `json:"metadata,omitempty"`
		}{e.Id, e.Timestamp.AsTime().Format(time.RFC3339Nano), e.Operation, e.Object, e.Status, e.PeerAddress, e.Metadata}
		if err := enc.Encode(line); err != nil {
			return err
		}
	}
	return nil
}
