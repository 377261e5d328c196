package server

import (
	"context"
	"crypto/sha256"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/reflection"
	reflectionpb "google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	pb "github.com/glinharesb/trustanchor-go/gen/trustanchor/v1"
	"github.com/glinharesb/trustanchor-go/internal/audit"
	"github.com/glinharesb/trustanchor-go/internal/authn"
	"github.com/glinharesb/trustanchor-go/internal/crypto"
	"github.com/glinharesb/trustanchor-go/internal/emulator"
	"github.com/glinharesb/trustanchor-go/internal/hsm"
	"github.com/glinharesb/trustanchor-go/internal/optiga"
)

type testEnv struct {
	conn   *grpc.ClientConn
	device pb.DeviceAuthClient
	audit  pb.AuditClient
	logger *audit.Logger
}

func startServer(t *testing.T, p hsm.Provider) *testEnv {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	logger := audit.NewLogger(64, nil)
	srv := grpc.NewServer()
	pb.RegisterDeviceAuthServer(srv, NewDeviceAuthServer(p, logger, authn.DefaultOptions()))
	pb.RegisterAuditServer(srv, NewAuditServer(logger))
	reflection.Register(srv)
	go srv.Serve(lis)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		srv.Stop()
		logger.Close()
	})
	return &testEnv{
		conn:   conn,
		device: pb.NewDeviceAuthClient(conn),
		audit:  pb.NewAuditClient(conn),
		logger: logger,
	}
}

func simulator(t *testing.T) *hsm.Simulator {
	t.Helper()
	sim, err := hsm.NewSimulator()
	require.NoError(t, err)
	return sim
}

// metadataTransport answers every metadata read with a fixed blob.
type metadataTransport struct {
	metadata []byte
}

func (m metadataTransport) CalcSign(optiga.OID, []byte, []byte) (int, error) {
	return 0, fmt.Errorf("no keys")
}

func (m metadataTransport) GetDataObject(_ optiga.OID, _ bool, buf []byte) (int, error) {
	return copy(buf, m.metadata), nil
}

func TestAuthenticateDevice(t *testing.T) {
	env := startServer(t, simulator(t))
	ctx := context.Background()
	challenge := []byte("server challenge")

	resp, err := env.device.AuthenticateDevice(ctx, &pb.AuthenticateRequest{Challenge: challenge})
	require.NoError(t, err)

	cert, err := authn.VerifyProof(&authn.Proof{Certificate: resp.Certificate, Signature: resp.Signature}, challenge)
	require.NoError(t, err)
	require.Equal(t, "Trezor Safe 3", cert.Subject.CommonName)

	_, err = env.device.AuthenticateDevice(ctx, &pb.AuthenticateRequest{})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestSignAndCertificate(t *testing.T) {
	sim := simulator(t)
	env := startServer(t, sim)
	ctx := context.Background()
	digest := sha256.Sum256([]byte("payload"))

	resp, err := env.device.Sign(ctx, &pb.SignRequest{KeyIndex: 0, Digest: digest[:]})
	require.NoError(t, err)
	require.True(t, crypto.VerifyDigest(sim.Public(), digest[:], resp.Signature))

	_, err = env.device.Sign(ctx, &pb.SignRequest{Digest: digest[:16]})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = env.device.Sign(ctx, &pb.SignRequest{KeyIndex: 256, Digest: digest[:]})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	cert, err := env.device.GetCertificate(ctx, &pb.GetCertificateRequest{CertIndex: 0})
	require.NoError(t, err)
	require.Len(t, cert.Certificate, 414)
}

func TestElementErrorCodes(t *testing.T) {
	key, err := crypto.GenerateP256Key()
	require.NoError(t, err)
	store := emulator.NewMemoryStore()
	require.NoError(t, emulator.Provision(store, 0, 1, key, []byte("cert")))
	env := startServer(t, hsm.NewElement(emulator.NewTransport(store)))
	ctx := context.Background()
	digest := sha256.Sum256([]byte("payload"))

	_, err = env.device.Sign(ctx, &pb.SignRequest{KeyIndex: 4, Digest: digest[:]})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = env.device.Sign(ctx, &pb.SignRequest{KeyIndex: 2, Digest: digest[:]})
	require.Equal(t, codes.Unavailable, status.Code(err))

	_, err = env.device.GetCertificate(ctx, &pb.GetCertificateRequest{CertIndex: 3})
	require.Equal(t, codes.Unavailable, status.Code(err))

	cert, err := env.device.GetCertificate(ctx, &pb.GetCertificateRequest{CertIndex: 1})
	require.NoError(t, err)
	require.Equal(t, []byte("cert"), cert.Certificate)

	broken := startServer(t, hsm.NewElement(metadataTransport{metadata: []byte{0x20, 0x05, 0xC5}}))
	_, err = broken.device.GetCertificate(ctx, &pb.GetCertificateRequest{CertIndex: 0})
	require.Equal(t, codes.Internal, status.Code(err))
}

func TestQueryAudit(t *testing.T) {
	env := startServer(t, simulator(t))
	ctx := context.Background()

	_, err := env.device.AuthenticateDevice(ctx, &pb.AuthenticateRequest{Challenge: []byte{1}})
	require.NoError(t, err)
	_, err = env.device.GetCertificate(ctx, &pb.GetCertificateRequest{CertIndex: 1})
	require.NoError(t, err)

	var entries []*pb.AuditEntry
	require.Eventually(t, func() bool {
		resp, err := env.audit.QueryAudit(ctx, &pb.QueryAuditRequest{Object: "0xE0F0"})
		if err != nil {
			return false
		}
		entries = resp.Entries
		return len(entries) == 1
	}, time.Second, 10*time.Millisecond)

	e := entries[0]
	require.Equal(t, "AuthenticateDevice", e.Operation)
	require.Equal(t, audit.StatusOK, e.Status)
	require.Equal(t, "0xE0E1", e.Metadata["certificate"])
	require.Equal(t, "1", e.Metadata["challenge_len"])
	require.NotEmpty(t, e.Id)
	require.NotNil(t, e.Timestamp)
}

func TestStreamAudit(t *testing.T) {
	env := startServer(t, simulator(t))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := env.audit.StreamAudit(ctx, &pb.StreamAuditRequest{})
	require.NoError(t, err)

	// The server subscribes asynchronously, so keep generating entries
	// until one arrives.
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(10 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				env.device.GetCertificate(ctx, &pb.GetCertificateRequest{CertIndex: 2})
			}
		}
	}()

	entry, err := stream.Recv()
	require.NoError(t, err)
	require.Equal(t, "GetCertificate", entry.Operation)
	require.Equal(t, "0xE0E2", entry.Object)
}

func TestDeviceErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		code codes.Code
	}{
		{hsm.ErrBufferTooSmall, codes.InvalidArgument},
		{hsm.ErrInvalidSlot, codes.InvalidArgument},
		{fmt.Errorf("wrapped: %w", hsm.ErrInvalidDigest), codes.InvalidArgument},
		{authn.ErrInvalidChallenge, codes.InvalidArgument},
		{hsm.ErrTransport, codes.Unavailable},
		{hsm.ErrMetadataParse, codes.Internal},
		{hsm.ErrEncodingUnsupported, codes.Internal},
	}
	for _, tt := range tests {
		require.Equal(t, tt.code, status.Code(deviceError(tt.err)), "%v", tt.err)
	}
}

func TestPlainProtobufClient(t *testing.T) {
	env := startServer(t, simulator(t))
	ctx := context.Background()
	digest := sha256.Sum256([]byte("plain client"))

	// Standard protobuf wire format, default codec, no generated client.
	raw, err := proto.Marshal(&pb.SignRequest{KeyIndex: 2, Digest: []byte{0xFF}})
	require.NoError(t, err)
	require.Equal(t, []byte{0x08, 0x02, 0x12, 0x01, 0xFF}, raw)

	resp := new(pb.SignResponse)
	err = env.conn.Invoke(ctx, pb.DeviceAuth_Sign_FullMethodName, &pb.SignRequest{Digest: digest[:]}, resp)
	require.NoError(t, err)
	_, _, err = crypto.ParseSignature(resp.GetSignature())
	require.NoError(t, err)
}

func TestReflectionResolvesServices(t *testing.T) {
	env := startServer(t, simulator(t))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := reflectionpb.NewServerReflectionClient(env.conn).ServerReflectionInfo(ctx)
	require.NoError(t, err)

	require.NoError(t, stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_ListServices{},
	}))
	resp, err := stream.Recv()
	require.NoError(t, err)
	var names []string
	for _, s := range resp.GetListServicesResponse().GetService() {
		names = append(names, s.GetName())
	}
	require.Contains(t, names, "trustanchor.v1.DeviceAuth")
	require.Contains(t, names, "trustanchor.v1.Audit")

	require.NoError(t, stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_FileContainingSymbol{
			FileContainingSymbol: "trustanchor.v1.DeviceAuth",
		},
	}))
	resp, err = stream.Recv()
	require.NoError(t, err)
	files := resp.GetFileDescriptorResponse().GetFileDescriptorProto()
	require.NotEmpty(t, files)

	var fd descriptorpb.FileDescriptorProto
	require.NoError(t, proto.Unmarshal(files[0], &fd))
	require.Equal(t, "trustanchor/v1/trustanchor.proto", fd.GetName())
	require.Len(t, fd.GetService(), 2)
	require.Equal(t, "Sign", fd.GetService()[0].GetMethod()[1].GetName())
}
