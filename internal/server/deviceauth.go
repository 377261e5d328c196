package server

import (
	"context"
	"errors"
	"math"
	"strconv"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	pb "github.com/glinharesb/trustanchor-go/gen/trustanchor/v1"
	"github.com/glinharesb/trustanchor-go/internal/audit"
	"github.com/glinharesb/trustanchor-go/internal/authn"
	"github.com/glinharesb/trustanchor-go/internal/hsm"
	"github.com/glinharesb/trustanchor-go/internal/optiga"
)

// DeviceAuthServer exposes a trust anchor over gRPC.
type DeviceAuthServer struct {
	pb.UnimplementedDeviceAuthServer
	provider hsm.Provider
	audit    *audit.Logger
	opts     authn.Options
}

func NewDeviceAuthServer(p hsm.Provider, a *audit.Logger, opts authn.Options) *DeviceAuthServer {
	return &DeviceAuthServer{
		provider: p,
		audit:    a,
		opts:     opts,
	}
}

func (s *DeviceAuthServer) AuthenticateDevice(ctx context.Context, req *pb.AuthenticateRequest) (*pb.AuthenticateResponse, error) {
	object := optiga.KeyOID(s.opts.KeyIndex).String()
	md := map[string]string{
		"certificate":   optiga.CertOID(s.opts.CertIndex).String(),
		"challenge_len": strconv.Itoa(len(req.Challenge)),
	}

	proof, err := authn.Authenticate(s.provider, req.Challenge, s.opts)
	if err != nil {
		s.audit.Log("AuthenticateDevice", object, audit.StatusError, peerAddr(ctx), md)
		return nil, deviceError(err)
	}

	s.audit.Log("AuthenticateDevice", object, audit.StatusOK, peerAddr(ctx), md)
	return &pb.AuthenticateResponse{Certificate: proof.Certificate, Signature: proof.Signature}, nil
}

func (s *DeviceAuthServer) Sign(ctx context.Context, req *pb.SignRequest) (*pb.SignResponse, error) {
	if req.KeyIndex > math.MaxUint8 {
		return nil, status.Errorf(codes.InvalidArgument, "key index %d out of range", req.KeyIndex)
	}
	index := uint8(req.KeyIndex)
	object := optiga.KeyOID(index).String()

	sig, err := hsm.SignDigest(s.provider, index, req.Digest)
	if err != nil {
		s.audit.Log("Sign", object, audit.StatusError, peerAddr(ctx), nil)
		return nil, deviceError(err)
	}

	s.audit.Log("Sign", object, audit.StatusOK, peerAddr(ctx), nil)
	return &pb.SignResponse{Signature: sig}, nil
}

func (s *DeviceAuthServer) GetCertificate(ctx context.Context, req *pb.GetCertificateRequest) (*pb.GetCertificateResponse, error) {
	if req.CertIndex > math.MaxUint8 {
		return nil, status.Errorf(codes.InvalidArgument, "certificate index %d out of range", req.CertIndex)
	}
	index := uint8(req.CertIndex)
	object := optiga.CertOID(index).String()

	cert, err := hsm.Certificate(s.provider, index)
	if err != nil {
		s.audit.Log("GetCertificate", object, audit.StatusError, peerAddr(ctx), nil)
		return nil, deviceError(err)
	}

	s.audit.Log("GetCertificate", object, audit.StatusOK, peerAddr(ctx), nil)
	return &pb.GetCertificateResponse{Certificate: cert}, nil
}

// deviceError converts a trust anchor failure into a gRPC status.
func deviceError(err error) error {
	var code codes.Code
	switch {
	case errors.Is(err, hsm.ErrBufferTooSmall),
		errors.Is(err, hsm.ErrInvalidSlot),
		errors.Is(err, hsm.ErrInvalidDigest),
		errors.Is(err, authn.ErrInvalidChallenge):
		code = codes.InvalidArgument
	case errors.Is(err, hsm.ErrTransport):
		code = codes.Unavailable
	default:
		code = codes.Internal
	}
	return status.Error(code, err.Error())
}

func peerAddr(ctx context.Context) string {
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		return p.Addr.String()
	}
	return ""
}
