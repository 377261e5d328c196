package main

import (
	"context"
	"crypto/tls"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	pb "github.com/glinharesb/trustanchor-go/gen/trustanchor/v1"
	"github.com/glinharesb/trustanchor-go/internal/authn"
	"github.com/glinharesb/trustanchor-go/internal/hsm"
)

// device is a trust anchor reached either in-process or over gRPC.
type device interface {
	Authenticate(ctx context.Context, challenge []byte) (*authn.Proof, error)
	Sign(ctx context.Context, keyIndex uint8, digest []byte) ([]byte, error)
	Certificate(ctx context.Context, certIndex uint8) ([]byte, error)
	Close() error
}

type localDevice struct {
	provider hsm.Provider
	opts     authn.Options
	release  func() error
}

func (d *localDevice) Authenticate(_ context.Context, challenge []byte) (*authn.Proof, error) {
	return authn.Authenticate(d.provider, challenge, d.opts)
}

func (d *localDevice) Sign(_ context.Context, keyIndex uint8, digest []byte) ([]byte, error) {
	return hsm.SignDigest(d.provider, keyIndex, digest)
}

func (d *localDevice) Certificate(_ context.Context, certIndex uint8) ([]byte, error) {
	return hsm.Certificate(d.provider, certIndex)
}

func (d *localDevice) Close() error { return d.release() }

type remoteDevice struct {
	conn   *grpc.ClientConn
	client pb.DeviceAuthClient
	audit  pb.AuditClient
	token  string
}

func dialRemote(addr, token string, useTLS bool) (*remoteDevice, error) {
	creds := insecure.NewCredentials()
	if useTLS {
		creds = credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
	}
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	return &remoteDevice{
		conn:   conn,
		client: pb.NewDeviceAuthClient(conn),
		audit:  pb.NewAuditClient(conn),
		token:  token,
	}, nil
}

func (d *remoteDevice) outgoing(ctx context.Context) context.Context {
	if d.token == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+d.token)
}

func (d *remoteDevice) Authenticate(ctx context.Context, challenge []byte) (*authn.Proof, error) {
	resp, err := d.client.AuthenticateDevice(d.outgoing(ctx), &pb.AuthenticateRequest{Challenge: challenge})
	if err != nil {
		return nil, err
	}
	return &authn.Proof{Certificate: resp.Certificate, Signature: resp.Signature}, nil
}

func (d *remoteDevice) Sign(ctx context.Context, keyIndex uint8, digest []byte) ([]byte, error) {
	resp, err := d.client.Sign(d.outgoing(ctx), &pb.SignRequest{KeyIndex: uint32(keyIndex), Digest: digest})
	if err != nil {
		return nil, err
	}
	return resp.Signature, nil
}

func (d *remoteDevice) Certificate(ctx context.Context, certIndex uint8) ([]byte, error) {
	resp, err := d.client.GetCertificate(d.outgoing(ctx), &pb.GetCertificateRequest{CertIndex: uint32(certIndex)})
	if err != nil {
		return nil, err
	}
	return resp.Certificate, nil
}

func (d *remoteDevice) QueryAudit(ctx context.Context, req *pb.QueryAuditRequest) ([]*pb.AuditEntry, error) {
	resp, err := d.audit.QueryAudit(d.outgoing(ctx), req)
	if err != nil {
		return nil, err
	}
	return resp.Entries, nil
}

func (d *remoteDevice) Close() error { return d.conn.Close() }
