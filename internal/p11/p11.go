// Package p11 drives a PKCS#11 token as a secure element. Objects are found
// by CKA_ID, which holds the big-endian data object identifier.
package p11

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/miekg/pkcs11"

	"github.com/glinharesb/trustanchor-go/internal/crypto"
	"github.com/glinharesb/trustanchor-go/internal/optiga"
)

// Config selects the token.
type Config struct {
	Library string
	Pin     string
	Slot    uint
}

// module is the subset of *pkcs11.Ctx used by Transport.
type module interface {
	FindObjectsInit(sh pkcs11.SessionHandle, temp []*pkcs11.Attribute) error
	FindObjects(sh pkcs11.SessionHandle, max int) ([]pkcs11.ObjectHandle, bool, error)
	FindObjectsFinal(sh pkcs11.SessionHandle) error
	GetAttributeValue(sh pkcs11.SessionHandle, o pkcs11.ObjectHandle, a []*pkcs11.Attribute) ([]*pkcs11.Attribute, error)
	SignInit(sh pkcs11.SessionHandle, m []*pkcs11.Mechanism, o pkcs11.ObjectHandle) error
	Sign(sh pkcs11.SessionHandle, message []byte) ([]byte, error)
	Logout(sh pkcs11.SessionHandle) error
	CloseSession(sh pkcs11.SessionHandle) error
	Finalize() error
}

// Transport implements optiga.Transport on one logged-in session.
type Transport struct {
	mu      sync.Mutex
	ctx     module
	session pkcs11.SessionHandle
	destroy func()
}

// Open loads the library, opens a session on cfg.Slot and logs in when a
// PIN is configured.
func Open(cfg Config) (*Transport, error) {
	p := pkcs11.New(cfg.Library)
	if p == nil {
		return nil, fmt.Errorf("load pkcs11 library %s", cfg.Library)
	}
	if err := p.Initialize(); err != nil {
		p.Destroy()
		return nil, fmt.Errorf("initialize %s: %w", cfg.Library, err)
	}

	fail := func(err error) (*Transport, error) {
		p.Finalize()
		p.Destroy()
		return nil, err
	}

	slots, err := p.GetSlotList(true)
	if err != nil {
		return fail(fmt.Errorf("list slots: %w", err))
	}
	if !slices.Contains(slots, cfg.Slot) {
		return fail(fmt.Errorf("no token in slot %d (have %v)", cfg.Slot, slots))
	}
	session, err := p.OpenSession(cfg.Slot, pkcs11.CKF_SERIAL_SESSION)
	if err != nil {
		return fail(fmt.Errorf("open session: %w", err))
	}
	if cfg.Pin != "" {
		if err := p.Login(session, pkcs11.CKU_USER, cfg.Pin); err != nil {
			p.CloseSession(session)
			return fail(fmt.Errorf("login: %w", err))
		}
	}

	return &Transport{ctx: p, session: session, destroy: p.Destroy}, nil
}

// Close logs out, closes the session and unloads the library.
func (t *Transport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	var errs []error
	if err := t.ctx.Logout(t.session); err != nil && !errors.Is(err, pkcs11.Error(pkcs11.CKR_USER_NOT_LOGGED_IN)) {
		errs = append(errs, fmt.Errorf("logout: %w", err))
	}
	if err := t.ctx.CloseSession(t.session); err != nil {
		errs = append(errs, fmt.Errorf("close session: %w", err))
	}
	if err := t.ctx.Finalize(); err != nil {
		errs = append(errs, fmt.Errorf("finalize: %w", err))
	}
	if t.destroy != nil {
		t.destroy()
	}
	return errors.Join(errs...)
}

func (t *Transport) CalcSign(oid optiga.OID, digest []byte, sig []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	key, err := t.find(pkcs11.CKO_PRIVATE_KEY, oid)
	if err != nil {
		return 0, err
	}
	mech := []*pkcs11.Mechanism{pkcs11.NewMechanism(pkcs11.CKM_ECDSA, nil)}
	if err := t.ctx.SignInit(t.session, mech, key); err != nil {
		return 0, fmt.Errorf("sign init %s: %w", oid, err)
	}
	raw, err := t.ctx.Sign(t.session, digest)
	if err != nil {
		return 0, fmt.Errorf("sign %s: %w", oid, err)
	}

	payload, err := crypto.EncodeIntegers(raw)
	if err != nil {
		return 0, fmt.Errorf("sign %s: %w", oid, err)
	}
	if len(payload) > len(sig) {
		return 0, optiga.ErrResponseTooLarge
	}
	return copy(sig, payload), nil
}

func (t *Transport) GetDataObject(oid optiga.OID, metadataOnly bool, buf []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var out []byte
	value, dataType, err := t.value(oid)
	switch {
	case err == nil && metadataOnly:
		md := optiga.Metadata{
			LcsO:     optiga.Item{optiga.LcsOperational},
			UsedSize: optiga.UintItem(uint64(len(value))),
			Read:     optiga.Item{0x00},
			Change:   optiga.Item{0xFF},
			DataType: optiga.Item{dataType},
		}
		if out, err = md.Marshal(); err != nil {
			return 0, err
		}
	case err == nil:
		out = value
	case errors.Is(err, optiga.ErrObjectNotFound) && metadataOnly:
		if _, err := t.find(pkcs11.CKO_PRIVATE_KEY, oid); err != nil {
			return 0, err
		}
		md := optiga.Metadata{
			LcsO:      optiga.Item{optiga.LcsOperational},
			Execute:   optiga.Item{0x00},
			Algorithm: optiga.Item{optiga.AlgorithmECCP256},
			KeyUsage:  optiga.Item{optiga.KeyUsageSign},
		}
		if out, err = md.Marshal(); err != nil {
			return 0, err
		}
	default:
		return 0, err
	}

	if len(out) > len(buf) {
		return 0, optiga.ErrResponseTooLarge
	}
	return copy(buf, out), nil
}

// value reads CKA_VALUE of the certificate or data object with oid.
func (t *Transport) value(oid optiga.OID) ([]byte, uint8, error) {
	for _, c := range []struct {
		class    uint
		dataType uint8
	}{
		{pkcs11.CKO_CERTIFICATE, optiga.TypeDeviceCert},
		{pkcs11.CKO_DATA, optiga.TypeByteString},
	} {
		obj, err := t.find(c.class, oid)
		if errors.Is(err, optiga.ErrObjectNotFound) {
			continue
		}
		if err != nil {
			return nil, 0, err
		}
		attrs, err := t.ctx.GetAttributeValue(t.session, obj, []*pkcs11.Attribute{
			pkcs11.NewAttribute(pkcs11.CKA_VALUE, nil),
		})
		if err != nil {
			return nil, 0, fmt.Errorf("read %s: %w", oid, err)
		}
		if len(attrs) != 1 {
			return nil, 0, fmt.Errorf("read %s: %d attributes returned", oid, len(attrs))
		}
		return attrs[0].Value, c.dataType, nil
	}
	return nil, 0, optiga.ErrObjectNotFound
}

func (t *Transport) find(class uint, oid optiga.OID) (pkcs11.ObjectHandle, error) {
	template := []*pkcs11.Attribute{
		pkcs11.NewAttribute(pkcs11.CKA_CLASS, class),
		pkcs11.NewAttribute(pkcs11.CKA_ID, oid.Bytes()),
	}
	if err := t.ctx.FindObjectsInit(t.session, template); err != nil {
		return 0, fmt.Errorf("find %s: %w", oid, err)
	}
	objs, _, err := t.ctx.FindObjects(t.session, 1)
	if ferr := t.ctx.FindObjectsFinal(t.session); err == nil && ferr != nil {
		err = ferr
	}
	if err != nil {
		return 0, fmt.Errorf("find %s: %w", oid, err)
	}
	if len(objs) == 0 {
		return 0, optiga.ErrObjectNotFound
	}
	return objs[0], nil
}
