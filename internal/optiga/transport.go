package optiga

import "errors"

var (
	ErrResponseTooLarge = errors.New("optiga: response exceeds buffer")
	ErrObjectNotFound   = errors.New("optiga: data object not found")
	ErrInvalidMetadata  = errors.New("optiga: invalid metadata")
)

// Transport is the command channel to a secure element. The element accepts
// one command at a time; implementations serialize access themselves.
type Transport interface {
	// CalcSign signs digest with the key object at oid and writes the
	// element's signature payload (two DER INTEGERs without the enclosing
	// SEQUENCE header) into sig, returning the number of bytes written.
	CalcSign(oid OID, digest []byte, sig []byte) (int, error)

	// GetDataObject reads the object at oid, or only its metadata TLV, into
	// buf and returns the number of bytes stored. When the response would not
	// fit len(buf) it returns ErrResponseTooLarge and leaves buf untouched.
	GetDataObject(oid OID, metadataOnly bool, buf []byte) (int, error)
}
