package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/glinharesb/trustanchor-go/internal/authn"
)

const (
	formatHex  = "hex"
	formatJSON = "json"
	formatCBOR = "cbor"
)

// proofDocument is an authenticity proof together with the challenge it
// answers, as written by "authenticate" and read by "verify".
type proofDocument struct {
	Challenge   []byte `json:"challenge" cbor:"1,keyasint"`
	Certificate []byte `json:"certificate" cbor:"2,keyasint"`
	Signature   []byte `json:"signature" cbor:"3,keyasint"`
}

func newProofDocument(challenge []byte, p *authn.Proof) proofDocument {
	return proofDocument{Challenge: challenge, Certificate: p.Certificate, Signature: p.Signature}
}

func (d proofDocument) proof() *authn.Proof {
	return &authn.Proof{Certificate: d.Certificate, Signature: d.Signature}
}

var cborEncMode = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

func writeProof(w io.Writer, format string, doc proofDocument) error {
	switch format {
	case formatHex:
		_, err := fmt.Fprintf(w, "challenge:   %x\ncertificate: %x\nsignature:   %x\n",
			doc.Challenge, doc.Certificate, doc.Signature)
		return err
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case formatCBOR:
		b, err := cborEncMode.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encode cbor: %w", err)
		}
		_, err = w.Write(b)
		return err
	default:
		return fmt.Errorf("unknown format %q (want hex, json or cbor)", format)
	}
}

// readProof decodes a JSON or CBOR proof document.
func readProof(data []byte) (proofDocument, error) {
	var doc proofDocument
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return doc, fmt.Errorf("decode json proof: %w", err)
		}
		return doc, nil
	}
	if err := cbor.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("decode cbor proof: %w", err)
	}
	return doc, nil
}

func writeBytes(w io.Writer, format string, b []byte) error {
	switch format {
	case formatHex:
		_, err := fmt.Fprintln(w, hex.EncodeToString(b))
		return err
	case formatJSON:
		return json.NewEncoder(w).Encode(b)
	case formatCBOR:
		out, err := cborEncMode.Marshal(b)
		if err != nil {
			return fmt.Errorf("encode cbor: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("unknown format %q (want hex, json or cbor)", format)
	}
}
