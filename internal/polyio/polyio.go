// Package polyio reads and writes single polynomials for the command line
// tool, either as JSON coefficient arrays or as hex of the 12-bit packing.
package polyio

import (
	"bytes"
	"encoding/hex"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/Rohith04MVK/kyberntt/ntt"
)

var json = jsoniter.ConfigFastest

// Format selects the encoding of a polynomial.
type Format string

const (
	// JSON is {"coeffs":[c0, ..., c255]} with int16 coefficients, kept as
	// given (no reduction).
	JSON Format = "json"
	// Hex is the hex encoding of ntt.Poly.Bytes; coefficients are canonical.
	Hex Format = "hex"
)

var ErrUnknownFormat = errors.New("polyio: unknown format")

type document struct {
	Coeffs []int16 `json:"coeffs"`
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case JSON, Hex:
		return f, nil
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q", s)
}

// Read decodes one polynomial from r.
func Read(r io.Reader, f Format) (*ntt.Poly, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading polynomial")
	}

	switch f {
	case JSON:
		var doc document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, errors.Wrap(err, "decoding polynomial JSON")
		}
		if len(doc.Coeffs) != ntt.N {
			return nil, errors.Errorf("polynomial has %d coefficients, want %d", len(doc.Coeffs), ntt.N)
		}
		p := new(ntt.Poly)
		copy(p[:], doc.Coeffs)
		return p, nil
	case Hex:
		b, err := hex.DecodeString(string(bytes.TrimSpace(raw)))
		if err != nil {
			return nil, errors.Wrap(err, "decoding polynomial hex")
		}
		p := new(ntt.Poly)
		if err := p.SetBytes(b); err != nil {
			return nil, err
		}
		return p, nil
	}
	return nil, errors.Wrapf(ErrUnknownFormat, "%q", f)
}

// Write encodes p to w followed by a newline.
func Write(w io.Writer, p *ntt.Poly, f Format) error {
	var out []byte
	switch f {
	case JSON:
		b, err := json.Marshal(document{Coeffs: p[:]})
		if err != nil {
			return errors.Wrap(err, "encoding polynomial JSON")
		}
		out = b
	case Hex:
		out = []byte(hex.EncodeToString(p.Bytes()))
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", f)
	}
	if _, err := w.Write(append(out, '\n')); err != nil {
		return errors.Wrap(err, "writing polynomial")
	}
	return nil
}
