package ntt

import (
	"crypto/subtle"

	"github.com/pkg/errors"
)

// Poly is a polynomial with N coefficients modulo Q. Coefficients are not
// kept in canonical form; see the bounds documented on each operation.
type Poly [N]int16

// EncodedSize is the length of the 12-bit packed encoding of a Poly.
const EncodedSize = N * 12 / 8

// ErrInvalidEncoding is returned by SetBytes when the input has the wrong
// length or holds a coefficient >= Q.
var ErrInvalidEncoding = errors.New("ntt: invalid polynomial encoding")

// FromSlice returns s viewed as a Poly without copying; operations on the
// result mutate s. It panics if len(s) != N.
func FromSlice(s []int16) *Poly {
	if len(s) != N {
		panic("ntt: polynomial must have 256 coefficients")
	}
	return (*Poly)(s)
}

// Add sets p = p + b coefficientwise without reduction.
func (p *Poly) Add(b *Poly) {
	for i := range p {
		p[i] += b[i]
	}
}

// Sub sets p = p - b coefficientwise without reduction.
func (p *Poly) Sub(b *Poly) {
	for i := range p {
		p[i] -= b[i]
	}
}

// Reduce applies Barrett reduction to every coefficient, leaving them in
// [-(Q-1)/2, (Q-1)/2].
func (p *Poly) Reduce() {
	for i := range p {
		p[i] = BarrettReduce(p[i])
	}
}

// Normalize maps every coefficient to its canonical representative in
// [0, Q).
func (p *Poly) Normalize() {
	for i := range p {
		p[i] = Canonical(p[i])
	}
}

// ToMont multiplies every coefficient by R, converting into Montgomery form.
// Output coefficients lie in (-Q, Q).
func (p *Poly) ToMont() {
	for i := range p {
		p[i] = fqMul(p[i], MontR2)
	}
}

// Equal reports whether p and b are congruent modulo Q coefficientwise.
// It runs in constant time.
func (p *Poly) Equal(b *Poly) bool {
	var diff int16
	for i := range p {
		diff |= Canonical(p[i]) ^ Canonical(b[i])
	}
	return subtle.ConstantTimeEq(int32(diff), 0) == 1
}

// Bytes packs the canonical coefficients of p, two per three bytes,
// little-endian.
func (p *Poly) Bytes() []byte {
	out := make([]byte, EncodedSize)
	for i := 0; i < N/2; i++ {
		t0 := uint16(Canonical(p[2*i]))
		t1 := uint16(Canonical(p[2*i+1]))
		out[3*i+0] = byte(t0)
		out[3*i+1] = byte(t0>>8) | byte(t1<<4)
		out[3*i+2] = byte(t1 >> 4)
	}
	return out
}

// SetBytes decodes the packing produced by Bytes into p. It returns
// ErrInvalidEncoding if b is not EncodedSize bytes long or any coefficient
// is not below Q; p is left unspecified in that case.
func (p *Poly) SetBytes(b []byte) error {
	if len(b) != EncodedSize {
		return errors.Wrapf(ErrInvalidEncoding, "got %d bytes, want %d", len(b), EncodedSize)
	}
	// bad collects the borrow of coefficient-Q over every coefficient so the
	// decoder does not branch on the data.
	var bad uint16
	for i := 0; i < N/2; i++ {
		t0 := (uint16(b[3*i+0]) | uint16(b[3*i+1])<<8) & 0xFFF
		t1 := (uint16(b[3*i+1])>>4 | uint16(b[3*i+2])<<4) & 0xFFF
		bad |= (t0 - Q) ^ 0x8000
		bad |= (t1 - Q) ^ 0x8000
		p[2*i] = int16(t0)
		p[2*i+1] = int16(t1)
	}
	if bad&0x8000 != 0 {
		return ErrInvalidEncoding
	}
	return nil
}
