// Package polysample derives polynomials deterministically from a seed. It
// feeds test vectors, property checks and the command line tool; it is not
// a source of secret randomness.
package polysample

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"

	"github.com/Rohith04MVK/kyberntt/ntt"
)

// shake128Rate is the SHAKE128 block size. It is a multiple of three, so
// candidate triples never straddle a read.
const shake128Rate = 168

// ErrUnsupportedEta is returned by CBD for eta outside {2, 3}.
var ErrUnsupportedEta = errors.New("polysample: eta must be 2 or 3")

// Uniform samples a polynomial with coefficients uniform in [0, Q) from
// SHAKE128(seed || nonce) by rejection.
//
// Every three bytes of the stream give two 12-bit candidates; candidates
// >= Q are dropped.
func Uniform(seed []byte, nonce byte) ntt.Poly {
	xof := sha3.NewShake128()
	_, _ = xof.Write(seed)
	_, _ = xof.Write([]byte{nonce})

	var p ntt.Poly
	buf := make([]byte, shake128Rate)
	i := 0
	for i < ntt.N {
		_, _ = xof.Read(buf)
		for j := 0; j+3 <= len(buf) && i < ntt.N; j += 3 {
			d1 := (uint16(buf[j]) | uint16(buf[j+1])<<8) & 0xFFF
			d2 := (uint16(buf[j+1])>>4 | uint16(buf[j+2])<<4) & 0xFFF
			if d1 < ntt.Q {
				p[i] = int16(d1)
				i++
			}
			if i < ntt.N && d2 < ntt.Q {
				p[i] = int16(d2)
				i++
			}
		}
	}
	return p
}

// Centered is Uniform with every coefficient moved to
// [-(Q-1)/2, (Q-1)/2].
func Centered(seed []byte, nonce byte) ntt.Poly {
	p := Uniform(seed, nonce)
	p.Reduce()
	return p
}

// CBD samples a polynomial from the centered binomial distribution with
// parameter eta, reading eta*N/4 bytes of SHAKE256(seed || nonce).
// Coefficients lie in [-eta, eta].
func CBD(seed []byte, nonce byte, eta int) (ntt.Poly, error) {
	var p ntt.Poly
	if eta != 2 && eta != 3 {
		return p, errors.Wrapf(ErrUnsupportedEta, "got %d", eta)
	}

	buf := make([]byte, eta*ntt.N/4)
	prf := sha3.NewShake256()
	_, _ = prf.Write(seed)
	_, _ = prf.Write([]byte{nonce})
	_, _ = prf.Read(buf)

	switch eta {
	case 3:
		for i := 0; i < ntt.N/4; i++ {
			t := load24(buf[3*i:])
			// Sum each group of three bits.
			d := t & 0x00249249
			d += (t >> 1) & 0x00249249
			d += (t >> 2) & 0x00249249
			for j := 0; j < 4; j++ {
				a := int16((d >> (6 * j)) & 0x7)
				b := int16((d >> (6*j + 3)) & 0x7)
				p[4*i+j] = a - b
			}
		}
	default:
		for i := 0; i < ntt.N/8; i++ {
			t := load32(buf[4*i:])
			d := t & 0x55555555
			d += (t >> 1) & 0x55555555
			for j := 0; j < 8; j++ {
				a := int16((d >> (4 * j)) & 0x3)
				b := int16((d >> (4*j + 2)) & 0x3)
				p[8*i+j] = a - b
			}
		}
	}
	return p, nil
}

// load32 reads four bytes little-endian.
func load32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// load24 reads three bytes little-endian.
func load24(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
}
