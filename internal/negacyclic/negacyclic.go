// Package negacyclic computes reference products in Z_Q[X]/(X^256+1)
// without the Kyber transform, for cross-checking it.
package negacyclic

import (
	"github.com/pkg/errors"
	"github.com/tuneinsight/lattigo/v4/ring"

	"github.com/Rohith04MVK/kyberntt/ntt"
)

// LiftModulus is the 51-bit prime the exact integer product is computed
// modulo. It is ≡ 1 mod 512, so X^256+1 splits completely, and it exceeds
// twice the largest coefficient of a product of two int16 polynomials.
const LiftModulus = 0x7fffffffe0001

// Schoolbook returns a*b mod (X^256+1, Q) with canonical coefficients in
// [0, Q). It runs in quadratic time.
func Schoolbook(a, b *ntt.Poly) ntt.Poly {
	var acc [ntt.N]int64
	for i := 0; i < ntt.N; i++ {
		for j := 0; j < ntt.N; j++ {
			prod := int64(a[i]) * int64(b[j])
			if k := i + j; k < ntt.N {
				acc[k] += prod
			} else {
				acc[k-ntt.N] -= prod
			}
		}
	}
	var r ntt.Poly
	for i, c := range acc {
		r[i] = int16(mod(c, ntt.Q))
	}
	return r
}

// Ring multiplies through lattigo's negacyclic NTT over LiftModulus. A Ring
// is not safe for concurrent use.
type Ring struct {
	r *ring.Ring
}

// NewRing builds the lattigo ring of degree 256 over LiftModulus.
func NewRing() (*Ring, error) {
	r, err := ring.NewRing(ntt.N, []uint64{LiftModulus})
	if err != nil {
		return nil, errors.Wrap(err, "building lattigo ring")
	}
	return &Ring{r: r}, nil
}

// Mul returns a*b mod (X^256+1, Q) with canonical coefficients. The inputs
// are interpreted as signed integers, so any int16 coefficients are valid.
func (rg *Ring) Mul(a, b *ntt.Poly) ntt.Poly {
	r := rg.r
	pa := rg.lift(a)
	pb := rg.lift(b)

	r.MForm(pa, pa)
	r.MForm(pb, pb)
	r.NTT(pa, pa)
	r.NTT(pb, pb)
	pc := r.NewPoly()
	r.MulCoeffsMontgomery(pa, pb, pc)
	r.InvNTT(pc, pc)
	r.InvMForm(pc, pc)

	var out ntt.Poly
	for i, c := range pc.Coeffs[0][:ntt.N] {
		v := int64(c)
		if c > LiftModulus/2 {
			v = int64(c) - LiftModulus
		}
		out[i] = int16(mod(v, ntt.Q))
	}
	return out
}

// lift embeds signed coefficients into [0, LiftModulus).
func (rg *Ring) lift(a *ntt.Poly) *ring.Poly {
	p := rg.r.NewPoly()
	for i, c := range a {
		p.Coeffs[0][i] = uint64(mod(int64(c), LiftModulus))
	}
	return p
}

func mod(x, m int64) int64 {
	x %= m
	if x < 0 {
		x += m
	}
	return x
}
