package ntt

// NTT transforms p in place from coefficient form into the NTT domain.
//
// The output is in bit-reversed block order: p[2i], p[2i+1] hold the
// residue of the input modulo X^2 - zeta_i for the i-th quadratic factor.
// No reduction is applied between layers. For inputs with every |p[i]| < Q
// each output coefficient satisfies |p[i]| < NTTBound.
func NTT(p *Poly) {
	k := 1
	for length := 128; length >= 2; length >>= 1 {
		for start := 0; start < N; start += 2 * length {
			zeta := zetas[k]
			k++
			lo := p[start : start+length]
			hi := p[start+length : start+2*length]
			for j := range lo {
				t := fqMul(zeta, hi[j])
				hi[j] = lo[j] - t
				lo[j] = lo[j] + t
			}
		}
	}
}

// InvNTT transforms p in place from the NTT domain back to coefficient form,
// including the division by 128, so that InvNTT(NTT(p)) ≡ p (mod Q).
// Any int16 input is accepted; output coefficients lie in (-Q, Q).
func InvNTT(p *Poly) {
	invLayers(p)
	scale(p, InvNScale)
}

// InvNTTToMont is InvNTT with an extra factor of R = 2^16 in the result.
// It cancels the R^-1 BaseMul introduces:
//
//	InvNTTToMont(BaseMul(NTT(a), NTT(b))) ≡ a*b mod (X^256+1, Q)
func InvNTTToMont(p *Poly) {
	invLayers(p)
	scale(p, InvNScaleMont)
}

// invLayers runs the Gentleman-Sande butterflies, walking the zeta table
// backwards from index 127. Inputs are Barrett reduced first and every sum
// is reduced again, so no intermediate leaves the int16 range.
func invLayers(p *Poly) {
	p.Reduce()
	k := 127
	for length := 2; length <= 128; length <<= 1 {
		for start := 0; start < N; start += 2 * length {
			zeta := zetas[k]
			k--
			lo := p[start : start+length]
			hi := p[start+length : start+2*length]
			for j := range lo {
				t := lo[j]
				lo[j] = BarrettReduce(t + hi[j])
				hi[j] = hi[j] - t
				hi[j] = fqMul(zeta, hi[j])
			}
		}
	}
}

func scale(p *Poly, f int16) {
	for i := range p {
		p[i] = fqMul(p[i], f)
	}
}

// BaseMul multiplies two NTT-domain polynomials and returns the product in
// the NTT domain, scaled by R^-1.
//
// Block i holds a degree-1 residue modulo X^2 - z_i. Consecutive blocks
// share a table entry with opposite signs: z_i = zetas[64+i/2] for even i
// and -zetas[64+i/2] for odd i.
//
// The inputs may come straight from NTT (|coefficient| < NTTBound); the
// result then fits in (-BaseMulBound, BaseMulBound). For Barrett-reduced inputs it lies in
// (-2Q, 2Q).
func BaseMul(a, b *Poly) Poly {
	var r Poly
	for i := 0; i < N/2; i++ {
		r[2*i], r[2*i+1] = baseMulBlock(a[2*i], a[2*i+1], b[2*i], b[2*i+1], blockZeta(i))
	}
	return r
}

// BaseMulAcc adds BaseMul(a, b) to r. No reduction is applied; callers
// accumulating more than a few products should call Reduce on r.
func BaseMulAcc(r, a, b *Poly) {
	for i := 0; i < N/2; i++ {
		r0, r1 := baseMulBlock(a[2*i], a[2*i+1], b[2*i], b[2*i+1], blockZeta(i))
		r[2*i] += r0
		r[2*i+1] += r1
	}
}

// blockZeta returns the root of the quadratic factor for block i without
// branching: the low bit of i selects the sign.
func blockZeta(i int) int16 {
	z := zetas[64+i/2]
	sign := -int16(i & 1) // 0 or -1
	return (z ^ sign) - sign
}

// baseMulBlock computes (a0 + a1 X)(b0 + b1 X) mod (X^2 - zeta), scaled
// by R^-1.
func baseMulBlock(a0, a1, b0, b1, zeta int16) (int16, int16) {
	r0 := fqMul(fqMul(a1, b1), zeta) + fqMul(a0, b0)
	r1 := fqMul(a0, b1) + fqMul(a1, b0)
	return r0, r1
}
