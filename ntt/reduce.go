package ntt

// MontgomeryReduce returns t ≡ a * 2^-16 (mod Q) with -Q < t < Q, for
// -Q*2^15 <= a < Q*2^15.
//
// The product with QInv must wrap at exactly 16 bits: the low half of
// a - u*Q is zero by construction and the shift drops it.
func MontgomeryReduce(a int32) int16 {
	u := int16(a * QInv)
	t := a - int32(u)*Q
	return int16(t >> 16)
}

// BarrettReduce returns the representative of a modulo Q in
// [-(Q-1)/2, (Q-1)/2].
func BarrettReduce(a int16) int16 {
	t := int16((barrettV*int32(a) + (1 << 25)) >> 26)
	t *= Q
	return a - t
}

// CondSubQ subtracts Q from a if a >= Q. The input must lie in [0, 2Q).
func CondSubQ(a int16) int16 {
	a -= Q
	// a>>15 is all ones when a went negative.
	a += (a >> 15) & Q
	return a
}

// Canonical returns the representative of a modulo Q in [0, Q).
func Canonical(a int16) int16 {
	a = BarrettReduce(a)
	a += (a >> 15) & Q
	return a
}

// fqMul returns a 16-bit integer congruent to a*b*R^-1 mod Q.
func fqMul(a, b int16) int16 {
	return MontgomeryReduce(int32(a) * int32(b))
}
