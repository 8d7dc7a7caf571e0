package ntt

import "math/bits"

// zetas[k] = Zeta^br7(k) * R mod Q, centered, where br7 reverses the low
// seven bits of k. NTT reads it front to back, InvNTT back to front and
// BaseMul uses the upper half.
var zetas = genZetas()

// genZetas builds the zeta table from Q, Zeta and the Montgomery radix.
// It runs once at package initialization.
func genZetas() [128]int16 {
	var table [128]int16
	for k := range table {
		e := bits.Reverse8(uint8(k)) >> 1
		z := powMod(Zeta, uint32(e)) * (1 << 16) % Q
		table[k] = centered(z)
	}
	return table
}

// powMod returns b^e mod Q.
func powMod(b, e uint32) uint32 {
	r := uint32(1)
	b %= Q
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			r = r * b % Q
		}
		b = b * b % Q
	}
	return r
}

// centered maps x in [0, Q) to [-(Q-1)/2, (Q-1)/2].
func centered(x uint32) int16 {
	if x > Q/2 {
		return int16(int32(x) - Q)
	}
	return int16(x)
}

// Zetas returns a copy of the zeta table.
func Zetas() [128]int16 {
	return zetas
}
