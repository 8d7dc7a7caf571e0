// Package ntt implements the polynomial arithmetic kernel of Kyber (ML-KEM):
// the number-theoretic transform over Z_q[X]/(X^256+1) with q = 3329, its
// inverse, Montgomery and Barrett reduction, and multiplication in the
// transformed domain.
//
// All routines run in time independent of coefficient values. Polynomials are
// owned by the caller and transformed in place:
//
//	var p ntt.Poly
//	// fill p with coefficients in (-q, q)
//	ntt.NTT(&p)
//	ntt.InvNTT(&p) // p is back in coefficient form, reduced to (-q, q)
//
// The constants below and the table returned by Zetas are part of the
// package contract; they match the Kyber reference implementation so that
// NTT-domain polynomials interoperate bit for bit.
package ntt

const (
	// N is the number of coefficients in a polynomial.
	N = 256

	// Q is the prime modulus, q = 13*2^8 + 1.
	Q = 3329

	// Zeta is the primitive 256th root of unity modulo Q the zeta table is
	// built from.
	Zeta = 17

	// QInv is Q^-1 mod 2^16 as a signed 16-bit value. Its unsigned form is
	// 62209.
	QInv = -3327

	// MontR is the Montgomery radix R = 2^16 reduced mod Q, centered.
	// A value x is in Montgomery form when stored as x*R mod Q.
	MontR = -1044

	// MontR2 is R^2 mod Q; multiplying by it with Montgomery reduction
	// converts into Montgomery form.
	MontR2 = 1353

	// InvNScale is 128^-1 * R mod Q, the final scaling of InvNTT.
	InvNScale = 512

	// InvNScaleMont is 128^-1 * R^2 mod Q, the final scaling of InvNTTToMont.
	InvNScaleMont = 1441

	// NTTBound bounds the absolute value of every coefficient NTT produces
	// for inputs with absolute value below Q.
	NTTBound = 8 * Q

	// BaseMulBound bounds the absolute value of every coefficient BaseMul
	// produces when both inputs are within NTTBound.
	BaseMulBound = 25000
)

// Layers is the number of butterfly layers. The transform stops at blocks of
// two coefficients since X^256+1 only splits into quadratics modulo Q.
const Layers = 7

// barrettV is round(2^26 / Q).
const barrettV = ((1 << 26) + Q/2) / Q
