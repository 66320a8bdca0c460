package p256r1

// Modular inversion by Fermat's little theorem: for prime f and u coprime
// to f, u^(f-2) = u^-1 mod f. The exponent f-2 is precomputed per field.
// Inverting zero yields zero; callers read a zero result as "denominator
// was zero", which the (0, 0) infinity encoding turns into the correct
// verification outcome.

// modInv sets r = u^fm2 mod f, where fm2 must equal f - 2.
func (r *Uint256) modInv(u, f, fm2 *Uint256) {
	r.modExp(u, fm2, f)
}

// pModInv sets r = u^-1 in the base field GF(p).
func (r *Uint256) pModInv(u *Uint256) {
	r.modExp(u, &fieldPm2, &fieldP)
}

// nModInv sets r = u^-1 in the scalar field GF(n).
func (r *Uint256) nModInv(u *Uint256) {
	r.modExp(u, &orderNm2, &orderN)
}
