package p256r1

// NIST P-256 (secp256r1) parameters: y^2 = x^3 + ax + b over GF(p) with
// a = -3, prime group order n and cofactor 1.
var (
	// fieldP is the base field prime
	// 0xFFFFFFFF00000001000000000000000000000000FFFFFFFFFFFFFFFFFFFFFFFF.
	fieldP = Uint256{d: [4]uint64{
		0xFFFFFFFFFFFFFFFF, 0x00000000FFFFFFFF,
		0x0000000000000000, 0xFFFFFFFF00000001,
	}}

	// fieldPm2 is p - 2, the Fermat inversion exponent for GF(p). It also
	// serves as the field element -2 mod p wherever a -2*v term appears in
	// the point formulas.
	fieldPm2 = Uint256{d: [4]uint64{
		0xFFFFFFFFFFFFFFFD, 0x00000000FFFFFFFF,
		0x0000000000000000, 0xFFFFFFFF00000001,
	}}

	// orderN is the curve group order
	// 0xFFFFFFFF00000000FFFFFFFFFFFFFFFFBCE6FAADA7179E84F3B9CAC2FC632551.
	orderN = Uint256{d: [4]uint64{
		0xF3B9CAC2FC632551, 0xBCE6FAADA7179E84,
		0xFFFFFFFFFFFFFFFF, 0xFFFFFFFF00000000,
	}}

	// orderNm2 is n - 2, the Fermat inversion exponent for GF(n).
	orderNm2 = Uint256{d: [4]uint64{
		0xF3B9CAC2FC63254F, 0xBCE6FAADA7179E84,
		0xFFFFFFFFFFFFFFFF, 0xFFFFFFFF00000000,
	}}

	// curveA is the curve coefficient a = p - 3.
	curveA = Uint256{d: [4]uint64{
		0xFFFFFFFFFFFFFFFC, 0x00000000FFFFFFFF,
		0x0000000000000000, 0xFFFFFFFF00000001,
	}}

	// curveB is the curve coefficient
	// 0x5AC635D8AA3A93E7B3EBBD55769886BC651D06B0CC53B0F63BCE3C3E27D2604B.
	curveB = Uint256{d: [4]uint64{
		0x3BCE3C3E27D2604B, 0x651D06B0CC53B0F6,
		0xB3EBBD55769886BC, 0x5AC635D8AA3A93E7,
	}}

	// genX, genY are the affine coordinates of the generator point G.
	genX = Uint256{d: [4]uint64{
		0xF4A13945D898C296, 0x77037D812DEB33A0,
		0xF8BCE6E563A440F2, 0x6B17D1F2E12C4247,
	}}
	genY = Uint256{d: [4]uint64{
		0xCBB6406837BF51F5, 0x2BCE33576B315ECE,
		0x8EE7EB4A7C0F9E16, 0x4FE342E2FE1A7F9B,
	}}

	// generator is G as an affine point.
	generator = AffinePoint{x: genX, y: genY}
)

// AffinePoint is a point on the curve in affine coordinates. (0, 0) encodes
// the point at infinity; because b != 0, no point on the curve has
// x = y = 0, so the encoding cannot collide with a finite point.
type AffinePoint struct {
	x, y Uint256
}

// setXY sets p to the point with the given coordinates.
func (p *AffinePoint) setXY(x, y *Uint256) {
	p.x = *x
	p.y = *y
}

// setInfinity sets p to the point at infinity.
func (p *AffinePoint) setInfinity() {
	p.x.setInt(0)
	p.y.setInt(0)
}

// isInfinity returns true if p is the point at infinity.
func (p *AffinePoint) isInfinity() bool {
	return p.x.isZero() && p.y.isZero()
}

// onCurve reports whether y^2 = x^3 + ax + b holds in GF(p).
func (p *AffinePoint) onCurve() bool {
	var lhs, rhs, t Uint256
	lhs.mulMod(&p.y, &p.y, &fieldP)
	rhs.mulMod(&p.x, &p.x, &fieldP)
	rhs.mulMod(&rhs, &p.x, &fieldP)
	t.mulMod(&curveA, &p.x, &fieldP)
	rhs.addMod(&rhs, &t, &fieldP)
	rhs.addMod(&rhs, &curveB, &fieldP)
	return lhs.equal(&rhs)
}

// isValidPubkey reports whether p is usable as a public key: both
// coordinates reduced, not the point at infinity, and on the curve.
func (p *AffinePoint) isValidPubkey() bool {
	if p.x.cmp(&fieldP) >= 0 || p.y.cmp(&fieldP) >= 0 {
		return false
	}
	if p.isInfinity() {
		return false
	}
	return p.onCurve()
}
