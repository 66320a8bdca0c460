package p256r1

// XYZZPoint is a point in extended Jacobian (XYZZ) coordinates
// (X, Y, ZZ, ZZZ): the affine equivalent is (X/ZZ, Y/ZZZ) with the
// invariant ZZZ^2 = ZZ^3, i.e. ZZ = z^2 and ZZZ = z^3 for an implicit z.
// The zero value (0, 0, 0, 0) is the point at infinity; ZZ = ZZZ = 0 is
// the infinity test. The formulas follow the EFD xyzz-3 family.
type XYZZPoint struct {
	x, y, zz, zzz Uint256
}

// setInfinity sets r to the point at infinity.
func (r *XYZZPoint) setInfinity() {
	*r = XYZZPoint{}
}

// isInfinity returns true if r is the point at infinity.
func (r *XYZZPoint) isInfinity() bool {
	return r.zz.isZero() && r.zzz.isZero()
}

// setAffine lifts an affine point to XYZZ coordinates with z = 1.
func (r *XYZZPoint) setAffine(a *AffinePoint) {
	r.x = a.x
	r.y = a.y
	r.zz.setInt(1)
	r.zzz.setInt(1)
}

// madd sets r = a + b for XYZZ a and affine b (madd-2008-s in xyzz form),
// complete over every degenerate case: either operand at infinity, b equal
// to a (delegates to mdbl) and b = -a (infinity).
func (r *XYZZPoint) madd(a *XYZZPoint, b *AffinePoint) {
	if b.isInfinity() {
		*r = *a
		return
	}
	if a.isInfinity() {
		r.setAffine(b)
		return
	}

	// h = x2*zz1 - x1, i = y2*zzz1 - y1
	var h, i Uint256
	i.mulMod(&b.y, &a.zzz, &fieldP)
	i.subMod(&i, &a.y, &fieldP)
	h.mulMod(&b.x, &a.zz, &fieldP)
	h.subMod(&h, &a.x, &fieldP)

	if h.isZero() {
		if i.isZero() {
			// same x, same y: the operands are equal
			r.mdbl(b)
			return
		}
		// same x, opposite y: a = -b
		r.setInfinity()
		return
	}

	var hh, hhh, q Uint256
	hh.mulMod(&h, &h, &fieldP)
	hhh.mulMod(&h, &hh, &fieldP)
	q.mulMod(&a.x, &hh, &fieldP)

	var zz3, zzz3 Uint256
	zz3.mulMod(&a.zz, &hh, &fieldP)
	zzz3.mulMod(&a.zzz, &hhh, &fieldP)

	// x3 = i^2 - hhh - 2q, with -2q as (p-2)*q
	var x3, t Uint256
	x3.mulMod(&i, &i, &fieldP)
	t.mulMod(&fieldPm2, &q, &fieldP)
	x3.addMod(&x3, &t, &fieldP)
	x3.subMod(&x3, &hhh, &fieldP)

	// y3 = i*(q - x3) - y1*hhh
	var y3 Uint256
	t.subMod(&q, &x3, &fieldP)
	y3.mulMod(&i, &t, &fieldP)
	t.mulMod(&a.y, &hhh, &fieldP)
	y3.subMod(&y3, &t, &fieldP)

	r.x, r.y, r.zz, r.zzz = x3, y3, zz3, zzz3
}

// dbl sets r = 2*a (dbl-2008-s-1). Doubling infinity yields infinity.
func (r *XYZZPoint) dbl(a *XYZZPoint) {
	if a.isInfinity() {
		r.setInfinity()
		return
	}

	var u, v, w, s, m, t Uint256
	u.addMod(&a.y, &a.y, &fieldP)  // U = 2*y1
	v.mulMod(&u, &u, &fieldP)      // V = U^2
	w.mulMod(&u, &v, &fieldP)      // W = U*V
	s.mulMod(&a.x, &v, &fieldP)    // S = x1*V
	m.mulMod(&a.x, &a.x, &fieldP)  // M = 3*x1^2 + a*zz1^2
	t.addMod(&m, &m, &fieldP)
	m.addMod(&t, &m, &fieldP)
	t.mulMod(&a.zz, &a.zz, &fieldP)
	t.mulMod(&curveA, &t, &fieldP)
	m.addMod(&m, &t, &fieldP)

	// x3 = M^2 - 2S, with -2S as (p-2)*S
	var x3, y3 Uint256
	x3.mulMod(&m, &m, &fieldP)
	t.mulMod(&fieldPm2, &s, &fieldP)
	x3.addMod(&x3, &t, &fieldP)

	// y3 = M*(S - x3) - W*y1
	t.subMod(&s, &x3, &fieldP)
	y3.mulMod(&m, &t, &fieldP)
	t.mulMod(&w, &a.y, &fieldP)
	y3.subMod(&y3, &t, &fieldP)

	var zz3, zzz3 Uint256
	zz3.mulMod(&v, &a.zz, &fieldP)
	zzz3.mulMod(&w, &a.zzz, &fieldP)

	r.x, r.y, r.zz, r.zzz = x3, y3, zz3, zzz3
}

// mdbl sets r = 2*b for affine b (mdbl-2008-s-1): the z = 1 specialization
// of dbl, so ZZ3 = V and ZZZ3 = W.
func (r *XYZZPoint) mdbl(b *AffinePoint) {
	if b.isInfinity() {
		r.setInfinity()
		return
	}

	var u, v, w, s, m, t Uint256
	u.addMod(&b.y, &b.y, &fieldP)  // U = 2*y1
	v.mulMod(&u, &u, &fieldP)      // V = U^2
	w.mulMod(&u, &v, &fieldP)      // W = U*V
	s.mulMod(&b.x, &v, &fieldP)    // S = x1*V
	m.mulMod(&b.x, &b.x, &fieldP)  // M = 3*x1^2 + a
	t.addMod(&m, &m, &fieldP)
	m.addMod(&t, &m, &fieldP)
	m.addMod(&m, &curveA, &fieldP)

	var x3, y3 Uint256
	x3.mulMod(&m, &m, &fieldP)
	t.mulMod(&fieldPm2, &s, &fieldP)
	x3.addMod(&x3, &t, &fieldP)

	t.subMod(&s, &x3, &fieldP)
	y3.mulMod(&m, &t, &fieldP)
	t.mulMod(&w, &b.y, &fieldP)
	y3.subMod(&y3, &t, &fieldP)

	r.x, r.y, r.zz, r.zzz = x3, y3, v, w
}

// setXYZZ sets r to the affine form of a, inverting ZZZ once and deriving
// the ZZ inverse from it. The point at infinity maps to the affine (0, 0)
// encoding.
func (r *AffinePoint) setXYZZ(a *XYZZPoint) {
	if a.isInfinity() {
		r.setInfinity()
		return
	}

	// zzz^-1, then z^-1 = zz * zzz^-1 and zz^-1 = (z^-1)^2
	var zzzInv, zInv, zzInv Uint256
	zzzInv.pModInv(&a.zzz)
	zInv.mulMod(&a.zz, &zzzInv, &fieldP)
	zzInv.mulMod(&zInv, &zInv, &fieldP)

	r.x.mulMod(&a.x, &zzInv, &fieldP)
	r.y.mulMod(&a.y, &zzzInv, &fieldP)
}
