package bigint

// ModInverse returns the inverse of x modulo m, using the extended Euclidean
// algorithm. The Bezout coefficients are tracked modulo m, so all intermediate
// values stay non-negative.
//
// Returns [ErrNoInverse] if x and m are not coprime, or if m < 2.
func ModInverse(x, m BigInt) (BigInt, error) {
	if m.Cmp(One()) <= 0 {
		return Zero(), ErrNoInverse
	}

	r0 := m.Clone()
	r1, _ := x.Mod(m)

	t0, t1 := Zero(), One()
	for !r1.IsZero() {
		q, _ := r0.Div(r1)

		// r0, r1 = r1, r0 - q*r1
		r2, _ := r0.Sub(q.Mul(r1))
		r0, r1 = r1, r2

		// t0, t1 = t1, t0 - q*t1 (mod m)
		qt, _ := q.Mul(t1).Mod(m)
		t2, _ := t0.Add(m).Sub(qt)
		t2, _ = t2.Mod(m)
		t0, t1 = t1, t2
	}

	if !r0.Equal(One()) {
		return Zero(), ErrNoInverse
	}
	return t0, nil
}
