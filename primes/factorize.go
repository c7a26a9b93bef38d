package primes

// Factor is one prime power p^Exp in a factorization.
type Factor struct {
	Prime int
	Exp   int
}

// Factors is a factorization ordered by ascending prime.
type Factors []Factor

// Map returns the factorization as prime → exponent.
func (fs Factors) Map() map[int]int {
	m := make(map[int]int, len(fs))
	for _, f := range fs {
		m[f.Prime] = f.Exp
	}

	return m
}

// Value multiplies the factorization back out. An empty Factors is 1.
func (fs Factors) Value() int {
	v := 1
	for _, f := range fs {
		for i := 0; i < f.Exp; i++ {
			v *= f.Prime
		}
	}

	return v
}

// Factorize returns the prime factorization of n in ascending prime order.
// Returns nil for n < 2.
func Factorize(n int) Factors {
	if n < 2 {
		return nil
	}
	var out Factors
	divide := func(p int) {
		exp := 0
		for n%p == 0 {
			n /= p
			exp++
		}
		if exp > 0 {
			out = append(out, Factor{Prime: p, Exp: exp})
		}
	}

	divide(2)
	divide(3)
	wheel(func(i int) bool { return i <= n/i }, func(i int) bool {
		divide(i)
		return true
	})
	// Whatever remains has no factor ≤ its square root.
	if n > 1 {
		out = append(out, Factor{Prime: n, Exp: 1})
	}

	return out
}
