package primes

// wheel calls fn for 5, 7, 11, 13, 17, 19, … (every 6k±1) while cond holds.
// fn returning false stops the walk.
func wheel(cond func(i int) bool, fn func(i int) bool) {
	for i, step := 5, 2; cond(i); i, step = i+step, 6-step {
		if !fn(i) {
			return
		}
	}
}

// Eratosthenes returns every prime ≤ n in ascending order.
// Returns nil for n < 2.
func Eratosthenes(n int) []int {
	if n < 2 {
		return nil
	}
	out := []int{2}
	if n >= 3 {
		out = append(out, 3)
	}

	composite := make([]bool, n+1)
	wheel(func(i int) bool { return i <= n }, func(i int) bool {
		if composite[i] {
			return true
		}
		out = append(out, i)
		if i > n/i {
			return true
		}
		// Even multiples are never visited by the wheel.
		for j := i * i; j <= n; j += 2 * i {
			composite[j] = true
		}
		return true
	})

	return out
}

// IsPrime reports whether n is prime.
func IsPrime(n int) bool {
	switch {
	case n < 2:
		return false
	case n < 4:
		return true
	case n%2 == 0 || n%3 == 0:
		return false
	}
	prime := true
	wheel(func(i int) bool { return i <= n/i }, func(i int) bool {
		if n%i == 0 {
			prime = false
		}
		return prime
	})

	return prime
}
