package primes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvkit/primes"
)

func TestEratosthenes(t *testing.T) {
	cases := []struct {
		n    int
		want []int
	}{
		{-5, nil},
		{0, nil},
		{1, nil},
		{2, []int{2}},
		{3, []int{2, 3}},
		{10, []int{2, 3, 5, 7}},
		{25, []int{2, 3, 5, 7, 11, 13, 17, 19, 23}},
		{49, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, primes.Eratosthenes(tc.n), "n=%d", tc.n)
	}
}

func TestEratosthenes_AgreesWithIsPrime(t *testing.T) {
	const n = 10_000
	got := primes.Eratosthenes(n)
	require.Len(t, got, 1229)

	set := make(map[int]bool, len(got))
	for _, p := range got {
		set[p] = true
	}
	for i := -1; i <= n; i++ {
		assert.Equal(t, primes.IsPrime(i), set[i], "i=%d", i)
	}
}

func TestFactorize(t *testing.T) {
	assert.Equal(t, map[int]int{2: 2, 3: 1}, primes.Factorize(12).Map())
	assert.Equal(t, primes.Factors{{Prime: 2, Exp: 2}, {Prime: 3, Exp: 1}}, primes.Factorize(12))
	assert.Equal(t, primes.Factors{{Prime: 97, Exp: 1}}, primes.Factorize(97))
	assert.Equal(t, primes.Factors{{Prime: 5, Exp: 2}, {Prime: 7, Exp: 2}}, primes.Factorize(1225))
	assert.Equal(t, primes.Factors{{Prime: 2, Exp: 10}}, primes.Factorize(1024))
	for _, n := range []int{-3, 0, 1} {
		assert.Empty(t, primes.Factorize(n), "n=%d", n)
	}
}

func TestFactorize_RoundTrip(t *testing.T) {
	for n := 2; n <= 5000; n++ {
		fs := primes.Factorize(n)
		require.NotEmpty(t, fs)
		assert.Equal(t, n, fs.Value(), "n=%d", n)
		for i, f := range fs {
			assert.True(t, primes.IsPrime(f.Prime), "n=%d factor %d", n, f.Prime)
			if i > 0 {
				assert.Less(t, fs[i-1].Prime, f.Prime, "n=%d not ascending", n)
			}
		}
	}
}
