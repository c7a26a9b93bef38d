// Package primes provides a sieve of Eratosthenes and trial-division
// factorization, both skipping multiples of 2 and 3 with a 6k±1 wheel.
//
//	Eratosthenes(n) // ascending primes ≤ n; empty for n < 2. O(n log log n)
//	Factorize(n)    // ascending prime powers of n; empty for n < 2. O(√n)
//	IsPrime(n)      // 6k±1 trial division. O(√n)
package primes
