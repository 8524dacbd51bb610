package labels

import "math/rand"

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a using rng.
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// permRange returns a uniformly random permutation of 0..n-1 drawn from rng.
// Complexity: O(n) time, O(n) space.
func permRange(n int, rng *rand.Rand) []int {
	p := identity(n)
	shuffleIntsInPlace(p, rng)

	return p
}

// identity returns 0..n-1.
func identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// drawLabel returns a uniform label in 1..k.
func drawLabel(rng *rand.Rand, k int) int {
	return rng.Intn(k) + 1
}
