// SPDX-License-Identifier: MIT

package u3

// BranchingMultiplicity returns κmax, the number of times angular momentum L
// occurs in the SU(3) irrep x (Elliott rule):
//
//	K = min(λ,μ), min(λ,μ)−2, …, ≥ 0
//	K = 0 : L = max(λ,μ), max(λ,μ)−2, …, ≥ 0
//	K > 0 : L = K, K+1, …, K+max(λ,μ)
func BranchingMultiplicity(x SU3, l int) int {
	if !x.Valid() || l < 0 {
		return 0
	}
	lo, hi := min(x.Lambda, x.Mu), max(x.Lambda, x.Mu)
	count := 0
	for k := lo; k >= 0; k -= 2 {
		if k == 0 {
			if l <= hi && (hi-l)%2 == 0 {
				count++
			}
			continue
		}
		if l >= k && l <= k+hi {
			count++
		}
	}

	return count
}
