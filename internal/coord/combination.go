package coord

// encodeCombination ranks an ascending k-subset of [0,n) in the
// combinatorial number system: rank = Sum_i C(positions[i], i+1).
func encodeCombination(positions []int) int {
	rank := 0
	for i, p := range positions {
		rank += Cnk(p, i+1)
	}
	return rank
}

// decodeCombination inverts encodeCombination, returning the k ascending
// members of [0,n) with the given rank.
func decodeCombination(n, k, rank int) []int {
	positions := make([]int, k)
	x := k
	for j := n - 1; j >= 0 && x > 0; j-- {
		if rank >= Cnk(j, x) {
			positions[x-1] = j
			rank -= Cnk(j, x)
			x--
		}
	}
	return positions
}
