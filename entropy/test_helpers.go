package entropy

// CountSymbolOccurrences tallies how often each symbol id appears in a
// spread. Used by tests to check slot assignments against frequency tables.
func CountSymbolOccurrences(spread []int32, alphabetSize int) []int32 {
	counts := make([]int32, alphabetSize)
	for _, s := range spread {
		counts[s]++
	}
	return counts
}

// GeometricProbabilitiesForTest returns an m-symbol vector where each symbol
// is half as likely as the one before it, normalized to sum to 1. Gives
// tests a skewed distribution with a long low-probability tail.
func GeometricProbabilitiesForTest(m int) []float64 {
	probs := make([]float64, m)
	mass := 1.0
	total := 0.0
	for i := 0; i < m; i++ {
		probs[i] = mass
		total += mass
		mass /= 2.0
	}
	for i := range probs {
		probs[i] /= total
	}
	return probs
}
