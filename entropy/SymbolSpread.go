package entropy

// tableStep returns the slot scan stride for a table of the given size.
// Odd, so it is coprime with the power-of-two table size and the scan visits
// every slot exactly once before repeating. The conventional stride is
// already odd for every tableSize >= 16; the |1 covers the tiny tables
// (2 and 8) where it is not.
func tableStep(tableSize int32) int32 {
	return ((tableSize >> 1) + (tableSize >> 3) + 3) | 1
}

// Spread assigns each table slot a symbol id, writing symbol s into exactly
// Freq(s) slots. The fixed-stride scan interleaves frequent and rare symbols
// across the table, which keeps the coder's renormalization range small;
// contiguous runs per symbol would bias the output entropy. The returned
// slice is freshly allocated and owned by the caller.
func (ft *FrequencyTable) Spread() []int32 {
	tableSize := ft.TableSize()
	tableMask := tableSize - 1
	step := tableStep(tableSize)
	spread := make([]int32, tableSize)

	var position int32
	for s, f := range ft.freqs {
		for n := int32(0); n < f; n++ {
			spread[position] = int32(s)
			position = (position + step) & tableMask
		}
	}
	// frequencies sum to tableSize and step is coprime with it, so the scan
	// has come full circle here
	return spread
}
