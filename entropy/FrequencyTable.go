package entropy

import (
	"fmt"
	"math"
	"sort"

	"github.com/kpfaulkner/ans-go/util"
)

// FrequencyTable holds integer symbol frequencies summing to exactly
// 1<<tableLog. Every symbol with positive probability keeps at least one
// slot; zero-probability symbols get none. Immutable once built.
type FrequencyTable struct {
	freqs    []int32
	tableLog int
}

// Quantize converts the distribution into a FrequencyTable whose counts sum
// to 1<<tableLog. Proportional floors first, then largest-remainder
// correction so the rounding bias spreads across symbols instead of piling
// onto one. Fails if the table cannot give every live symbol a slot.
func (sd *SymbolDistribution) Quantize(tableLog int) (*FrequencyTable, error) {
	if tableLog < 1 {
		return nil, fmt.Errorf("%w: tableLog must be >= 1, got %d", ErrInvalidParameter, tableLog)
	}
	if tableLog > maxTableLog {
		return nil, fmt.Errorf("%w: tableLog %d exceeds maximum %d", ErrCapacityExceeded, tableLog, maxTableLog)
	}

	tableSize := int32(1) << tableLog
	totalMass := util.Sum(sd.probabilities)
	if totalMass <= 0.0 {
		return nil, fmt.Errorf("%w: no symbol has positive probability", ErrInvalidParameter)
	}

	liveCount := int32(0)
	for _, q := range sd.probabilities {
		if q > 0.0 {
			liveCount++
		}
	}
	if liveCount > tableSize {
		return nil, fmt.Errorf("%w: %d live symbols but only %d slots", ErrCapacityExceeded, liveCount, tableSize)
	}

	ft := &FrequencyTable{
		freqs:    make([]int32, sd.alphabetSize),
		tableLog: tableLog,
	}

	// floor of the ideal share, clamped to 1 so every live symbol stays
	// reachable by the coder
	type remainder struct {
		symbol int32
		frac   float64
	}
	remainders := make([]remainder, 0, liveCount)
	total := int32(0)
	for s, q := range sd.probabilities {
		if q <= 0.0 {
			continue
		}
		ideal := q / totalMass * float64(tableSize)
		f := int32(math.Floor(ideal))
		if f < 1 {
			f = 1
		}
		ft.freqs[s] = f
		total += f
		remainders = append(remainders, remainder{symbol: int32(s), frac: ideal - math.Floor(ideal)})
	}

	if deficit := tableSize - total; deficit > 0 {
		// hand the missing slots to the largest fractional remainders,
		// lowest symbol id first on ties (stable sort over id order)
		sort.SliceStable(remainders, func(i, j int) bool {
			return remainders[i].frac > remainders[j].frac
		})
		for i := int32(0); i < deficit; i++ {
			ft.freqs[remainders[i].symbol]++
		}
	} else if deficit < 0 {
		// the min-1 clamp overshot; take slots back from the biggest counts
		for surplus := -deficit; surplus > 0; surplus-- {
			largest := int32(-1)
			for s, f := range ft.freqs {
				if f > 1 && (largest < 0 || f > ft.freqs[largest]) {
					largest = int32(s)
				}
			}
			if largest < 0 {
				// cannot happen once liveCount <= tableSize held above
				return nil, fmt.Errorf("%w: unable to reduce frequencies to table size", ErrCapacityExceeded)
			}
			ft.freqs[largest]--
		}
	}

	return ft, nil
}

// Freq returns the slot count for the given symbol id.
func (ft *FrequencyTable) Freq(symbol int32) int32 {
	return ft.freqs[symbol]
}

// Freqs returns a copy of the frequency vector.
func (ft *FrequencyTable) Freqs() []int32 {
	freqs := make([]int32, len(ft.freqs))
	copy(freqs, ft.freqs)
	return freqs
}

func (ft *FrequencyTable) AlphabetSize() int {
	return len(ft.freqs)
}

func (ft *FrequencyTable) TableLog() int {
	return ft.tableLog
}

// TableSize returns the slot total 1<<TableLog.
func (ft *FrequencyTable) TableSize() int32 {
	return int32(1) << ft.tableLog
}
