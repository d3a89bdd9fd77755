package entropy

import (
	"fmt"
)

// TransitionTables are the per-state encode/decode transitions a tANS coder
// derives from a symbol spread. Decoding walks slots: slot i holds the
// symbol spread[i] and the next (unnormalized) state, which is the symbol's
// frequency plus the number of its earlier appearances in the spread.
// Encoding inverts that: for symbol s in state x, with Freq(s) <= x <
// 2*Freq(s), the next state is the slot of the x-th appearance of s,
// denormalized by the table size.
type TransitionTables struct {
	tableSize     int32
	freqs         []int32
	decodeSymbols []int32
	decodeStates  []int32
	encodeStates  [][]int32
}

// BuildTransitionTables derives encode and decode transitions from a symbol
// spread. The spread length must be a power of two (it is the table size).
func BuildTransitionTables(spread []int32) (*TransitionTables, error) {
	tableSize := int32(len(spread))
	if tableSize < 1 || tableSize&(tableSize-1) != 0 {
		return nil, fmt.Errorf("%w: spread length %d is not a power of two", ErrInvalidParameter, tableSize)
	}

	alphabetSize := int32(0)
	for _, s := range spread {
		if s < 0 {
			return nil, fmt.Errorf("%w: negative symbol id %d in spread", ErrInvalidParameter, s)
		}
		if s+1 > alphabetSize {
			alphabetSize = s + 1
		}
	}

	tt := &TransitionTables{
		tableSize:     tableSize,
		freqs:         make([]int32, alphabetSize),
		decodeSymbols: make([]int32, tableSize),
		decodeStates:  make([]int32, tableSize),
		encodeStates:  make([][]int32, alphabetSize),
	}
	for _, s := range spread {
		tt.freqs[s]++
	}
	for s := int32(0); s < alphabetSize; s++ {
		tt.encodeStates[s] = make([]int32, 0, tt.freqs[s])
	}

	// seen[s] counts appearances of s scanned so far; the decode next-state
	// for the n-th appearance is freq[s]+n, and that same slot (denormalized
	// by the table size) is the encode target for state freq[s]+n
	seen := make([]int32, alphabetSize)
	for i, s := range spread {
		tt.decodeSymbols[i] = s
		tt.decodeStates[i] = tt.freqs[s] + seen[s]
		tt.encodeStates[s] = append(tt.encodeStates[s], int32(i)+tableSize)
		seen[s]++
	}
	return tt, nil
}

func (tt *TransitionTables) TableSize() int32 {
	return tt.tableSize
}

func (tt *TransitionTables) AlphabetSize() int {
	return len(tt.freqs)
}

// Freq returns how many slots the given symbol occupies.
func (tt *TransitionTables) Freq(symbol int32) int32 {
	return tt.freqs[symbol]
}

// DecodeSlot returns the symbol stored in the given slot and the coder's
// next unnormalized state.
func (tt *TransitionTables) DecodeSlot(slot int32) (int32, int32, error) {
	if slot < 0 || slot >= tt.tableSize {
		return 0, 0, fmt.Errorf("%w: slot %d outside table of size %d", ErrInvalidParameter, slot, tt.tableSize)
	}
	return tt.decodeSymbols[slot], tt.decodeStates[slot], nil
}

// EncodeState returns the next state after emitting symbol from the given
// unnormalized state. The state must lie in [Freq(symbol), 2*Freq(symbol)).
func (tt *TransitionTables) EncodeState(symbol int32, state int32) (int32, error) {
	if symbol < 0 || int(symbol) >= len(tt.freqs) || tt.freqs[symbol] == 0 {
		return 0, fmt.Errorf("%w: symbol %d has no slots", ErrInvalidParameter, symbol)
	}
	f := tt.freqs[symbol]
	if state < f || state >= 2*f {
		return 0, fmt.Errorf("%w: state %d outside [%d,%d) for symbol %d", ErrInvalidParameter, state, f, 2*f, symbol)
	}
	return tt.encodeStates[symbol][state-f], nil
}
