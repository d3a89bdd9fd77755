package entropy

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

var (
	// ErrInvalidParameter indicates a probability, bit count or table log
	// outside the range the table builder accepts.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrCapacityExceeded indicates the requested table cannot hold one slot
	// per live symbol, or the table size itself is unrepresentable.
	ErrCapacityExceeded = errors.New("capacity exceeded")
)

// largest alphabet/table exponent where slot arithmetic still fits int32
const maxTableLog = 30

// SymbolDistribution is a probability mass function over a symbol alphabet.
// Symbol ids are the indices into the probability vector. Immutable once
// constructed; quantize it with Quantize to obtain a FrequencyTable.
type SymbolDistribution struct {
	probabilities []float64
	alphabetSize  int
}

// NewBinaryDistribution models a block of bits independent binary symbols as
// one composite symbol. Symbol k (read as a bit pattern with w asserted bits)
// gets probability prob^w * (1-prob)^(bits-w), giving an alphabet of 2^bits.
func NewBinaryDistribution(prob float64, bits int) (*SymbolDistribution, error) {
	if prob < 0.0 || prob > 1.0 || math.IsNaN(prob) {
		return nil, fmt.Errorf("%w: bit probability %f outside [0,1]", ErrInvalidParameter, prob)
	}
	if bits < 1 || bits > maxTableLog {
		return nil, fmt.Errorf("%w: bits must be in [1,%d], got %d", ErrInvalidParameter, maxTableLog, bits)
	}

	alphabetSize := 1 << bits

	// powers of prob and 1-prob up to bits, so each symbol is two lookups
	onePow := make([]float64, bits+1)
	zeroPow := make([]float64, bits+1)
	onePow[0] = 1.0
	zeroPow[0] = 1.0
	for i := 1; i <= bits; i++ {
		onePow[i] = onePow[i-1] * prob
		zeroPow[i] = zeroPow[i-1] * (1.0 - prob)
	}

	sd := &SymbolDistribution{
		probabilities: make([]float64, alphabetSize),
		alphabetSize:  alphabetSize,
	}
	for k := 0; k < alphabetSize; k++ {
		w := popCount(uint32(k))
		sd.probabilities[k] = onePow[w] * zeroPow[bits-w]
	}
	return sd, nil
}

// NewCustomDistribution wraps an explicit probability vector. The values are
// used as given and are expected to approximately sum to 1; any drift is
// absorbed when quantizing, which works on proportional shares.
func NewCustomDistribution(probabilities []float64) (*SymbolDistribution, error) {
	if len(probabilities) < 1 {
		return nil, fmt.Errorf("%w: empty probability vector", ErrInvalidParameter)
	}
	for i, q := range probabilities {
		if q < 0.0 || math.IsNaN(q) || math.IsInf(q, 0) {
			return nil, fmt.Errorf("%w: probability %f at symbol %d", ErrInvalidParameter, q, i)
		}
	}

	sd := &SymbolDistribution{
		probabilities: make([]float64, len(probabilities)),
		alphabetSize:  len(probabilities),
	}
	copy(sd.probabilities, probabilities)
	return sd, nil
}

func (sd *SymbolDistribution) AlphabetSize() int {
	return sd.alphabetSize
}

// Probability returns the mass assigned to the given symbol id.
func (sd *SymbolDistribution) Probability(symbol int32) float64 {
	return sd.probabilities[symbol]
}

// Probabilities returns a copy of the probability vector.
func (sd *SymbolDistribution) Probabilities() []float64 {
	probs := make([]float64, len(sd.probabilities))
	copy(probs, sd.probabilities)
	return probs
}

func popCount(x uint32) int {
	return bits.OnesCount32(x)
}
