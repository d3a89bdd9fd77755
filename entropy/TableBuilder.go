package entropy

import (
	"fmt"

	"github.com/kpfaulkner/ans-go/options"
)

// BuildBinarySymbolSpread builds the symbol spread for a blocked binary
// source: bits i.i.d. binary symbols with bit probability prob, grouped into
// one composite symbol, quantized to a table of 1<<tableLog slots.
// opts may be nil. Pure function of its inputs; safe to call concurrently.
func BuildBinarySymbolSpread(prob float64, bits int, tableLog int, opts *options.TableOptions) ([]int32, error) {
	dist, err := NewBinaryDistribution(prob, bits)
	if err != nil {
		return nil, err
	}
	return buildSpread(dist, tableLog, opts)
}

// BuildCustomSymbolSpread builds the symbol spread for an explicit
// probability vector; the alphabet size is the vector length. opts may be
// nil. Pure function of its inputs; safe to call concurrently.
func BuildCustomSymbolSpread(probabilities []float64, tableLog int, opts *options.TableOptions) ([]int32, error) {
	dist, err := NewCustomDistribution(probabilities)
	if err != nil {
		return nil, err
	}
	return buildSpread(dist, tableLog, opts)
}

func buildSpread(dist *SymbolDistribution, tableLog int, opts *options.TableOptions) ([]int32, error) {
	ft, err := dist.Quantize(tableLog)
	if err != nil {
		return nil, err
	}
	spread := ft.Spread()
	if opts != nil && opts.VerifySpread {
		if err := verifySpread(ft, spread); err != nil {
			return nil, err
		}
	}
	return spread, nil
}

// verifySpread recounts slot assignments against the frequency table.
func verifySpread(ft *FrequencyTable, spread []int32) error {
	counts := make([]int32, ft.AlphabetSize())
	for _, s := range spread {
		counts[s]++
	}
	for s, f := range ft.freqs {
		if counts[s] != f {
			return fmt.Errorf("symbol %d spread %d times, frequency table says %d", s, counts[s], f)
		}
	}
	return nil
}
