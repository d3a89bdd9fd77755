package entropy

import (
	"testing"
)

func TestTableStepCoprime(t *testing.T) {
	// an odd step is coprime with any power-of-two table size, so the scan
	// must visit every slot once before returning to the origin
	for tableLog := 1; tableLog <= 14; tableLog++ {
		tableSize := int32(1) << tableLog
		step := tableStep(tableSize)
		if step&1 != 1 {
			t.Errorf("tableLog %d: step %d is even", tableLog, step)
		}

		visited := make([]bool, tableSize)
		position := int32(0)
		for i := int32(0); i < tableSize; i++ {
			if visited[position] {
				t.Fatalf("tableLog %d: slot %d revisited after %d steps", tableLog, position, i)
			}
			visited[position] = true
			position = (position + step) & (tableSize - 1)
		}
		if position != 0 {
			t.Errorf("tableLog %d: scan ended at %d, not back at origin", tableLog, position)
		}
	}
}

func TestSpreadOccurrenceCounts(t *testing.T) {
	tests := []struct {
		name     string
		probs    []float64
		tableLog int
	}{
		{"fair pair", []float64{0.5, 0.5}, 1},
		{"skewed pair", []float64{0.9, 0.1}, 8},
		{"skewed triple", []float64{0.6, 0.3, 0.1}, 10},
		{"geometric", GeometricProbabilitiesForTest(12), 9},
		{"with zero symbol", []float64{0.5, 0.0, 0.25, 0.25}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist, err := NewCustomDistribution(tt.probs)
			if err != nil {
				t.Fatalf("NewCustomDistribution failed: %v", err)
			}
			ft, err := dist.Quantize(tt.tableLog)
			if err != nil {
				t.Fatalf("Quantize failed: %v", err)
			}

			spread := ft.Spread()
			if int32(len(spread)) != ft.TableSize() {
				t.Fatalf("spread length %d; want %d", len(spread), ft.TableSize())
			}
			counts := CountSymbolOccurrences(spread, ft.AlphabetSize())
			for s, f := range ft.Freqs() {
				if counts[s] != f {
					t.Errorf("symbol %d appears %d times; frequency table says %d", s, counts[s], f)
				}
			}
		})
	}
}

func TestSpreadSingleSymbol(t *testing.T) {
	dist, err := NewCustomDistribution([]float64{1.0})
	if err != nil {
		t.Fatalf("NewCustomDistribution failed: %v", err)
	}
	ft, err := dist.Quantize(3)
	if err != nil {
		t.Fatalf("Quantize failed: %v", err)
	}
	spread := ft.Spread()
	if len(spread) != 8 {
		t.Fatalf("spread length %d; want 8", len(spread))
	}
	for i, s := range spread {
		if s != 0 {
			t.Errorf("slot %d holds symbol %d; want 0", i, s)
		}
	}
}

func TestSpreadInterleavesSymbols(t *testing.T) {
	// two equal-weight symbols must not cluster into contiguous halves
	dist, err := NewCustomDistribution([]float64{0.5, 0.5})
	if err != nil {
		t.Fatalf("NewCustomDistribution failed: %v", err)
	}
	ft, err := dist.Quantize(6)
	if err != nil {
		t.Fatalf("Quantize failed: %v", err)
	}
	spread := ft.Spread()

	longestRun := 1
	run := 1
	for i := 1; i < len(spread); i++ {
		if spread[i] == spread[i-1] {
			run++
			if run > longestRun {
				longestRun = run
			}
		} else {
			run = 1
		}
	}
	if longestRun >= len(spread)/4 {
		t.Errorf("longest same-symbol run is %d of %d slots; spread is clustering", longestRun, len(spread))
	}
}

func TestSpreadDeterministic(t *testing.T) {
	dist, err := NewCustomDistribution(GeometricProbabilitiesForTest(8))
	if err != nil {
		t.Fatalf("NewCustomDistribution failed: %v", err)
	}
	ft, err := dist.Quantize(7)
	if err != nil {
		t.Fatalf("Quantize failed: %v", err)
	}

	first := ft.Spread()
	second := ft.Spread()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("spreads differ at slot %d: %d vs %d", i, first[i], second[i])
		}
	}
}
