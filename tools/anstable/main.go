package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kpfaulkner/ans-go/entropy"
	"github.com/kpfaulkner/ans-go/options"
	"github.com/kpfaulkner/ans-go/util"
	log "github.com/sirupsen/logrus"
)

func main() {
	prob := flag.Float64("p", 0.5, "bit probability for the binary model")
	bits := flag.Int("bits", 1, "bits per composite symbol for the binary model")
	probList := flag.String("probs", "", "comma separated probabilities for a custom model (overrides -p/-bits)")
	tableLog := flag.Int("tablelog", 0, "log2 of the table size (0 = pick from alphabet size)")
	verify := flag.Bool("verify", false, "recount the spread against the frequency table")
	flag.Parse()

	var dist *entropy.SymbolDistribution
	var err error
	if *probList != "" {
		var probs []float64
		for _, field := range strings.Split(*probList, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				fmt.Printf("bad probability %q: %v\n", field, err)
				os.Exit(1)
			}
			probs = append(probs, v)
		}
		dist, err = entropy.NewCustomDistribution(probs)
	} else {
		dist, err = entropy.NewBinaryDistribution(*prob, *bits)
	}
	if err != nil {
		log.Errorf("Error building distribution: %v", err)
		os.Exit(1)
	}

	lg := *tableLog
	if lg == 0 {
		// smallest power of two holding the alphabet, plus headroom for
		// the skewed symbols
		lg = util.CeilLog1p(int64(dist.AlphabetSize())) + 2
	}

	ft, err := dist.Quantize(lg)
	if err != nil {
		log.Errorf("Error quantizing distribution: %v", err)
		os.Exit(1)
	}
	freqs := ft.Freqs()
	fmt.Printf("alphabet %d symbols, table %d slots\n", ft.AlphabetSize(), ft.TableSize())
	fmt.Printf("frequencies: %v\n", freqs)
	fmt.Printf("min freq %d, max freq %d\n", util.Min(freqs...), util.Max(freqs...))

	opts := options.NewTableOptions(&options.TableOptions{VerifySpread: *verify})
	var spread []int32
	if *probList != "" {
		spread, err = entropy.BuildCustomSymbolSpread(dist.Probabilities(), lg, opts)
	} else {
		spread, err = entropy.BuildBinarySymbolSpread(*prob, *bits, lg, opts)
	}
	if err != nil {
		log.Errorf("Error building spread: %v", err)
		os.Exit(1)
	}
	fmt.Printf("spread: %v\n", spread)
}
