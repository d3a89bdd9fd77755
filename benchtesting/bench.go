package main

import (
	"fmt"
	"time"

	"github.com/kpfaulkner/ans-go/entropy"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
)

func main() {

	//p := profile.Start(profile.MemProfileHeap, profile.ProfilePath("."))
	//p := profile.Start(profile.MemProfileRate(1), profile.ProfilePath("."))
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	defer p.Stop()

	start := time.Now()
	for count := 0; count < 10000; count++ {
		spread, err := entropy.BuildBinarySymbolSpread(0.3, 8, 12, nil)
		if err != nil {
			log.Errorf("Error building spread: %v", err)
			return
		}
		if _, err := entropy.BuildTransitionTables(spread); err != nil {
			log.Errorf("Error building transition tables: %v", err)
			return
		}
	}
	fmt.Printf("10000 table builds took %d ms\n", time.Since(start).Milliseconds())
}
