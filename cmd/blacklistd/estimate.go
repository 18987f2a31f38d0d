package main

import (
	"fmt"

	"github.com/fwojciec/blacklist/bloom"
)

// Run executes the estimate command.
func (c *EstimateCmd) Run(deps *Dependencies) error {
	size, hashes := bloom.Estimate(c.N, c.FP)
	fmt.Fprintf(deps.Stdout, "size:    %d bits\n", size)
	fmt.Fprintf(deps.Stdout, "hashers: %d\n", hashes)
	fmt.Fprintf(deps.Stdout, "fp rate: %.4f at %d URLs\n", bloom.FalsePositiveRate(size, hashes, c.N), c.N)
	fmt.Fprintf(deps.Stdout, "example: blacklistd serve 8080 %d%s\n", size, repeatArgs(hashes))
	return nil
}

// repeatArgs renders hash repeat counts 1..n as serve arguments.
func repeatArgs(n uint) string {
	var s string
	for i := uint(1); i <= n; i++ {
		s += fmt.Sprintf(" %d", i)
	}
	return s
}
