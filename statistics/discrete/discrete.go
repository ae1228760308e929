// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package discrete

import (
	"math"
	"math/rand"

	"github.com/cockroachdb/errors"
)

// Package for discrete probability mass functions (pmf) over the
// indices 0..n-1.

// Check validates that f is a probability mass function.
func Check(f []float64) error {
	total := 0.0
	for i := range len(f) {
		x := f[i]
		if x < 0.0 || x > 1.0 || math.IsNaN(x) {
			return errors.Newf("invalid probability (%v) in the pmf", x)
		}
		total += x
	}
	if math.Abs(total-1.0) > 1e-9 {
		return errors.Newf("total is not one (%v)", total)
	}
	return nil
}

// Uniform returns the pmf assigning 1/n to each of n outcomes.
func Uniform(n int) []float64 {
	f := make([]float64, n)
	for i := range n {
		f[i] = 1.0 / float64(n)
	}
	return f
}

// Quantile returns the smallest index whose cumulative probability
// reaches u. If u exceeds the total, the last positive index is returned.
func Quantile(f []float64, u float64) int {
	sum := 0.0 // Kahan summation of the probabilities
	c := 0.0   // compensation term
	lastPositive := -1
	for i := range len(f) {
		y := f[i] - c
		t := sum + y
		c = (t - sum) - y
		sum = t
		if u <= sum {
			return i
		}
		if f[i] > 0.0 {
			lastPositive = i
		}
	}
	if lastPositive != -1 {
		return lastPositive
	}
	return 0
}

// Sample draws an index from pmf f.
func Sample(rg *rand.Rand, f []float64) int {
	return Quantile(f, rg.Float64())
}
