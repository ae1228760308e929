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

package reassess

import (
	"strings"

	"github.com/0xsoniclabs/statsampler/statistics/sampler"
	"github.com/cockroachdb/errors"
)

// MaxLevel is the number of stages of a chain.
const MaxLevel = 4

var (
	// ErrUninitializedStageInput is returned when a stage runs before its predecessor.
	ErrUninitializedStageInput = errors.New("uninitialized stage input")
	// ErrInvalidLevel is returned for levels outside of 1..MaxLevel.
	ErrInvalidLevel = errors.New("invalid stage level")
)

// Variant names a chain of stages. All variants apply the same rule.
type Variant int

const (
	Reassessment Variant = iota
	Reconsideration
)

func (v Variant) String() string {
	switch v {
	case Reassessment:
		return "reassess"
	case Reconsideration:
		return "reconsider"
	default:
		return "unknown"
	}
}

// ParseVariant converts a variant name into a Variant.
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(name) {
	case "reassess", "reassessment":
		return Reassessment, nil
	case "reconsider", "reconsideration":
		return Reconsideration, nil
	}
	return 0, errors.Newf("unknown chain variant %q", name)
}

// Result is the outcome of a single stage.
type Result struct {
	Level       int
	Variant     Variant
	Label       string
	Description string
	Probability float64
}

// Chain carries a sample through the stages 1..MaxLevel. Results are kept
// per level; every stage reads the probability of its predecessor, and
// copies label and description from the original sample.
type Chain struct {
	sample  sampler.Sample
	results [MaxLevel]*Result
}

// NewChain creates a chain for the given sample.
func NewChain(sample sampler.Sample) *Chain {
	return &Chain{sample: sample}
}

// Sample returns the sample the chain started from.
func (c *Chain) Sample() sampler.Sample {
	return c.sample
}

// Reassess runs the reassessment stage of the given level.
func (c *Chain) Reassess(level int) (Result, error) {
	return c.Stage(Reassessment, level)
}

// Reconsider runs the reconsideration stage of the given level.
func (c *Chain) Reconsider(level int) (Result, error) {
	return c.Stage(Reconsideration, level)
}

// Stage doubles the probability of the predecessor of level and stores the
// result under level. A previously stored result of the same level is
// replaced; results of other levels are left untouched.
func (c *Chain) Stage(variant Variant, level int) (Result, error) {
	if level < 1 || level > MaxLevel {
		return Result{}, errors.Wrapf(ErrInvalidLevel, "level %d, expected 1..%d", level, MaxLevel)
	}
	prev := c.sample.Probability
	if level > 1 {
		r := c.results[level-2]
		if r == nil {
			return Result{}, errors.Wrapf(ErrUninitializedStageInput, "%v level %d requires level %d", variant, level, level-1)
		}
		prev = r.Probability
	}
	res := Result{
		Level:       level,
		Variant:     variant,
		Label:       c.sample.Label,
		Description: c.sample.Description,
		Probability: prev + prev,
	}
	c.results[level-1] = &res
	return res, nil
}

// Run executes the stages 1..levels of variant in order.
func (c *Chain) Run(variant Variant, levels int) ([]Result, error) {
	if levels < 1 || levels > MaxLevel {
		return nil, errors.Wrapf(ErrInvalidLevel, "%d levels, expected 1..%d", levels, MaxLevel)
	}
	results := make([]Result, 0, levels)
	for level := 1; level <= levels; level++ {
		res, err := c.Stage(variant, level)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Result returns the stored result of level, if any.
func (c *Chain) Result(level int) (Result, bool) {
	if level < 1 || level > MaxLevel || c.results[level-1] == nil {
		return Result{}, false
	}
	return *c.results[level-1], true
}

// Results returns the stored results ordered by level.
func (c *Chain) Results() []Result {
	var results []Result
	for _, r := range c.results {
		if r != nil {
			results = append(results, *r)
		}
	}
	return results
}
