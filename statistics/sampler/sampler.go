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

package sampler

import (
	"math/rand"

	"github.com/0xsoniclabs/statsampler/statistics/discrete"
	"github.com/cockroachdb/errors"
)

// Sample is the outcome of one draw from the lookup table.
type Sample struct {
	Row, Col, Arr int     // drawn position
	Label         string  // symbolic label of the drawn cell
	Description   string  // description of the drawn cell
	Probability   float64 // base probability times selection probability
}

// Sampler draws samples from a lookup table.
type Sampler struct {
	table *Table
	rg    *rand.Rand
	pmf   []float64 // index distribution of each dimension
}

// New creates a sampler drawing from table with the random generator rg.
func New(table *Table, rg *rand.Rand) *Sampler {
	s, err := NewWeighted(table, rg, discrete.Uniform(Size))
	if err != nil {
		// the uniform pmf is always valid
		panic(err)
	}
	return s
}

// NewWeighted creates a sampler whose row, column and array indices are
// drawn from pmf instead of the uniform distribution.
func NewWeighted(table *Table, rg *rand.Rand, pmf []float64) (*Sampler, error) {
	if len(pmf) != Size {
		return nil, errors.Newf("index pmf has %d entries, expected %d", len(pmf), Size)
	}
	if err := discrete.Check(pmf); err != nil {
		return nil, errors.Wrap(err, "invalid index pmf")
	}
	return &Sampler{
		table: table,
		rg:    rg,
		pmf:   pmf,
	}, nil
}

// Draw selects row, column and array position independently and
// uniformly and returns the sample at that position.
func (s *Sampler) Draw() Sample {
	row := discrete.Sample(s.rg, s.pmf)
	col := discrete.Sample(s.rg, s.pmf)
	arr := discrete.Sample(s.rg, s.pmf)
	sample, err := s.table.At(row, col, arr)
	if err != nil {
		// discrete.Sample never leaves the range of its pmf
		panic(err)
	}
	return sample
}
