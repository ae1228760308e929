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

package reward

import (
	"math/rand"

	"github.com/0xsoniclabs/statsampler/statistics/discrete"
	"github.com/0xsoniclabs/statsampler/statistics/reassess"
	"github.com/cockroachdb/errors"
)

// Size is the extent of each dimension of the reward model.
const Size = reassess.MaxLevel

// Model assigns a number of reassessment levels to every cell of a 4x4x4
// table. Row r yields r+1 levels except in the last array position, which
// yields col+1 levels.
type Model struct {
	levels [Size][Size][Size]int
	pmf    []float64
}

// NewModel builds the reward model with uniform cell selection.
func NewModel() *Model {
	m, err := NewWeightedModel(discrete.Uniform(Size))
	if err != nil {
		panic(err)
	}
	return m
}

// NewWeightedModel builds the reward model drawing each cell index from pmf.
func NewWeightedModel(pmf []float64) (*Model, error) {
	if len(pmf) != Size {
		return nil, errors.Newf("cell pmf has %d entries, expected %d", len(pmf), Size)
	}
	if err := discrete.Check(pmf); err != nil {
		return nil, errors.Wrap(err, "invalid cell pmf")
	}
	m := &Model{pmf: pmf}
	for row := range Size {
		for col := range Size {
			for arr := range Size {
				if arr == Size-1 {
					m.levels[row][col][arr] = col + 1
				} else {
					m.levels[row][col][arr] = row + 1
				}
			}
		}
	}
	return m, nil
}

// Levels returns the number of levels stored at the given cell.
func (m *Model) Levels(row, col, arr int) int {
	return m.levels[row][col][arr]
}

// Draw selects a cell uniformly and returns its number of levels.
func (m *Model) Draw(rg *rand.Rand) int {
	row := discrete.Sample(rg, m.pmf)
	col := discrete.Sample(rg, m.pmf)
	arr := discrete.Sample(rg, m.pmf)
	return m.levels[row][col][arr]
}
