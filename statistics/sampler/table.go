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
	"github.com/cockroachdb/errors"
)

// Size is the extent of each dimension of the lookup table.
const Size = 3

// BaseProbability is the probability stored for every table entry.
const BaseProbability = 0.33

// Probabilities of selecting a row and a column of the lookup table.
var (
	rowProbability = 0.33
	colProbability = 0.33
)

// SelectionProbability is the probability of selecting a row and a column.
// It is computed in float64 arithmetic rather than folded as a constant.
var SelectionProbability = rowProbability * colProbability

// ErrIndexOutOfRange is returned for indices outside of the table.
var ErrIndexOutOfRange = errors.New("table index out of range")

// Axis is a named category with a symbolic label and a sentence
// describing it.
type Axis struct {
	Label       string
	Description string
}

// Default axes.
var (
	Fairy = Axis{Label: ":fairy_symbolism", Description: "There is fairy symbolism."}
	Snake = Axis{Label: ":snake_symbolism", Description: "There is snake symbolism."}
	Orc   = Axis{Label: ":orc_symbolism", Description: "There is orc symbolism."}
)

// Entry is a single cell of the lookup table.
type Entry struct {
	Label           string
	Description     string
	BaseProbability float64
}

// Table keeps labels, descriptions and base probabilities in three
// parallel 3x3x3 arrays indexed by row, column and array position.
type Table struct {
	labels            [Size][Size][Size]string
	descriptions      [Size][Size][Size]string
	baseProbabilities [Size][Size][Size]float64
}

// layout selects the axis (0=a, 1=b, 2=c) of every cell.
var layout = [Size][Size][Size]int{
	{{0, 0, 0}, {0, 0, 1}, {0, 0, 1}},
	{{1, 1, 0}, {1, 1, 1}, {1, 1, 1}},
	{{2, 2, 0}, {2, 2, 1}, {2, 2, 2}},
}

// NewTable builds the lookup table for the three axes.
func NewTable(a, b, c Axis) *Table {
	axes := [Size]Axis{a, b, c}
	t := &Table{}
	for row := range Size {
		for col := range Size {
			for arr := range Size {
				axis := axes[layout[row][col][arr]]
				t.labels[row][col][arr] = axis.Label
				t.descriptions[row][col][arr] = axis.Description
				t.baseProbabilities[row][col][arr] = BaseProbability
			}
		}
	}
	return t
}

// DefaultTable returns the fairy/snake/orc table.
func DefaultTable() *Table {
	return NewTable(Fairy, Snake, Orc)
}

// Entry returns the cell at the given position.
func (t *Table) Entry(row, col, arr int) (Entry, error) {
	if !inRange(row) || !inRange(col) || !inRange(arr) {
		return Entry{}, errors.Wrapf(ErrIndexOutOfRange, "(%d, %d, %d)", row, col, arr)
	}
	return Entry{
		Label:           t.labels[row][col][arr],
		Description:     t.descriptions[row][col][arr],
		BaseProbability: t.baseProbabilities[row][col][arr],
	}, nil
}

// At derives the sample for the given position.
func (t *Table) At(row, col, arr int) (Sample, error) {
	e, err := t.Entry(row, col, arr)
	if err != nil {
		return Sample{}, err
	}
	return Sample{
		Row:         row,
		Col:         col,
		Arr:         arr,
		Label:       e.Label,
		Description: e.Description,
		Probability: e.BaseProbability * SelectionProbability,
	}, nil
}

func inRange(i int) bool {
	return i >= 0 && i < Size
}
