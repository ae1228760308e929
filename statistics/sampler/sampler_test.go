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
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// expectedAxes lists the axis of every cell, row by row.
var expectedAxes = [Size][Size][Size]Axis{
	{{Fairy, Fairy, Fairy}, {Fairy, Fairy, Snake}, {Fairy, Fairy, Snake}},
	{{Snake, Snake, Fairy}, {Snake, Snake, Snake}, {Snake, Snake, Snake}},
	{{Orc, Orc, Fairy}, {Orc, Orc, Snake}, {Orc, Orc, Orc}},
}

func TestTable_EntryMatchesLayout(t *testing.T) {
	table := DefaultTable()
	for row := range Size {
		for col := range Size {
			for arr := range Size {
				e, err := table.Entry(row, col, arr)
				require.NoError(t, err)
				want := expectedAxes[row][col][arr]
				assert.Equal(t, want.Label, e.Label, "label at (%d, %d, %d)", row, col, arr)
				assert.Equal(t, want.Description, e.Description, "description at (%d, %d, %d)", row, col, arr)
				assert.Equal(t, 0.33, e.BaseProbability, "base probability at (%d, %d, %d)", row, col, arr)
			}
		}
	}
}

func TestTable_NewTableUsesGivenAxes(t *testing.T) {
	a := Axis{Label: ":a", Description: "A."}
	b := Axis{Label: ":b", Description: "B."}
	c := Axis{Label: ":c", Description: "C."}
	table := NewTable(a, b, c)

	e, err := table.Entry(2, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, Entry{Label: ":a", Description: "A.", BaseProbability: 0.33}, e)

	e, err = table.Entry(0, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, ":b", e.Label)

	e, err = table.Entry(2, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, "C.", e.Description)
}

func TestTable_EntryOutOfRange(t *testing.T) {
	table := DefaultTable()
	for _, idx := range [][3]int{{-1, 0, 0}, {0, 3, 0}, {0, 0, 3}, {5, 5, 5}} {
		_, err := table.Entry(idx[0], idx[1], idx[2])
		assert.True(t, errors.Is(err, ErrIndexOutOfRange), "index %v", idx)
		_, err = table.At(idx[0], idx[1], idx[2])
		assert.True(t, errors.Is(err, ErrIndexOutOfRange), "index %v", idx)
	}
}

func TestTable_SelectionProbability(t *testing.T) {
	p := 0.33
	assert.Equal(t, p*p, SelectionProbability)
	assert.InDelta(t, 0.1089, SelectionProbability, 1e-12)
}

func TestTable_AtFairyCorner(t *testing.T) {
	sample, err := DefaultTable().At(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, ":fairy_symbolism", sample.Label)
	assert.Equal(t, "There is fairy symbolism.", sample.Description)
	assert.Equal(t, 0.33*SelectionProbability, sample.Probability)
	assert.InDelta(t, 0.035937, sample.Probability, 1e-12)
	assert.Equal(t, [3]int{0, 0, 0}, [3]int{sample.Row, sample.Col, sample.Arr})
}

func TestSampler_DrawMatchesTable(t *testing.T) {
	table := DefaultTable()
	s := New(table, rand.New(rand.NewSource(7)))
	for range 500 {
		sample := s.Draw()
		want, err := table.At(sample.Row, sample.Col, sample.Arr)
		require.NoError(t, err)
		assert.Equal(t, want, sample)
		assert.Equal(t, 0.33*SelectionProbability, sample.Probability)
	}
}

func TestSampler_DrawIsDeterministicForSeed(t *testing.T) {
	a := New(DefaultTable(), rand.New(rand.NewSource(11)))
	b := New(DefaultTable(), rand.New(rand.NewSource(11)))
	for range 50 {
		assert.Equal(t, a.Draw(), b.Draw())
	}
}

// TestSampler_DrawCoversAllCellsUniformly checks with a chi-squared test
// that the three independent draws hit every one of the 27 cells equally often.
func TestSampler_DrawCoversAllCellsUniformly(t *testing.T) {
	const n = 27000
	s := New(DefaultTable(), rand.New(rand.NewSource(2024)))
	observed := make([]float64, Size*Size*Size)
	for range n {
		sample := s.Draw()
		observed[sample.Row*Size*Size+sample.Col*Size+sample.Arr]++
	}
	expected := make([]float64, len(observed))
	for i := range expected {
		expected[i] = n / float64(len(observed))
	}
	for i, o := range observed {
		assert.NotZero(t, o, "cell %d never drawn", i)
	}
	chi := stat.ChiSquare(observed, expected)
	pValue := distuv.ChiSquared{K: float64(len(observed) - 1)}.Survival(chi)
	assert.Greater(t, pValue, 0.001, "observed %v", observed)
}

func TestSampler_NewWeightedDrawsFromPmf(t *testing.T) {
	s, err := NewWeighted(DefaultTable(), rand.New(rand.NewSource(5)), []float64{1.0, 0.0, 0.0})
	require.NoError(t, err)
	for range 100 {
		sample := s.Draw()
		assert.Equal(t, [3]int{0, 0, 0}, [3]int{sample.Row, sample.Col, sample.Arr})
		assert.Equal(t, Fairy.Label, sample.Label)
	}
}

func TestSampler_NewWeightedRejectsInvalidPmf(t *testing.T) {
	tests := map[string][]float64{
		"too short":    {0.5, 0.5},
		"not one":      {0.2, 0.2, 0.2},
		"negative":     {1.2, -0.1, -0.1},
		"all zeros":    {0.0, 0.0, 0.0},
		"four entries": {0.25, 0.25, 0.25, 0.25},
	}
	for name, pmf := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := NewWeighted(DefaultTable(), rand.New(rand.NewSource(1)), pmf)
			assert.Error(t, err)
			assert.Nil(t, s)
		})
	}
}
