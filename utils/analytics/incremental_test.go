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

package analytics

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"
)

func TestIncrementalStats_String(t *testing.T) {
	obj := IncrementalStats{
		count: 10,
		min:   0,
		max:   0,
		ksum:  0,
		c:     0,
		m1:    0,
		m2:    0,
		m3:    0,
		m4:    0,
	}

	str, err := json.Marshal(obj) //nolint:staticcheck // SA9005: ignore for test comparison
	assert.NoError(t, err)
	assert.Equal(t, string(str), obj.String())
	assert.Contains(t, obj.String(), `"count":10`)
}

func TestIncrementalStats_Empty(t *testing.T) {
	s := NewIncrementalStats()
	assert.Equal(t, uint64(0), s.Count())
	assert.Equal(t, 0.0, s.Mean())
	assert.Equal(t, 0.0, s.Variance())
	assert.Equal(t, 0.0, s.Skewness())
	assert.Equal(t, 0.0, s.Kurtosis())
}

func TestIncrementalStats_MatchesGonum(t *testing.T) {
	data := []float64{0.071874, 0.143748, 0.287496, 0.574992, 0.143748, 0.071874, 0.287496}
	s := NewIncrementalStats()
	for _, x := range data {
		s.Update(x)
	}
	assert.Equal(t, uint64(len(data)), s.Count())
	assert.Equal(t, 0.071874, s.Min())
	assert.Equal(t, 0.574992, s.Max())
	assert.InDelta(t, stat.Mean(data, nil)*float64(len(data)), s.Sum(), 1e-12)
	assert.InDelta(t, stat.Mean(data, nil), s.Mean(), 1e-12)
	assert.InDelta(t, stat.Variance(data, nil), s.Variance(), 1e-12)
	assert.Greater(t, s.Skewness(), 0.0)
	assert.Greater(t, stat.Skew(data, nil), 0.0)
}

func TestIncrementalStats_ConstantStream(t *testing.T) {
	s := NewIncrementalStats()
	for range 5 {
		s.Update(0.574992)
	}
	assert.Equal(t, 0.574992, s.Min())
	assert.Equal(t, 0.574992, s.Max())
	assert.InDelta(t, 0.574992, s.Mean(), 1e-15)
	assert.InDelta(t, 0.0, s.Variance(), 1e-20)
}
