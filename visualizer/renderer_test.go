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

package visualizer

import (
	"bytes"
	"testing"

	"github.com/0xsoniclabs/statsampler/statistics/reassess"
	"github.com/0xsoniclabs/statsampler/statistics/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fairyChain(t *testing.T) (sampler.Sample, []reassess.Result) {
	t.Helper()
	s, err := sampler.DefaultTable().At(0, 0, 0)
	require.NoError(t, err)
	results, err := reassess.NewChain(s).Run(reassess.Reassessment, reassess.MaxLevel)
	require.NoError(t, err)
	return s, results
}

func TestVisualizer_StageLabels(t *testing.T) {
	_, results := fairyChain(t)
	assert.Equal(t, []string{"sample", "reassess L1", "reassess L2", "reassess L3", "reassess L4"}, stageLabels(results))
	assert.Equal(t, []string{"sample"}, stageLabels(nil))
}

func TestVisualizer_ConvertProbabilities(t *testing.T) {
	s, results := fairyChain(t)
	items := convertProbabilities(s, results)
	require.Len(t, items, 5)
	assert.Equal(t, s.Probability, items[0].Value)
	assert.Equal(t, results[3].Probability, items[4].Value)
}

func TestVisualizer_RenderChart(t *testing.T) {
	s, results := fairyChain(t)
	var buf bytes.Buffer
	require.NoError(t, RenderChart(&buf, "Chain", s, results))
	out := buf.String()
	assert.Contains(t, out, "echarts")
	assert.Contains(t, out, "Chain")
	assert.Contains(t, out, "reassess L4")
}

func TestVisualizer_RenderGraph(t *testing.T) {
	s, results := fairyChain(t)
	out, err := RenderGraph("Chain Graph", s, results)
	require.NoError(t, err)
	assert.Contains(t, out, "<title>Chain Graph</title>")
	assert.Contains(t, out, "digraph")
	assert.Contains(t, out, "reassess L3")
	assert.Contains(t, out, ":fairy_symbolism There is fairy symbolism.")
}

func TestVisualizer_RenderGraphWithoutStages(t *testing.T) {
	s, _ := fairyChain(t)
	out, err := RenderGraph("Empty", s, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "digraph")
}
