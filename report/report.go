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

// Package report renders samples and stage results for humans.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/0xsoniclabs/statsampler/statistics/confidence"
	"github.com/0xsoniclabs/statsampler/statistics/reassess"
	"github.com/0xsoniclabs/statsampler/statistics/sampler"
	"github.com/jedib0t/go-pretty/v6/table"
)

// FormatProbability prints p with the fewest digits that identify it,
// never in exponent notation.
func FormatProbability(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// FormatTuple renders a label, description and probability as a tuple.
func FormatTuple(label, description string, p float64) string {
	return fmt.Sprintf("(%q, %q, %s)", label, description, FormatProbability(p))
}

// FormatSample renders a drawn sample as a tuple.
func FormatSample(s sampler.Sample) string {
	return FormatTuple(s.Label, s.Description, s.Probability)
}

// FormatResult renders a stage result as a tuple.
func FormatResult(r reassess.Result) string {
	return FormatTuple(r.Label, r.Description, r.Probability)
}

// Information joins label and description the way verdicts quote them.
func Information(label, description string) string {
	return label + " " + description
}

// RenderTable writes a summary of a sample and its stage results.
func RenderTable(w io.Writer, s sampler.Sample, results []reassess.Result) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Level", "Variant", "Label", "Probability", "Verdict"})
	tw.AppendRow(table.Row{0, "sample", s.Label, FormatProbability(s.Probability), confidence.Classify(s.Probability)})
	for _, r := range results {
		tw.AppendRow(table.Row{r.Level, r.Variant, r.Label, FormatProbability(r.Probability), confidence.Classify(r.Probability)})
	}
	tw.Render()
}
