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
	"fmt"
	"io"

	"github.com/0xsoniclabs/statsampler/report"
	"github.com/0xsoniclabs/statsampler/statistics/reassess"
	"github.com/0xsoniclabs/statsampler/statistics/sampler"
	"github.com/cockroachdb/errors"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
)

// graphHtml wraps a DOT graph into a page that lays it out in the browser.
const graphHtml = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>%s</title>

    <script>
        const dot = ` + "`" + `%s` + "`" + `;
    </script>
</head>

<body>
    <h1>%s</h1>
    <div id="graph"></div>
    <script type="module">
        import { Graphviz } from "https://cdn.jsdelivr.net/npm/@hpcc-js/wasm/dist/index.js";
        if (Graphviz) {
            const graphviz = await Graphviz.load();
            const svg = graphviz.layout(dot, "svg", "dot");
            document.getElementById("graph").innerHTML = svg;
        }
    </script>
</body>
</html>
`

// stageLabels returns the x-axis labels: the sample followed by one label per stage.
func stageLabels(results []reassess.Result) []string {
	labels := []string{"sample"}
	for _, r := range results {
		labels = append(labels, fmt.Sprintf("%v L%d", r.Variant, r.Level))
	}
	return labels
}

// convertProbabilities converts the sample and stage probabilities to chart points.
func convertProbabilities(s sampler.Sample, results []reassess.Result) []opts.LineData {
	items := []opts.LineData{{Value: s.Probability}}
	for _, r := range results {
		items = append(items, opts.LineData{Value: r.Probability})
	}
	return items
}

// newChainChart creates a line chart of the probability carried through a chain.
func newChainChart(title string, s sampler.Sample, results []reassess.Result) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme: types.ThemeChalk,
	}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: report.Information(s.Label, s.Description),
		}))
	chart.SetXAxis(stageLabels(results)).AddSeries("Probability", convertProbabilities(s, results))
	return chart
}

// RenderChart writes the chart of a chain as an HTML page.
func RenderChart(w io.Writer, title string, s sampler.Sample, results []reassess.Result) error {
	if err := newChainChart(title, s, results).Render(w); err != nil {
		return errors.Wrap(err, "cannot render chart")
	}
	return nil
}

// RenderGraph renders a chain as a DOT graph embedded in an HTML page.
// Every stage is a node; edges carry the probability handed to the next stage.
func RenderGraph(title string, s sampler.Sample, results []reassess.Result) (out string, err error) {
	g := graphviz.New()
	graph, err := g.Graph()
	if err != nil {
		return "", errors.Wrap(err, "failed to create graph")
	}
	defer func() {
		err = errors.Join(err, graph.Close(), g.Close())
	}()

	labels := stageLabels(results)
	nodes := make([]*cgraph.Node, len(labels))
	for i, label := range labels {
		nodes[i], err = graph.CreateNode(label)
		if err != nil {
			return "", errors.Wrapf(err, "failed to create node %v", label)
		}
		nodes[i].SetLabel(label)
	}
	nodes[0].SetLabel(report.Information(s.Label, s.Description))

	prev := s.Probability
	for i, r := range results {
		e, err := graph.CreateEdge("", nodes[i], nodes[i+1])
		if err != nil {
			return "", errors.Wrapf(err, "failed to create edge to level %d", r.Level)
		}
		e.SetLabel(report.FormatProbability(prev))
		prev = r.Probability
	}
	return renderDotGraph(title, g, graph)
}

// renderDotGraph renders graph in DOT format and embeds it into graphHtml.
func renderDotGraph(title string, g *graphviz.Graphviz, graph *cgraph.Graph) (string, error) {
	var buf bytes.Buffer
	if err := g.Render(graph, graphviz.XDOT, &buf); err != nil {
		return "", errors.Wrap(err, "failed to render dot graph")
	}
	return fmt.Sprintf(graphHtml, title, buf.String(), title), nil
}
