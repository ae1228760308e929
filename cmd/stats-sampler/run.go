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

package main

import (
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/0xsoniclabs/statsampler/logger"
	"github.com/0xsoniclabs/statsampler/report"
	"github.com/0xsoniclabs/statsampler/statistics/confidence"
	"github.com/0xsoniclabs/statsampler/statistics/reassess"
	"github.com/0xsoniclabs/statsampler/statistics/reward"
	"github.com/0xsoniclabs/statsampler/statistics/sampler"
	"github.com/0xsoniclabs/statsampler/utils"
	"github.com/0xsoniclabs/statsampler/utils/analytics"
	"github.com/0xsoniclabs/statsampler/visualizer"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

const (
	createStageTable = `CREATE TABLE IF NOT EXISTS stage (
	run INTEGER, level INTEGER, variant TEXT, label TEXT, description TEXT, probability REAL)`
	insertStage = "INSERT INTO stage (run, level, variant, label, description, probability) VALUES (?, ?, ?, ?, ?, ?)"
)

// row is the most recently produced value handed to the printers.
type row struct {
	run         int
	level       int // 0 for the sample
	variant     string
	label       string
	description string
	probability float64
}

func (r *row) String() string {
	return report.FormatTuple(r.label, r.description, r.probability)
}

func (r *row) values() [][]any {
	return [][]any{{r.run, r.level, r.variant, r.label, r.description, r.probability}}
}

// RunSampler draws samples and carries each through its stage chain.
func RunSampler(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Sampler")
	return run(cfg, ctx.App.Writer, log)
}

// seedOf resolves the seed of the random generator.
func seedOf(cfg *utils.Config) int64 {
	if cfg.RandomSeed == -1 {
		return time.Now().UnixNano()
	}
	return cfg.RandomSeed
}

func newPrinters(cfg *utils.Config, w io.Writer, current *row) (*utils.Printers, error) {
	ps := utils.NewPrinters().
		AddPrinterToWriter(w, current.String).
		AddPrinterToFile(cfg.Output, current.String)
	return ps.AddPrinterToSqlite3(cfg.Sqlite3, createStageTable, insertStage, current.values)
}

func run(cfg *utils.Config, w io.Writer, log logger.Logger) (err error) {
	start := time.Now()
	seed := seedOf(cfg)
	log.Infof("Random seed %d", seed)
	rg := rand.New(rand.NewSource(seed))
	s := sampler.New(sampler.DefaultTable(), rg)
	model := reward.NewModel()

	current := &row{}
	printers, err := newPrinters(cfg, w, current)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, printers.Close())
	}()

	var last *reassess.Chain
	finals := analytics.NewIncrementalStats() // probability after the last stage of each chain
	for i := 1; i <= cfg.Runs; i++ {
		sample := s.Draw()
		log.Debugf("Run %d drew cell (%d, %d, %d)", i, sample.Row, sample.Col, sample.Arr)
		*current = row{run: i, variant: "sample", label: sample.Label, description: sample.Description, probability: sample.Probability}
		if err = printers.Print(); err != nil {
			return err
		}
		info := report.Information(sample.Label, sample.Description)
		log.Info(confidence.Classify(sample.Probability).Describe(info))

		levels := cfg.Levels
		if cfg.DynamicReward {
			levels = model.Draw(rg)
			log.Infof("Reward model allocated %d levels", levels)
		}

		chain := reassess.NewChain(sample)
		for level := 1; level <= levels; level++ {
			res, err := chain.Stage(cfg.Variant, level)
			if err != nil {
				return err
			}
			*current = row{run: i, level: level, variant: res.Variant.String(), label: res.Label, description: res.Description, probability: res.Probability}
			if err = printers.Print(); err != nil {
				return err
			}
			log.Info(confidence.Classify(res.Probability).Describe(info))
			if level == levels {
				finals.Update(res.Probability)
			}
		}
		if cfg.Summary {
			report.RenderTable(w, sample, chain.Results())
		}
		last = chain
	}

	if err = writeVisualizations(cfg, last); err != nil {
		return err
	}
	log.Noticef("Final stage probabilities %v", finals)
	hours, minutes, seconds := logger.ParseTime(time.Since(start))
	log.Noticef("Sampled %d chains; elapsed time %d:%02d:%02d", cfg.Runs, hours, minutes, seconds)
	return nil
}

// writeVisualizations renders the chart and graph of a chain into the
// configured files.
func writeVisualizations(cfg *utils.Config, chain *reassess.Chain) error {
	if chain == nil {
		return nil
	}
	title := "Confidence " + chain.Sample().Label
	if cfg.Chart != "" {
		err := writeFile(cfg.Chart, func(w io.Writer) error {
			return visualizer.RenderChart(w, title, chain.Sample(), chain.Results())
		})
		if err != nil {
			return err
		}
	}
	if cfg.Graph != "" {
		txt, err := visualizer.RenderGraph(title, chain.Sample(), chain.Results())
		if err != nil {
			return err
		}
		if err = os.WriteFile(cfg.Graph, []byte(txt), 0644); err != nil {
			return errors.Wrapf(err, "cannot write graph %s", cfg.Graph)
		}
	}
	return nil
}

func writeFile(path string, render func(io.Writer) error) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "cannot create %s", path)
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()
	return render(file)
}
