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

package utils

import (
	"github.com/0xsoniclabs/statsampler/statistics/reassess"
	"github.com/urfave/cli/v2"
)

var (
	RandomSeedFlag = cli.Int64Flag{
		Name:  "random-seed",
		Usage: "set random seed of the sampler (-1 seeds from the clock)",
		Value: -1,
	}
	RunsFlag = cli.IntFlag{
		Name:  "runs",
		Usage: "number of independent samples, each followed by its stage chain",
		Value: 1,
	}
	VariantFlag = cli.StringFlag{
		Name:  "variant",
		Usage: "stage chain variant (\"reassess\" or \"reconsider\")",
		Value: reassess.Reassessment.String(),
	}
	LevelsFlag = cli.IntFlag{
		Name:  "levels",
		Usage: "number of stages run per sample",
		Value: reassess.MaxLevel,
	}
	DynamicRewardFlag = cli.BoolFlag{
		Name:  "dynamic-reward",
		Usage: "draw the number of stages per sample from the reward model",
	}
	OutputFlag = cli.StringFlag{
		Name:  "output",
		Usage: "also append printed lines to this file (gzip-compressed if it ends in .gz)",
	}
	Sqlite3Flag = cli.StringFlag{
		Name:  "sqlite3",
		Usage: "also insert printed rows into this sqlite3 database",
	}
	SummaryFlag = cli.BoolFlag{
		Name:  "summary",
		Usage: "print a summary table after every chain",
	}
	ChartFlag = cli.StringFlag{
		Name:  "chart",
		Usage: "write an HTML chart of the last chain to this file",
	}
	GraphFlag = cli.StringFlag{
		Name:  "graph",
		Usage: "write an HTML page with the DOT graph of the last chain to this file",
	}
)
