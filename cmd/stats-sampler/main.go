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
	"fmt"
	"os"

	"github.com/0xsoniclabs/statsampler/logger"
	"github.com/0xsoniclabs/statsampler/utils"
	"github.com/urfave/cli/v2"
)

func newSamplerApp() *cli.App {
	return &cli.App{
		Action:    RunSampler,
		Name:      "Statistics sampler",
		HelpName:  "stats-sampler",
		Usage:     "draw a sample from the symbolism table and reassess its confidence",
		Copyright: "(c) 2025 Sonic Labs",
		ArgsUsage: "",
		Flags: []cli.Flag{
			&logger.LogLevelFlag,
			&utils.RandomSeedFlag,
			&utils.RunsFlag,
			&utils.VariantFlag,
			&utils.LevelsFlag,
			&utils.DynamicRewardFlag,
			&utils.OutputFlag,
			&utils.Sqlite3Flag,
			&utils.SummaryFlag,
			&utils.ChartFlag,
			&utils.GraphFlag,
		},
	}
}

func main() {
	if err := newSamplerApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
