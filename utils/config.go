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
	"github.com/0xsoniclabs/statsampler/logger"
	"github.com/0xsoniclabs/statsampler/statistics/reassess"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

// ErrInvalidConfig is returned for flag combinations that cannot run.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config summarizes the user-defined options of a run.
type Config struct {
	AppName       string
	LogLevel      string           // level of the logging
	RandomSeed    int64            // seed of the random generator; -1 for the clock
	Runs          int              // number of samples
	Variant       reassess.Variant // chain variant
	Levels        int              // stages per sample
	DynamicReward bool             // draw the stages per sample from the reward model
	Output        string           // file receiving the printed lines
	Sqlite3       string           // sqlite3 database receiving the printed rows
	Summary       bool             // print a summary table per chain
	Chart         string           // HTML chart of the last chain
	Graph         string           // HTML graph of the last chain
}

// NewConfig creates and validates a configuration from the command line.
func NewConfig(ctx *cli.Context) (*Config, error) {
	variant, err := reassess.ParseVariant(ctx.String(VariantFlag.Name))
	if err != nil {
		return nil, errors.Mark(err, ErrInvalidConfig)
	}
	cfg := &Config{
		AppName:       ctx.App.HelpName,
		LogLevel:      ctx.String(logger.LogLevelFlag.Name),
		RandomSeed:    ctx.Int64(RandomSeedFlag.Name),
		Runs:          ctx.Int(RunsFlag.Name),
		Variant:       variant,
		Levels:        ctx.Int(LevelsFlag.Name),
		DynamicReward: ctx.Bool(DynamicRewardFlag.Name),
		Output:        ctx.String(OutputFlag.Name),
		Sqlite3:       ctx.String(Sqlite3Flag.Name),
		Summary:       ctx.Bool(SummaryFlag.Name),
		Chart:         ctx.String(ChartFlag.Name),
		Graph:         ctx.String(GraphFlag.Name),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Runs < 1 {
		return errors.Wrapf(ErrInvalidConfig, "--%s must be at least 1, got %d", RunsFlag.Name, cfg.Runs)
	}
	if cfg.Levels < 1 || cfg.Levels > reassess.MaxLevel {
		return errors.Wrapf(ErrInvalidConfig, "--%s must be within 1..%d, got %d", LevelsFlag.Name, reassess.MaxLevel, cfg.Levels)
	}
	if cfg.RandomSeed < -1 {
		return errors.Wrapf(ErrInvalidConfig, "--%s must be -1 or non-negative, got %d", RandomSeedFlag.Name, cfg.RandomSeed)
	}
	return nil
}
