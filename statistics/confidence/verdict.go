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

package confidence

import "fmt"

// Verdict is the confidence expressed for a probability.
type Verdict int

const (
	Undetermined Verdict = iota
	ConfidentNot
	LessUnconfidentNot
	AlmostSure
	Sure
)

// band is an interval (lower, upper] of probabilities; the first band
// includes its lower bound.
type band struct {
	lower, upper float64
	verdict      Verdict
}

var bands = []band{
	{0.003921569, 0.287225, ConfidentNot},
	{0.287225, 0.522225, LessUnconfidentNot},
	{0.522225, 0.7561125, AlmostSure},
	{0.7561125, 1.0, Sure},
}

// Classify maps a probability onto a verdict.
func Classify(p float64) Verdict {
	if p == bands[0].lower {
		return bands[0].verdict
	}
	for _, b := range bands {
		if p > b.lower && p <= b.upper {
			return b.verdict
		}
	}
	return Undetermined
}

func (v Verdict) String() string {
	switch v {
	case ConfidentNot:
		return "confident not"
	case LessUnconfidentNot:
		return "less unconfident not"
	case AlmostSure:
		return "almost sure"
	case Sure:
		return "sure"
	default:
		return "undetermined"
	}
}

// Describe renders the verdict about info as a sentence.
func (v Verdict) Describe(info string) string {
	switch v {
	case ConfidentNot:
		return fmt.Sprintf("I'm confident it is not [ %s ].", info)
	case LessUnconfidentNot:
		return fmt.Sprintf("I'm less unconfident it is not [ %s ].", info)
	case AlmostSure:
		return fmt.Sprintf("I'm almost sure it is [ %s ].", info)
	case Sure:
		return fmt.Sprintf("I'm sure it is [ %s ].", info)
	default:
		return "The probability is either to low or to large, so I can't determine exactly."
	}
}
