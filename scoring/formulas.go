// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of CNC-RSTAT.
//
//  CNC-RSTAT is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  CNC-RSTAT is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with CNC-RSTAT.  If not, see <https://www.gnu.org/licenses/>.

// Package scoring turns the raw counts of the metrics package into
// the established readability grades (SMOG, Flesch-Kincaid,
// Dale-Chall) and into this service's own parse-tree based score.
package scoring

import (
	"errors"
	"math"
)

const (
	smogMinSentences = 30

	smogSqrtCoeff = 1.0430
	smogConst     = 3.1291

	fkSentenceCoeff = 0.39
	fkSyllableCoeff = 11.8
	fkConst         = 15.59

	dcDifficultCoeff  = 0.1579
	dcSentenceCoeff   = 0.0496
	dcAdjustThreshold = 5.0
	dcAdjustConst     = 3.6365
)

var (
	// ErrTooFewSentences signals that a text does not meet the
	// 30-sentence sample size SMOG was calibrated on
	ErrTooFewSentences = errors.New("too few sentences for a reliable SMOG grade")

	ErrEmptyText = errors.New("cannot score an empty text")
)

// TextCounts are the aggregated counts a readability formula consumes.
// Words and syllables exclude punctuation tokens.
type TextCounts struct {
	Sentences      int
	Words          int
	Syllables      int
	Polysyllables  int
	DifficultWords int
}

// SMOG returns the SMOG grade of a text. The formula expects a sample
// of at least 30 sentences; for shorter texts ErrTooFewSentences is
// returned along with the (approximate) value so callers can decide
// whether to keep it.
func SMOG(tc TextCounts) (float64, error) {
	if tc.Sentences == 0 {
		return 0, ErrEmptyText
	}
	ans := smogSqrtCoeff*math.Sqrt(float64(tc.Polysyllables)*(float64(smogMinSentences)/float64(tc.Sentences))) + smogConst
	if tc.Sentences < smogMinSentences {
		return ans, ErrTooFewSentences
	}
	return ans, nil
}

// FleschKincaid returns the Flesch-Kincaid grade level of a text
func FleschKincaid(tc TextCounts) (float64, error) {
	if tc.Sentences == 0 || tc.Words == 0 {
		return 0, ErrEmptyText
	}
	return fkSentenceCoeff*(float64(tc.Words)/float64(tc.Sentences)) +
		fkSyllableCoeff*(float64(tc.Syllables)/float64(tc.Words)) - fkConst, nil
}

// DaleChall returns the Dale-Chall readability score of a text.
// DifficultWords must be counted against a familiar word list
// (see FamiliarWords).
func DaleChall(tc TextCounts) (float64, error) {
	if tc.Sentences == 0 || tc.Words == 0 {
		return 0, ErrEmptyText
	}
	pctDifficult := 100 * float64(tc.DifficultWords) / float64(tc.Words)
	ans := dcDifficultCoeff*pctDifficult + dcSentenceCoeff*(float64(tc.Words)/float64(tc.Sentences))
	if pctDifficult > dcAdjustThreshold {
		ans += dcAdjustConst
	}
	return ans, nil
}
