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

package scoring

// Coefficients of the parse-tree readability score, fitted against
// Flesch-Kincaid grades on a parsed sample. Unlike the established
// formulas, the score uses the average constituency tree depth as a
// syntactic complexity signal.
const (
	ptrTreeDepthCoeff = 1.7
	ptrSentLenCoeff   = 0.6
	ptrSyllablesCoeff = 15.0
	ptrConst          = 11.42
)

// PTRInputs are the per-text averages the parse-tree score consumes
type PTRInputs struct {
	AvgTreeDepth        float64
	AvgSentenceLength   float64
	AvgSyllablesPerWord float64
}

// PTR returns the parse-tree readability grade of a text. Texts
// without any parsed sentences cannot be scored (AvgTreeDepth would
// be meaningless) and get a nil answer.
func PTR(in PTRInputs) *float64 {
	if in.AvgTreeDepth == 0 {
		return nil
	}
	ans := ptrTreeDepthCoeff*in.AvgTreeDepth +
		ptrSentLenCoeff*in.AvgSentenceLength +
		ptrSyllablesCoeff*in.AvgSyllablesPerWord -
		ptrConst
	return &ans
}
