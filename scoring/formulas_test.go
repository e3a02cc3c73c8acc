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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSMOG(t *testing.T) {
	v, err := SMOG(TextCounts{Sentences: 30, Polysyllables: 30})
	assert.NoError(t, err)
	// 1.0430 * sqrt(30) + 3.1291
	assert.InDelta(t, 8.8419, v, 0.001)
}

func TestSMOGShortText(t *testing.T) {
	v, err := SMOG(TextCounts{Sentences: 10, Polysyllables: 10})
	assert.Equal(t, ErrTooFewSentences, err)
	// the approximate value is still provided
	assert.InDelta(t, 8.8419, v, 0.001)
}

func TestSMOGEmptyText(t *testing.T) {
	_, err := SMOG(TextCounts{})
	assert.Equal(t, ErrEmptyText, err)
}

func TestFleschKincaid(t *testing.T) {
	v, err := FleschKincaid(TextCounts{Sentences: 10, Words: 100, Syllables: 150})
	assert.NoError(t, err)
	// 0.39*10 + 11.8*1.5 - 15.59
	assert.InDelta(t, 6.01, v, 0.0001)
}

func TestFleschKincaidEmptyText(t *testing.T) {
	_, err := FleschKincaid(TextCounts{Sentences: 1})
	assert.Equal(t, ErrEmptyText, err)
}

func TestDaleChall(t *testing.T) {
	v, err := DaleChall(TextCounts{Sentences: 10, Words: 100, DifficultWords: 4})
	assert.NoError(t, err)
	// 0.1579*4 + 0.0496*10
	assert.InDelta(t, 1.1276, v, 0.0001)
}

func TestDaleChallAdjusted(t *testing.T) {
	v, err := DaleChall(TextCounts{Sentences: 10, Words: 100, DifficultWords: 10})
	assert.NoError(t, err)
	// 0.1579*10 + 0.0496*10 + 3.6365
	assert.InDelta(t, 5.7115, v, 0.0001)
}

func TestPTR(t *testing.T) {
	v := PTR(PTRInputs{AvgTreeDepth: 5, AvgSentenceLength: 10, AvgSyllablesPerWord: 1.5})
	assert.NotNil(t, v)
	// 1.7*5 + 0.6*10 + 15*1.5 - 11.42
	assert.InDelta(t, 25.58, *v, 0.0001)
}

func TestPTRWithoutTrees(t *testing.T) {
	assert.Nil(t, PTR(PTRInputs{AvgSentenceLength: 10, AvgSyllablesPerWord: 1.5}))
}
