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

package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rstat/v2/tagset"
)

func pennClasses(t *testing.T) *tagset.Classes {
	cls, err := tagset.ClassesOf(tagset.TagsetEnPenn)
	assert.NoError(t, err)
	return cls
}

func testSentence() Sentence {
	return Sentence{
		{"The", "DT"},
		{"dog", "NN"},
		{",", ","},
		{"however", "RB"},
		{",", ","},
		{"barks", "VBZ"},
		{".", "."},
	}
}

func TestDepunctuate(t *testing.T) {
	cls := pennClasses(t)
	ans := Depunctuate(testSentence(), cls)
	assert.Equal(t, 4, len(ans))
	for _, tw := range ans {
		assert.NotContains(t, []string{",", "."}, tw.Tag)
	}
}

func TestNumWords(t *testing.T) {
	cls := pennClasses(t)
	assert.Equal(t, 4, NumWords(testSentence(), cls))
}

func TestNumWordsPunctuationOnly(t *testing.T) {
	cls := pennClasses(t)
	sent := Sentence{{"--", "--"}, {".", "."}}
	assert.Equal(t, 0, NumWords(sent, cls))
}

func TestWordLengths(t *testing.T) {
	cls := pennClasses(t)
	assert.Equal(t, []int{3, 3, 7, 5}, WordLengths(testSentence(), cls))
}

func TestAvgWordLength(t *testing.T) {
	cls := pennClasses(t)
	assert.InDelta(t, 4.5, AvgWordLength(testSentence(), cls), 0.0001)
}

func TestAvgWordLengthEmpty(t *testing.T) {
	cls := pennClasses(t)
	assert.Equal(t, 0.0, AvgWordLength(Sentence{{".", "."}}, cls))
}

func TestSyllables(t *testing.T) {
	cls := pennClasses(t)
	dict := EmbeddedSyllableDict()
	assert.Equal(t, []int{1, 1, 3, 1}, Syllables(testSentence(), cls, dict))
}

func TestMonoAndPolysyllables(t *testing.T) {
	cls := pennClasses(t)
	dict := EmbeddedSyllableDict()
	sent := Sentence{
		{"Readability", "NN"},
		{"is", "VBZ"},
		{"a", "DT"},
		{"surprisingly", "RB"},
		{"contested", "JJ"},
		{"notion", "NN"},
		{".", "."},
	}
	assert.Equal(t, 2, NumMonosyllables(sent, cls, dict))
	assert.Equal(t, 3, NumPolysyllables(sent, cls, dict))
}
