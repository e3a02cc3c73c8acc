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

func TestFamiliarWordsBaseForms(t *testing.T) {
	fw := EmbeddedFamiliarWords()
	assert.True(t, fw.Contains("dog"))
	assert.True(t, fw.Contains("Dog"))
	assert.False(t, fw.Contains("xylophone"))
	assert.False(t, fw.Contains("constituency"))
}

func TestFamiliarWordsInflections(t *testing.T) {
	fw := EmbeddedFamiliarWords()
	assert.True(t, fw.Contains("dogs"))
	assert.True(t, fw.Contains("people's"))
	assert.True(t, fw.Contains("jumped"))
	assert.True(t, fw.Contains("running"))
	assert.True(t, fw.Contains("taking"))
}

func TestNewFamiliarWords(t *testing.T) {
	fw := NewFamiliarWords("# header\nfoo\n\nBar\n")
	assert.Equal(t, 2, fw.Size())
	assert.True(t, fw.Contains("foo"))
	assert.True(t, fw.Contains("bar"))
	assert.False(t, fw.Contains("baz"))
}
