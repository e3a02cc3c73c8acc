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
	_ "embed"
	"strings"
	"sync"

	"rstat/v2/general/collections"
)

//go:embed data/en-familiar-words.txt
var familiarWordsFile string

var (
	familiarWords     *FamiliarWords
	familiarWordsOnce sync.Once
)

// FamiliarWords is a word list in the Dale-Chall tradition. A word
// missing from the list counts as "difficult" for the formula.
type FamiliarWords struct {
	words *collections.Set[string]
}

// Contains decides whether a word is familiar. Common inflections
// (plural -s, possessive -'s, -ed, -ing) are reduced to the base
// form first so the list can stay base-form only.
func (fw *FamiliarWords) Contains(word string) bool {
	w := strings.ToLower(strings.NewReplacer("’", "'", "‘", "'").Replace(word))
	w = strings.Trim(w, "'")
	if fw.words.Contains(w) {
		return true
	}
	for _, suffix := range []string{"'s", "es", "s", "ed", "ing"} {
		if v := strings.TrimSuffix(w, suffix); v != w && fw.words.Contains(v) {
			return true
		}
	}
	// doubled final consonant ("running") and dropped final e ("taking")
	if v := strings.TrimSuffix(w, "ing"); v != w && len(v) > 1 {
		if v[len(v)-1] == v[len(v)-2] && fw.words.Contains(v[:len(v)-1]) {
			return true
		}
		if fw.words.Contains(v + "e") {
			return true
		}
	}
	return false
}

func (fw *FamiliarWords) Size() int {
	return fw.words.Size()
}

// NewFamiliarWords creates a word list out of newline-separated words
func NewFamiliarWords(src string) *FamiliarWords {
	words := collections.NewSet[string]()
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words.Add(strings.ToLower(line))
	}
	return &FamiliarWords{words: words}
}

// EmbeddedFamiliarWords provides the word list bundled with the
// service. The data file is parsed once.
func EmbeddedFamiliarWords() *FamiliarWords {
	familiarWordsOnce.Do(func() {
		familiarWords = NewFamiliarWords(familiarWordsFile)
	})
	return familiarWords
}
