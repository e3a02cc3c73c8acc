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

// Package metrics contains the counting passes readability reports
// are built from. Each pass is a plain function over an already
// tagged (and possibly parsed) sentence - there is no tagging or
// parsing here, annotations come from the vertical files.
package metrics

import (
	"rstat/v2/tagset"
)

// TaggedWord is a single token of a vertical file sentence
type TaggedWord struct {
	Word string `json:"word"`
	Tag  string `json:"tag"`
}

// Sentence is a single tagged sentence
type Sentence []TaggedWord

// Depunctuate returns the sentence without punctuation tokens.
// The punctuation tag class is defined by the corpus tagset.
func Depunctuate(sent Sentence, cls *tagset.Classes) Sentence {
	ans := make(Sentence, 0, len(sent))
	for _, tw := range sent {
		if !cls.Punctuation.Contains(tw.Tag) {
			ans = append(ans, tw)
		}
	}
	return ans
}
