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
	"unicode/utf8"

	"rstat/v2/tagset"
)

// NumWords returns the number of words in the sentence, sans punctuation
func NumWords(sent Sentence, cls *tagset.Classes) int {
	return len(Depunctuate(sent, cls))
}

// WordLengths returns lengths (in runes) of non-punctuation words
func WordLengths(sent Sentence, cls *tagset.Classes) []int {
	dp := Depunctuate(sent, cls)
	ans := make([]int, len(dp))
	for i, tw := range dp {
		ans[i] = utf8.RuneCountInString(tw.Word)
	}
	return ans
}

// AvgWordLength returns the average word length of the sentence.
// For a sentence with no words (e.g. punctuation only), zero is returned.
func AvgWordLength(sent Sentence, cls *tagset.Classes) float64 {
	lengths := WordLengths(sent, cls)
	if len(lengths) == 0 {
		return 0
	}
	total := 0
	for _, v := range lengths {
		total += v
	}
	return float64(total) / float64(len(lengths))
}

// Syllables returns per-word syllable counts of non-punctuation words
func Syllables(sent Sentence, cls *tagset.Classes, dict *SyllableDict) []int {
	dp := Depunctuate(sent, cls)
	ans := make([]int, len(dp))
	for i, tw := range dp {
		ans[i] = dict.Count(tw.Word)
	}
	return ans
}

// NumMonosyllables returns the number of one-syllable words in the sentence
func NumMonosyllables(sent Sentence, cls *tagset.Classes, dict *SyllableDict) int {
	ans := 0
	for _, sylls := range Syllables(sent, cls, dict) {
		if sylls == 1 {
			ans++
		}
	}
	return ans
}

// NumPolysyllables returns the number of words with three or more
// syllables in the sentence
func NumPolysyllables(sent Sentence, cls *tagset.Classes, dict *SyllableDict) int {
	ans := 0
	for _, sylls := range Syllables(sent, cls, dict) {
		if sylls >= 3 {
			ans++
		}
	}
	return ans
}
