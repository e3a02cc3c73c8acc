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
	"rstat/v2/general/collections"
	"rstat/v2/tagset"
)

// TagHistogram returns occurrence counts of all the tags in the sentence
// (punctuation included - histogram consumers filter themselves)
func TagHistogram(sent Sentence) map[string]int {
	ans := make(map[string]int)
	for _, tw := range sent {
		ans[tw.Tag]++
	}
	return ans
}

// NumUniqueTags returns the number of unique tags in the sentence
func NumUniqueTags(sent Sentence) int {
	tags := collections.NewSet[string]()
	for _, tw := range sent {
		tags.Add(tw.Tag)
	}
	return tags.Size()
}

// RepeatedAdverbs returns the number of adverbs in 2+ long runs of
// adjacent adverb tags, e.g.:
// "harder better faster stronger" -> 4 (when tagged as adverbs)
// "most happily" -> 2
// "likely ready" -> 0 (because "ready" is an adjective)
func RepeatedAdverbs(sent Sentence, cls *tagset.Classes) int {
	ans := 0
	run := 0
	for _, tw := range sent {
		if cls.Adverbs.Contains(tw.Tag) {
			run++
			continue
		}
		if run >= 2 {
			ans += run
		}
		run = 0
	}
	if run >= 2 {
		ans += run
	}
	return ans
}

// RepeatedPossessives returns the number of possessive markers chained
// through nominals, e.g.:
// "John's mother's neighbor's uncle's dog's Instagram account" -> 5
// "John's dog's Instagram account" -> 2
// "John's Instagram account" -> 0 (because it is not repeated)
// A chain continues as long as the next possessive marker follows
// within two tokens and everything between the markers is nominal.
func RepeatedPossessives(sent Sentence, cls *tagset.Classes) int {
	ans := 0
	chain := 0
	gap := -1 // tokens seen since the last marker; -1 = no open chain
	for _, tw := range sent {
		if tw.Tag == cls.Possessive {
			chain++
			gap = 0
			continue
		}
		if gap < 0 {
			continue
		}
		gap++
		if gap > 2 || !cls.Nominals.Contains(tw.Tag) {
			if chain >= 2 {
				ans += chain
			}
			chain = 0
			gap = -1
		}
	}
	if chain >= 2 {
		ans += chain
	}
	return ans
}
