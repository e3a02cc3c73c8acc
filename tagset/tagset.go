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

package tagset

import (
	"fmt"

	"rstat/v2/general/collections"
)

type SupportedTagset string

// Validate tests whether the value is one of the known tagsets.
// Please note that the empty value is also considered OK
// (otherwise we wouldn't have a valid zero value)
func (st SupportedTagset) Validate() error {
	if st == TagsetEnPenn || st == TagsetBNC || st == "" {
		return nil
	}
	return fmt.Errorf("invalid tagset type: %s", st)
}

func (st SupportedTagset) String() string {
	return string(st)
}

const (
	TagsetEnPenn SupportedTagset = "en_penn"
	TagsetBNC    SupportedTagset = "bnc"
)

// Classes groups the tag classes the counting passes rely on.
// All the readability metrics are defined in terms of these
// classes rather than in terms of concrete tag values so adding
// a tagset means just adding a new table here.
type Classes struct {
	Tagset SupportedTagset

	// Punctuation contains tags removed by depunctuation
	Punctuation *collections.Set[string]

	// Adverbs contains tags counted by the repeated-adverbs pass
	Adverbs *collections.Set[string]

	// Possessive is the tag of a possessive marker ('s)
	Possessive string

	// Nominals contains tags allowed between two possessive
	// markers of a single possessive chain
	Nominals *collections.Set[string]
}

var classTables = map[SupportedTagset]*Classes{
	TagsetEnPenn: {
		Tagset:      TagsetEnPenn,
		Punctuation: collections.NewSet("(", ")", ",", "--", ".", ":"),
		Adverbs:     collections.NewSet("RB", "RBR", "RBS", "RBT"),
		Possessive:  "POS",
		Nominals:    collections.NewSet("NN", "NNS", "NNP", "NNPS"),
	},
	TagsetBNC: {
		Tagset:      TagsetBNC,
		Punctuation: collections.NewSet("PUN", "PUL", "PUR", "PUQ"),
		Adverbs:     collections.NewSet("AV0", "AVP", "AVQ"),
		Possessive:  "POS",
		Nominals:    collections.NewSet("NN0", "NN1", "NN2", "NP0"),
	},
}

// ClassesOf provides tag classes for a supported tagset.
// The empty value resolves to the Penn treebank tagset which
// is what our English corpora vertical files use.
func ClassesOf(st SupportedTagset) (*Classes, error) {
	if st == "" {
		st = TagsetEnPenn
	}
	ans, ok := classTables[st]
	if !ok {
		return nil, fmt.Errorf("no tag class table for tagset %s", st)
	}
	return ans, nil
}
