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
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

//go:embed data/en-syllables.txt
var syllablesFile string

var (
	embeddedDict     *SyllableDict
	embeddedDictOnce sync.Once
)

// SyllableDict provides syllable counts of words. Known words are
// resolved via a hyphenation-derived dictionary, unknown words fall
// back to vowel-group counting. The zero value is not usable - use
// EmbeddedSyllableDict or NewSyllableDict.
type SyllableDict struct {
	counts map[string]int
}

// Count returns the number of syllables of a word. The answer is
// always at least 1 which also covers degenerate tokens (numbers,
// symbols tagged as words).
func (d *SyllableDict) Count(word string) int {
	cleaned := cleanWord(word)
	if cleaned == "" {
		return 1
	}
	if cnt, ok := d.counts[cleaned]; ok {
		return cnt
	}
	// common inflections not worth storing in the dictionary
	if v := strings.TrimSuffix(cleaned, "'s"); v != cleaned {
		if cnt, ok := d.counts[v]; ok {
			return cnt
		}
	}
	if v := strings.TrimSuffix(cleaned, "s"); v != cleaned {
		if cnt, ok := d.counts[v]; ok {
			return cnt
		}
	}
	return countVowelGroups(cleaned)
}

// KnownWords returns the dictionary size (diagnostics only)
func (d *SyllableDict) KnownWords() int {
	return len(d.counts)
}

func cleanWord(word string) string {
	word = strings.NewReplacer("’", "'", "‘", "'").Replace(word)
	var sb strings.Builder
	for _, r := range strings.ToLower(word) {
		if (r >= 'a' && r <= 'z') || r == '\'' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// countVowelGroups estimates the syllable count of an unknown word
// by counting vowel groups, with the usual silent-e and -le endings
// corrections.
func countVowelGroups(word string) int {
	groups := 0
	prevVowel := false
	for i := 0; i < len(word); i++ {
		v := isVowel(word[i])
		if v && !prevVowel {
			groups++
		}
		prevVowel = v
	}
	n := len(word)
	if n > 2 && strings.HasSuffix(word, "e") && !isVowel(word[n-2]) && groups > 1 {
		if strings.HasSuffix(word, "le") {
			// "table", "little" keep the group

		} else {
			groups--
		}
	}
	if strings.HasSuffix(word, "ed") && n > 3 && !isVowel(word[n-3]) &&
		word[n-3] != 't' && word[n-3] != 'd' && groups > 1 {
		groups--
	}
	if groups < 1 {
		groups = 1
	}
	return groups
}

// NewSyllableDict creates a dictionary out of raw "word count" lines
func NewSyllableDict(src string) (*SyllableDict, error) {
	counts := make(map[string]int)
	for i, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tokens := strings.Fields(line)
		if len(tokens) != 2 {
			return nil, fmt.Errorf("syllable dictionary: malformed line %d", i+1)
		}
		cnt, err := strconv.Atoi(tokens[1])
		if err != nil {
			return nil, fmt.Errorf("syllable dictionary: malformed line %d: %w", i+1, err)
		}
		counts[tokens[0]] = cnt
	}
	return &SyllableDict{counts: counts}, nil
}

// EmbeddedSyllableDict provides the dictionary bundled with the
// service. The data file is parsed once.
func EmbeddedSyllableDict() *SyllableDict {
	embeddedDictOnce.Do(func() {
		var err error
		embeddedDict, err = NewSyllableDict(syllablesFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load embedded syllable dictionary")
		}
		log.Debug().Msgf("loaded embedded syllable dictionary (%d words)", embeddedDict.KnownWords())
	})
	return embeddedDict
}
