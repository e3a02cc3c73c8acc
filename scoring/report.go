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
	"errors"
	"time"

	"rstat/v2/corpus"
	"rstat/v2/metrics"
	"rstat/v2/tagset"
)

// TreeStats aggregates the parse trees of a text. Coverage says which
// fraction of the sentences came with a tree (texts are often parsed
// only partially).
type TreeStats struct {
	AvgDepth      float64        `json:"avgDepth"`
	MaxDepth      int            `json:"maxDepth"`
	NumSubtrees   int            `json:"numSubtrees"`
	SubtreeCounts map[string]int `json:"subtreeCounts"`
	Coverage      float64        `json:"coverage"`
}

// DocumentScores are readability grades of a single document. SMOG
// for documents shorter than the formula's calibration sample is
// still reported but flagged as approximate. PTR is nil for documents
// without parsed sentences.
type DocumentScores struct {
	DocID           string   `json:"docId"`
	Sentences       int      `json:"sentences"`
	Words           int      `json:"words"`
	SMOG            *float64 `json:"smog"`
	SMOGApproximate bool     `json:"smogApproximate"`
	FleschKincaid   *float64 `json:"fleschKincaid"`
	DaleChall       *float64 `json:"daleChall"`
	PTR             *float64 `json:"ptr"`
}

// CorpusReport is a complete readability report over a vertical file
type CorpusReport struct {
	CorpusID string                 `json:"corpusId"`
	Tagset   tagset.SupportedTagset `json:"tagset"`
	Created  time.Time              `json:"created"`

	NumDocuments int `json:"numDocuments"`
	NumSentences int `json:"numSentences"`
	NumWords     int `json:"numWords"`
	NumSyllables int `json:"numSyllables"`

	AvgSentenceLength   float64 `json:"avgSentenceLength"`
	AvgWordLength       float64 `json:"avgWordLength"`
	AvgSyllablesPerWord float64 `json:"avgSyllablesPerWord"`

	NumMonosyllables    int `json:"numMonosyllables"`
	NumPolysyllables    int `json:"numPolysyllables"`
	NumDifficultWords   int `json:"numDifficultWords"`
	RepeatedAdverbs     int `json:"repeatedAdverbs"`
	RepeatedPossessives int `json:"repeatedPossessives"`

	TagHistogram  map[string]int `json:"tagHistogram"`
	NumUniqueTags int            `json:"numUniqueTags"`

	Trees TreeStats `json:"trees"`

	SMOG            *float64 `json:"smog"`
	SMOGApproximate bool     `json:"smogApproximate"`
	FleschKincaid   *float64 `json:"fleschKincaid"`
	DaleChall       *float64 `json:"daleChall"`
	PTR             *float64 `json:"ptr"`

	Documents []DocumentScores `json:"documents"`
}

type textAccum struct {
	sentences   int
	words       int
	wordLenSum  int
	syllables   int
	mono        int
	poly        int
	difficult   int
	advRepeats  int
	possRepeats int
	trees       []*metrics.Tree
}

func (ta *textAccum) addSentence(
	sent metrics.Sentence,
	tree *metrics.Tree,
	cls *tagset.Classes,
	dict *metrics.SyllableDict,
	familiar *FamiliarWords,
) {
	ta.sentences++
	ta.words += metrics.NumWords(sent, cls)
	for _, l := range metrics.WordLengths(sent, cls) {
		ta.wordLenSum += l
	}
	for _, s := range metrics.Syllables(sent, cls, dict) {
		ta.syllables += s
	}
	ta.mono += metrics.NumMonosyllables(sent, cls, dict)
	ta.poly += metrics.NumPolysyllables(sent, cls, dict)
	for _, tw := range metrics.Depunctuate(sent, cls) {
		if !familiar.Contains(tw.Word) {
			ta.difficult++
		}
	}
	ta.advRepeats += metrics.RepeatedAdverbs(sent, cls)
	ta.possRepeats += metrics.RepeatedPossessives(sent, cls)
	if tree != nil {
		ta.trees = append(ta.trees, tree)
	}
}

func (ta *textAccum) counts() TextCounts {
	return TextCounts{
		Sentences:      ta.sentences,
		Words:          ta.words,
		Syllables:      ta.syllables,
		Polysyllables:  ta.poly,
		DifficultWords: ta.difficult,
	}
}

func (ta *textAccum) ptrInputs() PTRInputs {
	ans := PTRInputs{AvgTreeDepth: metrics.AvgHeight(ta.trees)}
	if ta.sentences > 0 {
		ans.AvgSentenceLength = float64(ta.words) / float64(ta.sentences)
	}
	if ta.words > 0 {
		ans.AvgSyllablesPerWord = float64(ta.syllables) / float64(ta.words)
	}
	return ans
}

func scoreAccum(ta *textAccum) (smog *float64, approx bool, fk, dc *float64, ptr *float64) {
	if v, err := SMOG(ta.counts()); err == nil {
		smog = &v

	} else if errors.Is(err, ErrTooFewSentences) {
		smog = &v
		approx = true
	}
	if v, err := FleschKincaid(ta.counts()); err == nil {
		fk = &v
	}
	if v, err := DaleChall(ta.counts()); err == nil {
		dc = &v
	}
	ptr = PTR(ta.ptrInputs())
	return
}

// BuildCorpusReport runs all the counting passes and formulas over a
// loaded corpus. The report is self-contained and JSON-serializable
// so it can be cached and archived as-is.
func BuildCorpusReport(
	corp *corpus.Corpus,
	cls *tagset.Classes,
	dict *metrics.SyllableDict,
	familiar *FamiliarWords,
) *CorpusReport {
	total := &textAccum{}
	tagHist := make(map[string]int)
	docScores := make([]DocumentScores, 0, len(corp.Documents))

	for _, doc := range corp.Documents {
		docAccum := &textAccum{}
		for i, sent := range doc.Sentences {
			var tree *metrics.Tree
			if i < len(doc.Trees) {
				tree = doc.Trees[i]
			}
			docAccum.addSentence(sent, tree, cls, dict, familiar)
			total.addSentence(sent, tree, cls, dict, familiar)
			for tag, cnt := range metrics.TagHistogram(sent) {
				tagHist[tag] += cnt
			}
		}
		smog, approx, fk, dc, ptr := scoreAccum(docAccum)
		docScores = append(docScores, DocumentScores{
			DocID:           doc.ID,
			Sentences:       docAccum.sentences,
			Words:           docAccum.words,
			SMOG:            smog,
			SMOGApproximate: approx,
			FleschKincaid:   fk,
			DaleChall:       dc,
			PTR:             ptr,
		})
	}

	ans := &CorpusReport{
		CorpusID:            corp.ID,
		Tagset:              cls.Tagset,
		Created:             time.Now(),
		NumDocuments:        len(corp.Documents),
		NumSentences:        total.sentences,
		NumWords:            total.words,
		NumSyllables:        total.syllables,
		NumMonosyllables:    total.mono,
		NumPolysyllables:    total.poly,
		NumDifficultWords:   total.difficult,
		RepeatedAdverbs:     total.advRepeats,
		RepeatedPossessives: total.possRepeats,
		TagHistogram:        tagHist,
		NumUniqueTags:       len(tagHist),
		Documents:           docScores,
	}
	if total.sentences > 0 {
		ans.AvgSentenceLength = float64(total.words) / float64(total.sentences)
	}
	if total.words > 0 {
		ans.AvgWordLength = float64(total.wordLenSum) / float64(total.words)
		ans.AvgSyllablesPerWord = float64(total.syllables) / float64(total.words)
	}
	ans.Trees = TreeStats{
		AvgDepth:      metrics.AvgHeight(total.trees),
		MaxDepth:      metrics.MaxHeight(total.trees),
		SubtreeCounts: make(map[string]int),
	}
	for _, t := range total.trees {
		ans.Trees.NumSubtrees += t.NumSubtrees()
		for label, cnt := range t.SubtreeCounts() {
			ans.Trees.SubtreeCounts[label] += cnt
		}
	}
	if total.sentences > 0 {
		ans.Trees.Coverage = float64(len(total.trees)) / float64(total.sentences)
	}
	ans.SMOG, ans.SMOGApproximate, ans.FleschKincaid, ans.DaleChall, ans.PTR = scoreAccum(total)
	return ans
}
