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

package corpus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testVertical = `<doc id="essay1">
<s parse="(S (NP (DT The) (NN dog)) (VP (VBZ barks)))">
The	DT
dog	NN
barks	VBZ
.	.
</s>
<s>
Yes	UH
</s>
</doc>
<doc id="essay2">
<s>
No	UH
</s>
</doc>
`

func TestParseVertical(t *testing.T) {
	docs, err := ParseVertical(strings.NewReader(testVertical), 1, 0)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(docs))
	assert.Equal(t, "essay1", docs[0].ID)
	assert.Equal(t, "essay2", docs[1].ID)
	assert.Equal(t, 2, len(docs[0].Sentences))
	assert.Equal(t, 4, len(docs[0].Sentences[0]))
	assert.Equal(t, "dog", docs[0].Sentences[0][1].Word)
	assert.Equal(t, "NN", docs[0].Sentences[0][1].Tag)
}

func TestParseVerticalTrees(t *testing.T) {
	docs, err := ParseVertical(strings.NewReader(testVertical), 1, 0)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(docs[0].Trees))
	assert.NotNil(t, docs[0].Trees[0])
	assert.Nil(t, docs[0].Trees[1])
	assert.Equal(t, "S", docs[0].Trees[0].Label)
	assert.Equal(t, 1, len(docs[0].ParsedTrees()))
}

func TestParseVerticalEscapedAttrs(t *testing.T) {
	src := "<s parse=\"(S (NN &quot;x&quot;))\">\nx\tNN\n</s>\n"
	docs, err := ParseVertical(strings.NewReader(src), 1, 0)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(docs))
	assert.Equal(t, "doc1", docs[0].ID)
	assert.NotNil(t, docs[0].Trees[0])
	assert.Equal(t, "\"x\"", docs[0].Trees[0].Children[0].Children[0].Label)
}

func TestParseVerticalHeaderless(t *testing.T) {
	src := "Hello\tUH\nworld\tNN\n"
	docs, err := ParseVertical(strings.NewReader(src), 1, 0)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(docs))
	assert.Equal(t, 1, len(docs[0].Sentences))
	assert.Equal(t, 2, len(docs[0].Sentences[0]))
}

func TestParseVerticalErrorTolerance(t *testing.T) {
	src := "<s>\nok\tNN\nbroken-line\n</s>\n"
	_, err := ParseVertical(strings.NewReader(src), 1, 0)
	assert.Equal(t, ErrorTooManyParsingErrors, err)

	docs, err := ParseVertical(strings.NewReader(src), 1, 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(docs[0].Sentences[0]))
}

func TestNumSentences(t *testing.T) {
	docs, err := ParseVertical(strings.NewReader(testVertical), 1, 0)
	assert.NoError(t, err)
	corp := &Corpus{ID: "test", Documents: docs}
	assert.Equal(t, 2, corp.NumDocuments())
	assert.Equal(t, 3, corp.NumSentences())
}
