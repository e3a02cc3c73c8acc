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
	"bufio"
	"errors"
	"fmt"
	"html"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"rstat/v2/metrics"
)

var (
	// ErrorTooManyParsingErrors is returned when a vertical file
	// exceeds the configured malformed-line tolerance
	ErrorTooManyParsingErrors = errors.New("too many parsing errors")
)

// Document groups tagged sentences of a single <doc> structure
// along with their (optional) parse trees. Trees[i] belongs to
// Sentences[i] and may be nil in case the external parser provided
// no tree for the sentence.
type Document struct {
	ID        string
	Sentences []metrics.Sentence
	Trees     []*metrics.Tree
}

// ParsedTrees returns all the non-nil trees of the document
func (doc *Document) ParsedTrees() []*metrics.Tree {
	ans := make([]*metrics.Tree, 0, len(doc.Trees))
	for _, t := range doc.Trees {
		if t != nil {
			ans = append(ans, t)
		}
	}
	return ans
}

// Corpus is a fully loaded vertical file
type Corpus struct {
	ID        string
	Documents []Document
}

func (c *Corpus) NumDocuments() int {
	return len(c.Documents)
}

func (c *Corpus) NumSentences() int {
	ans := 0
	for _, doc := range c.Documents {
		ans += len(doc.Sentences)
	}
	return ans
}

// parseStructAttrs extracts attributes of a structural line, e.g.
// `id="doc1" year="2008"`. Values are expected to be double-quoted
// and XML-escaped.
func parseStructAttrs(src string) map[string]string {
	ans := make(map[string]string)
	i := 0
	for i < len(src) {
		for i < len(src) && src[i] == ' ' {
			i++
		}
		eq := strings.IndexByte(src[i:], '=')
		if eq < 0 {
			break
		}
		key := strings.TrimSpace(src[i : i+eq])
		i += eq + 1
		if i >= len(src) || src[i] != '"' {
			break
		}
		i++
		end := strings.IndexByte(src[i:], '"')
		if end < 0 {
			break
		}
		ans[key] = html.UnescapeString(src[i : i+end])
		i += end + 1
	}
	return ans
}

type vertParser struct {
	tagColIdx   int
	maxErrors   int
	numErrors   int
	docs        []Document
	currDoc     *Document
	currSent    metrics.Sentence
	currTree    *metrics.Tree
	insideSent  bool
	numAutoDocs int
}

func (p *vertParser) reportError(lineNum int, err error) error {
	p.numErrors++
	log.Warn().Err(err).Msgf("vertical line %d rejected", lineNum)
	if p.numErrors > p.maxErrors {
		return ErrorTooManyParsingErrors
	}
	return nil
}

func (p *vertParser) openDoc(ident string) {
	if ident == "" {
		p.numAutoDocs++
		ident = fmt.Sprintf("doc%d", p.numAutoDocs)
	}
	p.docs = append(p.docs, Document{ID: ident})
	p.currDoc = &p.docs[len(p.docs)-1]
}

func (p *vertParser) closeSentence() {
	if !p.insideSent {
		return
	}
	if p.currDoc == nil {
		p.openDoc("")
	}
	p.currDoc.Sentences = append(p.currDoc.Sentences, p.currSent)
	p.currDoc.Trees = append(p.currDoc.Trees, p.currTree)
	p.currSent = nil
	p.currTree = nil
	p.insideSent = false
}

func (p *vertParser) handleStructLine(line string, lineNum int) error {
	body := strings.Trim(line, "<>")
	switch {
	case strings.HasPrefix(body, "/"):
		name := strings.TrimPrefix(body, "/")
		if name == "s" {
			p.closeSentence()

		} else if name == "doc" {
			p.closeSentence()
			p.currDoc = nil
		}
	case body == "s" || strings.HasPrefix(body, "s "):
		p.closeSentence() // tolerate a missing </s>
		p.insideSent = true
		attrs := parseStructAttrs(strings.TrimPrefix(body, "s"))
		if src, ok := attrs["parse"]; ok {
			tree, err := metrics.ParseTree(src)
			if err != nil {
				if err2 := p.reportError(lineNum, err); err2 != nil {
					return err2
				}

			} else {
				p.currTree = tree
			}
		}
	case body == "doc" || strings.HasPrefix(body, "doc "):
		p.closeSentence()
		attrs := parseStructAttrs(strings.TrimPrefix(body, "doc"))
		p.openDoc(attrs["id"])
	}
	// other structures (<p>, <text>, ...) are of no use here
	return nil
}

func (p *vertParser) handleTokenLine(line string, lineNum int) error {
	cols := strings.Split(line, "\t")
	if len(cols) <= p.tagColIdx {
		return p.reportError(
			lineNum, fmt.Errorf("expected at least %d columns, found %d", p.tagColIdx+1, len(cols)))
	}
	if !p.insideSent {
		// tokens outside <s> start an implicit sentence
		p.insideSent = true
	}
	p.currSent = append(p.currSent, metrics.TaggedWord{Word: cols[0], Tag: cols[p.tagColIdx]})
	return nil
}

// ParseVertical reads a tagged vertical from the provided reader.
// The expected format is one token per line (word[TAB]...[TAB]tag...),
// sentences wrapped in <s>...</s> (where <s> may carry a bracketed
// constituency tree in its `parse` attribute) and documents wrapped
// in <doc id="...">...</doc>.
func ParseVertical(r io.Reader, tagColIdx, maxErrors int) ([]Document, error) {
	p := &vertParser{
		tagColIdx: tagColIdx,
		maxErrors: maxErrors,
		docs:      make([]Document, 0, 50),
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		var err error
		if strings.HasPrefix(line, "<") && strings.HasSuffix(line, ">") {
			err = p.handleStructLine(line, lineNum)

		} else {
			err = p.handleTokenLine(line, lineNum)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vertical: %w", err)
	}
	if p.insideSent {
		log.Warn().Msg("vertical file ends inside a sentence")
		p.closeSentence()
	}
	return p.docs, nil
}

// LoadCorpus reads the whole vertical file of a corpus into memory.
// The readability passes need repeated access to sentences so there
// is no point in streaming here - corpora this service analyzes are
// small compared to the indexed ones.
func LoadCorpus(corpusID string, setup *CorporaSetup) (*Corpus, error) {
	if err := validateCorpusID(corpusID); err != nil {
		return nil, NotFound{err}
	}
	fr, err := os.Open(setup.VerticalFilePath(corpusID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NotFound{fmt.Errorf("corpus %s not found", corpusID)}
		}
		return nil, fmt.Errorf("failed to load corpus %s: %w", corpusID, err)
	}
	defer fr.Close()
	tagColIdx := setup.TagColumnIdx
	if tagColIdx == 0 {
		tagColIdx = 1
	}
	docs, err := ParseVertical(fr, tagColIdx, setup.VertMaxNumErrors)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus %s: %w", corpusID, err)
	}
	return &Corpus{ID: corpusID, Documents: docs}, nil
}
