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
	"errors"
	"fmt"
	"strings"

	"rstat/v2/general/collections"
)

var (
	ErrorEmptyTree = errors.New("empty tree source")
)

// Tree is a constituency parse tree of a single sentence as produced
// by an external statistical parser. Leaves are label-only nodes
// holding the token itself.
type Tree struct {
	Label    string  `json:"label"`
	Children []*Tree `json:"children,omitempty"`
}

func (t *Tree) IsLeaf() bool {
	return len(t.Children) == 0
}

// Height returns the height of the tree using the convention where
// a bare leaf has height 1 and a preterminal like (NN dog) has
// height 2.
func (t *Tree) Height() int {
	if t.IsLeaf() {
		return 1
	}
	maxChild := 0
	for _, ch := range t.Children {
		if h := ch.Height(); h > maxChild {
			maxChild = h
		}
	}
	return maxChild + 1
}

// NumSubtrees returns the number of internal (non-leaf) nodes
func (t *Tree) NumSubtrees() int {
	if t.IsLeaf() {
		return 0
	}
	ans := 1
	for _, ch := range t.Children {
		ans += ch.NumSubtrees()
	}
	return ans
}

// SubtreesByLabel collects all the internal nodes grouped by their label
func (t *Tree) SubtreesByLabel() *collections.Multidict[*Tree] {
	ans := collections.NewMultidict[*Tree]()
	t.collectSubtrees(ans)
	return ans
}

func (t *Tree) collectSubtrees(md *collections.Multidict[*Tree]) {
	if t.IsLeaf() {
		return
	}
	md.Add(t.Label, t)
	for _, ch := range t.Children {
		ch.collectSubtrees(md)
	}
}

// SubtreeCounts returns the number of subtrees per constituent label
func (t *Tree) SubtreeCounts() map[string]int {
	ans := make(map[string]int)
	t.SubtreesByLabel().ForEach(func(k string, v []*Tree) error {
		ans[k] = len(v)
		return nil
	})
	return ans
}

// MaxHeight returns the max tree height over a collection of parse
// trees (zero for an empty collection)
func MaxHeight(trees []*Tree) int {
	ans := 0
	for _, t := range trees {
		if h := t.Height(); h > ans {
			ans = h
		}
	}
	return ans
}

// AvgHeight returns the average tree height over a collection of
// parse trees (zero for an empty collection)
func AvgHeight(trees []*Tree) float64 {
	if len(trees) == 0 {
		return 0
	}
	total := 0
	for _, t := range trees {
		total += t.Height()
	}
	return float64(total) / float64(len(trees))
}

// ParseTree parses a bracketed constituency expression, e.g.
// (S (NP (DT the) (NN dog)) (VP (VBZ barks)))
func ParseTree(src string) (*Tree, error) {
	tokens := tokenizeTree(src)
	if len(tokens) == 0 {
		return nil, ErrorEmptyTree
	}
	tree, rest, err := parseNode(tokens)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("malformed tree: trailing content near %q", rest[0])
	}
	return tree, nil
}

func tokenizeTree(src string) []string {
	src = strings.ReplaceAll(src, "(", " ( ")
	src = strings.ReplaceAll(src, ")", " ) ")
	return strings.Fields(src)
}

func parseNode(tokens []string) (*Tree, []string, error) {
	if len(tokens) == 0 {
		return nil, nil, errors.New("malformed tree: unexpected end of input")
	}
	if tokens[0] != "(" {
		// a bare token - the leaf
		return &Tree{Label: tokens[0]}, tokens[1:], nil
	}
	tokens = tokens[1:]
	if len(tokens) == 0 || tokens[0] == "(" || tokens[0] == ")" {
		return nil, nil, errors.New("malformed tree: missing node label")
	}
	node := &Tree{Label: tokens[0]}
	tokens = tokens[1:]
	for {
		if len(tokens) == 0 {
			return nil, nil, errors.New("malformed tree: missing closing bracket")
		}
		if tokens[0] == ")" {
			if len(node.Children) == 0 {
				return nil, nil, fmt.Errorf("malformed tree: node %s has no children", node.Label)
			}
			return node, tokens[1:], nil
		}
		child, rest, err := parseNode(tokens)
		if err != nil {
			return nil, nil, err
		}
		node.Children = append(node.Children, child)
		tokens = rest
	}
}
