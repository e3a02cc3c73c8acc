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
	"path/filepath"

	"rstat/v2/tagset"
)

// CorporaSetup defines rstat application configuration related
// to corpora data
type CorporaSetup struct {

	// VerticalFilesDirPath is a directory where all the analyzable
	// vertical files ([corpusId].vert) are stored
	VerticalFilesDirPath string `json:"verticalFilesDirPath"`

	// DefaultTagset applies to corpora without an explicit tagset
	// query argument
	DefaultTagset tagset.SupportedTagset `json:"defaultTagset"`

	// TagColumnIdx is a zero-based index of the vertical column
	// the PoS tag is stored in (typically 1 for word/tag or
	// 2 for word/lemma/tag verticals)
	TagColumnIdx int `json:"tagColumnIdx"`

	// VertMaxNumErrors limits tolerated malformed lines before
	// a vertical file is rejected
	VertMaxNumErrors int `json:"vertMaxNumErrors"`
}

func (cs *CorporaSetup) VerticalFilePath(corpusID string) string {
	return filepath.Join(cs.VerticalFilesDirPath, corpusID+".vert")
}
