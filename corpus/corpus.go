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
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/czcorpus/cnc-gokit/fs"

	"rstat/v2/tagset"
)

// FileMappedValue is an abstraction of a configured file-related
// value where 'Value' represents the value to be inserted into
// answers and may or may not be an actual file path.
type FileMappedValue struct {
	Value        string  `json:"value"`
	Path         string  `json:"-"`
	FileExists   bool    `json:"exists"`
	LastModified *string `json:"lastModified"`
	Size         int64   `json:"size"`
}

// SizeInfo provides corpus size information obtained by actually
// reading through the vertical file
type SizeInfo struct {
	NumDocuments int `json:"numDocuments"`
	NumSentences int `json:"numSentences"`
}

// Info wraps information about a corpus vertical file installation
type Info struct {
	ID       string                 `json:"id"`
	Vertical FileMappedValue        `json:"vertical"`
	Tagset   tagset.SupportedTagset `json:"tagset"`
	Counts   *SizeInfo              `json:"counts,omitempty"`
}

// NotFound means the corpus (i.e. its vertical file) does not exist
type NotFound struct {
	error
}

// InfoError is a general corpus data information error.
// Please note that we do not consider 'data not being present'
// an error.
type InfoError struct {
	error
}

// bindValueToPath creates a new FileMappedValue instance
// using 'value' argument. Then it tests whether the
// 'path' exists and if so then it sets related properties
// (FileExists, LastModified, Size) to proper values.
func bindValueToPath(value, path string) (FileMappedValue, error) {
	ans := FileMappedValue{Value: value, Path: path}
	isFile, _ := fs.IsFile(path)
	if isFile {
		mTime, err := fs.GetFileMtime(path)
		if err != nil {
			return ans, err
		}
		mTimeString := mTime.Format("2006-01-02T15:04:05-0700")
		size, err := fs.FileSize(path)
		if err != nil {
			return ans, err
		}
		ans.FileExists = true
		ans.LastModified = &mTimeString
		ans.Size = size
	}
	return ans, nil
}

func validateCorpusID(corpusID string) error {
	if corpusID == "" || strings.ContainsAny(corpusID, "/\\.") {
		return fmt.Errorf("invalid corpus ID: %s", corpusID)
	}
	return nil
}

// GetCorpusInfo provides miscellaneous information about a corpus
// vertical file. It should return an error only in case the
// filesystem produces some (i.e. not in case something is just
// not found).
func GetCorpusInfo(corpusID string, setup *CorporaSetup) (*Info, error) {
	if err := validateCorpusID(corpusID); err != nil {
		return nil, NotFound{err}
	}
	ans := &Info{ID: corpusID, Tagset: setup.DefaultTagset}
	vertPath := setup.VerticalFilePath(corpusID)
	vertical, err := bindValueToPath(vertPath, vertPath)
	if err != nil {
		return nil, InfoError{err}
	}
	ans.Vertical = vertical
	if !vertical.FileExists {
		return nil, NotFound{fmt.Errorf("corpus %s not found", corpusID)}
	}
	return ans, nil
}

// ListCorpora returns identifiers of all the corpora (i.e. all the
// vertical files) available for analysis, sorted alphabetically.
func ListCorpora(setup *CorporaSetup) ([]string, error) {
	entries, err := os.ReadDir(setup.VerticalFilesDirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list corpora: %w", err)
	}
	ans := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".vert") {
			ans = append(ans, strings.TrimSuffix(name, ".vert"))
		}
	}
	sort.Strings(ans)
	return ans, nil
}
