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
	"errors"
	"net/http"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

// Actions contains all the corpora-related REST actions
type Actions struct {
	conf *CorporaSetup
}

// CorporaList is an HTTP handler listing all the available corpora
func (a *Actions) CorporaList(ctx *gin.Context) {
	corpora, err := ListCorpora(a.conf)
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionErrorFrom(err), http.StatusInternalServerError)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{"corpora": corpora})
}

// GetCorpusInfo provides information about a corpus vertical file.
// With counts=1, the vertical is read through and document/sentence
// counts are attached (this may take a while for large corpora).
func (a *Actions) GetCorpusInfo(ctx *gin.Context) {
	corpusID := ctx.Param("corpusId")
	ans, err := GetCorpusInfo(corpusID, a.conf)
	if err != nil {
		var notFound NotFound
		if errors.As(err, &notFound) {
			uniresp.WriteJSONErrorResponse(
				ctx.Writer, uniresp.NewActionErrorFrom(err), http.StatusNotFound)

		} else {
			uniresp.WriteJSONErrorResponse(
				ctx.Writer, uniresp.NewActionErrorFrom(err), http.StatusInternalServerError)
		}
		return
	}
	if ctx.Query("counts") == "1" {
		corp, err := LoadCorpus(corpusID, a.conf)
		if err != nil {
			uniresp.WriteJSONErrorResponse(
				ctx.Writer, uniresp.NewActionErrorFrom(err), http.StatusInternalServerError)
			return
		}
		ans.Counts = &SizeInfo{
			NumDocuments: corp.NumDocuments(),
			NumSentences: corp.NumSentences(),
		}
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

// NewActions is the default factory
func NewActions(conf *CorporaSetup) *Actions {
	return &Actions{conf: conf}
}
