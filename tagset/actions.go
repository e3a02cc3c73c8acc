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
	"net/http"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

type Actions struct {
}

// PosSets provides word-class tables of all the supported tagsets
func (a *Actions) PosSets(ctx *gin.Context) {
	uniresp.WriteJSONResponse(ctx.Writer, posList)
}

// GetPosSetInfo provides a word-class table of a single tagset
func (a *Actions) GetPosSetInfo(ctx *gin.Context) {
	posID := ctx.Param("posId")
	for _, pos := range posList {
		if pos.ID == posID {
			uniresp.WriteJSONResponse(ctx.Writer, pos)
			return
		}
	}
	uniresp.WriteJSONErrorResponse(
		ctx.Writer,
		uniresp.NewActionError("tagset %s not found", posID),
		http.StatusNotFound,
	)
}

func NewActions() *Actions {
	return &Actions{}
}
