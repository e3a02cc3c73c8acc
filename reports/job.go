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

package reports

import (
	"rstat/v2/jobs"
	"rstat/v2/scoring"
	"rstat/v2/tagset"
)

const (
	JobType = "readability-report"
)

// ReportJobResult is a compact result attached to a finished report
// job. The full report is available via the report endpoint (and the
// archive database), there is no need to drag it through the job table.
type ReportJobResult struct {
	NumDocuments  int      `json:"numDocuments"`
	NumSentences  int      `json:"numSentences"`
	NumWords      int      `json:"numWords"`
	SMOG          *float64 `json:"smog"`
	FleschKincaid *float64 `json:"fleschKincaid"`
	DaleChall     *float64 `json:"daleChall"`
	PTR           *float64 `json:"ptr"`
}

func resultOf(rep *scoring.CorpusReport) *ReportJobResult {
	return &ReportJobResult{
		NumDocuments:  rep.NumDocuments,
		NumSentences:  rep.NumSentences,
		NumWords:      rep.NumWords,
		SMOG:          rep.SMOG,
		FleschKincaid: rep.FleschKincaid,
		DaleChall:     rep.DaleChall,
		PTR:           rep.PTR,
	}
}

// ReportJobInfo collects information about a running (or finished)
// readability report calculation
type ReportJobInfo struct {
	ID          string                 `json:"id"`
	Type        string                 `json:"type"`
	CorpusID    string                 `json:"corpusId"`
	Tagset      tagset.SupportedTagset `json:"tagset"`
	Start       jobs.JSONTime          `json:"start"`
	Update      jobs.JSONTime          `json:"update"`
	Finished    bool                   `json:"finished"`
	Error       *jobs.JSONError        `json:"error,omitempty"`
	Result      *ReportJobResult       `json:"result"`
	NumRestarts int                    `json:"numRestarts"`
}

func (j ReportJobInfo) GetID() string {
	return j.ID
}

func (j ReportJobInfo) GetType() string {
	return j.Type
}

func (j ReportJobInfo) GetStartDT() jobs.JSONTime {
	return j.Start
}

func (j ReportJobInfo) GetNumRestarts() int {
	return j.NumRestarts
}

func (j ReportJobInfo) GetCorpus() string {
	return j.CorpusID
}

func (j ReportJobInfo) IsFinished() bool {
	return j.Finished
}

func (j ReportJobInfo) AsFinished() jobs.GeneralJobInfo {
	j.Update = jobs.CurrentDatetime()
	j.Finished = true
	return j
}

func (j ReportJobInfo) CompactVersion() jobs.JobInfoCompact {
	item := jobs.JobInfoCompact{
		ID:       j.ID,
		Type:     j.Type,
		CorpusID: j.CorpusID,
		Start:    j.Start,
		Update:   j.Update,
		Finished: j.Finished,
		OK:       true,
	}
	if j.GetError() != nil || (j.Finished && j.Result == nil) {
		item.OK = false
	}
	return item
}

func (j ReportJobInfo) FullInfo() any {
	return struct {
		ID          string                 `json:"id"`
		Type        string                 `json:"type"`
		CorpusID    string                 `json:"corpusId"`
		Tagset      tagset.SupportedTagset `json:"tagset"`
		Start       jobs.JSONTime          `json:"start"`
		Update      jobs.JSONTime          `json:"update"`
		Finished    bool                   `json:"finished"`
		Error       string                 `json:"error,omitempty"`
		OK          bool                   `json:"ok"`
		Result      *ReportJobResult       `json:"result"`
		NumRestarts int                    `json:"numRestarts"`
	}{
		ID:          j.ID,
		Type:        j.Type,
		CorpusID:    j.CorpusID,
		Tagset:      j.Tagset,
		Start:       j.Start,
		Update:      j.Update,
		Finished:    j.Finished,
		Error:       jobs.ErrorToString(j.GetError()),
		OK:          j.GetError() == nil,
		Result:      j.Result,
		NumRestarts: j.NumRestarts,
	}
}

func (j ReportJobInfo) GetError() error {
	if j.Error == nil || j.Error.IsEmpty() {
		return nil
	}
	return j.Error
}

func (j ReportJobInfo) WithError(err error) jobs.GeneralJobInfo {
	e := jobs.NewJSONError(err)
	return ReportJobInfo{
		ID:          j.ID,
		Type:        j.Type,
		CorpusID:    j.CorpusID,
		Tagset:      j.Tagset,
		Start:       j.Start,
		Update:      jobs.CurrentDatetime(),
		Finished:    j.Finished,
		Error:       &e,
		Result:      j.Result,
		NumRestarts: j.NumRestarts,
	}
}
