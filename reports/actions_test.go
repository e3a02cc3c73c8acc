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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"rstat/v2/corpus"
	"rstat/v2/jobs"
	"rstat/v2/tagset"
)

const testVertical = `<doc id="essay1">
<s>
Hello	UH
world	NN
.	.
</s>
</doc>
`

func testReportActions(t *testing.T, maxConcurrentJobs int) *Actions {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "corp1.vert"), []byte(testVertical), 0644)
	assert.NoError(t, err)
	conf := &corpus.CorporaSetup{
		VerticalFilesDirPath: dir,
		DefaultTagset:        tagset.TagsetEnPenn,
		TagColumnIdx:         1,
		VertMaxNumErrors:     10,
	}
	jobActions := jobs.NewActions(
		&jobs.Conf{MaxNumConcurrentJobs: maxConcurrentJobs}, language.English)
	return NewActions(conf, jobActions, NewCache(time.UTC), nil)
}

func testReportJobStatus() ReportJobInfo {
	return ReportJobInfo{
		ID:       "job-1",
		Type:     JobType,
		CorpusID: "corp1",
		Tagset:   tagset.TagsetEnPenn,
		Start:    jobs.CurrentDatetime(),
	}
}

// A queued report must not be calculated while no job slot is
// available - the promise stays pending until the job engine actually
// runs the queued function.
func TestReportJobWaitsForFreeSlot(t *testing.T) {
	a := testReportActions(t, 0)
	a.runReportJob(testReportJobStatus())
	time.Sleep(100 * time.Millisecond)
	entry, err := a.cache.GetIfReady("corp1", tagset.TagsetEnPenn)
	assert.Equal(t, ErrEntryNotReadyYet, err)
	assert.False(t, entry.IsReady())
}

func TestReportJobCalculatesWithFreeSlot(t *testing.T) {
	a := testReportActions(t, 1)
	a.runReportJob(testReportJobStatus())
	entry, err := a.cache.Get("corp1", tagset.TagsetEnPenn)
	assert.NoError(t, err)
	assert.NoError(t, entry.Err)
	assert.Equal(t, 2, entry.Report.NumWords)
	assert.Equal(t, 1, entry.Report.NumSentences)
}

func TestReportJobStoresLoadError(t *testing.T) {
	a := testReportActions(t, 1)
	status := testReportJobStatus()
	status.CorpusID = "missing"
	a.runReportJob(status)
	entry, err := a.cache.Get("missing", tagset.TagsetEnPenn)
	assert.NoError(t, err)
	assert.Error(t, entry.Err)
	assert.Nil(t, entry.Report)
}
