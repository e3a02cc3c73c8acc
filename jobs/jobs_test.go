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

package jobs

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func testJobTable() map[string]GeneralJobInfo {
	return map[string]GeneralJobInfo{
		"abc-123": DummyJobInfo{ID: "abc-123", Type: "dummy-job", CorpusID: "corp1"},
		"abd-456": DummyJobInfo{ID: "abd-456", Type: "dummy-job", CorpusID: "corp2", Finished: true},
		"xyz-789": DummyJobInfo{ID: "xyz-789", Type: "dummy-job", CorpusID: "corp1", Finished: true},
	}
}

func TestFindJobFullID(t *testing.T) {
	table := testJobTable()
	job := FindJob(table, "abc-123")
	assert.NotNil(t, job)
	assert.Equal(t, "abc-123", job.GetID())
}

func TestFindJobPrefix(t *testing.T) {
	table := testJobTable()
	job := FindJob(table, "xyz")
	assert.NotNil(t, job)
	assert.Equal(t, "xyz-789", job.GetID())
}

func TestFindJobAmbiguousPrefix(t *testing.T) {
	table := testJobTable()
	assert.Nil(t, FindJob(table, "ab"))
}

func TestFindJobNoMatch(t *testing.T) {
	table := testJobTable()
	assert.Nil(t, FindJob(table, "foo"))
}

func TestFindUnfinishedJobOfType(t *testing.T) {
	table := testJobTable()
	job := FindUnfinishedJobOfType(table, "corp1", "dummy-job")
	assert.NotNil(t, job)
	assert.Equal(t, "abc-123", job.GetID())
	assert.Nil(t, FindUnfinishedJobOfType(table, "corp2", "dummy-job"))
	assert.Nil(t, FindUnfinishedJobOfType(table, "corp1", "readability-report"))
}

func TestClearFinishedJob(t *testing.T) {
	table := testJobTable()
	job, removed := ClearFinishedJob(table, "xyz-789")
	assert.True(t, removed)
	assert.Equal(t, "xyz-789", job.GetID())
	_, ok := table["xyz-789"]
	assert.False(t, ok)
}

func TestClearFinishedJobOnUnfinished(t *testing.T) {
	table := testJobTable()
	job, removed := ClearFinishedJob(table, "abc-123")
	assert.False(t, removed)
	assert.NotNil(t, job)
	_, ok := table["abc-123"]
	assert.True(t, ok)
}

func TestClearFinishedJobOnMissing(t *testing.T) {
	table := testJobTable()
	job, removed := ClearFinishedJob(table, "unknown")
	assert.False(t, removed)
	assert.Nil(t, job)
}

// The job table is written by the table-update goroutine while HTTP
// handlers read it; this must stay safe under the race detector.
func TestConcurrentJobTableAccess(t *testing.T) {
	actions := NewActions(&Conf{MaxNumConcurrentJobs: 2}, language.English)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			fn := QueuedFunc(func(updateJobChan chan<- GeneralJobInfo) {
				close(updateJobChan)
			})
			actions.EnqueueJob(&fn, DummyJobInfo{
				ID:       fmt.Sprintf("job-%03d", i),
				Type:     "dummy-job",
				CorpusID: "corp1",
				Start:    CurrentDatetime(),
			})
		}
	}()
	for i := 0; i < 200; i++ {
		actions.GetJob(fmt.Sprintf("job-%03d", i))
		actions.LastUnfinishedJobOfType("corp1", "dummy-job")
		actions.createJobList(false)
	}
	wg.Wait()
	assert.NotNil(t, actions.GetJob("job-000"))
}
