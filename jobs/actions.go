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
	"net/http"
	"sort"
	"strconv"
	"sync"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

const (
	tableActionUpdateJob = iota
	tableActionClearOldJobs
	tableActionClearJob
)

// TableUpdate is a job table queue element specifying
// required operation on the table
type TableUpdate struct {
	action int
	data   GeneralJobInfo
	jobID  string
}

// Actions contains async job-related actions
type Actions struct {
	conf *Conf
	lang language.Tag

	// syncJobs must be accessed under tableLock; writes go
	// exclusively through the tableUpdate channel
	syncJobs  map[string]GeneralJobInfo
	tableLock sync.RWMutex

	// detachedJobs contains jobs which were running when the
	// service was shut down. They cannot be resumed directly -
	// a respective handler must re-enqueue them.
	detachedJobs map[string]GeneralJobInfo

	jobQueue   JobQueue
	numRunning int
	queueLock  sync.Mutex

	// tableUpdate is the only way syncJobs are actually
	// updated
	tableUpdate chan TableUpdate
}

func (a *Actions) createJobList(unfinishedOnly bool) JobInfoList {
	a.tableLock.RLock()
	defer a.tableLock.RUnlock()
	ans := make(JobInfoList, 0, len(a.syncJobs))
	for _, v := range a.syncJobs {
		if unfinishedOnly && v.IsFinished() {
			continue
		}
		ans = append(ans, v)
	}
	return ans
}

// ClearOldJobs clears the job table by removing
// too old jobs
func (a *Actions) ClearOldJobs() {
	a.tableUpdate <- TableUpdate{
		action: tableActionClearOldJobs,
	}
}

// LastUnfinishedJobOfType returns the first matching unfinished job
// for the same corpus and job type
func (a *Actions) LastUnfinishedJobOfType(corpusID, jobType string) (GeneralJobInfo, bool) {
	a.tableLock.RLock()
	defer a.tableLock.RUnlock()
	job := FindUnfinishedJobOfType(a.syncJobs, corpusID, jobType)
	return job, job != nil
}

// GetJob searches the job table by a full job id or its unambiguous
// prefix
func (a *Actions) GetJob(jobID string) GeneralJobInfo {
	a.tableLock.RLock()
	defer a.tableLock.RUnlock()
	return FindJob(a.syncJobs, jobID)
}

// TestAllowsJobRestart decides whether a detached job may be run
// again under the configured restart limit
func (a *Actions) TestAllowsJobRestart(job GeneralJobInfo) error {
	if job.GetNumRestarts() >= a.conf.MaxNumRestarts {
		return fmt.Errorf("cannot restart job %s: restart limit reached", job.GetID())
	}
	return nil
}

// GetDetachedJobs lists jobs which were interrupted by a service
// shutdown
func (a *Actions) GetDetachedJobs() []GeneralJobInfo {
	ans := make([]GeneralJobInfo, 0, len(a.detachedJobs))
	for _, v := range a.detachedJobs {
		ans = append(ans, v)
	}
	return ans
}

// ClearDetachedJob removes a detached job from the table once its
// restarted (or abandoned) variant takes over
func (a *Actions) ClearDetachedJob(jobID string) bool {
	_, ok := a.detachedJobs[jobID]
	delete(a.detachedJobs, jobID)
	return ok
}

// EnqueueJob adds a new job to the job queue. The job is started
// immediately if the number of running jobs is below the configured
// limit, otherwise it waits for a free slot.
func (a *Actions) EnqueueJob(fn *QueuedFunc, initialStatus GeneralJobInfo) {
	if initialStatus.GetID() == "" {
		log.Error().Msg("Cannot enqueue job with empty ID")
		return
	}
	a.tableUpdate <- TableUpdate{
		action: tableActionUpdateJob,
		data:   initialStatus,
	}
	a.queueLock.Lock()
	a.jobQueue.Enqueue(fn, initialStatus)
	a.queueLock.Unlock()
	a.tryNextJob()
}

func (a *Actions) tryNextJob() {
	a.queueLock.Lock()
	if a.numRunning >= a.conf.MaxNumConcurrentJobs {
		a.queueLock.Unlock()
		return
	}
	fn, initialState, err := a.jobQueue.Dequeue()
	if err == ErrorEmptyQueue {
		a.queueLock.Unlock()
		return
	}
	a.numRunning++
	a.queueLock.Unlock()

	updateJobChan := make(chan GeneralJobInfo, 10)
	go func() {
		lastState := initialState
		for item := range updateJobChan {
			lastState = item
			a.tableUpdate <- TableUpdate{
				action: tableActionUpdateJob,
				data:   item,
			}
		}
		if !lastState.IsFinished() {
			lastState = lastState.AsFinished()
			a.tableUpdate <- TableUpdate{
				action: tableActionUpdateJob,
				data:   lastState,
			}
		}
		a.notifyJobFinished(lastState)
		a.queueLock.Lock()
		a.numRunning--
		a.queueLock.Unlock()
		a.tryNextJob()
	}()
	go (*fn)(updateJobChan)
}

// JobList provides a list of all the (recent) jobs. With compact=1,
// type-specific status information is discarded. With
// unfinishedOnly=1, finished jobs are filtered out.
func (a *Actions) JobList(ctx *gin.Context) {
	compInt, err := strconv.Atoi(ctx.DefaultQuery("compact", "0"))
	if err != nil || compInt < 0 || compInt > 1 {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionError("compact argument must be either 0 or 1"),
			http.StatusBadRequest)
		return
	}
	unfinishedOnly := ctx.Query("unfinishedOnly") == "1"
	if compInt == 1 {
		jobList := a.createJobList(unfinishedOnly)
		ans := make(JobInfoListCompact, 0, len(jobList))
		for _, v := range jobList {
			item := v.CompactVersion()
			ans = append(ans, &item)
		}
		sort.Sort(sort.Reverse(ans))
		uniresp.WriteJSONResponse(ctx.Writer, ans)

	} else {
		ans := a.createJobList(unfinishedOnly)
		sort.Sort(sort.Reverse(ans))
		uniresp.WriteJSONResponse(ctx.Writer, ans)
	}
}

// JobInfo gives an information about a specific job
func (a *Actions) JobInfo(ctx *gin.Context) {
	job := a.GetJob(ctx.Param("jobId"))
	if job != nil {
		uniresp.WriteJSONResponse(ctx.Writer, job.FullInfo())

	} else {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionError("job not found"), http.StatusNotFound)
	}
}

// Delete removes a finished job from the job table
func (a *Actions) Delete(ctx *gin.Context) {
	jobID := ctx.Param("jobId")
	a.tableLock.RLock()
	job, ok := a.syncJobs[jobID]
	a.tableLock.RUnlock()
	if !ok {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionError("job not found"), http.StatusNotFound)
		return
	}
	if !job.IsFinished() {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionError("cannot remove an unfinished job"),
			http.StatusConflict)
		return
	}
	a.tableUpdate <- TableUpdate{
		action: tableActionClearJob,
		jobID:  jobID,
	}
	uniresp.WriteJSONResponse(ctx.Writer, job.FullInfo())
}

// ClearIfFinished removes a job from the table in case it is
// finished. Unlike Delete, an unfinished job is not an error here -
// the answer just says nothing was removed.
func (a *Actions) ClearIfFinished(ctx *gin.Context) {
	jobID := ctx.Param("jobId")
	a.tableLock.RLock()
	job, ok := a.syncJobs[jobID]
	a.tableLock.RUnlock()
	if !ok {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionError("job not found"), http.StatusNotFound)
		return
	}
	removed := false
	if job.IsFinished() {
		a.tableUpdate <- TableUpdate{
			action: tableActionClearJob,
			jobID:  jobID,
		}
		removed = true
	}
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{
		"removed": removed,
		"job":     job.FullInfo(),
	})
}

// OnExit gob-encodes the current job table so unfinished jobs can
// be detected (and possibly restarted) on the next startup
func (a *Actions) OnExit() {
	if a.conf.StatusDataPath != "" {
		log.Info().Msgf("saving state to %s", a.conf.StatusDataPath)
		jobList := a.createJobList(false)
		err := jobList.Serialize(a.conf.StatusDataPath)
		if err != nil {
			log.Error().Err(err).Msg("failed to save job table")
		}

	} else {
		log.Warn().Msg("no status file specified, discarding job list")
	}
}

// NewActions is the default factory
func NewActions(conf *Conf, lang language.Tag) *Actions {
	ans := &Actions{
		conf:         conf,
		lang:         lang,
		syncJobs:     make(map[string]GeneralJobInfo),
		detachedJobs: make(map[string]GeneralJobInfo),
		tableUpdate:  make(chan TableUpdate),
	}
	if isFile, _ := fs.IsFile(conf.StatusDataPath); isFile {
		log.Info().Msgf("found status data in %s - loading...", conf.StatusDataPath)
		jobs, err := LoadJobList(conf.StatusDataPath)
		if err != nil {
			log.Error().Err(err).Msg("failed to load status data")
		}
		log.Info().Msgf("loaded %d job(s)", len(jobs))
		for _, job := range jobs {
			if job.IsFinished() {
				ans.syncJobs[job.GetID()] = job

			} else {
				ans.detachedJobs[job.GetID()] = job
			}
		}
	}
	go func() {
		for upd := range ans.tableUpdate {
			ans.tableLock.Lock()
			switch upd.action {
			case tableActionUpdateJob:
				ans.syncJobs[upd.data.GetID()] = upd.data
			case tableActionClearOldJobs:
				clearOldJobs(ans.syncJobs)
			case tableActionClearJob:
				delete(ans.syncJobs, upd.jobID)
			}
			ans.tableLock.Unlock()
		}
	}()
	return ans
}
