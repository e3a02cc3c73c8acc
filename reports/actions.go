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
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"rstat/v2/corpus"
	"rstat/v2/jobs"
	"rstat/v2/metrics"
	"rstat/v2/scoring"
	"rstat/v2/tagset"
)

const (
	dfltHistoryLimit = 20
)

// Actions contains readability report related actions
type Actions struct {
	conf       *corpus.CorporaSetup
	jobActions *jobs.Actions
	cache      *Cache

	// archive may be nil in case no database is configured
	archive *Archive
}

func (a *Actions) resolveTagset(ctx *gin.Context) (tagset.SupportedTagset, error) {
	st := tagset.SupportedTagset(ctx.Query("tagset"))
	if err := st.Validate(); err != nil {
		return "", err
	}
	if st == "" {
		st = a.conf.DefaultTagset
	}
	return st, nil
}

// runReportJob enqueues a report calculation. The cache promise is
// created here (not inside the queued function) so clients asking
// for the report right after _analyze wait for the result instead
// of getting a not-found answer. The calculation itself runs inside
// the queued function and stays subject to the job concurrency
// limit.
func (a *Actions) runReportJob(status ReportJobInfo) {
	cls, err := tagset.ClassesOf(status.Tagset)
	if err != nil {
		log.Error().Err(err).Msg("Failed to run report job")
		return
	}
	corpusID := status.CorpusID
	fulfill := a.cache.Promise(corpusID, status.Tagset)
	fn := func(updateJobChan chan<- jobs.GeneralJobInfo) {
		defer close(updateJobChan)
		var entry CacheEntry
		corp, err := corpus.LoadCorpus(corpusID, a.conf)
		if err != nil {
			entry = fulfill(nil, err)

		} else {
			entry = fulfill(scoring.BuildCorpusReport(
				corp, cls, metrics.EmbeddedSyllableDict(), scoring.EmbeddedFamiliarWords()), nil)
		}
		if entry.Err != nil {
			updateJobChan <- status.WithError(entry.Err).AsFinished()
			return
		}
		if a.archive != nil {
			if err := a.archive.Insert(entry.Report); err != nil {
				log.Error().Err(err).Str("corpusId", corpusID).Msg("Failed to archive report")
			}
		}
		status.Result = resultOf(entry.Report)
		updateJobChan <- status.AsFinished()
	}
	a.jobActions.EnqueueJob(&fn, status)
}

// Analyze starts an asynchronous readability report calculation.
// In case the same calculation is already running, the endpoint
// answers with 409 and the conflicting job info.
func (a *Actions) Analyze(ctx *gin.Context) {
	corpusID := ctx.Param("corpusId")
	st, err := a.resolveTagset(ctx)
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionErrorFrom(err), http.StatusUnprocessableEntity)
		return
	}
	if _, err := corpus.GetCorpusInfo(corpusID, a.conf); err != nil {
		var notFound corpus.NotFound
		if errors.As(err, &notFound) {
			uniresp.WriteJSONErrorResponse(
				ctx.Writer, uniresp.NewActionErrorFrom(err), http.StatusNotFound)

		} else {
			uniresp.WriteJSONErrorResponse(
				ctx.Writer, uniresp.NewActionErrorFrom(err), http.StatusInternalServerError)
		}
		return
	}
	if prevJob, ok := a.jobActions.LastUnfinishedJobOfType(corpusID, JobType); ok {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionError("the analysis of %s is already running (job %s)",
				corpusID, prevJob.GetID()),
			http.StatusConflict)
		return
	}
	jobID, err := uuid.NewUUID()
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionError("failed to start analysis"),
			http.StatusInternalServerError)
		return
	}
	status := ReportJobInfo{
		ID:       jobID.String(),
		Type:     JobType,
		CorpusID: corpusID,
		Tagset:   st,
		Start:    jobs.CurrentDatetime(),
	}
	a.runReportJob(status)
	uniresp.WriteJSONResponseWithStatus(ctx.Writer, http.StatusCreated, status.FullInfo())
}

// RestartReportJob re-runs a report calculation interrupted by a
// service shutdown
func (a *Actions) RestartReportJob(jinfo ReportJobInfo) error {
	if err := a.jobActions.TestAllowsJobRestart(jinfo); err != nil {
		return err
	}
	status := ReportJobInfo{
		ID:          jinfo.ID,
		Type:        jinfo.Type,
		CorpusID:    jinfo.CorpusID,
		Tagset:      jinfo.Tagset,
		Start:       jobs.CurrentDatetime(),
		NumRestarts: jinfo.NumRestarts + 1,
	}
	a.runReportJob(status)
	a.jobActions.ClearDetachedJob(jinfo.ID)
	log.Info().Msgf("Restarted report job %s", jinfo.ID)
	return nil
}

// GetReport provides the current readability report of a corpus.
// In case the report is still being calculated, the request waits
// for the result.
func (a *Actions) GetReport(ctx *gin.Context) {
	corpusID := ctx.Param("corpusId")
	st, err := a.resolveTagset(ctx)
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionErrorFrom(err), http.StatusUnprocessableEntity)
		return
	}
	entry, err := a.cache.Get(corpusID, st)
	if err == ErrEntryNotFound {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionError("no report for %s - run the analysis first", corpusID),
			http.StatusNotFound)
		return

	} else if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionErrorFrom(err), http.StatusInternalServerError)
		return
	}
	if entry.Err != nil {
		var notFound corpus.NotFound
		if errors.As(entry.Err, &notFound) {
			uniresp.WriteJSONErrorResponse(
				ctx.Writer, uniresp.NewActionErrorFrom(entry.Err), http.StatusNotFound)

		} else {
			uniresp.WriteJSONErrorResponse(
				ctx.Writer, uniresp.NewActionErrorFrom(entry.Err), http.StatusInternalServerError)
		}
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, entry.Report)
}

type correlationPair struct {
	Coefficient *float64 `json:"coefficient"`
	NumDocs     int      `json:"numDocs"`
}

type correlationResponse struct {
	CorpusID           string          `json:"corpusId"`
	Method             string          `json:"method"`
	PTRVsSMOG          correlationPair `json:"ptrVsSmog"`
	PTRVsFleschKincaid correlationPair `json:"ptrVsFleschKincaid"`
	PTRVsDaleChall     correlationPair `json:"ptrVsDaleChall"`
}

func correlate(method string, docs []scoring.DocumentScores, extract func(d scoring.DocumentScores) *float64) correlationPair {
	xs := make([]float64, 0, len(docs))
	ys := make([]float64, 0, len(docs))
	for _, doc := range docs {
		other := extract(doc)
		if doc.PTR == nil || other == nil {
			continue
		}
		xs = append(xs, *doc.PTR)
		ys = append(ys, *other)
	}
	ans := correlationPair{NumDocs: len(xs)}
	var v float64
	var err error
	if method == "spearman" {
		v, err = scoring.Spearman(xs, ys)

	} else {
		v, err = scoring.Pearson(xs, ys)
	}
	if err == nil {
		ans.Coefficient = &v
	}
	return ans
}

// Correlation compares the parse-tree score with the established
// formulas over the documents of an already analyzed corpus. The
// 'method' argument selects pearson (default) or spearman.
func (a *Actions) Correlation(ctx *gin.Context) {
	corpusID := ctx.Param("corpusId")
	st, err := a.resolveTagset(ctx)
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionErrorFrom(err), http.StatusUnprocessableEntity)
		return
	}
	method := ctx.DefaultQuery("method", "pearson")
	if method != "pearson" && method != "spearman" {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionError("method must be either pearson or spearman"),
			http.StatusUnprocessableEntity)
		return
	}
	entry, err := a.cache.GetIfReady(corpusID, st)
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionError("no finished report for %s - run the analysis first", corpusID),
			http.StatusNotFound)
		return
	}
	if entry.Err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionErrorFrom(entry.Err), http.StatusInternalServerError)
		return
	}
	docs := entry.Report.Documents
	ans := correlationResponse{
		CorpusID: corpusID,
		Method:   method,
		PTRVsSMOG: correlate(method, docs, func(d scoring.DocumentScores) *float64 {
			return d.SMOG
		}),
		PTRVsFleschKincaid: correlate(method, docs, func(d scoring.DocumentScores) *float64 {
			return d.FleschKincaid
		}),
		PTRVsDaleChall: correlate(method, docs, func(d scoring.DocumentScores) *float64 {
			return d.DaleChall
		}),
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

// History lists archived report summaries of a corpus, newest first
func (a *Actions) History(ctx *gin.Context) {
	if a.archive == nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionError("report archive is not configured"),
			http.StatusNotFound)
		return
	}
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(dfltHistoryLimit)))
	if err != nil || limit < 1 {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionError("limit must be a positive integer"),
			http.StatusBadRequest)
		return
	}
	history, err := a.archive.LoadHistory(ctx.Param("corpusId"), limit)
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionErrorFrom(err), http.StatusInternalServerError)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{"reports": history})
}

// RestartDetachedJobs re-enqueues report jobs interrupted by the
// last shutdown. Jobs over the restart limit are dropped.
func (a *Actions) RestartDetachedJobs() {
	for _, detached := range a.jobActions.GetDetachedJobs() {
		jinfo, ok := detached.(ReportJobInfo)
		if !ok {
			if _, isDummy := detached.(jobs.DummyJobInfo); !isDummy {
				log.Warn().Msgf(
					"unknown detached job type %s - removing", detached.GetType())
			}
			a.jobActions.ClearDetachedJob(detached.GetID())
			continue
		}
		if err := a.RestartReportJob(jinfo); err != nil {
			log.Error().Err(err).Msgf("Failed to restart job %s", jinfo.ID)
			a.jobActions.ClearDetachedJob(jinfo.ID)
		}
	}
}

// NewActions is the default factory. The archive argument may be nil
// in case no archive database is configured.
func NewActions(
	conf *corpus.CorporaSetup,
	jobActions *jobs.Actions,
	cache *Cache,
	archive *Archive,
) *Actions {
	if cache == nil {
		panic(fmt.Errorf("reports.NewActions: cache must not be nil"))
	}
	return &Actions{
		conf:       conf,
		jobActions: jobActions,
		cache:      cache,
		archive:    archive,
	}
}
