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

package main

import (
	"context"
	"encoding/gob"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"rstat/v2/cnf"
	"rstat/v2/corpus"
	"rstat/v2/general"
	"rstat/v2/jobs"
	"rstat/v2/reports"
	"rstat/v2/root"
	"rstat/v2/tagset"
)

var (
	version   string
	buildDate string
	gitCommit string
)

type ExitHandler interface {
	OnExit()
}

func setupLog(path string, level string) {
	if lvl, err := zerolog.ParseLevel(level); err == nil && level != "" {
		zerolog.SetGlobalLevel(lvl)
	}
	if path != "" {
		logf, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Fatal().Msgf("Failed to initialize log. File: %s", path)
		}
		log.Logger = log.Output(logf)

	} else {
		log.Logger = log.Output(
			zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: time.RFC3339,
			},
		)
	}
}

func init() {
	gob.Register(reports.ReportJobInfo{})
	gob.Register(jobs.DummyJobInfo{})
}

func main() {
	version := general.VersionInfo{
		Version:   version,
		BuildDate: buildDate,
		GitCommit: gitCommit,
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "CNC-RSTAT - Readability statistics for corpora\n\nUsage:\n\t%s [options] start [config.json]\n\t%s [options] version\n",
			filepath.Base(os.Args[0]), filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	action := flag.Arg(0)
	if action == "version" {
		fmt.Printf("cnc-rstat %s\nbuild date: %s\nlast commit: %s\n", version.Version, version.BuildDate, version.GitCommit)
		return

	} else if action != "start" {
		log.Fatal().Msgf("Unknown action %s", action)
	}
	conf := cnf.LoadConfig(flag.Arg(1))
	setupLog(conf.LogFile, string(conf.LogLevel))
	log.Info().Msg("Starting RSTAT (Readability Statistics for Corpora)")
	cnf.ValidateAndDefaults(conf)
	syscallChan := make(chan os.Signal, 1)
	signal.Notify(syscallChan, os.Interrupt)
	signal.Notify(syscallChan, syscall.SIGTERM)
	exitEvent := make(chan os.Signal)

	lang, err := language.Parse(conf.Language)
	if err != nil {
		log.Fatal().Err(err).Msgf("Invalid language %s", conf.Language)
	}

	var archive *reports.Archive
	if conf.ReportsDB != nil {
		archive, err = reports.NewArchive(conf.ReportsDB)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to the report archive database")
		}
		log.Info().Msgf("report archive SQL database: %s", conf.ReportsDB.Host)

	} else {
		log.Warn().Msg("no report archive database configured, report history will not be available")
	}

	if !conf.IsDebugMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	rootActions := root.Actions{Version: version}
	jobActions := jobs.NewActions(conf.Jobs, lang)
	corpusActions := corpus.NewActions(conf.CorporaSetup)
	tagsetActions := tagset.NewActions()
	reportCache := reports.NewCache(conf.TimezoneLocation())
	reportActions := reports.NewActions(conf.CorporaSetup, jobActions, reportCache, archive)

	reportActions.RestartDetachedJobs()

	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.GET("/", rootActions.RootAction)

	engine.GET("/corpora", corpusActions.CorporaList)
	engine.GET("/corpora/:corpusId", corpusActions.GetCorpusInfo)
	engine.POST("/corpora/:corpusId/_analyze", reportActions.Analyze)
	engine.GET("/corpora/:corpusId/report", reportActions.GetReport)
	engine.GET("/corpora/:corpusId/correlation", reportActions.Correlation)
	engine.GET("/corpora/:corpusId/reports", reportActions.History)

	engine.GET("/tagsets", tagsetActions.PosSets)
	engine.GET("/tagsets/:posId", tagsetActions.GetPosSetInfo)

	engine.GET("/jobs", jobActions.JobList)
	engine.GET("/jobs/:jobId", jobActions.JobInfo)
	engine.DELETE("/jobs/:jobId", jobActions.Delete)
	engine.GET("/jobs/:jobId/clearIfFinished", jobActions.ClearIfFinished)

	go func(exitHandlers []ExitHandler) {
		evt := <-syscallChan
		for _, h := range exitHandlers {
			h.OnExit()
		}
		exitEvent <- evt
		close(exitEvent)
	}([]ExitHandler{jobActions})

	log.Info().Msgf("starting to listen at %s:%d", conf.ListenAddress, conf.ListenPort)
	srv := &http.Server{
		Handler:      engine,
		Addr:         fmt.Sprintf("%s:%d", conf.ListenAddress, conf.ListenPort),
		WriteTimeout: time.Duration(conf.ServerWriteTimeoutSecs) * time.Second,
		ReadTimeout:  time.Duration(conf.ServerReadTimeoutSecs) * time.Second,
	}

	go func() {
		err := srv.ListenAndServe()
		if err != nil {
			log.Error().Err(err).Msg("")
		}
		syscallChan <- syscall.SIGTERM
	}()

	<-exitEvent
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = srv.Shutdown(ctx)
	if err != nil {
		log.Info().Err(err).Msg("Shutdown request error")
	}
}
