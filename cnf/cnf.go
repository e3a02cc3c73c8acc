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

// Package cnf loads and provides the global service configuration
package cnf

import (
	"encoding/json"
	"os"
	"runtime"
	"time"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"

	"rstat/v2/corpus"
	"rstat/v2/jobs"
	"rstat/v2/reports"
)

const (
	dfltServerWriteTimeoutSecs = 10
	dfltServerReadTimeoutSecs  = 10
	dfltLanguage               = "en"
	dfltTimeZone               = "Europe/Prague"
	dfltMaxNumConcurrentJobs   = 4
	dfltVertMaxNumErrors       = 100
)

// Conf is a global configuration of the app
type Conf struct {
	ListenAddress          string                 `json:"listenAddress"`
	ListenPort             int                    `json:"listenPort"`
	ServerReadTimeoutSecs  int                    `json:"serverReadTimeoutSecs"`
	ServerWriteTimeoutSecs int                    `json:"serverWriteTimeoutSecs"`
	CorporaSetup           *corpus.CorporaSetup   `json:"corporaSetup"`
	Jobs                   *jobs.Conf             `json:"jobs"`
	ReportsDB              *reports.DatabaseSetup `json:"reportsDb"`
	LogFile                string                 `json:"logFile"`
	LogLevel               logging.LogLevel       `json:"logLevel"`
	Language               string                 `json:"language"`
	TimeZone               string                 `json:"timeZone"`
}

func (conf *Conf) IsDebugMode() bool {
	return conf.LogLevel == "debug"
}

// TimezoneLocation provides a timezone location based on the
// configuration
func (conf *Conf) TimezoneLocation() *time.Location {
	loc, err := time.LoadLocation(conf.TimeZone)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid time zone")
	}
	return loc
}

func LoadConfig(path string) *Conf {
	if path == "" {
		log.Fatal().Msg("Cannot load config - path not specified")
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	var conf Conf
	err = json.Unmarshal(rawData, &conf)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	return &conf
}

// ValidateAndDefaults checks the mandatory sections and fills in
// defaults where a value is missing
func ValidateAndDefaults(conf *Conf) {
	if conf.CorporaSetup == nil || conf.CorporaSetup.VerticalFilesDirPath == "" {
		log.Fatal().Msg("corporaSetup.verticalFilesDirPath not specified")
	}
	if err := conf.CorporaSetup.DefaultTagset.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Cannot apply configuration")
	}
	if conf.Jobs == nil {
		conf.Jobs = &jobs.Conf{}
		log.Warn().Msg("jobs section not specified, using defaults")
	}
	if conf.ServerReadTimeoutSecs == 0 {
		conf.ServerReadTimeoutSecs = dfltServerReadTimeoutSecs
		log.Warn().Msgf(
			"serverReadTimeoutSecs not specified, using default: %d",
			dfltServerReadTimeoutSecs,
		)
	}
	if conf.ServerWriteTimeoutSecs == 0 {
		conf.ServerWriteTimeoutSecs = dfltServerWriteTimeoutSecs
		log.Warn().Msgf(
			"serverWriteTimeoutSecs not specified, using default: %d",
			dfltServerWriteTimeoutSecs,
		)
	}
	if conf.CorporaSetup.VertMaxNumErrors == 0 {
		conf.CorporaSetup.VertMaxNumErrors = dfltVertMaxNumErrors
		log.Warn().Msgf(
			"corporaSetup.vertMaxNumErrors not specified, using default: %d",
			dfltVertMaxNumErrors,
		)
	}
	if conf.Language == "" {
		conf.Language = dfltLanguage
		log.Warn().Msgf("language not specified, using default: %s", conf.Language)
	}
	if conf.TimeZone == "" {
		conf.TimeZone = dfltTimeZone
		log.Warn().Msgf("timeZone not specified, using default: %s", conf.TimeZone)
	}
	if conf.Jobs.MaxNumConcurrentJobs == 0 {
		v := dfltMaxNumConcurrentJobs
		if v >= runtime.NumCPU() {
			v = runtime.NumCPU()
		}
		conf.Jobs.MaxNumConcurrentJobs = v
		log.Warn().Msgf("jobs.maxNumConcurrentJobs not specified, using default %d", v)
	}
}
