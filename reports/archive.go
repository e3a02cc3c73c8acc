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
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"

	"rstat/v2/scoring"
)

// DatabaseSetup configures a connection to the report archive
// database
type DatabaseSetup struct {
	Host   string `json:"host"`
	User   string `json:"user"`
	Passwd string `json:"passwd"`
	DBName string `json:"dbName"`
}

// Archive stores finished corpus reports to a MySQL database so the
// readability development of a corpus can be reviewed over time
// (verticals get reparsed, extended etc.).
type Archive struct {
	conn *sql.DB
}

// ArchivedReport is a summary row of the archive plus the full
// report JSON
type ArchivedReport struct {
	ID            int64                 `json:"id"`
	CorpusID      string                `json:"corpusId"`
	Created       time.Time             `json:"created"`
	NumDocuments  int                   `json:"numDocuments"`
	NumSentences  int                   `json:"numSentences"`
	SMOG          *float64              `json:"smog"`
	FleschKincaid *float64              `json:"fleschKincaid"`
	DaleChall     *float64              `json:"daleChall"`
	PTR           *float64              `json:"ptr"`
	Report        *scoring.CorpusReport `json:"report,omitempty"`
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

// Insert stores a finished report
func (arch *Archive) Insert(rep *scoring.CorpusReport) error {
	data, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("failed to archive report: %w", err)
	}
	_, err = arch.conn.Exec(
		"INSERT INTO rstat_report (corpus_id, created, num_documents, num_sentences, "+
			"smog, flesch_kincaid, dale_chall, ptr, data) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		rep.CorpusID,
		rep.Created,
		rep.NumDocuments,
		rep.NumSentences,
		nullFloat(rep.SMOG),
		nullFloat(rep.FleschKincaid),
		nullFloat(rep.DaleChall),
		nullFloat(rep.PTR),
		data,
	)
	if err != nil {
		return fmt.Errorf("failed to archive report: %w", err)
	}
	return nil
}

// LoadHistory provides (at most 'limit') most recent archived report
// summaries of a corpus, newest first. The full report JSON is not
// loaded here.
func (arch *Archive) LoadHistory(corpusID string, limit int) ([]*ArchivedReport, error) {
	rows, err := arch.conn.Query(
		"SELECT id, corpus_id, created, num_documents, num_sentences, "+
			"smog, flesch_kincaid, dale_chall, ptr "+
			"FROM rstat_report WHERE corpus_id = ? ORDER BY created DESC LIMIT ?",
		corpusID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load report history: %w", err)
	}
	defer rows.Close()
	ans := make([]*ArchivedReport, 0, limit)
	for rows.Next() {
		var item ArchivedReport
		var smog, fk, dc, ptr sql.NullFloat64
		err := rows.Scan(
			&item.ID, &item.CorpusID, &item.Created, &item.NumDocuments,
			&item.NumSentences, &smog, &fk, &dc, &ptr)
		if err != nil {
			return nil, fmt.Errorf("failed to load report history: %w", err)
		}
		item.SMOG = floatPtr(smog)
		item.FleschKincaid = floatPtr(fk)
		item.DaleChall = floatPtr(dc)
		item.PTR = floatPtr(ptr)
		ans = append(ans, &item)
	}
	return ans, rows.Err()
}

// NewArchive connects to the archive database
func NewArchive(conf *DatabaseSetup) (*Archive, error) {
	mconf := mysql.NewConfig()
	mconf.Net = "tcp"
	mconf.Addr = conf.Host
	mconf.User = conf.User
	mconf.Passwd = conf.Passwd
	mconf.DBName = conf.DBName
	mconf.ParseTime = true
	db, err := sql.Open("mysql", mconf.FormatDSN())
	if err != nil {
		return nil, err
	}
	return &Archive{conn: db}, nil
}
