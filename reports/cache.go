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
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/czcorpus/cnc-gokit/collections"

	"rstat/v2/scoring"
	"rstat/v2/tagset"
)

const (
	DfltBackoffInitialInterval = 200 * time.Millisecond
	DfltBackoffMaxElapsedTime  = 2 * time.Minute
)

var (
	ErrEntryNotFound    = errors.New("cache entry not found")
	ErrEntryNotReadyYet = errors.New("cache entry not ready yet")
)

// CacheEntry is a report promise. Between PromisedAt and FulfilledAt
// the report is being calculated; a fulfilled entry carries either
// the report or an error.
type CacheEntry struct {
	PromisedAt  time.Time
	FulfilledAt time.Time
	Report      *scoring.CorpusReport
	Err         error
}

func (entry CacheEntry) IsReady() bool {
	return !entry.FulfilledAt.IsZero()
}

// Cache stores calculated corpus reports. Reports are promised first
// (which makes concurrent clients wait instead of recalculating) and
// fulfilled once the respective job finishes.
type Cache struct {
	data *collections.ConcurrentMap[string, CacheEntry]
	loc  *time.Location
}

func (cache *Cache) mkKey(corpusID string, st tagset.SupportedTagset) string {
	return corpusID + "#" + st.String()
}

func (cache *Cache) Contains(corpusID string, st tagset.SupportedTagset) bool {
	return cache.data.HasKey(cache.mkKey(corpusID, st))
}

// FulfillFunc stores the result of a promised calculation (or its
// error) and provides the fulfilled entry
type FulfillFunc func(rep *scoring.CorpusReport, err error) CacheEntry

// Promise registers a pending report so clients asking for it block
// until the result arrives. The calculation itself is run by the
// caller (typically inside a queued job, keeping it subject to the
// job concurrency limit) and stored via the returned fulfill
// function.
func (cache *Cache) Promise(corpusID string, st tagset.SupportedTagset) FulfillFunc {
	entry := CacheEntry{
		PromisedAt: time.Now().In(cache.loc),
	}
	entryKey := cache.mkKey(corpusID, st)
	cache.data.Set(entryKey, entry)
	return func(rep *scoring.CorpusReport, err error) CacheEntry {
		if err != nil {
			entry.Err = err

		} else {
			entry.Report = rep
		}
		entry.FulfilledAt = time.Now().In(cache.loc)
		cache.data.Set(entryKey, entry)
		return entry
	}
}

// Get provides a fulfilled cache entry. In case the entry is still
// being calculated, the call blocks (with an exponential backoff)
// until the result is available or the wait limit is reached.
// For corpora nobody asked to analyze, ErrEntryNotFound is returned
// immediately.
func (cache *Cache) Get(corpusID string, st tagset.SupportedTagset) (CacheEntry, error) {
	entryKey := cache.mkKey(corpusID, st)
	operation := func() (CacheEntry, error) {
		entry, ok := cache.data.GetWithTest(entryKey)
		if !ok {
			return CacheEntry{}, backoff.Permanent(ErrEntryNotFound)
		}
		if !entry.IsReady() {
			return entry, ErrEntryNotReadyYet
		}
		return entry, nil
	}
	bkoff := backoff.NewExponentialBackOff()
	bkoff.InitialInterval = DfltBackoffInitialInterval
	bkoff.MaxElapsedTime = DfltBackoffMaxElapsedTime
	return backoff.RetryWithData(operation, bkoff)
}

// GetIfReady is a non-blocking variant of Get
func (cache *Cache) GetIfReady(corpusID string, st tagset.SupportedTagset) (CacheEntry, error) {
	entry, ok := cache.data.GetWithTest(cache.mkKey(corpusID, st))
	if !ok {
		return CacheEntry{}, ErrEntryNotFound
	}
	if !entry.IsReady() {
		return entry, ErrEntryNotReadyYet
	}
	return entry, nil
}

func NewCache(location *time.Location) *Cache {
	return &Cache{
		data: collections.NewConcurrentMap[string, CacheEntry](),
		loc:  location,
	}
}
