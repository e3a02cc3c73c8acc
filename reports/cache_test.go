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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rstat/v2/scoring"
	"rstat/v2/tagset"
)

func TestCachePromiseAndGet(t *testing.T) {
	cache := NewCache(time.UTC)
	fulfill := cache.Promise("corp1", tagset.TagsetEnPenn)
	entry := fulfill(&scoring.CorpusReport{CorpusID: "corp1", NumWords: 42}, nil)
	assert.NoError(t, entry.Err)
	assert.Equal(t, 42, entry.Report.NumWords)

	entry2, err := cache.Get("corp1", tagset.TagsetEnPenn)
	assert.NoError(t, err)
	assert.Equal(t, 42, entry2.Report.NumWords)
}

func TestCacheGetWaitsForFulfillment(t *testing.T) {
	cache := NewCache(time.UTC)
	fulfill := cache.Promise("corp1", tagset.TagsetEnPenn)
	go func() {
		time.Sleep(300 * time.Millisecond)
		fulfill(&scoring.CorpusReport{CorpusID: "corp1"}, nil)
	}()
	entry, err := cache.Get("corp1", tagset.TagsetEnPenn)
	assert.NoError(t, err)
	assert.True(t, entry.IsReady())
	assert.NotNil(t, entry.Report)
}

func TestCachePendingEntryIsNotReady(t *testing.T) {
	cache := NewCache(time.UTC)
	cache.Promise("corp1", tagset.TagsetEnPenn)
	assert.True(t, cache.Contains("corp1", tagset.TagsetEnPenn))
	entry, err := cache.GetIfReady("corp1", tagset.TagsetEnPenn)
	assert.Equal(t, ErrEntryNotReadyYet, err)
	assert.False(t, entry.IsReady())
}

func TestCacheGetUnknownCorpus(t *testing.T) {
	cache := NewCache(time.UTC)
	_, err := cache.Get("unknown", tagset.TagsetEnPenn)
	assert.Equal(t, ErrEntryNotFound, err)
}

func TestCachePromiseStoresError(t *testing.T) {
	cache := NewCache(time.UTC)
	calcErr := errors.New("vertical file gone")
	fulfill := cache.Promise("corp1", tagset.TagsetEnPenn)
	fulfill(nil, calcErr)
	entry, err := cache.Get("corp1", tagset.TagsetEnPenn)
	assert.NoError(t, err)
	assert.Equal(t, calcErr, entry.Err)
	assert.Nil(t, entry.Report)
}

func TestCacheEntriesPerTagset(t *testing.T) {
	cache := NewCache(time.UTC)
	fulfill := cache.Promise("corp1", tagset.TagsetEnPenn)
	fulfill(&scoring.CorpusReport{Tagset: tagset.TagsetEnPenn}, nil)
	assert.True(t, cache.Contains("corp1", tagset.TagsetEnPenn))
	assert.False(t, cache.Contains("corp1", tagset.TagsetBNC))

	_, err := cache.GetIfReady("corp1", tagset.TagsetBNC)
	assert.Equal(t, ErrEntryNotFound, err)
}
