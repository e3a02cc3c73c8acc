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

package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPearson(t *testing.T) {
	v, err := Pearson([]float64{1, 2, 3}, []float64{2, 4, 6})
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, v, 0.0001)

	v, err = Pearson([]float64{1, 2, 3}, []float64{6, 4, 2})
	assert.NoError(t, err)
	assert.InDelta(t, -1.0, v, 0.0001)
}

func TestPearsonErrors(t *testing.T) {
	_, err := Pearson([]float64{1, 2}, []float64{1})
	assert.Equal(t, ErrSeriesSizeMismatch, err)
	_, err = Pearson([]float64{1}, []float64{1})
	assert.Equal(t, ErrNotEnoughDataPoints, err)
	_, err = Pearson([]float64{2, 2, 2}, []float64{1, 2, 3})
	assert.Equal(t, ErrZeroVariance, err)
}

func TestSpearmanMonotonic(t *testing.T) {
	// a nonlinear but monotonic relation ranks perfectly
	v, err := Spearman([]float64{1, 2, 3, 4}, []float64{1, 4, 9, 16})
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, v, 0.0001)
}

func TestSpearmanTies(t *testing.T) {
	v, err := Spearman([]float64{1, 2, 2, 3}, []float64{1, 2, 3, 4})
	assert.NoError(t, err)
	assert.InDelta(t, 0.9487, v, 0.001)
}

func TestRanks(t *testing.T) {
	assert.Equal(t, []float64{1, 2.5, 2.5, 4}, ranks([]float64{10, 20, 20, 30}))
	assert.Equal(t, []float64{3, 1, 2}, ranks([]float64{9, 1, 5}))
}
