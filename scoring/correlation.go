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
	"errors"
	"math"
	"sort"
)

var (
	ErrNotEnoughDataPoints = errors.New("not enough data points for correlation")
	ErrSeriesSizeMismatch  = errors.New("correlated series must be of the same size")
	ErrZeroVariance        = errors.New("correlation undefined for a constant series")
)

// Pearson returns the Pearson correlation coefficient of two series
func Pearson(xs, ys []float64) (float64, error) {
	if len(xs) != len(ys) {
		return 0, ErrSeriesSizeMismatch
	}
	if len(xs) < 2 {
		return 0, ErrNotEnoughDataPoints
	}
	n := float64(len(xs))
	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / n
	meanY := sumY / n
	var cov, varX, varY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0, ErrZeroVariance
	}
	return cov / math.Sqrt(varX*varY), nil
}

// ranks assigns fractional ranks (ties get the average of the ranks
// they occupy)
func ranks(values []float64) []float64 {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool {
		return values[idx[i]] < values[idx[j]]
	})
	ans := make([]float64, len(values))
	i := 0
	for i < len(idx) {
		j := i
		for j+1 < len(idx) && values[idx[j+1]] == values[idx[i]] {
			j++
		}
		rank := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ans[idx[k]] = rank
		}
		i = j + 1
	}
	return ans
}

// Spearman returns the Spearman rank correlation coefficient of two
// series. Ties are handled by fractional ranking so the answer is
// the Pearson coefficient of the rank series.
func Spearman(xs, ys []float64) (float64, error) {
	if len(xs) != len(ys) {
		return 0, ErrSeriesSizeMismatch
	}
	if len(xs) < 2 {
		return 0, ErrNotEnoughDataPoints
	}
	return Pearson(ranks(xs), ranks(ys))
}
