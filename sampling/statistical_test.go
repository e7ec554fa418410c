/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sampling

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// TestDrawMatchesWeightedDistribution draws from a thousand-element
// distribution many times and checks the observed counts against the
// expected ones with a chi-square goodness-of-fit test, catching any bias
// the unit-level level tests wouldn't notice (e.g. an acceptance-rejection
// loop that favors members near the end of a level's member slice).
func TestDrawMatchesWeightedDistribution(t *testing.T) {
	const n = 1000
	const draws = 200000

	rng := rand.New(rand.NewSource(42))
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1 + rng.Float64()*99 // uniform-ish in [1, 100)
	}

	s, err := NewSampler(weights, WithRandSource(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	require.NoError(t, Verify(s))

	counts := make([]float64, n)
	for d := 0; d < draws; d++ {
		idx, err := s.Draw()
		require.NoError(t, err)
		counts[idx-1]++
	}

	total := 0.0
	for _, w := range weights {
		total += w
	}
	expected := make([]float64, n)
	for i, w := range weights {
		expected[i] = draws * w / total
	}

	chiSq := stat.ChiSquare(counts, expected)
	dist := distuv.ChiSquared{K: float64(n - 1)}
	pValue := 1 - dist.CDF(chiSq)

	assert.Greater(t, pValue, 0.01, "chi-square statistic %v implausible for a correctly weighted draw", chiSq)
}

// TestDrawMarginalFrequenciesTrackWeightRatios is a coarser, deterministic
// companion to the chi-square test: for a handful of elements with very
// different weights, their observed draw ratio should track their weight
// ratio within a wide tolerance over a large sample.
func TestDrawMarginalFrequenciesTrackWeightRatios(t *testing.T) {
	s, err := NewSampler([]float64{1.0, 2.0, 4.0, 8.0}, WithRandSource(rand.New(rand.NewSource(11))))
	require.NoError(t, err)

	const draws = 100000
	counts := make([]int, 4)
	for d := 0; d < draws; d++ {
		idx, err := s.Draw()
		require.NoError(t, err)
		counts[idx-1]++
	}

	ratio := float64(counts[3]) / float64(counts[0])
	assert.InDelta(t, 8.0, ratio, 1.0, "element 4's weight is 8x element 1's, so its draw count should be too")
}
