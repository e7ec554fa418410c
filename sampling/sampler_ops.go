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

import "math"

// sumDriftRatio triggers a full re-sum of a level whenever, after a write,
// the newly written weight makes up more than this fraction of the level's
// running sum, bounding the
// running sum's drift to under one ulp per addition as recommended for
// long update sequences.
const sumDriftRatio = 0.999

// validateWeight rejects a negative, NaN, or infinite weight before any
// state is mutated, per the all-or-nothing error contract.
func validateWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return ErrNonFiniteWeight
	}
	if w < 0 {
		return ErrNegativeWeight
	}
	return nil
}

// NewSampler builds a Sampler from a vector of nonnegative weights. An
// empty or all-zero vector produces a Sampler with no levels; Draw on it
// fails with ErrEmptyDistribution until a nonzero weight is introduced.
func NewSampler(weights []float64, opts ...SamplerOption) (*Sampler, error) {
	cfg := samplerConfig{rng: globalRandSource{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	for _, w := range weights {
		if err := validateWeight(w); err != nil {
			return nil, err
		}
	}

	s := &Sampler{
		weights:   append([]float64(nil), weights...),
		positions: make([]int, len(weights)),
		rng:       cfg.rng,
	}
	for i := range s.positions {
		s.positions[i] = -1
	}

	wMin, wMax := math.Inf(1), 0.0
	anyPositive := false
	for _, w := range weights {
		if w == 0 {
			continue
		}
		anyPositive = true
		if w < wMin {
			wMin = w
		}
		if w > wMax {
			wMax = w
		}
	}
	if !anyPositive {
		return s, nil
	}

	uppermostLog := int(math.Ceil(math.Log2(wMax)))
	if isPow2(wMax) {
		uppermostLog++
	}
	numLevels := uppermostLog - floorLog2(wMin)

	s.levels = make([]*level, numLevels)
	hi := math.Ldexp(1, uppermostLog)
	for j := 0; j < numLevels; j++ {
		lo := hi / 2
		s.levels[j] = newLevel(lo, hi)
		hi = lo
	}
	s.maxLog2Upper = uppermostLog

	for i, w := range weights {
		if w == 0 {
			continue
		}
		lv := s.levelForWeight(w)
		lv.add(i, s.weights, s.positions)
		s.sum += w
	}

	return s, nil
}

// Get returns the current weight of element i, 1-origin.
func (s *Sampler) Get(i int) (float64, error) {
	if i < 1 || i > len(s.weights) {
		return 0, ErrIndexOutOfRange
	}
	return s.weights[i-1], nil
}

// Set writes a new weight for element i, 1-origin, and returns the change
// in weight (w - old). Extends or trims the level sequence as needed.
func (s *Sampler) Set(i int, w float64) (float64, error) {
	if i < 1 || i > len(s.weights) {
		return 0, ErrIndexOutOfRange
	}
	if err := validateWeight(w); err != nil {
		return 0, err
	}

	idx := i - 1
	old := s.weights[idx]
	delta := w - old

	var newLevel *level
	if w != 0 {
		lv, err := s.ensureLevelForWeight(w)
		if err != nil {
			return 0, err
		}
		newLevel = lv
	}

	var oldLevel *level
	if old != 0 {
		oldLevel = s.levelForWeight(old)
		oldLevel.remove(idx, s.weights, s.positions)
	}

	s.weights[idx] = w

	if newLevel != nil {
		newLevel.add(idx, s.weights, s.positions)
		s.maybeResum(newLevel, w)
	}

	s.sum += delta

	if oldLevel != nil && oldLevel != newLevel && s.isFrontOrBack(oldLevel) && !oldLevel.isPopulated() {
		s.trimTrailingLevels()
	}

	return delta, nil
}

// maybeResum implements the recommended drift-reset policy: when a single
// write dominates a level's sum, recompute that level's sum by traversal
// instead of trusting further incremental addition.
func (s *Sampler) maybeResum(lv *level, w float64) {
	if lv.sum <= 0 {
		return
	}
	if w/lv.sum <= sumDriftRatio {
		return
	}
	total := 0.0
	for _, m := range lv.members {
		total += s.weights[m]
	}
	lv.sum = total
}

// Append adds a new element with weight w and returns the sampler's new
// length, which is also the 1-origin index of the new element.
func (s *Sampler) Append(w float64) (int, error) {
	if err := validateWeight(w); err != nil {
		return 0, err
	}

	s.weights = append(s.weights, w)
	s.positions = append(s.positions, -1)
	idx := len(s.weights) - 1

	if w != 0 {
		lv, err := s.ensureLevelForWeight(w)
		if err != nil {
			return 0, err
		}
		lv.add(idx, s.weights, s.positions)
		s.sum += w
	}

	return len(s.weights), nil
}

// DeleteAt removes element i, 1-origin, shifting every subsequent
// element's index down by one, and returns the sampler's new length.
// O(n): every level's member list is walked to relabel indices past i.
func (s *Sampler) DeleteAt(i int) (int, error) {
	if i < 1 || i > len(s.weights) {
		return 0, ErrIndexOutOfRange
	}
	idx := i - 1

	var affected *level
	if w := s.weights[idx]; w != 0 {
		affected = s.levelForWeight(w)
		affected.remove(idx, s.weights, s.positions)
		s.sum -= w
	}

	s.weights = append(s.weights[:idx], s.weights[idx+1:]...)
	s.positions = append(s.positions[:idx], s.positions[idx+1:]...)

	for _, lv := range s.levels {
		for k, m := range lv.members {
			if m > idx {
				lv.members[k] = m - 1
			}
		}
	}

	if affected != nil && s.isFrontOrBack(affected) && !affected.isPopulated() {
		s.trimTrailingLevels()
	}

	return len(s.weights), nil
}

// Draw performs one CDF-over-levels selection followed by
// acceptance-rejection inside the chosen level, returning a 1-origin
// element index with probability proportional to its current weight.
func (s *Sampler) Draw() (int, error) {
	if s.sum <= 0 || len(s.levels) == 0 {
		return 0, ErrEmptyDistribution
	}

	t := s.rng.Float64() * s.sum

	var chosen *level
	var r float64
	c := 0.0
	for _, lv := range s.levels {
		next := c + lv.sum
		if next > t {
			chosen = lv
			r = (t - c) / lv.sum
			break
		}
		c = next
	}
	if chosen == nil {
		// Floating-point drift can leave a residual too small to clear
		// the last comparison; fall back to the last populated level and
		// draw a fresh uniform instead of reusing an out-of-range residue.
		for k := len(s.levels) - 1; k >= 0; k-- {
			if s.levels[k].isPopulated() {
				chosen = s.levels[k]
				r = s.rng.Float64()
				break
			}
		}
		if chosen == nil {
			return 0, ErrEmptyDistribution
		}
	}

	for {
		j := chosen.members[s.rng.Intn(len(chosen.members))]
		if s.weights[j] > r*chosen.max {
			return j + 1, nil
		}
		r = s.rng.Float64()
	}
}
