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

// Sampler supports weighted random sampling with replacement from a
// dynamic discrete distribution: elements are identified by a 1-origin
// dense index assigned in append order, weights can be read, updated in
// place, appended, and deleted by index, and Draw returns a single index
// with probability proportional to its current weight.
//
// A Sampler is not safe for concurrent use. Callers that mutate
// (Set, Append, DeleteAt) and draw (Draw) from multiple goroutines must
// serialize their own calls.
type Sampler struct {
	weights   []float64 // element index -> current weight, 0-origin
	positions []int     // element index -> offset in its level's members, -1 if weight is 0

	levels       []*level // descending bounds, levels[0] is the highest-magnitude level
	maxLog2Upper int      // exponent k such that levels[0].hi == 2^k; meaningless when levels is empty

	sum float64 // sum over levels of their sums

	rng RandSource
}

// SamplerOption configures a Sampler at construction time.
type SamplerOption func(*samplerConfig)

type samplerConfig struct {
	rng RandSource
}

// WithRandSource overrides the random source Draw consumes. Pass a
// seeded *rand.Rand (or any RandSource) for reproducible draws; the
// default source is the auto-seeded package-level math/rand.
func WithRandSource(rng RandSource) SamplerOption {
	return func(c *samplerConfig) { c.rng = rng }
}

// Length returns the number of elements currently held, including
// zero-weight ones.
func (s *Sampler) Length() int { return len(s.weights) }

// Weights returns a copy of every element's current weight, in element
// order. The Sampler exclusively owns its internal weights slice; this
// copy is safe for the caller to retain or mutate.
func (s *Sampler) Weights() []float64 {
	out := make([]float64, len(s.weights))
	copy(out, s.weights)
	return out
}

// levelIndex returns the 0-based offset into levels where weight w
// belongs, or -1 ("no level") when w is zero or the sampler currently has
// no levels.
func (s *Sampler) levelIndex(w float64) int {
	if w == 0 || len(s.levels) == 0 {
		return -1
	}
	return s.maxLog2Upper - floorLog2(w) - 1
}

// levelForWeight looks up the level containing weight w in O(1) via
// levelIndex, returning nil if w is zero or falls outside the current
// level range.
func (s *Sampler) levelForWeight(w float64) *level {
	idx := s.levelIndex(w)
	if idx < 0 || idx >= len(s.levels) {
		return nil
	}
	return s.levels[idx]
}

// isFrontOrBack reports whether lv is the current front or back level.
func (s *Sampler) isFrontOrBack(lv *level) bool {
	if len(s.levels) == 0 {
		return false
	}
	return lv == s.levels[0] || lv == s.levels[len(s.levels)-1]
}

// ensureLevelForWeight returns the level that should hold weight w
// (w != 0), extending the level sequence up or down first if that
// interval isn't present yet.
func (s *Sampler) ensureLevelForWeight(w float64) (*level, error) {
	lo, hi := logBounds(w)

	switch {
	case len(s.levels) == 0:
		if err := s.extendLevels(lo, hi); err != nil {
			return nil, err
		}
	case lo > s.levels[0].lo:
		if err := s.extendLevels(lo, hi); err != nil {
			return nil, err
		}
	case lo < s.levels[len(s.levels)-1].lo:
		if err := s.extendLevels(lo, hi); err != nil {
			return nil, err
		}
	}
	return s.levelForWeight(w), nil
}

// extendLevels grows the level sequence so the interval [lo, hi) is
// present. It must not already be present; extending with an interval
// strictly inside the current exponent range is a programmer error
// (errAlreadyPresent).
func (s *Sampler) extendLevels(lo, hi float64) error {
	if hi != 2*lo {
		return errInvalidBounds
	}

	if len(s.levels) == 0 {
		s.levels = []*level{newLevel(lo, hi)}
		s.maxLog2Upper = floorLog2(hi)
		return nil
	}

	front := s.levels[0]
	back := s.levels[len(s.levels)-1]

	switch {
	case lo > front.lo:
		k := floorLog2(lo) - floorLog2(front.lo)
		prefix := make([]*level, k)
		l := lo
		for j := 0; j < k; j++ {
			prefix[j] = newLevel(l, 2*l)
			l /= 2
		}
		s.levels = append(prefix, s.levels...)
		s.maxLog2Upper = floorLog2(s.levels[0].hi)
		return nil

	case lo < back.lo:
		k := floorLog2(back.lo) - floorLog2(lo)
		l := back.lo / 2
		for j := 0; j < k; j++ {
			s.levels = append(s.levels, newLevel(l, 2*l))
			l /= 2
		}
		return nil

	default:
		return errAlreadyPresent
	}
}

// trimTrailingLevels drops empty leading and trailing levels, retaining
// any empty levels that remain interior to the populated range.
func (s *Sampler) trimTrailingLevels() {
	first, last := -1, -1
	for idx, lv := range s.levels {
		if lv.isPopulated() {
			if first == -1 {
				first = idx
			}
			last = idx
		}
	}

	if first == -1 {
		s.levels = nil
		s.maxLog2Upper = 0
		s.sum = 0
		return
	}

	s.levels = s.levels[first : last+1]
	s.maxLog2Upper = floorLog2(s.levels[0].hi)
}
