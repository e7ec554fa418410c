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
	"fmt"
	"math"
)

// sumTolerance is the running-sum drift tolerance from the testable
// properties: |a - b| < 1e-9 * max(1, |reference|).
func sumTolerance(reference float64) float64 {
	return 1e-9 * math.Max(1, math.Abs(reference))
}

// Verify checks every invariant a Sampler is expected to hold after any
// finite sequence of public operations: level membership and position
// bookkeeping, level contiguity, per-level (sum, max, numMax), the
// sampler's running sum, and maxLog2Upper. It returns the first
// inconsistency found, or nil.
//
// Verify is intended for use by tests exercising long operation
// sequences; it is not on any hot path and re-derives everything from
// scratch.
func Verify(s *Sampler) error {
	if len(s.positions) != len(s.weights) {
		return fmt.Errorf("wsample: positions length %d != weights length %d", len(s.positions), len(s.weights))
	}

	for i, w := range s.weights {
		if w == 0 {
			if s.positions[i] != -1 {
				return fmt.Errorf("wsample: zero-weight element %d has non-sentinel position %d", i+1, s.positions[i])
			}
			continue
		}
		lv := s.levelForWeight(w)
		if lv == nil {
			return fmt.Errorf("wsample: nonzero-weight element %d (weight %v) is in no level", i+1, w)
		}
		if !(w >= lv.lo && w < lv.hi) {
			return fmt.Errorf("wsample: element %d weight %v outside its level bounds [%v, %v)", i+1, w, lv.lo, lv.hi)
		}
		pos := s.positions[i]
		if pos < 0 || pos >= len(lv.members) || lv.members[pos] != i {
			return fmt.Errorf("wsample: element %d position %d does not resolve back to it in its level's members", i+1, pos)
		}
	}

	for idx, lv := range s.levels {
		if lv.hi != 2*lv.lo {
			return fmt.Errorf("wsample: level %d bounds [%v, %v) violate hi == 2*lo", idx, lv.lo, lv.hi)
		}
		if idx > 0 && s.levels[idx-1].lo != 2*lv.lo {
			return fmt.Errorf("wsample: levels %d and %d are not contiguous by exponent", idx-1, idx)
		}

		wantSum, wantMax := 0.0, 0.0
		wantNumMax := 0
		for _, m := range lv.members {
			wm := s.weights[m]
			wantSum += wm
			switch {
			case wm > wantMax:
				wantMax = wm
				wantNumMax = 1
			case wm == wantMax:
				wantNumMax++
			}
		}
		if math.Abs(wantSum-lv.sum) >= sumTolerance(wantSum) {
			return fmt.Errorf("wsample: level %d sum drifted: have %v want %v", idx, lv.sum, wantSum)
		}
		if wantMax != lv.max {
			return fmt.Errorf("wsample: level %d max stale: have %v want %v", idx, lv.max, wantMax)
		}
		if wantNumMax != lv.numMax {
			return fmt.Errorf("wsample: level %d numMax stale: have %d want %d", idx, lv.numMax, wantNumMax)
		}
	}

	levelTotal := 0.0
	for _, lv := range s.levels {
		levelTotal += lv.sum
	}
	if math.Abs(levelTotal-s.sum) >= sumTolerance(levelTotal) {
		return fmt.Errorf("wsample: sampler sum %v disagrees with sum of level sums %v", s.sum, levelTotal)
	}

	trueTotal := 0.0
	for _, w := range s.weights {
		trueTotal += w
	}
	if math.Abs(trueTotal-s.sum) >= sumTolerance(trueTotal) {
		return fmt.Errorf("wsample: sampler sum %v disagrees with true weight total %v", s.sum, trueTotal)
	}

	if len(s.levels) > 0 && s.maxLog2Upper != floorLog2(s.levels[0].hi) {
		return fmt.Errorf("wsample: maxLog2Upper %d disagrees with front level's hi exponent %d", s.maxLog2Upper, floorLog2(s.levels[0].hi))
	}

	return nil
}
