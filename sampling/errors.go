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

import "errors"

// Caller-facing errors. These are returned by the public operations of
// Sampler and leave the sampler's invariants intact: validation always
// happens before any state is mutated.
var (
	// ErrIndexOutOfRange is returned by Get, Set, and DeleteAt when the
	// supplied index is outside [1, Length()].
	ErrIndexOutOfRange = errors.New("wsample: index out of range")

	// ErrEmptyDistribution is returned by Draw when the sampler has no
	// populated level, either because it holds no elements or because
	// every weight is zero.
	ErrEmptyDistribution = errors.New("wsample: draw on an empty distribution")

	// ErrNegativeWeight is returned by Set, Append, and NewSampler when a
	// supplied weight is negative.
	ErrNegativeWeight = errors.New("wsample: weight must be nonnegative")

	// ErrNonFiniteWeight is returned by Set, Append, and NewSampler when a
	// supplied weight is NaN or infinite.
	ErrNonFiniteWeight = errors.New("wsample: weight must be finite")
)

// Internal invariant errors. These indicate a programmer error in the
// maintenance code (a caller of the unexported level/extension primitives
// violating their own preconditions) rather than bad input from a package
// user, which is why they are unexported.
var (
	errInvalidBounds  = errors.New("wsample: level bounds must satisfy hi == 2*lo")
	errAlreadyPresent = errors.New("wsample: level bounds already present in the level sequence")
)
