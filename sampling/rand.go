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

import "math/rand"

// RandSource is the random source collaborator Draw depends on: a uniform
// float in [0, 1) and a uniform integer in [0, n). Reproducible draws
// require a caller-seeded RandSource passed via WithRandSource; a Sampler
// built by NewSampler without that option uses the auto-seeded
// package-level math/rand functions.
type RandSource interface {
	Float64() float64
	Intn(n int) int
}

// globalRandSource delegates to the package-level math/rand functions via
// direct rand.Float64()/rand.Intn() calls, relying on Go's automatic
// top-level seeding since 1.20.
type globalRandSource struct{}

func (globalRandSource) Float64() float64 { return rand.Float64() }
func (globalRandSource) Intn(n int) int   { return rand.Intn(n) }
