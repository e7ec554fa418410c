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

// Package sampling implements weighted random sampling with replacement
// from a dynamic discrete distribution.
//
// Sampler partitions elements into levels by the binary exponent of their
// current weight, selects a level in time proportional to the number of
// levels (logarithmic in the dynamic range of positive weights) via a
// cumulative-distribution walk, and then picks an element inside that
// level by acceptance-rejection in expected O(1) time. Reads, in-place
// weight updates, and appends are O(1) (amortized for append); deletion
// by index is O(n) because it shifts every later index down by one.
//
// Sampler does not support sampling without replacement or streaming
// reservoir sampling; see the companion design notes for that boundary.
package sampling
