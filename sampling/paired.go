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

import "fmt"

// PairedSampler pairs a Sampler with a parallel slice of typed payloads,
// so callers don't have to maintain their own slice in lockstep across
// Append and DeleteAt. The underlying index-based Sampler still defines
// every sampling semantic; PairedSampler only keeps items[i] aligned with
// element i.
type PairedSampler[T any] struct {
	s     *Sampler
	items []T
}

// NewPairedSampler builds a PairedSampler from equal-length items and
// weights slices.
func NewPairedSampler[T any](items []T, weights []float64, opts ...SamplerOption) (*PairedSampler[T], error) {
	if len(items) != len(weights) {
		return nil, fmt.Errorf("wsample: items length %d != weights length %d", len(items), len(weights))
	}
	s, err := NewSampler(weights, opts...)
	if err != nil {
		return nil, err
	}
	return &PairedSampler[T]{
		s:     s,
		items: append([]T(nil), items...),
	}, nil
}

// Length returns the number of elements currently held.
func (p *PairedSampler[T]) Length() int { return p.s.Length() }

// Get returns the item and current weight of element i, 1-origin.
func (p *PairedSampler[T]) Get(i int) (T, float64, error) {
	w, err := p.s.Get(i)
	if err != nil {
		var zero T
		return zero, 0, err
	}
	return p.items[i-1], w, nil
}

// Set replaces element i's item and weight, 1-origin, returning the
// change in weight.
func (p *PairedSampler[T]) Set(i int, item T, w float64) (float64, error) {
	delta, err := p.s.Set(i, w)
	if err != nil {
		return 0, err
	}
	p.items[i-1] = item
	return delta, nil
}

// Append adds a new element and returns the sampler's new length.
func (p *PairedSampler[T]) Append(item T, w float64) (int, error) {
	n, err := p.s.Append(w)
	if err != nil {
		return 0, err
	}
	p.items = append(p.items, item)
	return n, nil
}

// DeleteAt removes element i, 1-origin, and returns the sampler's new
// length.
func (p *PairedSampler[T]) DeleteAt(i int) (int, error) {
	n, err := p.s.DeleteAt(i)
	if err != nil {
		return 0, err
	}
	idx := i - 1
	p.items = append(p.items[:idx], p.items[idx+1:]...)
	return n, nil
}

// Draw returns a randomly chosen item, with probability proportional to
// its current weight.
func (p *PairedSampler[T]) Draw() (T, error) {
	idx, err := p.s.Draw()
	if err != nil {
		var zero T
		return zero, err
	}
	return p.items[idx-1], nil
}
