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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPairedSamplerRejectsMismatchedLengths(t *testing.T) {
	_, err := NewPairedSampler([]string{"a", "b"}, []float64{1.0})
	assert.Error(t, err)
}

func TestPairedSamplerGetSetAppendDeleteStayInLockstep(t *testing.T) {
	p, err := NewPairedSampler([]string{"gold", "silver", "bronze"}, []float64{5.0, 3.0, 1.0})
	require.NoError(t, err)

	item, w, err := p.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "gold", item)
	assert.Equal(t, 5.0, w)

	delta, err := p.Set(2, "platinum", 9.0)
	require.NoError(t, err)
	assert.Equal(t, 6.0, delta)
	item, w, err = p.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "platinum", item)
	assert.Equal(t, 9.0, w)

	n, err := p.Append("copper", 0.5)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	item, _, err = p.Get(4)
	require.NoError(t, err)
	assert.Equal(t, "copper", item)

	n, err = p.DeleteAt(1)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	item, _, err = p.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "platinum", item, "deleting element 1 shifts every later item down by one")

	require.NoError(t, Verify(p.s))
}

func TestPairedSamplerDraw(t *testing.T) {
	p, err := NewPairedSampler([]string{"only"}, []float64{1.0})
	require.NoError(t, err)

	item, err := p.Draw()
	require.NoError(t, err)
	assert.Equal(t, "only", item)
}
