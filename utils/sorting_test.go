// Copyright (C) 2024-2026, Gostochastic Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var _ Sortable[sortableInt] = sortableInt(0)

type sortableInt int

func (i sortableInt) Less(other sortableInt) bool {
	return i < other
}

func TestSort(t *testing.T) {
	require := require.New(t)

	s := []sortableInt{3, 1, 4, 1, 5}
	Sort(s)
	require.Equal([]sortableInt{1, 1, 3, 4, 5}, s)
	require.True(IsSorted(s))
}

func TestIsSorted(t *testing.T) {
	require := require.New(t)

	require.True(IsSorted([]sortableInt{}))
	require.True(IsSorted([]sortableInt{1}))
	require.True(IsSorted([]sortableInt{1, 1, 2}))
	require.False(IsSorted([]sortableInt{2, 1}))
}
