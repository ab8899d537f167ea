// Copyright (C) 2024-2026, Gostochastic Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package wrappers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrsKeepsFirst(t *testing.T) {
	require := require.New(t)

	err1 := errors.New("first")
	err2 := errors.New("second")

	errs := Errs{}
	require.False(errs.Errored())

	errs.Add(nil, err1, err2)
	require.True(errs.Errored())
	require.Equal(err1, errs.Err)

	errs.Add(err2)
	require.Equal(err1, errs.Err)
}
