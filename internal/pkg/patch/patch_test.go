//go:build unit

package patch

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoalesce(t *testing.T) {
	v := 3
	assert.Equal(t, 3, Coalesce(&v, 9))
	assert.Equal(t, 9, Coalesce[int](nil, 9))
}

func TestApply(t *testing.T) {
	dst := "old"
	Apply(&dst, nil)
	assert.Equal(t, "old", dst)

	src := "new"
	Apply(&dst, &src)
	assert.Equal(t, "new", dst)
}

func TestApplyMapped(t *testing.T) {
	dst := 1
	require.NoError(t, ApplyMapped(&dst, nil, strconv.Atoi))
	assert.Equal(t, 1, dst)

	src := "42"
	require.NoError(t, ApplyMapped(&dst, &src, strconv.Atoi))
	assert.Equal(t, 42, dst)

	bad := "x"
	err := ApplyMapped(&dst, &bad, strconv.Atoi)
	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))
	assert.Equal(t, 42, dst)
}
