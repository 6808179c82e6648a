package checked_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigclaw/backend/pkg/utils/checked"
)

func TestAdd(t *testing.T) {
	sum, err := checked.Add(1_500_000, 2_500_000)
	require.NoError(t, err)
	assert.Equal(t, int64(4_000_000), sum)

	_, err = checked.Add(math.MaxInt64, 1)
	assert.ErrorIs(t, err, checked.ErrOverflow)

	_, err = checked.Add(math.MinInt64, -1)
	assert.ErrorIs(t, err, checked.ErrOverflow)

	sum, err = checked.Add(math.MaxInt64, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), sum)
}

func TestMul(t *testing.T) {
	product, err := checked.Mul(3, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(300), product)

	product, err = checked.Mul(0, math.MaxInt64)
	require.NoError(t, err)
	assert.Zero(t, product)

	_, err = checked.Mul(math.MaxInt64, 2)
	assert.ErrorIs(t, err, checked.ErrOverflow)

	_, err = checked.Mul(math.MinInt64, -1)
	assert.ErrorIs(t, err, checked.ErrOverflow)
}

func TestDiv(t *testing.T) {
	quotient, err := checked.Div(1_000_000, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(100_000), quotient)

	// integer division truncates
	quotient, err = checked.Div(999_999, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(99_999), quotient)

	_, err = checked.Div(1, 0)
	assert.ErrorIs(t, err, checked.ErrDivisionByZero)

	_, err = checked.Div(math.MinInt64, -1)
	assert.ErrorIs(t, err, checked.ErrOverflow)
}
