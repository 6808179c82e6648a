// Package checked provides overflow-checked int64 arithmetic for
// micro-unit amounts and reputation counters. Every helper returns an
// error instead of wrapping around, so callers can abort the enclosing
// operation.
package checked

import (
	"errors"
	"math"
)

var (
	ErrOverflow       = errors.New("checked: integer overflow")
	ErrDivisionByZero = errors.New("checked: division by zero")
)

func Add(a, b int64) (int64, error) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, ErrOverflow
	}
	if b < 0 && a < math.MinInt64-b {
		return 0, ErrOverflow
	}
	return a + b, nil
}

func Mul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	// a*b wraps back to MinInt64 here, defeating the division check below.
	if (a == math.MinInt64 && b == -1) || (a == -1 && b == math.MinInt64) {
		return 0, ErrOverflow
	}
	result := a * b
	if result/b != a {
		return 0, ErrOverflow
	}
	return result, nil
}

func Div(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	if a == math.MinInt64 && b == -1 {
		return 0, ErrOverflow
	}
	return a / b, nil
}
