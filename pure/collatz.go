package pure

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNotPositive is returned for inputs below 1.
	ErrNotPositive = errors.New("collatz input must be a positive integer")

	// ErrOverflow is returned when 3n+1 does not fit in an int64.
	ErrOverflow = errors.New("collatz step overflows int64")
)

// maxOdd is the largest odd n for which 3n+1 is still representable.
const maxOdd = (math.MaxInt64 - 1) / 3

// Next applies one Collatz step: n/2 if n is even, 3n+1 otherwise.
func Next(n int64) (int64, error) {
	if n%2 == 0 {
		return n / 2, nil
	}
	if n > maxOdd {
		return 0, fmt.Errorf("%w: 3*%d+1", ErrOverflow, n)
	}
	return 3*n + 1, nil
}

// StepsUncached counts the steps from n down to 1 without any table.
func StepsUncached(n int64) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: %d", ErrNotPositive, n)
	}
	steps := 0
	for n != 1 {
		next, err := Next(n)
		if err != nil {
			return 0, err
		}
		n = next
		steps++
	}
	return steps, nil
}
