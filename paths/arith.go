// SPDX-License-Identifier: MIT

package paths

import "math/bits"

// addCount returns a+b or ErrCountOverflow.
func addCount(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrCountOverflow
	}

	return sum, nil
}

// mulCount returns a*b or ErrCountOverflow.
func mulCount(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, ErrCountOverflow
	}

	return lo, nil
}
