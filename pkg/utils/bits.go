// Package utils provides utility functions for the autosized project.
package utils

import (
	"golang.org/x/exp/constraints"
)

const BitsPerByte = 8

// Returns an all ones bitmask of n bits of the given unsigned integer type.
// Asking for as many bits as the type holds returns the maximum value of the type.
func AllOnes[T constraints.Unsigned](bits int) T {
	return (T(1) << bits) - T(1)
}
