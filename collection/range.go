/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package collection

import (
	"iter"

	"github.com/polyglotdb/coordinator/field"
)

func sign(x int) int {
	if x < 0 {
		return -1
	}
	return 1
}

// Range returns a slice of integers similar to Python's built-in range().
// https://docs.python.org/2/library/functions.html#range
//
//	Note: The stop value is always exclusive.
func Range(start, stop int, step *int) []int {
	s := field.OptionalInt(step, 1)
	if s == 0 {
		return []int{}
	}

	length := 0
	if (s > 0 && start < stop) || (s < 0 && start > stop) {
		length = (stop - start + s - sign(s)) / s
	}

	result := make([]int, length)
	for i, v := 0, start; i < length; i, v = i+1, v+s {
		result[i] = v
	}
	return result
}

// RangeSequence behaves like Range but yields values lazily over an iter.Seq.
func RangeSequence(start, stop int, step *int) iter.Seq[int] {
	values := Range(start, stop, step)
	return func(yield func(int) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}
