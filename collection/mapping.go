/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package collection

import "iter"

// MapFunc converts a T1 into a T2.
type MapFunc[T1, T2 any] func(T1) T2

// Map applies f to every element of s, returning the resulting slice.
func Map[T1 any, T2 any](s []T1, f MapFunc[T1, T2]) []T2 {
	result := make([]T2, 0, len(s))
	for i := range s {
		result = append(result, f(s[i]))
	}
	return result
}

// MapSequence behaves like Map but operates lazily over an iter.Seq.
func MapSequence[T1 any, T2 any](s iter.Seq[T1], f MapFunc[T1, T2]) iter.Seq[T2] {
	return func(yield func(T2) bool) {
		for e := range s {
			if !yield(f(e)) {
				return
			}
		}
	}
}
