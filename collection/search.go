/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package collection

import "strings"

// FindInSlice finds if any values val are present in the slice and if so returns the first index.
// If strict, it checks for an exact match; otherwise it discards whitespace and case.
func FindInSlice(strict bool, slice []string, val ...string) (int, bool) {
	if len(val) == 0 || len(slice) == 0 {
		return -1, false
	}
	for i := range slice {
		item := slice[i]
		if !strict {
			item = strings.TrimSpace(item)
		}
		for j := range val {
			if !strict && strings.EqualFold(item, val[j]) {
				return i, true
			} else if strict && item == val[j] {
				return i, true
			}
		}
	}
	return -1, false
}
