/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package collection

import (
	"iter"

	"github.com/polyglotdb/coordinator/commonerrors"
)

// OperationFunc defines an operation applied to an element of a sequence which can fail.
type OperationFunc[E any] func(E) error

// Each applies f to every element of s, stopping at the first error f returns. That error is
// returned, except ErrEOF, which stops the iteration and yields nil.
func Each[T any](s iter.Seq[T], f OperationFunc[T]) error {
	for e := range s {
		err := f(e)
		if err != nil {
			err = commonerrors.Ignore(err, commonerrors.ErrEOF)
			return err
		}
	}
	return nil
}
