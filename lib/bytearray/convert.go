// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bytearray

// TryConvertAll converts each item with convert, stopping at and
// returning the first error. The result is nil on error.
func TryConvertAll[T, U any](items []T, convert func(T) (U, error)) ([]U, error) {
	result := make([]U, 0, len(items))
	for _, item := range items {
		converted, err := convert(item)
		if err != nil {
			return nil, err
		}
		result = append(result, converted)
	}
	return result, nil
}
