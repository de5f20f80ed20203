// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package fixedset provides a collection with a capacity fixed at
// construction and stable slot positions.
//
// Items occupy numbered slots. Insert fills the lowest free slot;
// removing an item frees its slot without moving any other item, so a
// position handed out by Insert stays valid until that slot is
// removed or overwritten. The number of items never exceeds the
// capacity.
//
// A Set is not safe for concurrent use.
package fixedset
