// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable source of the current time.
//
// Code that stamps values with the current time accepts a Clock
// instead of calling time.Now directly. In production, Real() provides
// the standard library behavior. In tests, Fake() provides a clock
// that moves only when Advance or Set is called, so timestamps are
// deterministic.
//
// # Wiring Pattern
//
//	stamp := epochtime.Now(clock.Real())
//
// In tests:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	stamp := epochtime.Now(c)
//	c.Advance(5 * time.Second)
package clock
