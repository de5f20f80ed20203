// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"testing"
	"time"
)

// RequireClosed waits for ch to be closed (or receive a value) within
// timeout, or fails the test.
//
//	testutil.RequireClosed(t, done, 5*time.Second, "workers finished")
func RequireClosed(t testing.TB, ch <-chan struct{}, timeout time.Duration, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(timeout):
		t.Fatalf("timed out after %v: %s", timeout, what)
	}
}

// RequireReturns runs fn on a new goroutine and fails the test if fn
// has not returned within timeout. Wrap WaitGroup.Wait and other calls
// that hang instead of failing when a lock is mishandled.
//
//	testutil.RequireReturns(t, 5*time.Second, "readers finished", group.Wait)
func RequireReturns(t testing.TB, timeout time.Duration, what string, fn func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	RequireClosed(t, done, timeout, what)
}
