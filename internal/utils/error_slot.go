// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"sync"
)

// ErrorSlot holds the first error forwarded while a request travels through
// the handler chain. The slot is created once per request by the pipeline and
// read after the chain returns.
type ErrorSlot struct {
	mu  sync.Mutex
	err error
}

// Err returns the forwarded error or nil.
func (s *ErrorSlot) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *ErrorSlot) set(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil {
		s.err = err
	}
}

// WithErrorSlot returns a child context carrying a fresh [ErrorSlot].
func WithErrorSlot(ctx context.Context) (context.Context, *ErrorSlot) {
	slot := &ErrorSlot{}
	return context.WithValue(ctx, errorSlotCtxKey, slot), slot
}

// ForwardError hands err to the terminal error handler of the pipeline.
// The caller must return without writing a response. Only the first
// forwarded error is kept.
//
// It reports false when ctx carries no slot, in which case the caller is
// responsible for answering the request itself.
//
// Example usage:
//
//	if err != nil {
//	    utils.ForwardError(r.Context(), err)
//	    return
//	}
func ForwardError(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}

	slot, ok := ctx.Value(errorSlotCtxKey).(*ErrorSlot)
	if !ok {
		return false
	}
	slot.set(err)
	return true
}

// ForwardedError returns the error forwarded within ctx so far.
func ForwardedError(ctx context.Context) error {
	slot, ok := ctx.Value(errorSlotCtxKey).(*ErrorSlot)
	if !ok {
		return nil
	}
	return slot.Err()
}
