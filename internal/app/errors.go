// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import "errors"

// Errors forwarded by the pipeline itself. Route handlers forward their own.
var (
	ErrMalformedJSON = errors.New(MsgMalformedJSON)
	ErrBodyTooLarge  = errors.New(MsgBodyTooLarge)
	ErrRouteNotFound = errors.New(MsgRouteNotFound)

	// ErrPanic wraps the value recovered from a panicking stage.
	ErrPanic = errors.New("panic recovered")
)
