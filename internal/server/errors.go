// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrNoAddress is returned by NewServer when no listen address is configured.
	ErrNoAddress = errors.New("server address is not configured")
)
