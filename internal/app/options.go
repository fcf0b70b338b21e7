// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import "net/http"

// DefaultMaxBodyBytes is the body limit of the JSON stage.
const DefaultMaxBodyBytes int64 = 100 << 10

type Option func(*options)

type options struct {
	middlewares  []namedMiddleware
	handlers     []namedHandler
	maxBodyBytes int64
}

type namedMiddleware struct {
	name       string
	middleware func(http.Handler) http.Handler
}

type namedHandler struct {
	pattern string
	handler http.Handler
}

// WithMiddleware registers an ambient stage that runs before the JSON stage.
// Stages run in the order they are given.
func WithMiddleware(name string, mw func(http.Handler) http.Handler) Option {
	return func(o *options) {
		o.middlewares = append(o.middlewares, namedMiddleware{name: name, middleware: mw})
	}
}

// WithHandler serves h at pattern outside of APIPrefix.
func WithHandler(pattern string, h http.Handler) Option {
	return func(o *options) {
		o.handlers = append(o.handlers, namedHandler{pattern: pattern, handler: h})
	}
}

// WithMaxBodyBytes overrides DefaultMaxBodyBytes. Non-positive values are
// ignored.
func WithMaxBodyBytes(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxBodyBytes = n
		}
	}
}
