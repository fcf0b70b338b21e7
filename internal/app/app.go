// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app composes the request-processing pipeline of the server.
//
// [New] registers, in order: the ambient stages given as options, the JSON
// body stage, the route collection mounted under [APIPrefix] and the terminal
// error handler. Handlers do not write error responses themselves; they park
// the error with utils.ForwardError and return, and the terminal stage hands
// it to the [ErrorHandler] once the chain has unwound.
package app

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/donate-hub/internal/logger"
	"github.com/MKhiriev/donate-hub/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// APIPrefix is the path the route collection is mounted under.
const APIPrefix = "/api/v1"

// Names reported by [App.Stages].
const (
	StageJSONBody     = "json-body"
	StageRoutes       = "routes"
	StageErrorHandler = "error-handler"
)

// ErrorHandler turns a forwarded error into a response. It is installed as
// the terminal stage of the pipeline.
type ErrorHandler func(err error, w http.ResponseWriter, r *http.Request)

// App is the configured pipeline. It is safe for concurrent use once New
// returns.
type App struct {
	mux          *chi.Mux
	stages       []string
	errorHandler ErrorHandler
	logger       *logger.Logger
}

// New builds the pipeline around the route collection and the error handler.
// No network binding happens here.
func New(routes http.Handler, errorHandler ErrorHandler, logger *logger.Logger, opts ...Option) *App {
	o := options{maxBodyBytes: DefaultMaxBodyBytes}
	for _, opt := range opts {
		opt(&o)
	}

	a := &App{
		mux:          chi.NewRouter(),
		errorHandler: errorHandler,
		logger:       logger,
	}

	for _, m := range o.middlewares {
		a.mux.Use(m.middleware)
		a.stages = append(a.stages, m.name)
	}

	// The terminal stage wraps everything after it: it must observe the
	// chain after json-body and routes have returned.
	a.mux.Use(a.handleErrors)

	a.mux.Use(jsonBody(o.maxBodyBytes))
	a.stages = append(a.stages, StageJSONBody)

	a.mux.NotFound(forwardRouteNotFound)
	a.mux.MethodNotAllowed(forwardRouteNotFound)
	a.mux.Mount(APIPrefix, routes)
	a.stages = append(a.stages, StageRoutes)

	for _, h := range o.handlers {
		a.mux.Handle(h.pattern, h.handler)
	}

	a.stages = append(a.stages, StageErrorHandler)

	return a
}

// Stages returns the names of the registered stages in execution order.
func (a *App) Stages() []string {
	stages := make([]string, len(a.stages))
	copy(stages, a.stages)
	return stages
}

func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}

// handleErrors gives every request an error slot, recovers panics and calls
// the error handler with the forwarded error when the chain returns. Errors
// forwarded after a response was written can only be logged.
func (a *App) handleErrors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, slot := utils.WithErrorSlot(r.Context())
		r = r.WithContext(ctx)
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.FromRequest(r).Error().
					Str("stack", string(debug.Stack())).
					Msgf("panic recovered: %v", rec)
				utils.ForwardError(ctx, fmt.Errorf("%w: %v", ErrPanic, rec))
			}

			err := slot.Err()
			if err == nil {
				return
			}
			if ww.Status() != 0 {
				logger.FromRequest(r).Err(err).
					Int("status", ww.Status()).
					Msg("error forwarded after response was written")
				return
			}
			a.errorHandler(err, ww, r)
		}()

		next.ServeHTTP(ww, r)
	})
}

func forwardRouteNotFound(w http.ResponseWriter, r *http.Request) {
	utils.ForwardError(r.Context(), fmt.Errorf("%w: %s %s", ErrRouteNotFound, r.Method, r.URL.Path))
}
