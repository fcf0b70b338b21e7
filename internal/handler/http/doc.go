// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
//
// It exposes the route collection mounted by package app under /api/v1, the
// request handlers behind it, the ambient middleware (request IDs, access
// logging, authentication) and the terminal error handler. Handlers never
// write error responses themselves: they forward the error with
// utils.ForwardError and the error handler maps it to a status code.
package http
