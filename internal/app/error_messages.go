// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

const (
	// MsgMalformedJSON is returned when the request body is not valid JSON.
	MsgMalformedJSON = "malformed JSON in request body"

	// MsgBodyTooLarge is returned when the request body exceeds the limit of
	// the JSON stage.
	MsgBodyTooLarge = "request body too large"

	// MsgRouteNotFound is returned for unknown paths and for methods a known
	// path does not serve.
	MsgRouteNotFound = "not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
