// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNoJSONBody is returned by DecodeJSONBody when the request was not
	// sent with a JSON content type.
	ErrNoJSONBody = errors.New("request body must be application/json")

	// ErrJSONBodyMismatch is returned when the parsed body does not fit the
	// target type (e.g. a string where a number is expected).
	ErrJSONBodyMismatch = errors.New("request body does not match the expected shape")
)

// WithJSONBody stores the parsed request body in ctx.
func WithJSONBody(ctx context.Context, body json.RawMessage) context.Context {
	return context.WithValue(ctx, jsonBodyCtxKey, body)
}

// JSONBodyFromContext returns the parsed request body, if the JSON stage of
// the pipeline has processed the request.
func JSONBodyFromContext(ctx context.Context) (json.RawMessage, bool) {
	body, ok := ctx.Value(jsonBodyCtxKey).(json.RawMessage)
	return body, ok
}

// DecodeJSONBody decodes the JSON body parsed by the pipeline into dst.
func DecodeJSONBody(r *http.Request, dst any) error {
	body, ok := JSONBodyFromContext(r.Context())
	if !ok {
		return ErrNoJSONBody
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrJSONBodyMismatch, err)
	}

	return nil
}
