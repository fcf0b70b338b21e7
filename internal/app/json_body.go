// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/MKhiriev/donate-hub/internal/utils"
)

var emptyObject = json.RawMessage(`{}`)

// jsonBody reads JSON request bodies up to limit bytes and stores them in the
// request context for utils.DecodeJSONBody. Only objects and arrays are
// accepted at the top level; an empty body reads as {}. On failure the error
// is forwarded and the rest of the chain is skipped.
func jsonBody(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isJSONContentType(r.Header.Get("Content-Type")) {
				next.ServeHTTP(w, r)
				return
			}

			raw, err := readJSON(w, r, limit)
			if err != nil {
				utils.ForwardError(r.Context(), err)
				return
			}

			r = r.WithContext(utils.WithJSONBody(r.Context(), raw))
			r.Body = io.NopCloser(bytes.NewReader(raw))
			r.ContentLength = int64(len(raw))

			next.ServeHTTP(w, r)
		})
	}
}

func readJSON(w http.ResponseWriter, r *http.Request, limit int64) (json.RawMessage, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return emptyObject, nil
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, tooLarge.Limit)
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return emptyObject, nil
	}
	if body[0] != '{' && body[0] != '[' {
		return nil, fmt.Errorf("%w: top-level value must be an object or an array", ErrMalformedJSON)
	}
	if !json.Valid(body) {
		return nil, ErrMalformedJSON
	}

	return json.RawMessage(body), nil
}

func isJSONContentType(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
