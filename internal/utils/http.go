// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// marshalFailureBody is written when the response value cannot be encoded.
const marshalFailureBody = `{"detail":"internal server error"}`

// WriteJSON encodes data and writes it with the given status and a JSON
// content type. It returns the number of body bytes written.
//
// When data cannot be encoded the client receives 500 with a generic
// {"detail": ...} document and the encoding error is returned, so every
// answer of the API stays JSON.
//
// Example usage:
//
//	utils.WriteJSON(w, campaign, http.StatusCreated)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "application/json")

	jsonData, err := json.Marshal(data)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(marshalFailureBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.WriteHeader(statusCode)
	return w.Write(jsonData)
}
