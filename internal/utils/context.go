// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, the per-request
// error slot, the parsed JSON body, HTTP response writing, JWT token
// generation and validation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/donate-hub/models"
	"github.com/google/uuid"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey is the key used to store the authenticated user identifier
	// in the context. Use GetUserIDFromContext for type-safe retrieval.
	//
	// Example of writing a value to the context:
	//
	//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, userID)
	UserIDCtxKey = contextKey("userID")

	// RoleCtxKey is the key used to store the role claim of the
	// authenticated user in the context.
	RoleCtxKey = contextKey("role")

	errorSlotCtxKey = contextKey("errorSlot")
	jsonBodyCtxKey  = contextKey("jsonBody")
)

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID and an ok flag:
//   - ok == true : value is found and has the uuid.UUID type
//   - ok == false: value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(uuid.UUID)
	return userID, ok
}

// GetRoleFromContext retrieves the role of the authenticated user.
func GetRoleFromContext(ctx context.Context) (models.Role, bool) {
	role, ok := ctx.Value(RoleCtxKey).(models.Role)
	return role, ok
}

// WithAuth stores the authenticated user identity in ctx.
func WithAuth(ctx context.Context, userID uuid.UUID, role models.Role) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, RoleCtxKey, role)
}
