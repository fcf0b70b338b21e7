// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Role defines what a user is allowed to do on the platform.
type Role string

const (
	// RoleDonor is assigned to every newly registered account.
	RoleDonor Role = "donor"

	// RoleTenantAdmin is assigned to the user that created (and manages) a tenant.
	RoleTenantAdmin Role = "tenant_admin"

	// RolePlatformAdmin is granted through configuration and allows
	// reviewing and verifying every tenant.
	RolePlatformAdmin Role = "platform_admin"
)

// User represents an account entity used for authentication and authorization.
// PasswordHash is a bcrypt digest and never leaves the server.
type User struct {
	// ID is the unique identifier of the user.
	ID uuid.UUID `json:"id"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// FullName is the display name of the user.
	FullName string `json:"full_name"`

	// PasswordHash stores the bcrypt digest of the user's password.
	PasswordHash string `json:"-"`

	// Role controls access to tenant administration routes.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	FullName string `json:"full_name" validate:"required,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned after a successful registration or login.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}
