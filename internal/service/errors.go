// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("incorrect email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrForbidden is returned when the caller does not manage the resource.
	ErrForbidden = errors.New("not enough permissions")

	// ErrNoTenantForUser is returned for tenant-admin operations called by a
	// user that manages no tenant.
	ErrNoTenantForUser = errors.New("no tenant found for this user")

	ErrNothingToUpdate = errors.New("no fields to update")
	ErrInvalidDates    = errors.New("end date must be after start date")

	ErrCampaignNotActive = errors.New("campaign is not active")
	ErrCampaignEnded     = errors.New("campaign has ended")
	ErrInvalidAmount     = errors.New("amount must be greater than zero with at most two decimal places")
)
