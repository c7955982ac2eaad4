// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the body of POST /api/authentication/login.
type Credentials struct {
	// UserName is the platform login.
	UserName string `json:"userName"`

	// Password is sent as-is; the platform hashes it server-side.
	Password string `json:"password"`

	// OldPassword is only used by the platform's password-change flow and is
	// always sent empty on login.
	OldPassword string `json:"oldPassword"`
}

// LoginResponse is the body returned by a successful login.
type LoginResponse struct {
	ID        string `json:"id"`
	AuthToken string `json:"auth_token"`
}

// Session is the authenticated identity used for the rest of the run.
type Session struct {
	// UserID is the platform user id; it becomes the lead assessor of every
	// posted assessment.
	UserID string

	// Token is the raw bearer token (without the "Bearer " prefix).
	Token string
}
