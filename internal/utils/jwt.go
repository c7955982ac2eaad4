// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned by TokenExpiry when the token carries no exp claim.
var ErrNoExpiry = errors.New("token has no expiry")

// ParseBearerToken strips an optional "Bearer " scheme from raw and returns
// the bare token.
//
// Example usage:
//
//	utils.ParseBearerToken("Bearer abc") // "abc", nil
//	utils.ParseBearerToken("abc")        // "abc", nil
func ParseBearerToken(raw string) (string, error) {
	parts := strings.Fields(raw)
	switch {
	case len(parts) == 1:
		return parts[0], nil
	case len(parts) == 2 && strings.EqualFold(parts[0], "Bearer"):
		return parts[1], nil
	default:
		return "", errors.New("invalid bearer token")
	}
}

// TokenExpiry reads the exp claim of a JWT without verifying its signature.
// The uploader never holds the platform's signing key; the value is only
// used for logging.
func TokenExpiry(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}
	return exp.Time, nil
}
