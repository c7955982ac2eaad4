// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import "errors"

// ErrConnection marks a network-level failure (DNS, refused or reset
// connection, timeout). Requests failing this way are never retried and no
// response is returned. HTTP error statuses are not errors at this layer.
var ErrConnection = errors.New("connection error")
