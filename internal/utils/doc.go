// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the transport and adapter
// layers: trace id generation and bearer token inspection.
package utils
