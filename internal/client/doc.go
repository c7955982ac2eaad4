// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the uploader runtime.
//
// It wires the transport session, bulk submitter, platform adapter, results
// validator and upload service into a single process lifecycle driven by
// [App.Run].
package client
