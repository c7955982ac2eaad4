// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Component is a platform entity (system or service) that controls are
// attached to. Only the fields the uploader reads are decoded.
type Component struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// ControlImplementation associates a component with one control.
type ControlImplementation struct {
	ID          int    `json:"id"`
	ControlName string `json:"controlName"`
	ParentID    int    `json:"parentId,omitempty"`
}
