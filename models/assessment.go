// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AssessmentTimeLayout is the timestamp layout the platform expects for
// planned and actual dates.
const AssessmentTimeLayout = "2006-01-02T15:04:05"

const (
	// DefaultAssessmentType labels assessments produced by automated checks.
	DefaultAssessmentType = "Script/DevOps Check"
	// DefaultAssessmentStatus marks an assessment as finished.
	DefaultAssessmentStatus = "Complete"
	// ParentModuleControls attaches an assessment to a control implementation.
	ParentModuleControls = "controls"
)

// Assessment is the record posted to /api/assessments, one per rule.
type Assessment struct {
	// ID is assigned by the platform; zero for new assessments.
	ID int `json:"id,omitempty"`

	LeadAssessorID   string `json:"leadAssessorId"`
	Title            string `json:"title"`
	AssessmentType   string `json:"assessmentType"`
	AssessmentResult string `json:"assessmentResult"`
	PlannedStart     string `json:"plannedStart"`
	PlannedFinish    string `json:"plannedFinish"`
	ActualFinish     string `json:"actualFinish"`
	Status           string `json:"status"`

	// AssessmentPlan carries the control requirement description.
	AssessmentPlan string `json:"assessmentPlan"`

	// AssessmentReport is the JSON encoding of the rule that produced the
	// result.
	AssessmentReport string `json:"assessmentReport"`

	Targets      string `json:"targets"`
	Metadata     string `json:"metadata"`
	ComponentID  int    `json:"componentId"`
	ControlID    int    `json:"controlId"`
	ParentID     int    `json:"parentId"`
	ParentModule string `json:"parentModule"`
	IsPublic     bool   `json:"isPublic"`
}

// AssessmentSummary is the part of an existing assessment the uploader
// reads back from the platform. Other fields are ignored.
type AssessmentSummary struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// FormatAssessmentTime renders t with [AssessmentTimeLayout].
func FormatAssessmentTime(t time.Time) string {
	return t.Format(AssessmentTimeLayout)
}
