// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sampleResults = `
- result: satisfied
  source-requirements:
    control-id: ac-1
    description: Access control policy
    rules:
      - name: ISTIO-check_v1
        provider: opa
        observations:
          - pods: 3
      - name: Kyverno-admission_v2
- result: not-satisfied
  source-requirements:
    control-id: au-2
    description: Audit events
    rules:
      - name: loki-logging
`

func TestRecord_DecodeYAML(t *testing.T) {
	var records []Record
	require.NoError(t, yaml.Unmarshal([]byte(sampleResults), &records))
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "satisfied", first.Result)
	assert.Equal(t, "ac-1", first.SourceRequirements.ControlID)
	assert.Equal(t, "Access control policy", first.SourceRequirements.Description)
	require.Len(t, first.SourceRequirements.Rules, 2)
	assert.Equal(t, "ISTIO-check_v1", first.SourceRequirements.Rules[0].Name)
	assert.Equal(t, "opa", first.SourceRequirements.Rules[0].Raw["provider"])

	assert.Equal(t, "loki-logging", records[1].SourceRequirements.Rules[0].Name)
}

func TestRecord_DecodeJSONAsYAML(t *testing.T) {
	input := `[{"result":"satisfied","source-requirements":{"control-id":"ac-1","description":"d","rules":[{"name":"a_b","x":1}]}}]`

	var records []Record
	require.NoError(t, yaml.Unmarshal([]byte(input), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "a_b", records[0].SourceRequirements.Rules[0].Name)
	assert.Equal(t, 1, records[0].SourceRequirements.Rules[0].Raw["x"])
}

func TestRule_NonStringName(t *testing.T) {
	var r Rule
	err := yaml.Unmarshal([]byte("name: [1, 2]"), &r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name must be a string")
}

func TestRule_MarshalJSONKeepsAllFields(t *testing.T) {
	var records []Record
	require.NoError(t, yaml.Unmarshal([]byte(sampleResults), &records))

	out, err := json.Marshal(records[0].SourceRequirements.Rules[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"ISTIO-check_v1","provider":"opa","observations":[{"pods":3}]}`, string(out))

	out, err = json.Marshal(Rule{Name: "bare"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"bare"}`, string(out))
}

func TestAssessment_JSONFieldNames(t *testing.T) {
	a := Assessment{
		LeadAssessorID: "abc",
		Title:          "ISTIO-check_v1",
		ComponentID:    7,
		ControlID:      42,
		ParentID:       42,
		ParentModule:   ParentModuleControls,
		IsPublic:       true,
	}

	out, err := json.Marshal(a)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, "abc", m["leadAssessorId"])
	assert.Equal(t, float64(42), m["controlId"])
	assert.Equal(t, "controls", m["parentModule"])
	assert.Equal(t, true, m["isPublic"])
	assert.NotContains(t, m, "id", "zero id is omitted")
}

func TestFormatAssessmentTime(t *testing.T) {
	ts := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	assert.Equal(t, "2026-03-04T05:06:07", FormatAssessmentTime(ts))
}

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.2.0", "", "abc123")
	assert.Equal(t, "1.2.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Equal(t, "1.2.0 (built N/A, commit abc123)", info.String())
}
