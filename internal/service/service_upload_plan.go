// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/grc-uploader/models"
)

// lookupKey derives the component title a rule refers to: hyphens become
// spaces and everything from the first underscore on is dropped.
//
//	lookupKey("ISTIO-check_v1") // "ISTIO check"
func lookupKey(ruleName string) string {
	key, _, _ := strings.Cut(strings.ReplaceAll(ruleName, "-", " "), "_")
	return key
}

// componentIndex maps lower-cased titles to components. The first component
// with a given title wins.
type componentIndex map[string]models.Component

func newComponentIndex(components []models.Component) componentIndex {
	idx := make(componentIndex, len(components))
	for _, c := range components {
		k := strings.ToLower(c.Title)
		if _, ok := idx[k]; !ok {
			idx[k] = c
		}
	}
	return idx
}

func (idx componentIndex) find(key string) (models.Component, bool) {
	c, ok := idx[strings.ToLower(key)]
	return c, ok
}

func findControl(impls []models.ControlImplementation, controlID string) (models.ControlImplementation, bool) {
	for _, impl := range impls {
		if impl.ControlName == controlID {
			return impl, true
		}
	}
	return models.ControlImplementation{}, false
}

// plan resolves every rule of every record and builds its assessment. Control
// implementations are fetched at most once per component. The first
// unresolved rule aborts the plan.
func (s *uploadService) plan(ctx context.Context, session models.Session, records []models.Record, components []models.Component) ([]models.Assessment, error) {
	now := models.FormatAssessmentTime(s.now())
	byTitle := newComponentIndex(components)
	controls := make(map[int][]models.ControlImplementation)

	var assessments []models.Assessment
	for _, record := range records {
		reqs := record.SourceRequirements
		for _, rule := range reqs.Rules {
			key := lookupKey(rule.Name)
			component, ok := byTitle.find(key)
			if !ok {
				return nil, fmt.Errorf("%w: %q (rule %q)", ErrComponentNotFound, key, rule.Name)
			}

			impls, cached := controls[component.ID]
			if !cached {
				var err error
				impls, err = s.adapter.ControlImplementations(ctx, component.ID)
				if err != nil {
					return nil, fmt.Errorf("lookup controls of %q: %w", component.Title, err)
				}
				controls[component.ID] = impls
			}

			impl, ok := findControl(impls, reqs.ControlID)
			if !ok {
				return nil, fmt.Errorf("%w: %q on component %q (rule %q)",
					ErrControlNotFound, reqs.ControlID, component.Title, rule.Name)
			}

			assessment, err := s.buildAssessment(session, record, rule, component, impl, now)
			if err != nil {
				return nil, err
			}

			s.logger.Debug().
				Str("rule", rule.Name).
				Str("component", component.Title).
				Str("control", reqs.ControlID).
				Msg("rule resolved")
			assessments = append(assessments, assessment)
		}
	}

	return assessments, nil
}

func (s *uploadService) buildAssessment(
	session models.Session,
	record models.Record,
	rule models.Rule,
	component models.Component,
	impl models.ControlImplementation,
	now string,
) (models.Assessment, error) {
	report, err := json.Marshal(rule)
	if err != nil {
		return models.Assessment{}, fmt.Errorf("encode rule %q: %w", rule.Name, err)
	}

	return models.Assessment{
		LeadAssessorID:   session.UserID,
		Title:            rule.Name,
		AssessmentType:   s.opts.AssessmentType,
		AssessmentResult: record.Result,
		PlannedStart:     now,
		PlannedFinish:    now,
		ActualFinish:     now,
		Status:           s.opts.Status,
		AssessmentPlan:   record.SourceRequirements.Description,
		AssessmentReport: string(report),
		ComponentID:      component.ID,
		ControlID:        impl.ID,
		ParentID:         impl.ID,
		ParentModule:     models.ParentModuleControls,
		IsPublic:         true,
	}, nil
}

// skipExisting drops assessments whose title matches an existing one.
func skipExisting(planned []models.Assessment, existing []models.AssessmentSummary) []models.Assessment {
	if len(existing) == 0 {
		return planned
	}

	titles := make(map[string]struct{}, len(existing))
	for _, a := range existing {
		titles[a.Title] = struct{}{}
	}

	kept := make([]models.Assessment, 0, len(planned))
	for _, a := range planned {
		if _, ok := titles[a.Title]; ok {
			continue
		}
		kept = append(kept, a)
	}
	return kept
}
