// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Faint(true).Width(11)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)
