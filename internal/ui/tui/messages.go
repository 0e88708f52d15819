package tui

import "github.com/aalvaropc/fibprime/internal/domain"

type analysisDoneMsg struct {
	req    domain.Request
	report domain.Report
	err    error
}

// tickMsg advances the animation identified by id; stale ids are dropped.
type tickMsg struct {
	id int
}
