// Package storage holds the state the web surface needs between requests.
package storage

import (
	"sync"

	"github.com/sevigo/snippet-warden/internal/core"
)

// LatestStore keeps the most recent submission and its report in memory.
// Each Save replaces the previous pair; the last writer wins.
type LatestStore struct {
	mu     sync.RWMutex
	sub    core.Submission
	report core.Report
	ok     bool
}

// NewLatestStore creates an empty store.
func NewLatestStore() *LatestStore {
	return &LatestStore{}
}

// Save replaces the stored submission and report.
func (s *LatestStore) Save(sub core.Submission, report core.Report) {
	report = cloneReport(report)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sub = sub
	s.report = report
	s.ok = true
}

// Latest returns the stored pair. The boolean is false until the first Save.
func (s *LatestStore) Latest() (core.Submission, core.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.ok {
		return core.Submission{}, core.Report{}, false
	}
	return s.sub, cloneReport(s.report), true
}

func cloneReport(r core.Report) core.Report {
	if r.RuleFeedback != nil {
		r.RuleFeedback = append([]string{}, r.RuleFeedback...)
	}
	if r.ComplexityFeedback != nil {
		r.ComplexityFeedback = append([]string{}, r.ComplexityFeedback...)
	}
	return r
}
