package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/observerdev/observer/internal/domain"
)

func emptySnap() *domain.ProjectSnapshot {
	return &domain.ProjectSnapshot{
		Files:    map[string]string{},
		Analysis: map[string]*domain.FileAnalysis{},
	}
}

func TestAllCheckers_EmptyProjectPasses(t *testing.T) {
	cfg := domain.DefaultConfig()
	checkers := append(Canonical(cfg), Extended(cfg, nil)...)
	require.Len(t, checkers, 13)

	for _, c := range checkers {
		r := Run(c, emptySnap())
		assert.Equal(t, domain.StatusPass, r.Status, c.Rule())
		assert.Equal(t, 100, r.Score, c.Rule())
		assert.Equal(t, domain.Coverage{}, r.Coverage, c.Rule())
		assert.Empty(t, r.Issues, c.Rule())
	}
}

func TestCanonical_FixedRuleOrder(t *testing.T) {
	checkers := Canonical(domain.DefaultConfig())
	require.Len(t, checkers, 9)
	for i, c := range checkers {
		assert.Equal(t, i+1, c.Number(), c.Rule())
	}
}

func TestSkipped(t *testing.T) {
	r := Skipped(AuthGuards{})
	assert.Equal(t, "Auth Guards", r.Rule)
	assert.Equal(t, domain.StatusPass, r.Status)
	assert.Equal(t, 100, r.Score)
	assert.Empty(t, r.Issues)
}

type panicChecker struct{}

func (panicChecker) Rule() string { return "Panic Rule" }
func (panicChecker) Number() int  { return 99 }
func (panicChecker) Check(*domain.ProjectSnapshot) domain.ValidationResult {
	panic("boom")
}

func TestRun_RecoversPanics(t *testing.T) {
	r := Run(panicChecker{}, emptySnap())

	require.Len(t, r.Issues, 1)
	assert.Equal(t, domain.SeverityLow, r.Issues[0].Severity)
	assert.Contains(t, r.Issues[0].Message, "rule skipped: boom")
	assert.Equal(t, "Panic Rule", r.Issues[0].Rule)
	assert.Equal(t, domain.StatusWarning, r.Status, "a broken rule degrades, it does not fail the run")
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, domain.StatusPass, statusFor(nil))
	assert.Equal(t, domain.StatusWarning, statusFor([]domain.Issue{
		{Severity: domain.SeverityWarning},
	}))
	assert.Equal(t, domain.StatusFail, statusFor([]domain.Issue{
		{Severity: domain.SeverityWarning},
		{Severity: domain.SeverityCritical},
	}))
}
