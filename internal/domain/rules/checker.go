// Package rules contains the rule checkers. Each checker independently scans
// the shared project snapshot and produces a ValidationResult; checkers never
// observe each other's output, so they can run in any order or in parallel.
package rules

import (
	"fmt"

	"github.com/observerdev/observer/internal/domain"
	"github.com/observerdev/observer/internal/domain/scoring"
)

// Checker is the contract every rule implements.
type Checker interface {
	// Rule returns the human-readable rule name.
	Rule() string
	// Number returns the fixed rule number used for stable ordering.
	Number() int
	// Check scans the snapshot and returns the rule's result.
	Check(snap *domain.ProjectSnapshot) domain.ValidationResult
}

// result builds a ValidationResult from a coverage triple and issues.
// A rule that examined nothing trivially passes.
func result(c Checker, cov domain.Coverage, issues []domain.Issue) domain.ValidationResult {
	r := domain.ValidationResult{
		Rule:       c.Rule(),
		RuleNumber: c.Number(),
		Score:      scoring.CoverageScore(cov.Passed, cov.Total),
		Issues:     issues,
		Coverage:   cov,
	}
	r.Status = statusFor(issues)
	return r
}

// statusFor derives pass/warning/fail from the rule's own issues: any
// critical-equivalent issue fails the rule, any other issue is a warning.
func statusFor(issues []domain.Issue) string {
	status := domain.StatusPass
	for _, issue := range issues {
		if domain.NormalizeSeverity(issue.Severity) == domain.SeverityCritical {
			return domain.StatusFail
		}
		status = domain.StatusWarning
	}
	return status
}

// Skipped returns the result of a rule that was configured off: examined
// nothing, trivially passes.
func Skipped(c Checker) domain.ValidationResult {
	return result(c, domain.Coverage{}, nil)
}

// Run executes a checker with its failure contained at the boundary. A
// panicking checker contributes a single synthetic low-severity issue instead
// of aborting the run.
func Run(c Checker, snap *domain.ProjectSnapshot) (vr domain.ValidationResult) {
	defer func() {
		if r := recover(); r != nil {
			vr = result(c, domain.Coverage{}, []domain.Issue{{
				File:     ".",
				Rule:     c.Rule(),
				Severity: domain.SeverityLow,
				Message:  fmt.Sprintf("rule skipped: %v", r),
			}})
		}
	}()
	return c.Check(snap)
}

// Canonical returns the nine core checkers in fixed rule order.
func Canonical(cfg domain.ProjectConfig) []Checker {
	return []Checker{
		TypeDatabaseAlignment{},
		HookDatabasePattern{Config: cfg},
		ErrorHandlingChain{Config: cfg},
		LoadingStates{Config: cfg},
		APITypeSafety{},
		RegistryUsage{},
		CacheInvalidation{Config: cfg},
		FormValidation{},
		AuthGuards{Config: cfg},
	}
}

// Extended returns the drift and contract checkers, which follow the same
// contract but sit outside the nine-rule summary.
func Extended(cfg domain.ProjectConfig, contracts []domain.Contract) []Checker {
	return []Checker{
		FileSizeWarnings{Config: cfg},
		DuplicateFunctions{},
		ExportCompleteness{},
		ContractCompliance{Contracts: contracts},
	}
}
