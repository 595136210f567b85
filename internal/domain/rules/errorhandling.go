package rules

import (
	"fmt"

	"github.com/observerdev/observer/internal/domain"
)

// ErrorHandlingChain verifies that hooks expose an error state and API routes
// wrap their handlers in try/catch, so failures surface instead of vanishing.
type ErrorHandlingChain struct {
	Config domain.ProjectConfig
}

func (ErrorHandlingChain) Rule() string { return "Error Handling" }
func (ErrorHandlingChain) Number() int  { return 3 }

func (c ErrorHandlingChain) Check(snap *domain.ProjectSnapshot) domain.ValidationResult {
	var cov domain.Coverage
	var issues []domain.Issue

	for _, path := range snap.SourcePaths() {
		fa := snap.Analysis[path]
		if fa == nil {
			continue
		}

		switch {
		case isHookFile(path, c.Config):
			cov.Total++
			cov.Checked++
			if fa.HasErrorState {
				cov.Passed++
			} else {
				issues = append(issues, domain.Issue{
					File:       path,
					Rule:       c.Rule(),
					Category:   domain.CategoryRuntime,
					Severity:   domain.SeverityCritical,
					Message:    fmt.Sprintf("hook %s does not expose an error state", path),
					Suggestion: "Return isError/error from the hook so callers can render failures",
				})
			}
		case isAPIRouteFile(path):
			cov.Total++
			cov.Checked++
			if fa.HasTryCatch {
				cov.Passed++
			} else {
				issues = append(issues, domain.Issue{
					File:       path,
					Rule:       c.Rule(),
					Category:   domain.CategoryRuntime,
					Severity:   domain.SeverityCritical,
					Message:    fmt.Sprintf("API route %s has no try/catch", path),
					Suggestion: "Wrap the handler body in try/catch and return a structured error response",
				})
			}
		}
	}

	return result(c, cov, issues)
}
