package rules

import (
	"fmt"

	"github.com/observerdev/observer/internal/domain"
)

// LoadingStates verifies that every hook exposes a loading or pending flag.
// Reported in the native three-level vocabulary as "warning".
type LoadingStates struct {
	Config domain.ProjectConfig
}

func (LoadingStates) Rule() string { return "Loading States" }
func (LoadingStates) Number() int  { return 4 }

func (c LoadingStates) Check(snap *domain.ProjectSnapshot) domain.ValidationResult {
	var cov domain.Coverage
	var issues []domain.Issue

	for _, path := range snap.SourcePaths() {
		if !isHookFile(path, c.Config) {
			continue
		}
		fa := snap.Analysis[path]
		if fa == nil {
			continue
		}
		cov.Total++
		cov.Checked++

		if fa.HasLoadingState {
			cov.Passed++
			continue
		}
		issues = append(issues, domain.Issue{
			File:       path,
			Rule:       c.Rule(),
			Category:   domain.CategoryUserExperience,
			Severity:   domain.SeverityWarning,
			Message:    fmt.Sprintf("hook %s does not expose a loading flag", path),
			Suggestion: "Return isLoading/isPending so consumers can render a spinner",
		})
	}

	return result(c, cov, issues)
}
