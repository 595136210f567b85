package rules

import (
	"fmt"

	"github.com/observerdev/observer/internal/domain"
)

// AuthGuards verifies that pages and API routes under protected paths show an
// auth or session check.
type AuthGuards struct {
	Config domain.ProjectConfig
}

func (AuthGuards) Rule() string { return "Auth Guards" }
func (AuthGuards) Number() int  { return 9 }

func (c AuthGuards) Check(snap *domain.ProjectSnapshot) domain.ValidationResult {
	var cov domain.Coverage
	var issues []domain.Issue

	for _, path := range snap.SourcePaths() {
		if !isProtectedPath(path, c.Config) {
			continue
		}
		if !isPageFile(path) && !isAPIRouteFile(path) {
			continue
		}
		cov.Total++
		cov.Checked++

		fa := snap.Analysis[path]
		if fa != nil && fa.HasAuth {
			cov.Passed++
			continue
		}
		issues = append(issues, domain.Issue{
			File:       path,
			Rule:       c.Rule(),
			Category:   domain.CategorySecurity,
			Severity:   domain.SeverityCritical,
			Message:    fmt.Sprintf("protected route %s has no auth check", path),
			Suggestion: "Check the session (getServerSession/auth()) before handling the request",
		})
	}

	return result(c, cov, issues)
}
