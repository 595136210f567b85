package rules

import (
	"fmt"

	"github.com/observerdev/observer/internal/domain"
)

// APITypeSafety verifies that API routes schema-validate both the incoming
// request and the outgoing response.
type APITypeSafety struct{}

func (APITypeSafety) Rule() string { return "API Type Safety" }
func (APITypeSafety) Number() int  { return 5 }

func (c APITypeSafety) Check(snap *domain.ProjectSnapshot) domain.ValidationResult {
	var cov domain.Coverage
	var issues []domain.Issue

	for _, path := range snap.SourcePaths() {
		if !isAPIRouteFile(path) {
			continue
		}
		cov.Total++
		cov.Checked++

		fa := snap.Analysis[path]
		requestValidated := fa != nil && fa.HasParse
		responseValidated := responseValRe.MatchString(snap.Files[path])

		if requestValidated && responseValidated {
			cov.Passed++
			continue
		}

		missing := "request"
		if requestValidated {
			missing = "response"
		}
		issues = append(issues, domain.Issue{
			File:       path,
			Rule:       c.Rule(),
			Category:   domain.CategoryValidation,
			Severity:   domain.SeverityCritical,
			Message:    fmt.Sprintf("API route %s does not validate its %s", path, missing),
			Suggestion: "Validate input and output with the shared zod schemas",
		})
	}

	return result(c, cov, issues)
}
