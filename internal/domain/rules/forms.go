package rules

import (
	"fmt"

	"github.com/observerdev/observer/internal/domain"
)

// FormValidation verifies that form-bearing components wire a validation
// resolver or explicit validation rules.
type FormValidation struct{}

func (FormValidation) Rule() string { return "Form Validation" }
func (FormValidation) Number() int  { return 8 }

func (c FormValidation) Check(snap *domain.ProjectSnapshot) domain.ValidationResult {
	var cov domain.Coverage
	var issues []domain.Issue

	for _, path := range snap.SourcePaths() {
		if !isComponentFile(path) || !formMarkerRe.MatchString(snap.Files[path]) {
			continue
		}
		cov.Total++
		cov.Checked++

		fa := snap.Analysis[path]
		if fa != nil && fa.HasFormValidation {
			cov.Passed++
			continue
		}
		issues = append(issues, domain.Issue{
			File:       path,
			Rule:       c.Rule(),
			Category:   domain.CategoryValidation,
			Severity:   domain.SeverityWarning,
			Message:    fmt.Sprintf("form in %s has no validation", path),
			Suggestion: "Attach zodResolver (or explicit validate rules) to the form",
		})
	}

	return result(c, cov, issues)
}
