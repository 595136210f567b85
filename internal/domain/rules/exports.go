package rules

import (
	"fmt"

	"github.com/observerdev/observer/internal/domain"
)

// ExportCompleteness flags component and hook files that declare functions
// but export nothing, leaving the code unreachable from the rest of the app.
type ExportCompleteness struct{}

func (ExportCompleteness) Rule() string { return "Export Completeness" }
func (ExportCompleteness) Number() int  { return 12 }

func (c ExportCompleteness) Check(snap *domain.ProjectSnapshot) domain.ValidationResult {
	var cov domain.Coverage
	var issues []domain.Issue

	for _, path := range snap.SourcePaths() {
		if !isComponentFile(path) && !isHookFile(path, domain.ProjectConfig{}) {
			continue
		}
		fa := snap.Analysis[path]
		if fa == nil || len(fa.Functions) == 0 {
			continue
		}
		cov.Total++
		cov.Checked++

		if fa.HasExport {
			cov.Passed++
			continue
		}
		issues = append(issues, domain.Issue{
			File:       path,
			Rule:       c.Rule(),
			Category:   domain.CategoryAPICompleteness,
			Severity:   domain.SeverityCritical,
			Type:       "export_completeness",
			Message:    fmt.Sprintf("%s declares %d functions but exports none", path, len(fa.Functions)),
			Suggestion: "Export the public symbols or delete the dead file",
		})
	}

	return result(c, cov, issues)
}
