package rules

import (
	"fmt"

	"github.com/observerdev/observer/internal/domain"
)

// FileSizeWarnings flags source files that outgrew the configured line limit.
type FileSizeWarnings struct {
	Config domain.ProjectConfig
}

func (FileSizeWarnings) Rule() string { return "File Size Warnings" }
func (FileSizeWarnings) Number() int  { return 10 }

func (c FileSizeWarnings) Check(snap *domain.ProjectSnapshot) domain.ValidationResult {
	maxLines := c.Config.MaxFileLines
	if maxLines <= 0 {
		maxLines = domain.DefaultConfig().MaxFileLines
	}

	var cov domain.Coverage
	var issues []domain.Issue

	for _, path := range snap.SourcePaths() {
		fa := snap.Analysis[path]
		if fa == nil {
			continue
		}
		cov.Total++
		cov.Checked++

		if fa.TotalLines <= maxLines {
			cov.Passed++
			continue
		}
		issues = append(issues, domain.Issue{
			File:       path,
			Rule:       c.Rule(),
			Category:   domain.CategoryCodeDrift,
			Severity:   domain.SeverityWarning,
			Message:    fmt.Sprintf("file has %d lines (limit %d)", fa.TotalLines, maxLines),
			Suggestion: "Split the file along its natural seams",
		})
	}

	return result(c, cov, issues)
}
