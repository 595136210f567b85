package rules

import (
	"fmt"
	"strings"

	"github.com/observerdev/observer/internal/domain"
)

// HookDatabasePattern enforces the layering rule that components never import
// the database directly; all data access goes through hooks.
type HookDatabasePattern struct {
	Config domain.ProjectConfig
}

func (HookDatabasePattern) Rule() string { return "Hook-Database Pattern" }
func (HookDatabasePattern) Number() int  { return 2 }

func (c HookDatabasePattern) Check(snap *domain.ProjectSnapshot) domain.ValidationResult {
	var cov domain.Coverage
	var issues []domain.Issue

	for _, path := range snap.SourcePaths() {
		if !isComponentFile(path) || isHookFile(path, c.Config) {
			continue
		}
		cov.Total++
		cov.Checked++

		if m := dbImportRe.FindStringSubmatch(snap.Files[path]); m != nil {
			issues = append(issues, domain.Issue{
				File:       path,
				Line:       lineOf(snap.Files[path], m[0]),
				Rule:       c.Rule(),
				Category:   domain.CategoryArchitecture,
				Severity:   domain.SeverityCritical,
				Message:    fmt.Sprintf("component imports the database directly (%s)", m[1]),
				Suggestion: "Move the query into a hook and consume the hook from the component",
			})
			continue
		}
		cov.Passed++
	}

	return result(c, cov, issues)
}

// lineOf returns the 1-based line of the first occurrence of needle, or 0.
func lineOf(content, needle string) int {
	idx := strings.Index(content, needle)
	if idx < 0 {
		return 0
	}
	return strings.Count(content[:idx], "\n") + 1
}
