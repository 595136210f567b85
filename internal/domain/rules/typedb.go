package rules

import (
	"fmt"

	"github.com/observerdev/observer/internal/domain"
)

// TypeDatabaseAlignment verifies that files touching the database show
// evidence of schema parsing around the access, so runtime rows match the
// declared types.
type TypeDatabaseAlignment struct{}

func (TypeDatabaseAlignment) Rule() string { return "Type-Database Alignment" }
func (TypeDatabaseAlignment) Number() int  { return 1 }

func (c TypeDatabaseAlignment) Check(snap *domain.ProjectSnapshot) domain.ValidationResult {
	var cov domain.Coverage
	var issues []domain.Issue

	for _, path := range snap.SourcePaths() {
		if !isDatabaseFile(path) || !isSourceFile(path) {
			continue
		}
		cov.Total++
		cov.Checked++

		fa := snap.Analysis[path]
		if fa != nil && fa.HasParse {
			cov.Passed++
			continue
		}
		issues = append(issues, domain.Issue{
			File:       path,
			Rule:       c.Rule(),
			Category:   domain.CategoryTypes,
			Severity:   domain.SeverityCritical,
			Type:       "typescript_error",
			Message:    fmt.Sprintf("%s accesses the database without schema parsing", path),
			Suggestion: "Parse rows with the entity schema (schema.parse) before returning them",
		})
	}

	return result(c, cov, issues)
}
