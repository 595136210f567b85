package rules

import (
	"fmt"
	"strings"

	"github.com/fatih/camelcase"
	"github.com/observerdev/observer/internal/domain"
)

// DuplicateFunctions flags function names declared in more than one file.
// Names are compared on their split camel-case words, so fetchUserData and
// FetchUserData count as the same function drifting apart.
type DuplicateFunctions struct{}

func (DuplicateFunctions) Rule() string { return "Duplicate Functions" }
func (DuplicateFunctions) Number() int  { return 11 }

func (c DuplicateFunctions) Check(snap *domain.ProjectSnapshot) domain.ValidationResult {
	var cov domain.Coverage
	var issues []domain.Issue

	seen := make(map[string]string) // normalized name -> first file
	for _, path := range snap.SourcePaths() {
		fa := snap.Analysis[path]
		if fa == nil {
			continue
		}
		for _, fn := range fa.Functions {
			cov.Total++
			cov.Checked++

			key := normalizeFunctionName(fn)
			first, dup := seen[key]
			if !dup {
				seen[key] = path
				cov.Passed++
				continue
			}
			if first == path {
				cov.Passed++
				continue
			}
			issues = append(issues, domain.Issue{
				File:       path,
				Rule:       c.Rule(),
				Category:   domain.CategoryCodeDrift,
				Severity:   domain.SeverityWarning,
				Message:    fmt.Sprintf("function %s duplicates a definition in %s", fn, first),
				Suggestion: "Extract the shared implementation into one module",
			})
		}
	}

	return result(c, cov, issues)
}

func normalizeFunctionName(name string) string {
	words := camelcase.Split(name)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_")
}
