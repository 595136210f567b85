package rules

import (
	"fmt"
	"strings"

	"github.com/observerdev/observer/internal/domain"
)

// CacheInvalidation verifies that every mutation in a hook is followed by a
// cache-invalidate call, so stale query data does not linger after writes.
type CacheInvalidation struct {
	Config domain.ProjectConfig
}

func (CacheInvalidation) Rule() string { return "Cache Invalidation" }
func (CacheInvalidation) Number() int  { return 7 }

func (c CacheInvalidation) Check(snap *domain.ProjectSnapshot) domain.ValidationResult {
	var cov domain.Coverage
	var issues []domain.Issue

	for _, path := range snap.SourcePaths() {
		if !isHookFile(path, c.Config) {
			continue
		}
		fa := snap.Analysis[path]
		if fa == nil || len(fa.Mutations) == 0 {
			continue
		}
		cov.Total++
		cov.Checked++

		if len(fa.Invalidates) > 0 {
			cov.Passed++
			continue
		}
		issues = append(issues, domain.Issue{
			File:       path,
			Rule:       c.Rule(),
			Category:   domain.CategoryPerformance,
			Severity:   domain.SeverityWarning,
			Message:    fmt.Sprintf("hook %s mutates (%s) without invalidating queries", path, strings.Join(fa.Mutations, ", ")),
			Suggestion: "Call queryClient.invalidateQueries in the mutation's onSuccess",
		})
	}

	return result(c, cov, issues)
}
