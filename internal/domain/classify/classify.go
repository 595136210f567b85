// Package classify partitions aggregated issues into the three priority
// buckets. Classification is an explicit ordered predicate table evaluated
// first-match-wins: the predicates overlap, so order encodes priority.
package classify

import "github.com/observerdev/observer/internal/domain"

// blockerRules are the rules whose critical issues break the running app.
var blockerRules = map[string]bool{
	"Contract Compliance":     true,
	"Contract Violation":      true,
	"Type-Database Alignment": true,
	"Export Completeness":     true,
}

var blockerCategories = map[string]bool{
	domain.CategorySetup:           true,
	domain.CategoryAPICompleteness: true,
}

var blockerTypes = map[string]bool{
	"missing_contracts":   true,
	"typescript_error":    true,
	"export_completeness": true,
	"security":            true,
}

var structuralRules = map[string]bool{
	"Error Handling":        true,
	"Cache Invalidation":    true,
	"Hook-Database Pattern": true,
	"API Type Safety":       true,
	"Auth Guards":           true,
	"File Size Warnings":    true,
	"Duplicate Functions":   true,
	"Export Completeness":   true,
}

var structuralCategories = map[string]bool{
	domain.CategoryArchitecture:    true,
	domain.CategoryPerformance:     true,
	domain.CategoryMaintainability: true,
	domain.CategoryCodeDrift:       true,
	domain.CategoryAPICompleteness: true,
}

type rule struct {
	bucket      string
	title       string
	description string
	matches     func(domain.Issue) bool
}

// rules is evaluated top to bottom; the final catch-all guarantees every
// issue lands in exactly one bucket.
var rules = []rule{
	{
		bucket:      domain.BucketBlockers,
		title:       "Fix These First",
		description: "Issues that break the app at runtime",
		matches:     isBlocker,
	},
	{
		bucket:      domain.BucketStructural,
		title:       "Structural Problems",
		description: "Architecture and pattern violations that cause drift",
		matches:     isStructural,
	},
	{
		bucket:      domain.BucketCompliance,
		title:       "Compliance & Polish",
		description: "Everything else worth cleaning up",
		matches:     func(domain.Issue) bool { return true },
	},
}

// isBlocker: only critical issues qualify, and only when the rule, category,
// or raw type tag marks them as app-breaking.
func isBlocker(issue domain.Issue) bool {
	if issue.Severity != domain.SeverityCritical {
		return false
	}
	return blockerRules[issue.Rule] || blockerCategories[issue.Category] || blockerTypes[issue.Type]
}

func isStructural(issue domain.Issue) bool {
	return structuralRules[issue.Rule] || structuralCategories[issue.Category]
}

// Classify partitions issues into non-empty buckets ordered by priority.
// Issues are expected to be normalized; severities still in the native
// three-level vocabulary are reconciled here so that a native "warning" can
// never reach BLOCKERS.
func Classify(issues []domain.Issue) []domain.Bucket {
	buckets := make(map[string]*domain.Bucket, len(rules))
	for i, r := range rules {
		buckets[r.bucket] = &domain.Bucket{
			Name:        r.bucket,
			Title:       r.title,
			Description: r.description,
			Priority:    i + 1,
		}
	}

	for _, issue := range issues {
		issue = domain.Normalize(issue)
		for _, r := range rules {
			if r.matches(issue) {
				b := buckets[r.bucket]
				b.Issues = append(b.Issues, issue)
				b.Count++
				break
			}
		}
	}

	var result []domain.Bucket
	for _, r := range rules {
		if b := buckets[r.bucket]; b.Count > 0 {
			result = append(result, *b)
		}
	}
	return result
}

// Counts returns the per-bucket totals, zero for absent buckets.
func Counts(buckets []domain.Bucket) (blockers, structural, compliance int) {
	for _, b := range buckets {
		switch b.Name {
		case domain.BucketBlockers:
			blockers = b.Count
		case domain.BucketStructural:
			structural = b.Count
		case domain.BucketCompliance:
			compliance = b.Count
		}
	}
	return
}
