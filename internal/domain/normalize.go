package domain

import "github.com/observerdev/observer/internal/domain/scoring"

// ruleCategories maps a rule name to its normalized issue category.
// Unknown rule names fall back to CategoryOther.
var ruleCategories = map[string]string{
	"Type-Database Alignment": CategoryTypes,
	"Hook-Database Pattern":   CategoryArchitecture,
	"Error Handling":          CategoryRuntime,
	"Loading States":          CategoryUserExperience,
	"API Type Safety":         CategoryValidation,
	"Registry Usage":          CategorySetup,
	"Cache Invalidation":      CategoryPerformance,
	"Form Validation":         CategoryValidation,
	"Auth Guards":             CategorySecurity,
	"File Size Warnings":      CategoryCodeDrift,
	"Duplicate Functions":     CategoryCodeDrift,
	"Export Completeness":     CategoryAPICompleteness,
	"Contract Compliance":     CategoryContract,
	"Contract Violation":      CategoryContract,
}

// CategoryForRule returns the normalized category for a rule name.
func CategoryForRule(rule string) string {
	if c, ok := ruleCategories[rule]; ok {
		return c
	}
	return CategoryOther
}

// NormalizeSeverity reconciles the native three-level vocabulary
// (critical/warning/info) into the canonical four-level one. Values already
// canonical pass through; anything unrecognized falls back to medium, the
// most conservative choice.
func NormalizeSeverity(severity string) string {
	switch severity {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return severity
	case SeverityWarning:
		return SeverityHigh
	case SeverityInfo:
		return SeverityMedium
	default:
		return SeverityMedium
	}
}

// Normalize returns a canonical copy of a raw issue: severity is reconciled
// and an empty category is derived from the issue's rule name.
func Normalize(issue Issue) Issue {
	issue.Severity = NormalizeSeverity(issue.Severity)
	if issue.Category == "" {
		issue.Category = CategoryForRule(issue.Rule)
	}
	return issue
}

// Aggregate concatenates the issues of all results into one normalized
// collection. Duplicates reported by different rules for the same underlying
// problem are intentionally preserved.
func Aggregate(results []ValidationResult) []Issue {
	var all []Issue
	for _, r := range results {
		for _, issue := range r.Issues {
			if issue.Rule == "" {
				issue.Rule = r.Rule
			}
			all = append(all, Normalize(issue))
		}
	}
	return all
}

// Summarize reduces rule results to a whole-run summary. Only the core rules
// contribute to the overall score and pass counts; extended rules (drift,
// contract) still surface their results, issue counts, and metrics.
func Summarize(core, extended []ValidationResult) ValidationSummary {
	summary := ValidationSummary{
		TotalRules: len(core),
		Results:    append(append([]ValidationResult{}, core...), extended...),
	}

	scoreTotal := 0
	for _, r := range core {
		scoreTotal += r.Score
		if r.Status == StatusPass {
			summary.PassedRules++
		}
	}
	if len(core) > 0 {
		summary.OverallScore = (scoreTotal + len(core)/2) / len(core)
	}

	lowIssues := 0
	for _, r := range summary.Results {
		for _, issue := range r.Issues {
			switch NormalizeSeverity(issue.Severity) {
			case SeverityCritical:
				summary.CriticalIssues++
			case SeverityLow:
				summary.Warnings++
				lowIssues++
			default:
				summary.Warnings++
			}
		}
	}
	// Low-severity issues deduct at the info weight; the Warnings counter
	// still includes them.
	summary.SeverityScore = scoring.SeverityScore(
		summary.CriticalIssues, summary.Warnings-lowIssues, lowIssues)

	summary.Metrics = metricsFrom(summary.Results)
	return summary
}

// metricsFrom extracts dashboard metrics from specific rule positions.
// Contract coverage comes from the contract checker when present and
// defaults to 100 otherwise.
func metricsFrom(results []ValidationResult) Metrics {
	m := Metrics{ContractCoverage: 100}

	scoreAt := func(i int) int {
		if i < len(results) {
			return results[i].Score
		}
		return 100
	}

	m.ParseCoverage = scoreAt(0) // Type-Database Alignment
	m.DBDriftScore = scoreAt(1)  // Hook-Database Pattern
	m.CacheHygiene = scoreAt(6)  // Cache Invalidation
	m.AuthCoverage = scoreAt(8)  // Auth Guards

	for _, r := range results {
		if r.Rule == "Contract Compliance" {
			m.ContractCoverage = r.Score
		}
	}
	return m
}
