package domain

import "time"

// Issue represents a single normalized finding attributed to a file.
type Issue struct {
	File       string   `json:"file"`
	Line       int      `json:"line,omitempty"`
	Rule       string   `json:"rule,omitempty"`
	Category   string   `json:"category"`
	Severity   string   `json:"severity"`
	Type       string   `json:"type,omitempty"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
	Feature    string   `json:"feature,omitempty"`
	Impacts    []string `json:"impacts,omitempty"`
}

// Canonical four-level severity vocabulary. All issues carry one of these
// after normalization.
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

// Native three-level vocabulary used by some checkers before normalization.
const (
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Issue categories. Each rule maps to exactly one.
const (
	CategorySetup           = "setup"
	CategoryImports         = "imports"
	CategoryTypes           = "types"
	CategoryRuntime         = "runtime"
	CategorySecurity        = "security"
	CategoryArchitecture    = "architecture"
	CategoryPerformance     = "performance"
	CategoryMaintainability = "maintainability"
	CategoryCodeDrift       = "code_drift"
	CategoryAPICompleteness = "api_completeness"
	CategoryContract        = "contract"
	CategoryValidation      = "validation"
	CategoryUserExperience  = "user_experience"
	CategoryOther           = "other"
)

// Bucket is a priority partition of the aggregated issue list.
type Bucket struct {
	Name        string  `json:"name"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    int     `json:"priority"`
	Issues      []Issue `json:"issues"`
	Count       int     `json:"count"`
}

const (
	BucketBlockers   = "BLOCKERS"
	BucketStructural = "STRUCTURAL"
	BucketCompliance = "COMPLIANCE"
)

// Coverage counts the checkable units a rule examined and how many passed.
type Coverage struct {
	Checked int `json:"checked"`
	Passed  int `json:"passed"`
	Total   int `json:"total"`
}

// ValidationResult is the output of a single rule checker.
type ValidationResult struct {
	Rule       string   `json:"rule"`
	RuleNumber int      `json:"rule_number"`
	Status     string   `json:"status"`
	Score      int      `json:"score"`
	Issues     []Issue  `json:"issues"`
	Coverage   Coverage `json:"coverage"`
}

const (
	StatusPass    = "pass"
	StatusWarning = "warning"
	StatusFail    = "fail"
)

// Metrics surfaces specific rule scores for the dashboard.
type Metrics struct {
	ContractCoverage int `json:"contract_coverage"`
	ParseCoverage    int `json:"parse_coverage"`
	DBDriftScore     int `json:"db_drift_score"`
	CacheHygiene     int `json:"cache_hygiene"`
	AuthCoverage     int `json:"auth_coverage"`
}

// ValidationSummary is the whole-run result across the nine core rules.
type ValidationSummary struct {
	OverallScore   int                `json:"overall_score"`
	PassedRules    int                `json:"passed_rules"`
	TotalRules     int                `json:"total_rules"`
	CriticalIssues int                `json:"critical_issues"`
	Warnings       int                `json:"warnings"`
	SeverityScore  int                `json:"severity_score"`
	Results        []ValidationResult `json:"results"`
	Metrics        Metrics            `json:"metrics"`
}

// Report is the full serialized outcome of one analysis run.
type Report struct {
	Timestamp  time.Time         `json:"timestamp"`
	CommitHash string            `json:"commit_hash,omitempty"`
	Health     int               `json:"health"`
	Summary    ValidationSummary `json:"summary"`
	Buckets    []Bucket          `json:"buckets"`
	Insights   *Insights         `json:"insights,omitempty"`
}

func (r Report) Grade() string { return GradeFor(r.Health) }

func GradeFor(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}

// SnapshotEntry is one persisted history record. Diff is the signed delta in
// total issues versus the immediately preceding entry.
type SnapshotEntry struct {
	Timestamp  string `json:"timestamp"`
	Total      int    `json:"total"`
	Blockers   int    `json:"blockers"`
	Structural int    `json:"structural"`
	Compliance int    `json:"compliance"`
	Diff       int    `json:"diff"`
}

// Insights holds pattern analysis derived from the bucketed issues.
type Insights struct {
	Patterns        []string        `json:"patterns"`
	Hotspots        []string        `json:"hotspots"`
	Recommendations []string        `json:"recommendations"`
	Summary         InsightsSummary `json:"summary"`
}

type InsightsSummary struct {
	TotalFilesAffected   int     `json:"total_files_affected"`
	AverageIssuesPerFile float64 `json:"average_issues_per_file"`
	MostCommonIssueType  string  `json:"most_common_issue_type"`
}
