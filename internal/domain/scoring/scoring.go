// Package scoring holds the health-score formulas. Four formulas coexist with
// intentionally different weights; each is tied to its own call site and they
// must not be unified.
package scoring

import "math"

// CoverageScore is the per-rule score: round(passed/total*100). A rule that
// examined nothing trivially passes with 100.
func CoverageScore(passed, total int) int {
	if total == 0 {
		return 100
	}
	score := int(math.Round(float64(passed) / float64(total) * 100))
	return clamp(score)
}

// FileScore is the per-file display score: capped deductions of 20 per
// critical-equivalent issue (max 80) and 5 per warning-equivalent issue
// (max 20).
func FileScore(errorCount, warningCount int) int {
	score := 100 - capped(errorCount*20, 80) - capped(warningCount*5, 20)
	return clamp(score)
}

// BucketScore is the bucket-weighted whole-project score: capped deductions
// of 30 per blocker (max 70), 10 per structural issue (max 20), and 2 per
// compliance issue (max 10).
func BucketScore(blockers, structural, compliance int) int {
	score := 100 - capped(blockers*30, 70) - capped(structural*10, 20) - capped(compliance*2, 10)
	return clamp(score)
}

// SeverityScore is the unified-report score: 50 per critical, 10 per warning,
// 2 per info, with no per-category cap.
func SeverityScore(critical, warning, info int) int {
	score := 100 - critical*50 - warning*10 - info*2
	return clamp(score)
}

func capped(deduction, limit int) int {
	if deduction > limit {
		return limit
	}
	return deduction
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
