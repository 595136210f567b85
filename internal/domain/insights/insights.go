// Package insights derives pattern-level observations from bucketed issues:
// which areas of the tree concentrate problems, which files are hotspots, and
// what to fix first.
package insights

import (
	"fmt"
	"math"
	"path"
	"sort"
	"strings"

	"github.com/observerdev/observer/internal/domain"
)

const (
	maxPatterns        = 5
	maxHotspots        = 3
	maxRecommendations = 4
	hotspotMinIssues   = 3
)

// pathAreas maps an area name to its path predicate. Evaluated in fixed
// order so output is stable.
var pathAreas = []struct {
	name    string
	matches func(string) bool
}{
	{"admin", func(p string) bool { return strings.Contains(strings.ToLower(p), "admin") }},
	{"hooks", func(p string) bool { return strings.Contains(strings.ToLower(p), "hook") }},
	{"components", func(p string) bool { return strings.Contains(strings.ToLower(p), "component") }},
	{"api", func(p string) bool { return strings.Contains(p, "/api/") }},
	{"pages", func(p string) bool {
		base := path.Base(p)
		return base == "page.tsx" || base == "page.ts"
	}},
	{"database", func(p string) bool {
		lower := strings.ToLower(p)
		return strings.Contains(lower, "db") || strings.Contains(lower, "database") || strings.Contains(lower, "prisma")
	}},
	{"authentication", func(p string) bool { return strings.Contains(strings.ToLower(p), "auth") }},
}

// messageTypes maps an issue-type key to its message predicate and display
// description.
var messageTypes = []struct {
	key     string
	desc    string
	matches func(string) bool
}{
	{"missing_handlers", "Missing onClick/event handlers", containsAny("onclick", "button", "handler")},
	{"loading_states", "Missing or incorrect loading states", containsAny("loading", "isloading")},
	{"error_handling", "Inadequate error handling", func(m string) bool {
		return strings.Contains(m, "error") && strings.Contains(m, "handling") || strings.Contains(m, "try/catch")
	}},
	{"type_issues", "TypeScript type issues", containsAny("type", "typescript", "schema")},
	{"unused_code", "Unused variables or imports", containsAny("unused", "never used", "exports none")},
	{"null_checks", "Missing null/undefined checks", containsAny("undefined", "null")},
	{"async_issues", "Async/await problems", containsAny("async", "await", "promise")},
}

func containsAny(needles ...string) func(string) bool {
	return func(m string) bool {
		for _, n := range needles {
			if strings.Contains(m, n) {
				return true
			}
		}
		return false
	}
}

// Analyze inspects all bucketed issues and produces patterns, hotspot files,
// and recommendations.
func Analyze(buckets []domain.Bucket) *domain.Insights {
	out := &domain.Insights{
		Patterns:        []string{},
		Hotspots:        []string{},
		Recommendations: []string{},
	}

	var all []domain.Issue
	for _, b := range buckets {
		all = append(all, b.Issues...)
	}
	if len(all) == 0 {
		return out
	}
	total := len(all)

	// Area concentrations.
	areaCounts := make(map[string]int)
	fileCounts := make(map[string]int)
	for _, issue := range all {
		fileCounts[issue.File]++
		for _, area := range pathAreas {
			if area.matches(issue.File) {
				areaCounts[area.name]++
			}
		}
	}

	for _, area := range pathAreas {
		count := areaCounts[area.name]
		pct := count * 100 / total
		if pct >= 20 {
			out.Patterns = append(out.Patterns,
				fmt.Sprintf("%s area has %d issues (%d%% of total)", capitalize(area.name), count, pct))
		}
	}

	// Hotspot files.
	var files []fileHotspot
	for f, c := range fileCounts {
		files = append(files, fileHotspot{f, c})
	}
	sort.Slice(files, func(i, j int) bool {
		if files[i].count != files[j].count {
			return files[i].count > files[j].count
		}
		return files[i].file < files[j].file
	})
	for _, fc := range files {
		if fc.count >= hotspotMinIssues {
			out.Hotspots = append(out.Hotspots, fmt.Sprintf("%s (%d issues)", fc.file, fc.count))
		}
	}

	// Message-keyword issue types.
	typeCounts := make(map[string]int)
	for _, issue := range all {
		msg := strings.ToLower(issue.Message)
		for _, mt := range messageTypes {
			if mt.matches(msg) {
				typeCounts[mt.key]++
			}
		}
	}
	for _, mt := range messageTypes {
		count := typeCounts[mt.key]
		pct := count * 100 / total
		if pct >= 15 {
			out.Patterns = append(out.Patterns, fmt.Sprintf("%s: %d occurrences (%d%%)", mt.desc, count, pct))
		}
	}

	out.Recommendations = recommend(areaCounts, typeCounts, files, total)

	// Summary statistics.
	out.Summary = domain.InsightsSummary{
		TotalFilesAffected:   len(fileCounts),
		AverageIssuesPerFile: math.Round(float64(total)/float64(len(fileCounts))*10) / 10,
		MostCommonIssueType:  mostCommonType(typeCounts),
	}

	out.Patterns = truncate(out.Patterns, maxPatterns)
	out.Hotspots = truncate(out.Hotspots, maxHotspots)
	out.Recommendations = truncate(out.Recommendations, maxRecommendations)
	return out
}

type fileHotspot struct {
	file  string
	count int
}

func recommend(areaCounts, typeCounts map[string]int, files []fileHotspot, total int) []string {
	var recs []string

	if areaCounts["admin"]*100 >= total*30 {
		recs = append(recs, "Consider refactoring admin components - they contain 30%+ of all issues")
	}
	if typeCounts["missing_handlers"]*100 >= total*20 {
		recs = append(recs, "Implement a shared button component with proper handler validation")
	}
	if typeCounts["error_handling"]*100 >= total*15 {
		recs = append(recs, "Add error boundaries and standardize error handling patterns")
	}
	if areaCounts["hooks"]*100 >= total*25 {
		recs = append(recs, "Review and standardize React hooks implementation")
	}
	if typeCounts["loading_states"]*100 >= total*15 {
		recs = append(recs, "Create a consistent loading state management strategy")
	}
	if len(files) > 0 && files[0].count*100 >= total*10 {
		recs = append(recs, fmt.Sprintf("Priority: Fix %s first - it has %d issues", path.Base(files[0].file), files[0].count))
	}
	return recs
}

func mostCommonType(typeCounts map[string]int) string {
	best, bestCount := "unknown", 0
	for _, mt := range messageTypes {
		if c := typeCounts[mt.key]; c > bestCount {
			best, bestCount = mt.key, c
		}
	}
	return best
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func truncate(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
