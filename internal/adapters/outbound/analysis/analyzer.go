// Package analysis computes the shared per-file analysis records. Each file
// is read exactly once per run; every checker works off the same records and
// cached contents.
package analysis

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/observerdev/observer/internal/domain"
)

// Detection patterns. These are configuration data: tuning a pattern changes
// what the rules see, not how they score.
var (
	parseRe       = regexp.MustCompile(`\.parse\(|\.safeParse\(`)
	authRe        = regexp.MustCompile(`getServerSession\(|\bauth\(\)|currentUser\(|requireAuth\(|getSession\(`)
	tryCatchRe    = regexp.MustCompile(`\btry\s*{`)
	loadingRe     = regexp.MustCompile(`\bisLoading\b|\bisPending\b|\bloading\b`)
	errorStateRe  = regexp.MustCompile(`\bisError\b|\bsetError\b|\berror\s*[,:}]`)
	mutationRe    = regexp.MustCompile(`\b(use\w*Mutation)\s*[(<]`)
	invalidateRe  = regexp.MustCompile(`invalidateQueries\s*\(`)
	formValRe     = regexp.MustCompile(`zodResolver\(|yupResolver\(|\bvalidate\s*:`)
	functionDefRe = regexp.MustCompile(`(?m)^\s*(?:export\s+)?(?:async\s+)?function\s+(\w+)|^\s*(?:export\s+)?const\s+(\w+)\s*=\s*(?:async\s*)?\(`)
	exportRe      = regexp.MustCompile(`(?m)^\s*export\b`)
)

// Analyzer implements domain.FileAnalyzer with regex pattern matching over
// raw file contents.
type Analyzer struct{}

func New() *Analyzer {
	return &Analyzer{}
}

// Analyze reads the given files under rootPath and returns their contents
// plus per-file analysis records. Unreadable files are skipped rather than
// failing the run.
func (a *Analyzer) Analyze(rootPath string, files []string) (map[string]string, map[string]*domain.FileAnalysis, error) {
	contents := make(map[string]string, len(files))
	records := make(map[string]*domain.FileAnalysis, len(files))

	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(rootPath, f))
		if err != nil {
			continue
		}
		content := string(data)
		contents[f] = content
		records[f] = analyzeContent(content)
	}

	return contents, records, nil
}

func analyzeContent(content string) *domain.FileAnalysis {
	fa := &domain.FileAnalysis{
		HasParse:          parseRe.MatchString(content),
		HasAuth:           authRe.MatchString(content),
		HasTryCatch:       tryCatchRe.MatchString(content),
		HasLoadingState:   loadingRe.MatchString(content),
		HasErrorState:     errorStateRe.MatchString(content),
		HasFormValidation: formValRe.MatchString(content),
		HasExport:         exportRe.MatchString(content),
		TotalLines:        strings.Count(content, "\n") + 1,
	}

	for _, m := range mutationRe.FindAllStringSubmatch(content, -1) {
		fa.Mutations = append(fa.Mutations, m[1])
	}
	for range invalidateRe.FindAllString(content, -1) {
		fa.Invalidates = append(fa.Invalidates, "invalidateQueries")
	}
	for _, m := range functionDefRe.FindAllStringSubmatch(content, -1) {
		name := m[1]
		if name == "" {
			name = m[2]
		}
		if name != "" {
			fa.Functions = append(fa.Functions, name)
		}
	}

	return fa
}
