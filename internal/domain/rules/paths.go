package rules

import (
	"regexp"
	"strings"

	"github.com/observerdev/observer/internal/domain"
)

// Path heuristics shared by the checkers. These operate on slash-normalized
// paths relative to the project root.

func isDatabaseFile(path string) bool {
	lower := strings.ToLower(path)
	return strings.Contains(lower, "/db/") || strings.Contains(lower, "/database/") ||
		strings.Contains(lower, "prisma") || strings.HasPrefix(lower, "db/") ||
		strings.HasPrefix(lower, "database/")
}

func isHookFile(path string, cfg domain.ProjectConfig) bool {
	for _, dir := range hookDirs(cfg) {
		if strings.HasPrefix(path, dir+"/") || strings.Contains(path, "/"+dir+"/") {
			return true
		}
	}
	// The use* naming convention requires an uppercase letter after the
	// prefix, otherwise files like users.ts would count as hooks.
	base := path[strings.LastIndex(path, "/")+1:]
	if !strings.HasPrefix(base, "use") || !isSourceFile(path) {
		return false
	}
	rest := strings.TrimPrefix(base, "use")
	return rest != "" && rest[0] >= 'A' && rest[0] <= 'Z'
}

func hookDirs(cfg domain.ProjectConfig) []string {
	if len(cfg.HookDirs) > 0 {
		return cfg.HookDirs
	}
	return domain.DefaultConfig().HookDirs
}

func isComponentFile(path string) bool {
	lower := strings.ToLower(path)
	return strings.Contains(lower, "components/") &&
		(strings.HasSuffix(path, ".tsx") || strings.HasSuffix(path, ".jsx"))
}

func isAPIRouteFile(path string) bool {
	if !strings.Contains(path, "/api/") && !strings.HasPrefix(path, "api/") {
		return false
	}
	base := path[strings.LastIndex(path, "/")+1:]
	return base == "route.ts" || base == "route.js" || strings.HasSuffix(base, ".ts") && strings.Contains(path, "pages/api/")
}

func isPageFile(path string) bool {
	base := path[strings.LastIndex(path, "/")+1:]
	return base == "page.tsx" || base == "page.ts" || base == "page.jsx" || base == "page.js"
}

func isProtectedPath(path string, cfg domain.ProjectConfig) bool {
	protected := cfg.ProtectedPaths
	if len(protected) == 0 {
		protected = domain.DefaultConfig().ProtectedPaths
	}
	for _, p := range protected {
		if strings.Contains(path, "/"+p+"/") || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

func isSourceFile(path string) bool {
	return strings.HasSuffix(path, ".ts") || strings.HasSuffix(path, ".tsx") ||
		strings.HasSuffix(path, ".js") || strings.HasSuffix(path, ".jsx")
}

// Content patterns used by checkers whose unit is not fully captured by the
// shared per-file analysis record. These are configuration data.
var (
	dbImportRe    = regexp.MustCompile(`(?m)^\s*import\s+[^;]*from\s+['"](@?/?[\w./-]*(?:lib/db|server/db|database|prisma)[\w./-]*)['"]`)
	formMarkerRe  = regexp.MustCompile(`<form[\s>]|useForm\s*\(`)
	responseValRe = regexp.MustCompile(`\w+Schema\.parse\(|safeParse\(|satisfies\s+\w+Response`)
)
