package scanner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/observerdev/observer/internal/domain"
)

var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	".next":        true,
	"dist":         true,
	"build":        true,
	"coverage":     true,
	"vendor":       true,
}

var sourceExts = map[string]bool{
	".ts":  true,
	".tsx": true,
	".js":  true,
	".jsx": true,
}

// FileScanner implements domain.ProjectScanner by walking the filesystem.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// Scan walks the project tree collecting TypeScript/JavaScript source files.
// excludePaths are doublestar glob patterns matched against slash-normalized
// paths relative to the root.
func (s *FileScanner) Scan(projectPath string, excludePaths ...string) (*domain.ScanResult, error) {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, err
	}

	result := &domain.ScanResult{
		RootPath: absPath,
	}

	err = filepath.WalkDir(absPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, _ := filepath.Rel(absPath, path)
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			// The root itself is never skipped, even when the project
			// directory happens to be named like a build output.
			if relPath != "." && (skipDirs[d.Name()] || excluded(relPath, excludePaths)) {
				return filepath.SkipDir
			}
			return nil
		}

		if excluded(relPath, excludePaths) {
			return nil
		}
		result.AllFiles = append(result.AllFiles, relPath)

		dir := filepath.Dir(relPath)
		isRoot := dir == "."
		switch {
		case d.Name() == "package.json" && isRoot:
			result.HasPackageJSON = true
		case d.Name() == "tsconfig.json" && isRoot:
			result.HasTSConfig = true
		case d.Name() == ".observer" || strings.HasPrefix(relPath, ".observer/"):
			result.HasObserverDir = true
		}

		if sourceExts[filepath.Ext(d.Name())] && !strings.HasSuffix(d.Name(), ".d.ts") {
			result.SourceFiles = append(result.SourceFiles, relPath)
		}

		return nil
	})

	return result, err
}

func excluded(relPath string, patterns []string) bool {
	if relPath == "." {
		return false
	}
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, relPath); err == nil && ok {
			return true
		}
	}
	return false
}
