package domain

// ProjectScanner scans a project directory and returns file metadata.
type ProjectScanner interface {
	Scan(projectPath string, excludePaths ...string) (*ScanResult, error)
}

// ScanResult holds the result of scanning a project directory.
type ScanResult struct {
	RootPath       string   `json:"root_path"`
	SourceFiles    []string `json:"source_files"`
	AllFiles       []string `json:"all_files"`
	HasPackageJSON bool     `json:"has_package_json"`
	HasTSConfig    bool     `json:"has_tsconfig"`
	HasObserverDir bool     `json:"has_observer_dir"`
}

// FileAnalyzer reads source files and computes the shared per-file analysis
// records. Contents are read at most once per run.
type FileAnalyzer interface {
	Analyze(rootPath string, files []string) (map[string]string, map[string]*FileAnalysis, error)
}

// ConfigLoader loads project configuration.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// ContractLoader loads contract definitions and their golden examples.
type ContractLoader interface {
	Load(projectPath string) ([]Contract, error)
}

// SnapshotStore persists analysis reports and the snapshot history.
type SnapshotStore interface {
	WriteReport(projectPath string, report *Report) error
	Append(projectPath string, entry SnapshotEntry) error
	History(projectPath string) ([]SnapshotEntry, error)
}

// GitInfo resolves the commit a report was produced against. Implementations
// return an error for projects without version control; callers treat the
// hash as best-effort metadata.
type GitInfo interface {
	CommitHash(projectPath string) (string, error)
}
